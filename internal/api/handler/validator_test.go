package handler

import (
	"strings"
	"testing"
)

func TestValidator_MessagesPerTag(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		req  any
		want string
	}{
		{"required", registerRequest{Password: "secret123"}, "email is required"},
		{"email", registerRequest{Email: "not-an-email", Password: "secret123"}, "email must be a valid email"},
		{"min", registerRequest{Email: "ana@molino.co", Password: "abc"}, "password must be at least 6 characters"},
		{"oneof", employeeRequest{DocumentNumber: "100", Name: "Juan", Surname: "Pérez", Status: "congelado"}, "status must be one of"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected message containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestValidator_AcceptsValidRequest(t *testing.T) {
	v := NewValidator()

	err := v.Validate(registerRequest{Email: "ana@molino.co", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
