// Package mail provides the outbound delivery for password-reset requests.
package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer writes reset notifications to the structured log instead of an
// external provider. The token appears only in the log stream, which stays
// inside the deployment; swap this for a real provider without touching the
// auth service.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.logger.Info().
		Str("email", email).
		Str("reset_token", token).
		Msg("password reset requested")
	return nil
}
