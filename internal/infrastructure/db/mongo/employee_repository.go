package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

// mongoEmployee is the storage shape; the ObjectID is translated to the
// domain's string id at the boundary.
type mongoEmployee struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	DocumentNumber string             `bson:"document_number"`
	Name           string             `bson:"name"`
	Surname        string             `bson:"surname"`
	Age            *int               `bson:"age,omitempty"`
	Gender         string             `bson:"gender,omitempty"`
	Position       string             `bson:"position,omitempty"`
	Email          string             `bson:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Status         string             `bson:"status"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

// List performs a full-collection scan. No sort is applied; ordering is
// store-defined.
func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []*domain.Employee
	for cursor.Next(ctx) {
		var me mongoEmployee
		if err := cursor.Decode(&me); err != nil {
			return nil, err
		}
		employees = append(employees, me.toDomain())
	}
	return employees, cursor.Err()
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	var me mongoEmployee
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return me.toDomain(), nil
}

func (r *EmployeeRepository) FindByDocument(ctx context.Context, documentNumber string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEmployee
	if err := r.col.FindOne(ctx, bson.M{"document_number": documentNumber}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return me.toDomain(), nil
}

// Create inserts a new employee document. The unique index on document_number
// makes concurrent duplicate creation fail here regardless of the service's
// pre-check.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainEmployee(e)
	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateDocument
		}
		return nil, err
	}

	created := *e
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	doc := fromDomainEmployee(e)
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		// Re-assigning an employee's document number can collide with the
		// unique index just like creation can.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateDocument
		}
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// EnsureIndexes creates the collection indexes. The unique document_number
// index is the store-side uniqueness guarantee for the business key.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "document_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (me *mongoEmployee) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:             me.ID.Hex(),
		DocumentNumber: me.DocumentNumber,
		Name:           me.Name,
		Surname:        me.Surname,
		Age:            me.Age,
		Gender:         me.Gender,
		Position:       me.Position,
		Email:          me.Email,
		Phone:          me.Phone,
		Status:         domain.EmployeeStatus(me.Status),
		Notes:          me.Notes,
		CreatedAt:      me.CreatedAt,
		UpdatedAt:      me.UpdatedAt,
	}
}

func fromDomainEmployee(e *domain.Employee) mongoEmployee {
	return mongoEmployee{
		DocumentNumber: e.DocumentNumber,
		Name:           e.Name,
		Surname:        e.Surname,
		Age:            e.Age,
		Gender:         e.Gender,
		Position:       e.Position,
		Email:          e.Email,
		Phone:          e.Phone,
		Status:         string(e.Status),
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
