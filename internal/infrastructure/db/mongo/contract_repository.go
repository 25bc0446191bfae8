package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

const collectionContracts = "contracts"

// ContractRepository stores contracts in a single collection keyed by
// employee_id — the flat rendering of the employees/{id}/contracts
// sub-collection path. Every query carries the employee scope so a contract
// is never visible outside its owner.
type ContractRepository struct {
	col *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{col: db.Collection(collectionContracts)}
}

type mongoContract struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID  string             `bson:"employee_id"`
	Type        string             `bson:"type"`
	StartDate   string             `bson:"start_date"`
	EndDate     string             `bson:"end_date,omitempty"`
	Salary      *float64           `bson:"salary,omitempty"`
	Status      string             `bson:"status"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *ContractRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contracts []*domain.Contract
	for cursor.Next(ctx) {
		var mc mongoContract
		if err := cursor.Decode(&mc); err != nil {
			return nil, err
		}
		contracts = append(contracts, mc.toDomain())
	}
	return contracts, cursor.Err()
}

func (r *ContractRepository) FindByID(ctx context.Context, employeeID, contractID string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		return nil, domain.ErrContractNotFound
	}

	var mc mongoContract
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "employee_id": employeeID}).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, err
	}
	return mc.toDomain(), nil
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.InsertOne(ctx, fromDomainContract(c))
	if err != nil {
		return nil, err
	}

	created := *c
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrContractNotFound
	}

	filter := bson.M{"_id": oid, "employee_id": c.EmployeeID}
	result, err := r.col.ReplaceOne(ctx, filter, fromDomainContract(c))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, employeeID, contractID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		return domain.ErrContractNotFound
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "employee_id": employeeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// DeleteByEmployee removes every contract owned by the employee (cascade on
// employee deletion). Deleting zero contracts is not an error.
func (r *ContractRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	return err
}

// EnsureIndexes creates the employee_id index backing the scoped queries.
func (r *ContractRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mc *mongoContract) toDomain() *domain.Contract {
	return &domain.Contract{
		ID:          mc.ID.Hex(),
		EmployeeID:  mc.EmployeeID,
		Type:        domain.ContractType(mc.Type),
		StartDate:   mc.StartDate,
		EndDate:     mc.EndDate,
		Salary:      mc.Salary,
		Status:      domain.ContractStatus(mc.Status),
		Description: mc.Description,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}

func fromDomainContract(c *domain.Contract) mongoContract {
	return mongoContract{
		EmployeeID:  c.EmployeeID,
		Type:        string(c.Type),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Salary:      c.Salary,
		Status:      string(c.Status),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
