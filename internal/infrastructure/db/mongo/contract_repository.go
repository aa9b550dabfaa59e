package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

const collectionContracts = "contracts"

type ContractRepository struct {
	col *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{col: db.Collection(collectionContracts)}
}

// serviceSnapshotDoc is a denormalised copy of a catalog entry, embedded in
// the contract. service_id keeps the catalog reference for display only;
// name and price are frozen at signing time.
type serviceSnapshotDoc struct {
	ServiceID   string `bson:"service_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Icon        string `bson:"icon"`
	Price       int64  `bson:"price"`
}

type contractDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	UserID       string               `bson:"user_id"`
	UserEmail    string               `bson:"user_email"`
	Status       string               `bson:"status"`
	Services     []serviceSnapshotDoc `bson:"services"`
	AddressID    string               `bson:"address_id"`
	AddressAlias string               `bson:"address_alias"`
	TotalPrice   int64                `bson:"total_price"`
	StartDate    time.Time            `bson:"start_date"`
	EndDate      time.Time            `bson:"end_date"`
}

func toContractDoc(c *domain.Contract) contractDoc {
	snaps := make([]serviceSnapshotDoc, len(c.Services))
	for i, s := range c.Services {
		snaps[i] = serviceSnapshotDoc{
			ServiceID:   s.ID,
			Name:        s.Name,
			Description: s.Description,
			Icon:        s.Icon,
			Price:       s.Price,
		}
	}
	return contractDoc{
		UserID:       c.UserID,
		UserEmail:    c.UserEmail,
		Status:       string(c.Status),
		Services:     snaps,
		AddressID:    c.AddressID,
		AddressAlias: c.AddressAlias,
		TotalPrice:   c.TotalPrice,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
	}
}

func (d contractDoc) toDomain() domain.Contract {
	services := make([]domain.Service, len(d.Services))
	for i, s := range d.Services {
		services[i] = domain.Service{
			ID:          s.ServiceID,
			Name:        s.Name,
			Description: s.Description,
			Icon:        s.Icon,
			Price:       s.Price,
		}
	}
	return domain.Contract{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		UserEmail:    d.UserEmail,
		Status:       domain.ContractStatus(d.Status),
		Services:     services,
		AddressID:    d.AddressID,
		AddressAlias: d.AddressAlias,
		TotalPrice:   d.TotalPrice,
		StartDate:    d.StartDate.UTC(),
		EndDate:      d.EndDate.UTC(),
	}
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toContractDoc(c))
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *ContractRepository) ListByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Contract
	for cur.Next(ctx) {
		var doc contractDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode contract: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// ownedFilter scopes a contract id to its owner. A contract belonging to a
// different user matches nothing, so it reads as not found.
func ownedFilter(id, userID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContractNotFound
	}
	return bson.M{"_id": oid, "user_id": userID}, nil
}

func (r *ContractRepository) FindOwned(ctx context.Context, id, userID string) (*domain.Contract, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc contractDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	out := doc.toDomain()
	return &out, nil
}

func (r *ContractRepository) MarkRenewed(ctx context.Context, id, userID string, endDate time.Time) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"end_date": endDate,
		"status":   string(domain.StatusRenewed),
	}})
	if err != nil {
		return fmt.Errorf("renew contract: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every scoped read.
func (r *ContractRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
