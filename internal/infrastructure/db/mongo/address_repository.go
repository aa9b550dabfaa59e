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

const collectionAddresses = "addresses"

type AddressRepository struct {
	col *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{col: db.Collection(collectionAddresses)}
}

type addressDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Alias     string             `bson:"alias"`
	Street    string             `bson:"street"`
	City      string             `bson:"city"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d addressDoc) toDomain() domain.Address {
	return domain.Address{
		ID:        d.ID.Hex(),
		Alias:     d.Alias,
		Street:    d.Street,
		City:      d.City,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (r *AddressRepository) Create(ctx context.Context, addr *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := addressDoc{
		Alias:     addr.Alias,
		Street:    addr.Street,
		City:      addr.City,
		UserID:    addr.UserID,
		CreatedAt: addr.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	addr.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// FindByID retrieves an address by id. A malformed or unknown id is an
// invalid address, not an internal error.
func (r *AddressRepository) FindByID(ctx context.Context, id string) (*domain.Address, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidAddress
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc addressDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidAddress
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	out := doc.toDomain()
	return &out, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Address
	for cur.Next(ctx) {
		var doc addressDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the owner index used by every scoped read.
func (r *AddressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
