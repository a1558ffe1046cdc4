package unit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/storeadmin/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when a unit is not found.
	ErrNotFound = errors.New("unit not found")
	// ErrInvalidID is returned when a unit id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid unit id")
)

// Repository handles unit persistence in the document store.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new unit repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(Unit{}.CollectionName())}
}

// Create inserts a new unit with a fresh id and timestamps.
func (r *Repository) Create(ctx context.Context, u *Unit) error {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

// FindAll returns every unit, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]Unit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer cursor.Close(ctx)

	units := make([]Unit, 0)
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("failed to decode units: %w", err)
	}
	return units, nil
}

// FindByID retrieves a unit by its id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Unit, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var u Unit
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}
	return &u, nil
}

// Update applies the supplied fields and returns the updated record.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) (*Unit, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u Unit
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update unit: %w", err)
	}
	return &u, nil
}

// Delete removes a unit permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := storage.ParseID(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
