package offer

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
	// ErrNotFound is returned when an offer is not found.
	ErrNotFound = errors.New("offer not found")
	// ErrInvalidID is returned when an offer id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid offer id")
)

// Repository handles offer persistence in the document store.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new offer repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(Offer{}.CollectionName())}
}

// Create inserts a new offer with a fresh id and timestamps.
func (r *Repository) Create(ctx context.Context, o *Offer) error {
	now := time.Now().UTC()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// FindAll returns every offer, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]Offer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer cursor.Close(ctx)

	offers := make([]Offer, 0)
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode offers: %w", err)
	}
	return offers, nil
}

// FindByID retrieves an offer by its id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Offer, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var o Offer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return &o, nil
}

// Update applies the supplied fields and returns the updated record.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) (*Offer, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o Offer
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return &o, nil
}

// Delete removes an offer permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := storage.ParseID(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkExpired flips offers whose end date lies strictly before today to the
// expired status. End dates are ISO date strings, so a lexical comparison is
// a date comparison.
func (r *Repository) MarkExpired(ctx context.Context, today string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"endDate": bson.M{"$lt": today},
			"status":  bson.M{"$ne": StatusExpired},
		},
		bson.M{"$set": bson.M{
			"status":    StatusExpired,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire offers: %w", err)
	}
	return res.ModifiedCount, nil
}
