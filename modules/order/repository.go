package order

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
	// ErrNotFound is returned when an order is not found.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidID is returned when an order id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid order id")
)

// Repository handles order persistence in the document store.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new order repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(Order{}.CollectionName())}
}

// Create inserts a new order with a fresh id and timestamps.
func (r *Repository) Create(ctx context.Context, o *Order) error {
	now := time.Now().UTC()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Date.IsZero() {
		o.Date = now
	}

	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindAll returns every order, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// FindByID retrieves an order by its id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Order, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var o Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &o, nil
}

// Update applies the supplied fields and returns the updated record.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) (*Order, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o Order
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &o, nil
}

// Delete removes an order permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := storage.ParseID(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
