package product

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
	// ErrNotFound is returned when a product is not found.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidID is returned when a product id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid product id")
)

// Repository handles product persistence in the document store.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new product repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(Product{}.CollectionName())}
}

// Create inserts a new product with a fresh id and timestamps.
func (r *Repository) Create(ctx context.Context, p *Product) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindAll returns every product, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a product by its id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Product, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var p Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

// Update applies the supplied fields and returns the updated record.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) (*Product, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p Product
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &p, nil
}

// Delete removes a product permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := storage.ParseID(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
