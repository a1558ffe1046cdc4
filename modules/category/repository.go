package category

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
	// ErrNotFound is returned when a category is not found.
	ErrNotFound = errors.New("category not found")
	// ErrInvalidID is returned when a category id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid category id")
)

// Repository handles category persistence in the document store.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new category repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(Category{}.CollectionName())}
}

// Create inserts a new category with a fresh id and timestamps.
func (r *Repository) Create(ctx context.Context, c *Category) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindAll returns every category, newest first.
func (r *Repository) FindAll(ctx context.Context) ([]Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// FindByID retrieves a category by its id.
func (r *Repository) FindByID(ctx context.Context, id string) (*Category, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var c Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &c, nil
}

// Update applies the supplied fields and returns the updated record.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) (*Category, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c Category
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &c, nil
}

// Delete removes a category permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := storage.ParseID(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
