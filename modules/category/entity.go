package category

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a product grouping managed from the admin dashboard.
// ProductsCount is informational only and never recomputed from the
// products collection.
type Category struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	ProductsCount int                `json:"productsCount" bson:"productsCount"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the collection holding categories.
func (Category) CollectionName() string {
	return "categories"
}
