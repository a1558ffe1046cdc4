package unit

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit is a measurement unit assigned to products (kg, pcs, box).
type Unit struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	ShortName   string             `json:"shortName" bson:"shortName"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the collection holding units.
func (Unit) CollectionName() string {
	return "units"
}
