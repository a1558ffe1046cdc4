package offer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discount types accepted for an offer.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Offer statuses. There is no enforced transition graph; the dashboard sets
// the status directly and the nightly sweep flips past-date offers to expired.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
)

// Offer is a time-bound discount campaign. Products are referenced by name,
// not by id.
type Offer struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	DiscountType  string             `json:"discountType" bson:"discountType"`
	DiscountValue float64            `json:"discountValue" bson:"discountValue"`
	StartDate     string             `json:"startDate" bson:"startDate"`
	EndDate       string             `json:"endDate" bson:"endDate"`
	Status        string             `json:"status" bson:"status"`
	Products      []string           `json:"products" bson:"products"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the collection holding offers.
func (Offer) CollectionName() string {
	return "offers"
}

func validDiscountType(s string) bool {
	return s == DiscountPercentage || s == DiscountFixed
}

func validStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusExpired
}
