package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Free-standing enum fields; nothing prevents moving an
// order backwards.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Customer is the buyer snapshot embedded in an order.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Item is a single order line. ProductID is an uninterpreted reference;
// no stock reconciliation happens on order writes.
type Item struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// Payment holds the charge breakdown for an order.
type Payment struct {
	Method     string  `json:"method" bson:"method"`
	CardNumber string  `json:"cardNumber" bson:"cardNumber"`
	Subtotal   float64 `json:"subtotal" bson:"subtotal"`
	Shipping   float64 `json:"shipping" bson:"shipping"`
	Tax        float64 `json:"tax" bson:"tax"`
	Total      float64 `json:"total" bson:"total"`
}

// Tracking holds shipment information for an order.
type Tracking struct {
	Number            string `json:"number" bson:"number"`
	Carrier           string `json:"carrier" bson:"carrier"`
	EstimatedDelivery string `json:"estimatedDelivery" bson:"estimatedDelivery"`
}

// Order is a customer purchase.
type Order struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Customer Customer           `json:"customer" bson:"customer"`
	Items    []Item             `json:"items" bson:"items"`
	Payment  Payment            `json:"payment" bson:"payment"`
	Tracking Tracking           `json:"tracking" bson:"tracking"`
	Status   string             `json:"status" bson:"status"`
	Date     time.Time          `json:"date" bson:"date"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the collection holding orders.
func (Order) CollectionName() string {
	return "orders"
}

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
