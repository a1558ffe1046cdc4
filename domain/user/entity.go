package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assignable to an account.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account in the system. The password hash is never
// serialized to JSON.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the collection name for the User entity.
func (User) CollectionName() string {
	return "users"
}

// ValidRole reports whether role is a known role name.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// Claims represents the identity carried by a validated token.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
