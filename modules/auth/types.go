package auth

import (
	domain "github.com/example/storeadmin/domain/user"
)

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse represents a user registration response.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary is the user portion of a login response.
type UserSummary struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse represents a user login response.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ValidateTokenRequest represents a token validation request.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse represents a token validation response.
type ValidateTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ListUsersRequest represents a request for all users.
type ListUsersRequest struct{}

// ListUsersResponse represents the list of users.
type ListUsersResponse struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}
