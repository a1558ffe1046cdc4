package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/example/storeadmin/storage"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// AuthModule provides authentication services.
type AuthModule struct {
	client  *mongo.Client
	service *AuthService
	cfg     storage.Config
}

// Compile-time interface checks.
var _ mono.Module = (*AuthModule)(nil)
var _ mono.ServiceProviderModule = (*AuthModule)(nil)
var _ mono.HealthCheckableModule = (*AuthModule)(nil)

// NewModule creates a new AuthModule.
func NewModule() *AuthModule {
	return &AuthModule{cfg: storage.LoadConfig()}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Start connects to the document store and wires the auth service.
func (m *AuthModule) Start(ctx context.Context) error {
	client, err := storage.Connect(ctx, m.cfg)
	if err != nil {
		return err
	}
	m.client = client

	repo := NewUserRepository(client.Database(m.cfg.Database))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	hasher := NewPasswordHasher()
	jwtManager := NewJWTManager(loadJWTConfig())
	m.service = NewAuthService(repo, hasher, jwtManager)

	log.Printf("[auth] Module started (database: %s)", m.cfg.Database)
	return nil
}

// Stop disconnects from the document store.
func (m *AuthModule) Stop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	log.Println("[auth] Module stopped")
	return m.client.Disconnect(ctx)
}

// Health returns the health status of the module.
func (m *AuthModule) Health(ctx context.Context) mono.HealthStatus {
	if m.client == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "document store not initialized",
		}
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("document store ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "register", json.Unmarshal, json.Marshal, m.handleRegister,
	); err != nil {
		return fmt.Errorf("failed to register register service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-token", json.Unmarshal, json.Marshal, m.handleValidateToken,
	); err != nil {
		return fmt.Errorf("failed to register validate-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-users", json.Unmarshal, json.Marshal, m.handleListUsers,
	); err != nil {
		return fmt.Errorf("failed to register list-users service: %w", err)
	}

	log.Printf("[auth] Registered services: services.auth.{register,login,validate-token,list-users}")
	return nil
}

// handleRegister handles user registration.
func (m *AuthModule) handleRegister(ctx context.Context, req RegisterRequest, _ *mono.Msg) (RegisterResponse, error) {
	if _, err := m.service.Register(ctx, req.Username, req.Password, req.Role); err != nil {
		return RegisterResponse{}, err
	}
	return RegisterResponse{Message: "User created successfully"}, nil
}

// handleLogin handles user login.
func (m *AuthModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	token, u, err := m.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{
		Token: token,
		User: UserSummary{
			Username: u.Username,
			Role:     u.Role,
		},
	}, nil
}

// handleValidateToken handles token validation. Validation failures are
// reported in the response, not as errors.
func (m *AuthModule) handleValidateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	claims, err := m.service.ValidateToken(ctx, req.Token)
	if err != nil {
		errMsg := "invalid token"
		if errors.Is(err, ErrExpiredToken) {
			errMsg = "token expired"
		}
		return ValidateTokenResponse{
			Valid: false,
			Error: errMsg,
		}, nil
	}

	return ValidateTokenResponse{
		Valid:  true,
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// handleListUsers handles requests for all accounts.
func (m *AuthModule) handleListUsers(ctx context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResponse, error) {
	users, err := m.service.ListUsers(ctx)
	if err != nil {
		return ListUsersResponse{}, err
	}
	return ListUsersResponse{
		Users: users,
		Total: len(users),
	}, nil
}

// loadJWTConfig loads JWT configuration from environment variables. Without
// JWT_SECRET a random secret is generated, which invalidates tokens across
// restarts.
func loadJWTConfig() JWTConfig {
	config := DefaultJWTConfig()

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.SecretKey = secret
	} else {
		config.SecretKey = uuid.NewString()
		log.Println("[auth] JWT_SECRET not set, using an ephemeral secret")
	}

	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}

	return config
}
