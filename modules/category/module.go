package category

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/storeadmin/storage"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CategoryModule provides category CRUD services over the document store.
type CategoryModule struct {
	client *mongo.Client
	repo   *Repository
	cfg    storage.Config
}

// Compile-time interface checks.
var _ mono.Module = (*CategoryModule)(nil)
var _ mono.ServiceProviderModule = (*CategoryModule)(nil)
var _ mono.HealthCheckableModule = (*CategoryModule)(nil)

// NewModule creates a new CategoryModule.
func NewModule() *CategoryModule {
	return &CategoryModule{cfg: storage.LoadConfig()}
}

// Name returns the module name.
func (m *CategoryModule) Name() string {
	return "category"
}

// Start connects the module to the document store.
func (m *CategoryModule) Start(ctx context.Context) error {
	client, err := storage.Connect(ctx, m.cfg)
	if err != nil {
		return err
	}
	m.client = client
	m.repo = NewRepository(client.Database(m.cfg.Database))

	log.Printf("[category] Module started (database: %s)", m.cfg.Database)
	return nil
}

// Stop disconnects from the document store.
func (m *CategoryModule) Stop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	log.Println("[category] Module stopped")
	return m.client.Disconnect(ctx)
}

// Health returns the health status of the module.
func (m *CategoryModule) Health(ctx context.Context) mono.HealthStatus {
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
		Details: map[string]any{
			"collection": Category{}.CollectionName(),
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *CategoryModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createCategory,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getCategory,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listCategories,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateCategory,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteCategory,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[category] Registered services: services.category.{create,get,list,update,delete}")
	return nil
}
