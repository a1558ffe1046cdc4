package order

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

// OrderModule provides order CRUD services over the document store.
type OrderModule struct {
	client *mongo.Client
	repo   *Repository
	cfg    storage.Config
}

// Compile-time interface checks.
var _ mono.Module = (*OrderModule)(nil)
var _ mono.ServiceProviderModule = (*OrderModule)(nil)
var _ mono.HealthCheckableModule = (*OrderModule)(nil)

// NewModule creates a new OrderModule.
func NewModule() *OrderModule {
	return &OrderModule{cfg: storage.LoadConfig()}
}

// Name returns the module name.
func (m *OrderModule) Name() string {
	return "order"
}

// Start connects the module to the document store.
func (m *OrderModule) Start(ctx context.Context) error {
	client, err := storage.Connect(ctx, m.cfg)
	if err != nil {
		return err
	}
	m.client = client
	m.repo = NewRepository(client.Database(m.cfg.Database))

	log.Printf("[order] Module started (database: %s)", m.cfg.Database)
	return nil
}

// Stop disconnects from the document store.
func (m *OrderModule) Stop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	log.Println("[order] Module stopped")
	return m.client.Disconnect(ctx)
}

// Health returns the health status of the module.
func (m *OrderModule) Health(ctx context.Context) mono.HealthStatus {
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
			"collection": Order{}.CollectionName(),
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *OrderModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createOrder,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getOrder,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listOrders,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateOrder,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteOrder,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[order] Registered services: services.order.{create,get,list,update,delete}")
	return nil
}
