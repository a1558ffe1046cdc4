package offer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/storeadmin/storage"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/robfig/cron"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// OfferModule provides offer CRUD services over the document store and runs
// the nightly expiry sweep.
type OfferModule struct {
	client *mongo.Client
	repo   *Repository
	cfg    storage.Config
	cron   *cron.Cron
}

// Compile-time interface checks.
var _ mono.Module = (*OfferModule)(nil)
var _ mono.ServiceProviderModule = (*OfferModule)(nil)
var _ mono.HealthCheckableModule = (*OfferModule)(nil)

// NewModule creates a new OfferModule.
func NewModule() *OfferModule {
	return &OfferModule{cfg: storage.LoadConfig()}
}

// Name returns the module name.
func (m *OfferModule) Name() string {
	return "offer"
}

// Start connects the module to the document store and schedules the expiry
// sweep.
func (m *OfferModule) Start(ctx context.Context) error {
	client, err := storage.Connect(ctx, m.cfg)
	if err != nil {
		return err
	}
	m.client = client
	m.repo = NewRepository(client.Database(m.cfg.Database))

	m.cron = cron.New()
	if err := m.cron.AddFunc("@midnight", m.expireOutdated); err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}
	m.cron.Start()

	// Catch up on offers that expired while the process was down.
	m.expireOutdated()

	log.Printf("[offer] Module started (database: %s)", m.cfg.Database)
	return nil
}

// Stop halts the sweep and disconnects from the document store.
func (m *OfferModule) Stop(ctx context.Context) error {
	if m.cron != nil {
		m.cron.Stop()
	}
	if m.client == nil {
		return nil
	}
	log.Println("[offer] Module stopped")
	return m.client.Disconnect(ctx)
}

// Health returns the health status of the module.
func (m *OfferModule) Health(ctx context.Context) mono.HealthStatus {
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
			"collection": Offer{}.CollectionName(),
			"sweep":      "@midnight",
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *OfferModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createOffer,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getOffer,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listOffers,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateOffer,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteOffer,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[offer] Registered services: services.offer.{create,get,list,update,delete}")
	return nil
}
