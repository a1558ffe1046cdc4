package offer

import (
	"context"
	"testing"
	"time"

	"github.com/example/storeadmin/storage"
)

func setupModule(t *testing.T) (*OfferModule, func()) {
	t.Helper()

	cfg := storage.LoadConfig()
	cfg.Database = "storeadmin_test"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := storage.Connect(ctx, cfg)
	if err != nil {
		t.Skipf("document store not available at %s: %v", cfg.URI, err)
	}

	db := client.Database(cfg.Database)
	_ = db.Collection(Offer{}.CollectionName()).Drop(ctx)

	m := &OfferModule{
		client: client,
		repo:   NewRepository(db),
		cfg:    cfg,
	}

	cleanup := func() {
		cctx := context.Background()
		_ = db.Collection(Offer{}.CollectionName()).Drop(cctx)
		_ = client.Disconnect(cctx)
	}

	return m, cleanup
}

func TestCreateOfferDefaultsStatus(t *testing.T) {
	m, cleanup := setupModule(t)
	defer cleanup()
	twenty := 20.0

	created, err := m.createOffer(context.Background(), CreateOfferRequest{
		Title:         "Summer Sale",
		DiscountType:  DiscountPercentage,
		DiscountValue: &twenty,
		StartDate:     "2024-06-01",
		EndDate:       "2024-06-30",
	}, nil)
	if err != nil {
		t.Fatalf("createOffer() error = %v", err)
	}

	if created.Status != StatusInactive {
		t.Errorf("created.Status = %q, want %q by default", created.Status, StatusInactive)
	}
	if created.DiscountValue != 20 {
		t.Errorf("created.DiscountValue = %v, want 20", created.DiscountValue)
	}
	if created.Products == nil {
		t.Error("created.Products = nil, want empty slice")
	}
}

func TestMarkExpired(t *testing.T) {
	m, cleanup := setupModule(t)
	defer cleanup()
	ctx := context.Background()
	ten := 10.0

	past, err := m.createOffer(ctx, CreateOfferRequest{
		Title:         "Last Year",
		DiscountType:  DiscountFixed,
		DiscountValue: &ten,
		StartDate:     "2020-01-01",
		EndDate:       "2020-01-31",
		Status:        StatusActive,
	}, nil)
	if err != nil {
		t.Fatalf("createOffer() error = %v", err)
	}

	current, err := m.createOffer(ctx, CreateOfferRequest{
		Title:         "Evergreen",
		DiscountType:  DiscountFixed,
		DiscountValue: &ten,
		StartDate:     "2020-01-01",
		EndDate:       "2999-12-31",
		Status:        StatusActive,
	}, nil)
	if err != nil {
		t.Fatalf("createOffer() error = %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	n, err := m.repo.MarkExpired(ctx, today)
	if err != nil {
		t.Fatalf("MarkExpired() error = %v", err)
	}
	if n != 1 {
		t.Errorf("MarkExpired() modified %d offers, want 1", n)
	}

	got, err := m.repo.FindByID(ctx, past.ID.Hex())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Status != StatusExpired {
		t.Errorf("past offer status = %q, want %q", got.Status, StatusExpired)
	}

	got, err = m.repo.FindByID(ctx, current.ID.Hex())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Status != StatusActive {
		t.Errorf("current offer status = %q, want %q", got.Status, StatusActive)
	}
}
