package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/storeadmin/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupRepo(t *testing.T) (*Repository, func()) {
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
	_ = db.Collection(Product{}.CollectionName()).Drop(ctx)

	cleanup := func() {
		cctx := context.Background()
		_ = db.Collection(Product{}.CollectionName()).Drop(cctx)
		_ = client.Disconnect(cctx)
	}

	return NewRepository(db), cleanup
}

func TestRepository_RoundTrip(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	p := Product{
		Name:     "Flour",
		Category: "Baking",
		Price:    0, // zero price and stock are legal
		Stock:    0,
		Unit:     "kg",
	}
	if err := repo.Create(ctx, &p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, p.ID.Hex())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Name != p.Name || found.Category != p.Category || found.Unit != p.Unit {
		t.Errorf("FindByID() = %+v, want fields of %+v", found, p)
	}
	if found.Price != 0 || found.Stock != 0 {
		t.Errorf("FindByID() price/stock = %v/%v, want zeros preserved", found.Price, found.Stock)
	}
}

func TestRepository_IDValidationBeforeQuery(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "12345"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("FindByID(malformed) error = %v, want ErrInvalidID", err)
	}
	if _, err := repo.Update(ctx, "12345", bson.M{"name": "x"}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Update(malformed) error = %v, want ErrInvalidID", err)
	}
	if err := repo.Delete(ctx, "12345"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Delete(malformed) error = %v, want ErrInvalidID", err)
	}

	if _, err := repo.FindByID(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(absent) error = %v, want ErrNotFound", err)
	}
}

func TestRepository_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	p := Product{Name: "Milk", Category: "Dairy", Price: 2.5, Stock: 10, Unit: "l"}
	if err := repo.Create(ctx, &p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := repo.Update(ctx, p.ID.Hex(), bson.M{"stock": 7})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Stock != 7 {
		t.Errorf("updated.Stock = %d, want 7", updated.Stock)
	}
	if updated.Name != "Milk" || updated.Price != 2.5 || updated.Unit != "l" {
		t.Errorf("Update() touched unrelated fields: %+v", updated)
	}
}
