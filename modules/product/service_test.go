package product

import (
	"context"
	"strings"
	"testing"
)

func TestCreateProductValidation(t *testing.T) {
	m := &ProductModule{}
	price := 2.5
	stock := 10
	negPrice := -1.0

	valid := func() CreateProductRequest {
		return CreateProductRequest{
			Name:     "Milk",
			Category: "Dairy",
			Price:    &price,
			Stock:    &stock,
			Unit:     "l",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateProductRequest)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(r *CreateProductRequest) { r.Name = "" },
			wantMsg: "name is required",
		},
		{
			name:    "missing category",
			mutate:  func(r *CreateProductRequest) { r.Category = "" },
			wantMsg: "category is required",
		},
		{
			name:    "missing price",
			mutate:  func(r *CreateProductRequest) { r.Price = nil },
			wantMsg: "price is required",
		},
		{
			name:    "negative price",
			mutate:  func(r *CreateProductRequest) { r.Price = &negPrice },
			wantMsg: "price must be zero or greater",
		},
		{
			name:    "missing stock",
			mutate:  func(r *CreateProductRequest) { r.Stock = nil },
			wantMsg: "stock is required",
		},
		{
			name:    "missing unit",
			mutate:  func(r *CreateProductRequest) { r.Unit = "" },
			wantMsg: "unit is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := m.createProduct(context.Background(), req, nil)
			if err == nil {
				t.Fatal("createProduct() want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("createProduct() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestUpdateProductValidation(t *testing.T) {
	m := &ProductModule{}
	negStock := -5

	_, err := m.updateProduct(context.Background(), UpdateProductRequest{ID: "ignored", Stock: &negStock}, nil)
	if err == nil {
		t.Fatal("updateProduct() with negative stock, want error")
	}
	if !strings.Contains(err.Error(), "stock must be zero or greater") {
		t.Errorf("updateProduct() error = %v, want stock message", err)
	}
}
