package product

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"go.mongodb.org/mongo-driver/bson"
)

// createProduct handles the product.create service request.
func (m *ProductModule) createProduct(ctx context.Context, req CreateProductRequest, _ *mono.Msg) (Product, error) {
	if req.Name == "" {
		return Product{}, fmt.Errorf("name is required")
	}
	if req.Category == "" {
		return Product{}, fmt.Errorf("category is required")
	}
	if req.Price == nil {
		return Product{}, fmt.Errorf("price is required")
	}
	if *req.Price < 0 {
		return Product{}, fmt.Errorf("price must be zero or greater")
	}
	if req.Stock == nil {
		return Product{}, fmt.Errorf("stock is required")
	}
	if *req.Stock < 0 {
		return Product{}, fmt.Errorf("stock must be zero or greater")
	}
	if req.Unit == "" {
		return Product{}, fmt.Errorf("unit is required")
	}

	p := Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Description: req.Description,
		Unit:        req.Unit,
	}
	if err := m.repo.Create(ctx, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// getProduct handles the product.get service request.
func (m *ProductModule) getProduct(ctx context.Context, req GetProductRequest, _ *mono.Msg) (Product, error) {
	p, err := m.repo.FindByID(ctx, req.ID)
	if err != nil {
		return Product{}, err
	}
	return *p, nil
}

// listProducts handles the product.list service request.
func (m *ProductModule) listProducts(ctx context.Context, _ ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products, err := m.repo.FindAll(ctx)
	if err != nil {
		return ListProductsResponse{}, err
	}
	return ListProductsResponse{
		Products: products,
		Total:    len(products),
	}, nil
}

// updateProduct handles the product.update service request.
func (m *ProductModule) updateProduct(ctx context.Context, req UpdateProductRequest, _ *mono.Msg) (Product, error) {
	fields := bson.M{}
	if req.Name != nil {
		if *req.Name == "" {
			return Product{}, fmt.Errorf("name is required")
		}
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		if *req.Category == "" {
			return Product{}, fmt.Errorf("category is required")
		}
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return Product{}, fmt.Errorf("price must be zero or greater")
		}
		fields["price"] = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return Product{}, fmt.Errorf("stock must be zero or greater")
		}
		fields["stock"] = *req.Stock
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Unit != nil {
		if *req.Unit == "" {
			return Product{}, fmt.Errorf("unit is required")
		}
		fields["unit"] = *req.Unit
	}

	p, err := m.repo.Update(ctx, req.ID, fields)
	if err != nil {
		return Product{}, err
	}
	return *p, nil
}

// deleteProduct handles the product.delete service request.
func (m *ProductModule) deleteProduct(ctx context.Context, req DeleteProductRequest, _ *mono.Msg) (DeleteProductResponse, error) {
	if err := m.repo.Delete(ctx, req.ID); err != nil {
		return DeleteProductResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteProductResponse{Deleted: true, ID: req.ID}, nil
}
