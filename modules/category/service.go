package category

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"go.mongodb.org/mongo-driver/bson"
)

// createCategory handles the category.create service request.
func (m *CategoryModule) createCategory(ctx context.Context, req CreateCategoryRequest, _ *mono.Msg) (Category, error) {
	if req.Name == "" {
		return Category{}, fmt.Errorf("name is required")
	}

	c := Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := m.repo.Create(ctx, &c); err != nil {
		return Category{}, err
	}
	return c, nil
}

// getCategory handles the category.get service request.
func (m *CategoryModule) getCategory(ctx context.Context, req GetCategoryRequest, _ *mono.Msg) (Category, error) {
	c, err := m.repo.FindByID(ctx, req.ID)
	if err != nil {
		return Category{}, err
	}
	return *c, nil
}

// listCategories handles the category.list service request.
func (m *CategoryModule) listCategories(ctx context.Context, _ ListCategoriesRequest, _ *mono.Msg) (ListCategoriesResponse, error) {
	categories, err := m.repo.FindAll(ctx)
	if err != nil {
		return ListCategoriesResponse{}, err
	}
	return ListCategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	}, nil
}

// updateCategory handles the category.update service request. Omitted fields
// are left untouched.
func (m *CategoryModule) updateCategory(ctx context.Context, req UpdateCategoryRequest, _ *mono.Msg) (Category, error) {
	fields := bson.M{}
	if req.Name != nil {
		if *req.Name == "" {
			return Category{}, fmt.Errorf("name is required")
		}
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ProductsCount != nil {
		if *req.ProductsCount < 0 {
			return Category{}, fmt.Errorf("productsCount must be zero or greater")
		}
		fields["productsCount"] = *req.ProductsCount
	}

	c, err := m.repo.Update(ctx, req.ID, fields)
	if err != nil {
		return Category{}, err
	}
	return *c, nil
}

// deleteCategory handles the category.delete service request.
func (m *CategoryModule) deleteCategory(ctx context.Context, req DeleteCategoryRequest, _ *mono.Msg) (DeleteCategoryResponse, error) {
	if err := m.repo.Delete(ctx, req.ID); err != nil {
		return DeleteCategoryResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteCategoryResponse{Deleted: true, ID: req.ID}, nil
}
