package category

// CreateCategoryRequest is the request for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetCategoryRequest is the request for fetching a single category.
type GetCategoryRequest struct {
	ID string `json:"id"`
}

// ListCategoriesRequest is the request for listing categories.
type ListCategoriesRequest struct{}

// ListCategoriesResponse contains all categories, newest first.
type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
}

// UpdateCategoryRequest is the request for updating a category. Only fields
// present in the payload are written.
type UpdateCategoryRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	ProductsCount *int    `json:"productsCount,omitempty"`
}

// DeleteCategoryRequest is the request for deleting a category.
type DeleteCategoryRequest struct {
	ID string `json:"id"`
}

// DeleteCategoryResponse confirms a deletion.
type DeleteCategoryResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
