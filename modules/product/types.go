package product

// CreateProductRequest is the request for creating a product. Price and
// Stock are pointers so that an explicit zero passes the required-field
// check.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
}

// GetProductRequest is the request for fetching a single product.
type GetProductRequest struct {
	ID string `json:"id"`
}

// ListProductsRequest is the request for listing products.
type ListProductsRequest struct{}

// ListProductsResponse contains all products, newest first.
type ListProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// UpdateProductRequest is the request for updating a product. Only fields
// present in the payload are written.
type UpdateProductRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description *string  `json:"description,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
}

// DeleteProductRequest is the request for deleting a product.
type DeleteProductRequest struct {
	ID string `json:"id"`
}

// DeleteProductResponse confirms a deletion.
type DeleteProductResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
