package order

// CreateOrderRequest is the request for creating an order. Every field is
// optional; status defaults to pending and date to the creation time.
type CreateOrderRequest struct {
	Customer Customer `json:"customer"`
	Items    []Item   `json:"items"`
	Payment  Payment  `json:"payment"`
	Tracking Tracking `json:"tracking"`
	Status   string   `json:"status"`
}

// GetOrderRequest is the request for fetching a single order.
type GetOrderRequest struct {
	ID string `json:"id"`
}

// ListOrdersRequest is the request for listing orders.
type ListOrdersRequest struct{}

// ListOrdersResponse contains all orders, newest first.
type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

// UpdateOrderRequest is the request for updating an order. Nested documents
// are replaced as a whole when present; omitted ones are left untouched.
type UpdateOrderRequest struct {
	ID       string    `json:"id"`
	Customer *Customer `json:"customer,omitempty"`
	Items    *[]Item   `json:"items,omitempty"`
	Payment  *Payment  `json:"payment,omitempty"`
	Tracking *Tracking `json:"tracking,omitempty"`
	Status   *string   `json:"status,omitempty"`
}

// DeleteOrderRequest is the request for deleting an order.
type DeleteOrderRequest struct {
	ID string `json:"id"`
}

// DeleteOrderResponse confirms a deletion.
type DeleteOrderResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
