package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"go.mongodb.org/mongo-driver/bson"
)

// createOrder handles the order.create service request.
func (m *OrderModule) createOrder(ctx context.Context, req CreateOrderRequest, _ *mono.Msg) (Order, error) {
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !validStatus(status) {
		return Order{}, fmt.Errorf("status must be pending, processing, shipped, delivered or cancelled")
	}

	items := req.Items
	if items == nil {
		items = []Item{}
	}

	payment := req.Payment
	fillTotals(&payment, items)

	o := Order{
		Customer: req.Customer,
		Items:    items,
		Payment:  payment,
		Tracking: req.Tracking,
		Status:   status,
		Date:     time.Now().UTC(),
	}
	if err := m.repo.Create(ctx, &o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// getOrder handles the order.get service request.
func (m *OrderModule) getOrder(ctx context.Context, req GetOrderRequest, _ *mono.Msg) (Order, error) {
	o, err := m.repo.FindByID(ctx, req.ID)
	if err != nil {
		return Order{}, err
	}
	return *o, nil
}

// listOrders handles the order.list service request.
func (m *OrderModule) listOrders(ctx context.Context, _ ListOrdersRequest, _ *mono.Msg) (ListOrdersResponse, error) {
	orders, err := m.repo.FindAll(ctx)
	if err != nil {
		return ListOrdersResponse{}, err
	}
	return ListOrdersResponse{
		Orders: orders,
		Total:  len(orders),
	}, nil
}

// updateOrder handles the order.update service request. Nested documents are
// replaced wholesale when supplied.
func (m *OrderModule) updateOrder(ctx context.Context, req UpdateOrderRequest, _ *mono.Msg) (Order, error) {
	fields := bson.M{}
	if req.Customer != nil {
		fields["customer"] = *req.Customer
	}
	if req.Items != nil {
		fields["items"] = *req.Items
	}
	if req.Payment != nil {
		fields["payment"] = *req.Payment
	}
	if req.Tracking != nil {
		fields["tracking"] = *req.Tracking
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return Order{}, fmt.Errorf("status must be pending, processing, shipped, delivered or cancelled")
		}
		fields["status"] = *req.Status
	}

	o, err := m.repo.Update(ctx, req.ID, fields)
	if err != nil {
		return Order{}, err
	}
	return *o, nil
}

// deleteOrder handles the order.delete service request.
func (m *OrderModule) deleteOrder(ctx context.Context, req DeleteOrderRequest, _ *mono.Msg) (DeleteOrderResponse, error) {
	if err := m.repo.Delete(ctx, req.ID); err != nil {
		return DeleteOrderResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteOrderResponse{Deleted: true, ID: req.ID}, nil
}
