package api

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/example/storeadmin/modules/order"
	"github.com/gofiber/fiber/v2"
)

func (m *APIModule) createOrder(c *fiber.Ctx) error {
	var req order.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp order.Order
	if err := call(c.UserContext(), m.containers["order"], "create", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (m *APIModule) listOrders(c *fiber.Ctx) error {
	req := order.ListOrdersRequest{}
	var resp order.ListOrdersResponse
	if err := call(c.UserContext(), m.containers["order"], "list", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp.Orders)
}

func (m *APIModule) getOrder(c *fiber.Ctx) error {
	req := order.GetOrderRequest{ID: c.Params("id")}
	var resp order.Order
	if err := call(c.UserContext(), m.containers["order"], "get", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) updateOrder(c *fiber.Ctx) error {
	var req order.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.ID = c.Params("id")

	var resp order.Order
	if err := call(c.UserContext(), m.containers["order"], "update", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) deleteOrder(c *fiber.Ctx) error {
	req := order.DeleteOrderRequest{ID: c.Params("id")}
	var resp order.DeleteOrderResponse
	if err := call(c.UserContext(), m.containers["order"], "delete", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Order deleted successfully"})
}

// exportOrders streams all orders as a CSV download.
func (m *APIModule) exportOrders(c *fiber.Ctx) error {
	req := order.ListOrdersRequest{}
	var resp order.ListOrdersResponse
	if err := call(c.UserContext(), m.containers["order"], "list", &req, &resp); err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Order ID", "Customer Name", "Date", "Total", "Status"})
	for _, o := range resp.Orders {
		_ = w.Write([]string{
			o.ID.Hex(),
			o.Customer.Name,
			o.Date.Format(time.RFC3339),
			strconv.FormatFloat(o.Payment.Total, 'f', 2, 64),
			o.Status,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Send(buf.Bytes())
}
