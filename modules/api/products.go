package api

import (
	"github.com/example/storeadmin/modules/product"
	"github.com/gofiber/fiber/v2"
)

func (m *APIModule) createProduct(c *fiber.Ctx) error {
	var req product.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp product.Product
	if err := call(c.UserContext(), m.containers["product"], "create", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (m *APIModule) listProducts(c *fiber.Ctx) error {
	req := product.ListProductsRequest{}
	var resp product.ListProductsResponse
	if err := call(c.UserContext(), m.containers["product"], "list", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp.Products)
}

func (m *APIModule) getProduct(c *fiber.Ctx) error {
	req := product.GetProductRequest{ID: c.Params("id")}
	var resp product.Product
	if err := call(c.UserContext(), m.containers["product"], "get", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) updateProduct(c *fiber.Ctx) error {
	var req product.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.ID = c.Params("id")

	var resp product.Product
	if err := call(c.UserContext(), m.containers["product"], "update", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) deleteProduct(c *fiber.Ctx) error {
	req := product.DeleteProductRequest{ID: c.Params("id")}
	var resp product.DeleteProductResponse
	if err := call(c.UserContext(), m.containers["product"], "delete", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Product deleted successfully"})
}
