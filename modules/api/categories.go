package api

import (
	"github.com/example/storeadmin/modules/category"
	"github.com/gofiber/fiber/v2"
)

func (m *APIModule) createCategory(c *fiber.Ctx) error {
	var req category.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp category.Category
	if err := call(c.UserContext(), m.containers["category"], "create", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (m *APIModule) listCategories(c *fiber.Ctx) error {
	req := category.ListCategoriesRequest{}
	var resp category.ListCategoriesResponse
	if err := call(c.UserContext(), m.containers["category"], "list", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp.Categories)
}

func (m *APIModule) getCategory(c *fiber.Ctx) error {
	req := category.GetCategoryRequest{ID: c.Params("id")}
	var resp category.Category
	if err := call(c.UserContext(), m.containers["category"], "get", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) updateCategory(c *fiber.Ctx) error {
	var req category.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.ID = c.Params("id")

	var resp category.Category
	if err := call(c.UserContext(), m.containers["category"], "update", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) deleteCategory(c *fiber.Ctx) error {
	req := category.DeleteCategoryRequest{ID: c.Params("id")}
	var resp category.DeleteCategoryResponse
	if err := call(c.UserContext(), m.containers["category"], "delete", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Category deleted successfully"})
}
