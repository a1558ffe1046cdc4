package api

import (
	"github.com/example/storeadmin/modules/unit"
	"github.com/gofiber/fiber/v2"
)

func (m *APIModule) createUnit(c *fiber.Ctx) error {
	var req unit.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp unit.Unit
	if err := call(c.UserContext(), m.containers["unit"], "create", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (m *APIModule) listUnits(c *fiber.Ctx) error {
	req := unit.ListUnitsRequest{}
	var resp unit.ListUnitsResponse
	if err := call(c.UserContext(), m.containers["unit"], "list", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp.Units)
}

func (m *APIModule) getUnit(c *fiber.Ctx) error {
	req := unit.GetUnitRequest{ID: c.Params("id")}
	var resp unit.Unit
	if err := call(c.UserContext(), m.containers["unit"], "get", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) updateUnit(c *fiber.Ctx) error {
	var req unit.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.ID = c.Params("id")

	var resp unit.Unit
	if err := call(c.UserContext(), m.containers["unit"], "update", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) deleteUnit(c *fiber.Ctx) error {
	req := unit.DeleteUnitRequest{ID: c.Params("id")}
	var resp unit.DeleteUnitResponse
	if err := call(c.UserContext(), m.containers["unit"], "delete", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Unit deleted successfully"})
}
