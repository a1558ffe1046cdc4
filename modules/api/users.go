package api

import (
	"github.com/example/storeadmin/modules/auth"
	"github.com/gofiber/fiber/v2"
)

func (m *APIModule) register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp auth.RegisterResponse
	if err := call(c.UserContext(), m.containers["auth"], "register", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (m *APIModule) login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp auth.LoginResponse
	if err := call(c.UserContext(), m.containers["auth"], "login", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) listUsers(c *fiber.Ctx) error {
	req := auth.ListUsersRequest{}
	var resp auth.ListUsersResponse
	if err := call(c.UserContext(), m.containers["auth"], "list-users", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp.Users)
}
