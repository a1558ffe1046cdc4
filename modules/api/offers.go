package api

import (
	"github.com/example/storeadmin/modules/offer"
	"github.com/gofiber/fiber/v2"
)

func (m *APIModule) createOffer(c *fiber.Ctx) error {
	var req offer.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var resp offer.Offer
	if err := call(c.UserContext(), m.containers["offer"], "create", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (m *APIModule) listOffers(c *fiber.Ctx) error {
	req := offer.ListOffersRequest{}
	var resp offer.ListOffersResponse
	if err := call(c.UserContext(), m.containers["offer"], "list", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp.Offers)
}

func (m *APIModule) getOffer(c *fiber.Ctx) error {
	req := offer.GetOfferRequest{ID: c.Params("id")}
	var resp offer.Offer
	if err := call(c.UserContext(), m.containers["offer"], "get", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) updateOffer(c *fiber.Ctx) error {
	var req offer.UpdateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.ID = c.Params("id")

	var resp offer.Offer
	if err := call(c.UserContext(), m.containers["offer"], "update", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (m *APIModule) deleteOffer(c *fiber.Ctx) error {
	req := offer.DeleteOfferRequest{ID: c.Params("id")}
	var resp offer.DeleteOfferResponse
	if err := call(c.UserContext(), m.containers["offer"], "delete", &req, &resp); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Offer deleted successfully"})
}
