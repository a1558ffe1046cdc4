package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps a service error message to an HTTP status code.
// Service errors cross the container boundary as strings, so matching is
// done on known message fragments.
func statusForError(msg string) int {
	switch {
	case strings.Contains(msg, "not found"):
		return fiber.StatusNotFound
	case strings.Contains(msg, "is required"),
		strings.Contains(msg, "must be"),
		strings.Contains(msg, "invalid"),
		strings.Contains(msg, "already exists"),
		strings.Contains(msg, "incorrect password"):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the JSON error body for a failed service call.
// Internal errors are logged and replaced with a generic message.
func respondError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	status := statusForError(msg)
	if status == fiber.StatusInternalServerError {
		log.Printf("[api] Internal error: %v", err)
		msg = "an internal error occurred"
	}
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// badRequest writes a 400 response with the given message.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}
