package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		msg  string
		want int
	}{
		{"category not found", fiber.StatusNotFound},
		{"user not found", fiber.StatusNotFound},
		{"name is required", fiber.StatusBadRequest},
		{"status must be pending, processing, shipped, delivered or cancelled", fiber.StatusBadRequest},
		{"invalid offer id", fiber.StatusBadRequest},
		{"username already exists", fiber.StatusBadRequest},
		{"incorrect password", fiber.StatusBadRequest},
		{"request failed: user not found", fiber.StatusNotFound},
		{"connection reset by peer", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := statusForError(tt.msg); got != tt.want {
				t.Errorf("statusForError(%q) = %d, want %d", tt.msg, got, tt.want)
			}
		})
	}
}
