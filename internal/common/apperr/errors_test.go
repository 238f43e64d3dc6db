package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusOK},
		{fmt.Errorf("extension ext-1: %w", ErrNotFound), fiber.StatusNotFound},
		{fmt.Errorf("wrapped: %w", ErrAlreadyExists), fiber.StatusConflict},
		{ErrValidationFailed, fiber.StatusBadRequest},
		{fiber.NewError(fiber.StatusForbidden, "nope"), fiber.StatusForbidden},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
