// Package apperr defines the error kinds surfaced by marketplace operations.
// Services wrap these with %w; callers match them with errors.Is.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotFound: the referenced entity does not exist or does not belong
	// to the caller.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists: a uniqueness rule would be violated (duplicate install).
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidationFailed: missing or out-of-range input.
	ErrValidationFailed = errors.New("validation failed")
)

// HTTPStatus maps an error to the response status the API returns for it.
func HTTPStatus(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, ErrValidationFailed):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler is the fiber.Config ErrorHandler: it writes {"error": msg}
// with the status chosen by HTTPStatus.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return c.Status(HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
