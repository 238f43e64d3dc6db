package system

import (
	"go-marketplace/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DebugController struct{}

func NewDebugController() *DebugController {
	return &DebugController{}
}

// GetCurrentUser godoc
// @Summary      Get current user info
// @Description  The identity resolved from the JWT or the dev-mode headers
// @Tags         debug
// @Produce      json
// @Success      200  {object}  models.CurrentUser
// @Router       /api/debug/me [get]
func (c *DebugController) GetCurrentUser(ctx *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	return ctx.JSON(user)
}
