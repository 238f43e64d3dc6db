package system

import (
	"go-marketplace/internal/database"
	"go-marketplace/internal/store"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	store   *store.Store
	mongodb *database.MongodbDB
}

func NewHealthApi(s *store.Store, mongodb *database.MongodbDB) *HealthApi {
	return &HealthApi{store: s, mongodb: mongodb}
}

// Setup registers health check route
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", h.HealthCheck)
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Check if the server is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func (h *HealthApi) HealthCheck(c *fiber.Ctx) error {
	var extensions int
	_ = h.store.View(func(tx *store.Tx) error {
		extensions = len(tx.Extensions())
		return nil
	})
	return c.JSON(fiber.Map{
		"status":     "ok",
		"extensions": extensions,
		"mongodb":    h.mongodb.Enabled(),
	})
}
