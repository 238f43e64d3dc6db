package developer

import (
	"go-marketplace/internal/config"
	"go-marketplace/internal/middleware"
	"go-marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DeveloperApi struct {
	Controller *DeveloperController
	Config     *config.Config
}

func NewDeveloperApi(controller *DeveloperController, cfg *config.Config) *DeveloperApi {
	return &DeveloperApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *DeveloperApi) Setup(app *fiber.App) {
	group := app.Group("/api/developer/extensions",
		middleware.AuthMiddleware(a.Config.SkipAuth),
		middleware.RequireRole(models.RoleDeveloper, models.RoleAdmin),
	)

	group.Get("/", a.Controller.ListExtensions)
	group.Post("/", a.Controller.Publish)
	group.Delete("/:id", a.Controller.Delete)
	group.Get("/:id/analytics", a.Controller.GetAnalytics)
	group.Get("/:id/analytics/export", a.Controller.ExportAnalytics)
}
