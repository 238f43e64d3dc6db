package installation

import (
	"go-marketplace/internal/config"
	"go-marketplace/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InstallationApi struct {
	Controller *InstallationController
	Config     *config.Config
}

func NewInstallationApi(controller *InstallationController, cfg *config.Config) *InstallationApi {
	return &InstallationApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *InstallationApi) Setup(app *fiber.App) {
	app.Post("/api/extensions/:id/install", middleware.AuthMiddleware(a.Config.SkipAuth), a.Controller.Install)

	group := app.Group("/api/installed", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListInstalled)
	group.Delete("/:id", a.Controller.Uninstall)
	group.Patch("/:id/configuration", a.Controller.UpdateConfiguration)
	group.Patch("/:id/enabled", a.Controller.SetEnabled)
}
