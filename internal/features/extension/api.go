package extension

import (
	"go-marketplace/internal/config"
	"go-marketplace/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExtensionApi struct {
	Controller *ExtensionController
	Config     *config.Config
}

func NewExtensionApi(controller *ExtensionController, cfg *config.Config) *ExtensionApi {
	return &ExtensionApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *ExtensionApi) Setup(app *fiber.App) {
	app.Get("/api/categories", middleware.AuthMiddleware(a.Config.SkipAuth), a.Controller.ListCategories)

	group := app.Group("/api/extensions")

	group.Use(middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.Search)
	group.Get("/:id", a.Controller.GetExtension)
	group.Get("/:id/reviews", a.Controller.ListReviews)
	group.Post("/:id/reviews", a.Controller.SubmitReview)
}
