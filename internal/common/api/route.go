package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's API type; main collects them into
// the fx "routes" group and calls Setup on each.
type Route interface {
	Setup(app *fiber.App)
}
