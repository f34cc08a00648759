package routes

import (
	"gocafe/middlewares"
	"gocafe/packages/renderer"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	app.Use(middlewares.SessionMiddleware())

	registerWebsiteRoutes(app)
	registerCafeRoutes(app)
	registerAuthRoutes(app)
	registerUserRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return renderer.Render(c, "errors/404", "layouts/main", fiber.Map{
			"Title": "Not Found",
		}, fiber.StatusNotFound)
	})
}
