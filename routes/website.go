package routes

import (
	handlers "gocafe/handlers/website"

	"github.com/gofiber/fiber/v2"
)

func registerWebsiteRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()

	app.Get("/", homeHandler.Homepage)
}
