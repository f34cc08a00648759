package routes

import (
	handlers "gocafe/handlers/user"
	"gocafe/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerUserRoutes(app *fiber.App) {
	profileHandler := handlers.NewProfileHandler()

	app.Get("/profile", middlewares.AuthMiddleware, profileHandler.Show)
	app.Get("/profile/edit", middlewares.AuthMiddleware, profileHandler.ShowEdit)
	app.Post("/profile/edit", middlewares.AuthMiddleware, profileHandler.Edit)
}
