package routes

import (
	handlers "gocafe/handlers/auth"
	"gocafe/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()

	app.Get("/signup", middlewares.GuestMiddleware, authHandler.ShowSignup)
	app.Post("/signup", middlewares.GuestMiddleware, authHandler.Signup)

	app.Get("/login", middlewares.GuestMiddleware, authHandler.ShowLogin)
	app.Post("/login", middlewares.GuestMiddleware, authHandler.Login)

	app.Post("/logout", authHandler.Logout)
}
