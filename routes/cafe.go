package routes

import (
	"gocafe/configs/envconfig"
	handlers "gocafe/handlers/cafe"
	"gocafe/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerCafeRoutes(app *fiber.App) {
	cafeHandler := handlers.NewCafeHandler()

	app.Get("/cafes", cafeHandler.List)
	app.Get("/cafes/:id<int>", cafeHandler.Detail)

	// Add/edit require a login unless the deployment opts into the
	// public-contribution model.
	contributionGuard := middlewares.AuthMiddleware
	if envconfig.Bool("OPEN_CONTRIBUTIONS", false) {
		contributionGuard = func(c *fiber.Ctx) error { return c.Next() }
	}

	app.Get("/cafes/add", contributionGuard, cafeHandler.ShowAdd)
	app.Post("/cafes/add", contributionGuard, cafeHandler.Add)
	app.Get("/cafes/:id<int>/edit", contributionGuard, cafeHandler.ShowEdit)
	app.Post("/cafes/:id<int>/edit", contributionGuard, cafeHandler.Edit)

	app.Post("/cafes/:id<int>/like", middlewares.AuthMiddleware, cafeHandler.Like)
	app.Post("/cafes/:id<int>/unlike", middlewares.AuthMiddleware, cafeHandler.Unlike)
}
