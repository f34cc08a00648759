package middlewares

import (
	"gocafe/packages/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware lets only authenticated requests through.
func AuthMiddleware(c *fiber.Ctx) error {
	if CurrentUser(c) == nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
			"You are not logged in.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware keeps authenticated users off the login and signup
// forms.
func GuestMiddleware(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/cafes", fiber.StatusSeeOther)
	}
	return c.Next()
}
