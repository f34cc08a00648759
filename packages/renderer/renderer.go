package renderer

import (
	"gocafe/configs/csrfconfig"
	"gocafe/packages/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Render wraps c.Render with the ambient view state every page needs:
// the CSRF token, the resolved current user, and pending flash messages.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status int) error {
	if data == nil {
		data = fiber.Map{}
	}

	if token, ok := c.Locals(csrfconfig.ContextKey).(string); ok {
		data["CSRFToken"] = token
	}
	if user := c.Locals("currentUser"); user != nil {
		data["CurrentUser"] = user
	}

	flash := flashmessages.GetFlashMessages(c)
	if msg, ok := flash[flashmessages.FlashSuccessKey]; ok {
		data["FlashSuccess"] = msg
	}
	if msg, ok := flash[flashmessages.FlashErrorKey]; ok {
		data["FlashError"] = msg
	}

	return c.Status(status).Render(view, data, layout)
}
