package csrfconfig

import (
	"time"

	"gocafe/configs/logconfig"
	"gocafe/configs/sessionconfig"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"go.uber.org/zap"
)

// ContextKey is where the per-session token lives; templates read it via
// the csrf_token view variable set by the middleware below.
const ContextKey = "csrf_token"

// SetupCSRF protects every POST with a token carried in the rendered
// form's csrf_token field.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "gocafe_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     ContextKey,
		Session:        sessionconfig.GetStore(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logconfig.Log.Warn("CSRF token rejected",
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Error(err))
			return c.Status(fiber.StatusForbidden).
				Render("errors/403", fiber.Map{"Title": "Forbidden"}, "layouts/main")
		},
	})
}
