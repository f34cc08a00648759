package middlewares

import (
	"gocafe/configs/logconfig"
	"gocafe/configs/sessionconfig"
	"gocafe/models"
	"gocafe/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionMiddleware resolves the session's user id to a fresh User row on
// every request and exposes it through Locals for that request only.
// A stale id (user deleted since login) silently degrades to anonymous.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionconfig.SessionStart(c)
		if err != nil {
			logconfig.Log.Warn("Session could not be started", zap.Error(err))
			return c.Next()
		}

		userID, ok := sessionUserID(sess.Get(sessionconfig.SessionUserKey))
		if !ok {
			return c.Next()
		}

		user, err := repositories.NewUserRepository().FindUserByID(c.UserContext(), userID)
		if err != nil {
			sess.Delete(sessionconfig.SessionUserKey)
			_ = sess.Save()
			return c.Next()
		}

		c.Locals("userID", user.ID)
		c.Locals("currentUser", user)
		return c.Next()
	}
}

// CurrentUser returns the resolved user for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("currentUser").(*models.User); ok {
		return user
	}
	return nil
}

// sessionUserID tolerates the numeric types session codecs round-trip
// through.
func sessionUserID(v interface{}) (uint, bool) {
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	case float64:
		return uint(id), true
	default:
		return 0, false
	}
}
