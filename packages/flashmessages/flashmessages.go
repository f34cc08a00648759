package flashmessages

import (
	"gocafe/configs/logconfig"
	"gocafe/configs/sessionconfig"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// SetFlashMessage stores a one-shot notice in the session; it survives
// exactly one redirect and is consumed by the next render.
func SetFlashMessage(c *fiber.Ctx, key, message string) {
	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		logconfig.Log.Warn("Flash message could not be stored", zap.Error(err))
		return
	}
	sess.Set(key, message)
	if err := sess.Save(); err != nil {
		logconfig.Log.Warn("Flash message could not be saved", zap.Error(err))
	}
}

// GetFlashMessages pops all pending notices for the current session.
func GetFlashMessages(c *fiber.Ctx) map[string]string {
	messages := make(map[string]string)

	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return messages
	}

	for _, key := range []string{FlashSuccessKey, FlashErrorKey} {
		if v, ok := sess.Get(key).(string); ok && v != "" {
			messages[key] = v
			sess.Delete(key)
		}
	}

	if len(messages) > 0 {
		_ = sess.Save()
	}

	return messages
}
