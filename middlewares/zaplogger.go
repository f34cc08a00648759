package middlewares

import (
	"strings"
	"time"

	"gocafe/configs/logconfig"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ZapLogger logs one line per request, levelled by response status.
func ZapLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if shouldSkipLog(path) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.IP()),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		switch {
		case status >= 500:
			logconfig.Log.Error("Request failed", fields...)
		case status >= 400:
			logconfig.Log.Warn("Request rejected", fields...)
		default:
			logconfig.Log.Info("Request", fields...)
		}

		return err
	}
}

func shouldSkipLog(path string) bool {
	return strings.HasPrefix(path, "/static") ||
		strings.HasPrefix(path, "/favicon")
}
