package main

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"gocafe/configs/csrfconfig"
	"gocafe/configs/databaseconfig"
	"gocafe/configs/envconfig"
	"gocafe/configs/logconfig"
	"gocafe/configs/redisconfig"
	"gocafe/configs/sessionconfig"
	"gocafe/database/seeders"
	"gocafe/middlewares"
	"gocafe/packages/templatehelpers"
	"gocafe/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	envconfig.LoadIfDev()

	logconfig.InitLogger()
	defer logconfig.SyncLogger()

	appEnv := envconfig.String("APP_ENV", "development")
	logconfig.SLog.Infow("Runtime",
		"env", appEnv,
		"num_cpu", runtime.NumCPU(),
		"gomaxprocs", runtime.GOMAXPROCS(0),
	)

	databaseconfig.InitDB()
	defer databaseconfig.CloseDB()

	if err := seeders.SeedCities(databaseconfig.GetDB()); err != nil {
		logconfig.Log.Fatal("City seeding failed", zap.Error(err))
	}
	if err := seeders.SeedCafes(databaseconfig.GetDB()); err != nil {
		logconfig.Log.Fatal("Cafe seeding failed", zap.Error(err))
	}

	redisconfig.InitRedis()
	defer redisconfig.Close()

	sessionconfig.InitSession()

	engine := html.New("./views", ".html")
	engine.AddFuncMap(templatehelpers.TemplateHelpers())
	if !envconfig.IsProd() {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		Views:       engine,
		IdleTimeout: 60 * time.Second,
		ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second,
		BodyLimit: 1 * 1024 * 1024,

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			logconfig.Log.Error("Request error",
				zap.Error(err),
				zap.Int("status_code", code),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)

			view := "errors/500"
			if code == fiber.StatusNotFound {
				view = "errors/404"
			}
			if renderErr := c.Status(code).Render(view, fiber.Map{}, "layouts/main"); renderErr != nil {
				return c.Status(code).SendString("Something went wrong")
			}
			return nil
		},
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		db, _ := databaseconfig.GetDB().DB()
		dbOk := db.Ping() == nil

		redisOk := true
		if client := redisconfig.GetClient(); client != nil {
			_, redisErr := client.Ping(c.Context()).Result()
			redisOk = redisErr == nil
		}

		allOk := dbOk && redisOk
		status := fiber.StatusOK
		if !allOk {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"ok":        allOk,
			"database":  dbOk,
			"redis":     redisOk,
			"timestamp": time.Now().Unix(),
		})
	})

	app.Use(recover.New())
	app.Use(middlewares.ZapLogger())

	app.Static("/", "./public", fiber.Static{
		ByteRange: true,
		Browse:    false,
	})

	app.Use(encryptcookie.New(encryptcookie.Config{
		Key:    deriveCookieKey(envconfig.String("SECRET_KEY", "shhhh-dev-only")),
		Except: []string{"gocafe_csrf"},
	}))

	app.Use(csrfconfig.SetupCSRF())

	routes.SetupRoutes(app)

	startServer(app)
}

// deriveCookieKey stretches SECRET_KEY into the 32-byte base64 key the
// cookie encryption middleware expects.
func deriveCookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func startServer(app *fiber.App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := envconfig.Int("APP_PORT", 3000)
	host := envconfig.String("APP_HOST", "127.0.0.1")
	address := host + ":" + strconv.Itoa(port)

	go func() {
		logconfig.SLog.Infow("Listening",
			"env", envconfig.String("APP_ENV", "development"),
			"listen", address,
		)
		if err := app.Listen(address); err != nil {
			logconfig.Log.Fatal("Server could not listen", zap.String("address", address), zap.Error(err))
		}
	}()

	<-ctx.Done()
	logconfig.Log.Info("Shutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logconfig.Log.Error("Server shutdown failed", zap.Error(err))
	} else {
		logconfig.Log.Info("Server stopped cleanly")
	}
}
