package fiber

import (
	gofiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"lms-analytics-dashboard/config"
)

// SetupFiber builds the app with the shared middleware stack:
// panic recovery, request logging, and CORS for the dashboard frontend.
func SetupFiber(cfg config.Config) *gofiber.App {
	app := gofiber.New(gofiber.Config{
		AppName: cfg.AppName,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}
