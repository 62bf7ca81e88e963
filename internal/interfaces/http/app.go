package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/gesco-erp/gesco-api/pkg/logger"
)

// AppConfig réglages du serveur HTTP.
type AppConfig struct {
	Name        string
	CORSOrigins string
	// Limiter nil désactive la limitation de débit.
	Limiter RateLimiter
}

// NewApp construit l'application fiber et sa chaîne de middlewares :
// recover, request id, CORS, journal d'accès puis limitation de débit.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		}))
	}
	app.Use(RequestLogger(log))
	if cfg.Limiter != nil {
		app.Use(RateLimit(cfg.Limiter, log))
	}
	return app
}
