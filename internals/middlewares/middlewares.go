package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the app-wide middleware chain (order matters:
// recovery first so it wraps everything below).
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
