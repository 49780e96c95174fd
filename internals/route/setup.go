package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "convivio_backend/internals/databases"
	eventRoutes "convivio_backend/internals/features/events/route"
	locationRoutes "convivio_backend/internals/features/locations/route"
	messageRoutes "convivio_backend/internals/features/messages/route"
	organisationRoutes "convivio_backend/internals/features/organisations/route"
	transportRoutes "convivio_backend/internals/features/transport/route"
	userRoutes "convivio_backend/internals/features/users/route"
	volunteerRoutes "convivio_backend/internals/features/volunteers/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", healthCheck)

	api := app.Group("/api")

	log.Println("[INFO] Setting up LocationRoutes...")
	locationRoutes.LocationRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoutes.UserRoutes(api, db)

	log.Println("[INFO] Setting up OrganisationRoutes...")
	organisationRoutes.OrganisationRoutes(api, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoutes.EventRoutes(api, db)

	log.Println("[INFO] Setting up TransportRoutes...")
	transportRoutes.TransportRoutes(api, db)

	log.Println("[INFO] Setting up MessageRoutes...")
	messageRoutes.MessageRoutes(api, db)

	log.Println("[INFO] Setting up VolunteerRoutes...")
	volunteerRoutes.VolunteerRoutes(api, db)
}

func healthCheck(c *fiber.Ctx) error {
	dbStatus := "Connected"
	serverStatus := "OK"
	httpStatus := fiber.StatusOK

	if err := database.Ping(); err != nil {
		dbStatus = "Database connection error"
		serverStatus = "DOWN"
		httpStatus = fiber.StatusServiceUnavailable
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":         serverStatus,
		"database":       dbStatus,
		"server_time":    time.Now().Format(time.RFC3339),
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	})
}
