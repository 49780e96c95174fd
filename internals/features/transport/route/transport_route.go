package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transportController "convivio_backend/internals/features/transport/controller"
)

func TransportRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := transportController.NewTransportController(db)

	app.Post("/event/:id/transport", ctrl.CreateRequest)
	app.Post("/event/:id/transport/assisted", ctrl.CreateRequestForAssisted)
	app.Get("/event/:id/transport", ctrl.GetRequests)
	app.Delete("/event/:id/transport", ctrl.DeleteRequest)
}
