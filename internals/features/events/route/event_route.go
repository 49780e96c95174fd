package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "convivio_backend/internals/features/events/controller"
)

func EventRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	app.Post("/event", ctrl.CreateEvent)
	app.Get("/events", ctrl.GetEvents)
	app.Get("/event/:id", ctrl.GetEvent)
	app.Delete("/event/:id", ctrl.DeleteEvent)

	app.Post("/event/:id/interest", ctrl.MarkInterest)
	app.Post("/event/:id/interest/assisted", ctrl.MarkInterestForAssisted)
	app.Delete("/event/:id/interest", ctrl.RemoveInterest)
}
