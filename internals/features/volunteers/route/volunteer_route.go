package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	volunteerController "convivio_backend/internals/features/volunteers/controller"
	"convivio_backend/internals/middlewares"
)

func VolunteerRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := volunteerController.NewVolunteerController(db)

	app.Get("/user/:id/code", ctrl.GetCode)
	app.Post("/volunteer/associate", middlewares.AssociateRateLimiter(), ctrl.Associate)
	app.Post("/volunteer/disassociate", ctrl.Disassociate)
	app.Get("/volunteer/:id/assisted-users", ctrl.GetAssistedUsers)
	app.Get("/assisted/:id/volunteer", ctrl.GetVolunteer)
}
