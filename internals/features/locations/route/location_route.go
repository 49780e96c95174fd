package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationController "convivio_backend/internals/features/locations/controller"
)

func LocationRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := locationController.NewLocationController(db)

	app.Get("/districts", ctrl.GetDistricts)
	app.Get("/municipalities", ctrl.GetMunicipalities)
	app.Get("/parishes", ctrl.GetParishes)
}
