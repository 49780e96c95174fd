package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	organisationController "convivio_backend/internals/features/organisations/controller"
)

func OrganisationRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := organisationController.NewOrganisationController(db)

	app.Post("/organisation", ctrl.CreateOrganisation)
	app.Get("/organisations", ctrl.GetOrganisations)
}
