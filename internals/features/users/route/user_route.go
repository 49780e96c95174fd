package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "convivio_backend/internals/features/users/controller"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	app.Post("/user", ctrl.CreateUser)
	app.Get("/users", ctrl.GetUsers)
	app.Delete("/user/:id", ctrl.DeleteUser)
}
