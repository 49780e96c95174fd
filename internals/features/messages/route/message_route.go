package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageController "convivio_backend/internals/features/messages/controller"
)

func MessageRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := messageController.NewMessageController(db)

	app.Post("/messages", ctrl.SendMessage)
	app.Get("/messages/:user_id", ctrl.GetMessages)
	app.Patch("/messages/:id/read", ctrl.MarkAsRead)
}
