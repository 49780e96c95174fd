package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"convivio_backend/internals/features/messages/dto"
	"convivio_backend/internals/features/messages/model"
	userModel "convivio_backend/internals/features/users/model"
	volunteerService "convivio_backend/internals/features/volunteers/service"
	helper "convivio_backend/internals/helpers"
)

var validate = validator.New()

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// POST /messages
func (mc *MessageController) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Message cannot be empty")
	}

	db := mc.DB.WithContext(c.UserContext())

	exists, err := userModel.UserExists(db, req.SenderID)
	if err != nil {
		log.Println("[ERROR] Sender lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify sender")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "Sender not found")
	}

	exists, err = userModel.UserExists(db, req.ReceiverID)
	if err != nil {
		log.Println("[ERROR] Receiver lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify receiver")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "Receiver not found")
	}

	// symmetric gate: either side of a pairing may message the other
	allowed, err := volunteerService.CanMessage(db, req.SenderID, req.ReceiverID)
	if err != nil {
		log.Println("[ERROR] Pairing lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify association")
	}
	if !allowed {
		return helper.Error(c, fiber.StatusForbidden,
			"Users can only communicate if they have a volunteer-assisted relationship")
	}

	message := model.MessageModel{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Message:    text,
	}
	if err := db.Create(&message).Error; err != nil {
		log.Println("[ERROR] Failed to create message:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message sent successfully", message)
}

// GET /messages/:user_id
func (mc *MessageController) GetMessages(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	db := mc.DB.WithContext(c.UserContext())

	exists, err := userModel.UserExists(db, userID)
	if err != nil {
		log.Println("[ERROR] User lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	var messages []dto.InboxMessageResponse
	if err := db.Table("messages AS m").
		Select(`m.id, m.sender_id, m.receiver_id, m.message, m.is_read, m.created_at,
			u.name AS sender_name, u.city AS sender_city`).
		Joins("JOIN users u ON m.sender_id = u.id").
		Where("m.receiver_id = ?", userID).
		Order("m.created_at DESC").
		Scan(&messages).Error; err != nil {
		log.Println("[ERROR] Failed to fetch messages:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	return helper.Success(c, "Messages fetched successfully", fiber.Map{
		"messages": messages,
		"count":    len(messages),
	})
}

// PATCH /messages/:id/read?user_id=
func (mc *MessageController) MarkAsRead(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid message id")
	}

	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing or invalid user_id")
	}

	res := mc.DB.WithContext(c.UserContext()).
		Model(&model.MessageModel{}).
		Where("id = ? AND receiver_id = ?", messageID, userID).
		Update("is_read", true)
	if res.Error != nil {
		log.Println("[ERROR] Failed to mark message as read:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark message as read")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Message not found")
	}

	return helper.Success(c, "Message marked as read", nil)
}
