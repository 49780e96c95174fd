package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	SenderID   uuid.UUID `json:"sender_id" validate:"required"`
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Message    string    `json:"message" validate:"required"`
}

// InboxMessageResponse is a received message joined with its sender.
type InboxMessageResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	SenderName string    `json:"sender_name"`
	SenderCity string    `json:"sender_city"`
	CreatedAt  time.Time `json:"created_at"`
}
