package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel represents the messages table. The pairing requirement is
// enforced at send time only; rows outlive the pairing that allowed them.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}
