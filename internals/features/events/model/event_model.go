package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel represents the events table. InterestedCount is an O(1)
// readable aggregate of event_interest rows, maintained in the same
// transaction as every join-row write.
type EventModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string     `gorm:"size:150;unique;not null" json:"name"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Date            time.Time  `gorm:"type:date;not null" json:"date"`
	OrganisationID  *uuid.UUID `gorm:"type:uuid" json:"organisation_id,omitempty"`
	InterestedCount int        `gorm:"not null;default:0" json:"interested_count"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (EventModel) TableName() string {
	return "events"
}

type EventInterestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_interest_user_event" json:"user_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_interest_user_event" json:"event_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (EventInterestModel) TableName() string {
	return "event_interest"
}

func EventExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&EventModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
