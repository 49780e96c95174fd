package model

import (
	"time"

	"github.com/google/uuid"
)

// TransportRequestModel represents the event_transport_requests table.
// RequestedByVolunteerID is set when a volunteer opened the request on
// behalf of the user.
type TransportRequestModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID                uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_transport_event_user" json:"event_id"`
	UserID                 uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_transport_event_user" json:"user_id"`
	RequestedByVolunteerID *uuid.UUID `gorm:"type:uuid" json:"requested_by_volunteer_id,omitempty"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (TransportRequestModel) TableName() string {
	return "event_transport_requests"
}
