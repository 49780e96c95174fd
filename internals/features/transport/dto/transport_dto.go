package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTransportRequest struct {
	UserID                 uuid.UUID  `json:"user_id" validate:"required"`
	RequestedByVolunteerID *uuid.UUID `json:"requested_by_volunteer_id"`
}

type AssistedTransportRequest struct {
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
	AssistedID  uuid.UUID `json:"assisted_id" validate:"required"`
}

type RemoveTransportRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// TransportResponse joins the request with its user (and requesting
// volunteer, when any).
type TransportResponse struct {
	ID                     uuid.UUID  `json:"id"`
	UserID                 uuid.UUID  `json:"user_id"`
	RequestedByVolunteerID *uuid.UUID `json:"requested_by_volunteer_id,omitempty"`
	UserName               string     `json:"user_name"`
	UserAge                int        `json:"user_age"`
	UserCity               string     `json:"user_city"`
	VolunteerName          *string    `json:"volunteer_name,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}
