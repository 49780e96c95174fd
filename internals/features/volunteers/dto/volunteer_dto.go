package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssociateRequest struct {
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
	Code        string    `json:"code" validate:"required,len=8,alphanum"`
}

type DisassociateRequest struct {
	VolunteerID  uuid.UUID `json:"volunteer_id" validate:"required"`
	AssistedID   uuid.UUID `json:"assisted_id" validate:"required"`
	Confirmation string    `json:"confirmation" validate:"required"`
}

type CodeResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Code   string    `json:"code"`
}

// PairedUserResponse is either side of a pairing joined with its user row.
type PairedUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Age      int       `json:"age"`
	Gender   string    `json:"gender"`
	City     string    `json:"city"`
	PairedAt time.Time `json:"paired_at"`
}
