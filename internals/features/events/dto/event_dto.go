package dto

import (
	"github.com/google/uuid"

	"convivio_backend/internals/features/events/model"
	helper "convivio_backend/internals/helpers"
)

type CreateEventRequest struct {
	Name           string     `json:"name" validate:"required,min=2,max=150"`
	Description    string     `json:"description" validate:"required"`
	Date           string     `json:"date" validate:"required"`
	OrganisationID *uuid.UUID `json:"organisation_id"`
}

type InterestRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type AssistedInterestRequest struct {
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
	AssistedID  uuid.UUID `json:"assisted_id" validate:"required"`
}

// EventResponse renders the date back to the dd-MM-yyyy wire format.
type EventResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Date            string     `json:"date"`
	OrganisationID  *uuid.UUID `json:"organisation_id,omitempty"`
	InterestedCount int        `json:"interested_count"`
}

func ToEventResponse(e *model.EventModel) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		Date:            helper.FormatDate(e.Date),
		OrganisationID:  e.OrganisationID,
		InterestedCount: e.InterestedCount,
	}
}

func ToEventResponses(events []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, ToEventResponse(&events[i]))
	}
	return out
}
