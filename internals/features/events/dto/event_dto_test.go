package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"convivio_backend/internals/features/events/model"
)

func TestToEventResponse_RendersWireDate(t *testing.T) {
	orgID := uuid.New()
	event := model.EventModel{
		ID:              uuid.New(),
		Name:            "Feira de Outono",
		Description:     "Feira comunitária com bancas locais",
		Date:            time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC),
		OrganisationID:  &orgID,
		InterestedCount: 3,
	}

	resp := ToEventResponse(&event)
	assert.Equal(t, "04-10-2025", resp.Date)
	assert.Equal(t, event.ID, resp.ID)
	assert.Equal(t, 3, resp.InterestedCount)
}

func TestToEventResponses_PreservesOrder(t *testing.T) {
	events := []model.EventModel{
		{Name: "Primeiro", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Segundo", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := ToEventResponses(events)
	assert.Len(t, out, 2)
	assert.Equal(t, "Primeiro", out[0].Name)
	assert.Equal(t, "Segundo", out[1].Name)

	assert.Empty(t, ToEventResponses(nil))
}
