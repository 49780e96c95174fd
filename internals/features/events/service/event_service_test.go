package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	expectCount(mock, "events", 1)
	mock.ExpectRollback()

	_, err := CreateEvent(context.Background(), db, "Feira de Outono", "desc",
		time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), nil)
	requireFiberStatus(t, err, fiber.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvent_OrganisationNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	orgID := uuid.New()

	mock.ExpectBegin()
	expectCount(mock, "events", 0)
	expectCount(mock, "organisations", 0)
	mock.ExpectRollback()

	_, err := CreateEvent(context.Background(), db, "Feira de Outono", "desc",
		time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), &orgID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvent_Success(t *testing.T) {
	db, mock := newMockDB(t)
	orgID := uuid.New()

	mock.ExpectBegin()
	expectCount(mock, "events", 0)
	expectCount(mock, "organisations", 1)
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "interested_count"}).
			AddRow(uuid.NewString(), 0))
	mock.ExpectCommit()

	event, err := CreateEvent(context.Background(), db, "Feira de Outono", "Feira comunitária",
		time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), &orgID)
	require.NoError(t, err)
	assert.Equal(t, "Feira de Outono", event.Name)
	assert.Equal(t, 0, event.InterestedCount)
	require.NotNil(t, event.OrganisationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvent_LostRaceConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	expectCount(mock, "events", 0)
	// the competing insert committed between the name check and ours
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "uni_events_name"`))
	mock.ExpectRollback()

	_, err := CreateEvent(context.Background(), db, "Feira de Outono", "desc",
		time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), nil)
	requireFiberStatus(t, err, fiber.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
