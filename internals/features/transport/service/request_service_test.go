package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func expectCount(mock sqlmock.Sqlmock, table string, count int) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "` + table + `"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, status, fe.Code)
}

func TestCreateRequest_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	expectCount(mock, "events", 0)

	_, err := CreateRequest(context.Background(), db, uuid.New(), uuid.New(), nil)
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_UserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	expectCount(mock, "events", 1)
	expectCount(mock, "users", 0)

	_, err := CreateRequest(context.Background(), db, uuid.New(), uuid.New(), nil)
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_Direct(t *testing.T) {
	db, mock := newMockDB(t)
	eventID := uuid.New()
	userID := uuid.New()

	expectCount(mock, "events", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "event_transport_requests", 0)
	mock.ExpectQuery(`INSERT INTO "event_transport_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	request, err := CreateRequest(context.Background(), db, eventID, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, userID, request.UserID)
	assert.Nil(t, request.RequestedByVolunteerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_UnpairedVolunteerForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()

	expectCount(mock, "events", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "users", 1)
	// no pairing edge between the volunteer and the user
	expectCount(mock, "volunteer_assisted", 0)

	_, err := CreateRequest(context.Background(), db, uuid.New(), uuid.New(), &volunteerID)
	requireFiberStatus(t, err, fiber.StatusForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_PairedVolunteerMayProxy(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()

	expectCount(mock, "events", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "volunteer_assisted", 1)
	expectCount(mock, "event_transport_requests", 0)
	mock.ExpectQuery(`INSERT INTO "event_transport_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	request, err := CreateRequest(context.Background(), db, uuid.New(), uuid.New(), &volunteerID)
	require.NoError(t, err)
	require.NotNil(t, request.RequestedByVolunteerID)
	assert.Equal(t, volunteerID, *request.RequestedByVolunteerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_SelfNeedsNoPairing(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	expectCount(mock, "events", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "users", 1)
	// requesting for yourself skips the pairing lookup
	expectCount(mock, "event_transport_requests", 0)
	mock.ExpectQuery(`INSERT INTO "event_transport_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	_, err := CreateRequest(context.Background(), db, uuid.New(), userID, &userID)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_DuplicateConflict(t *testing.T) {
	db, mock := newMockDB(t)

	expectCount(mock, "events", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "event_transport_requests", 1)

	_, err := CreateRequest(context.Background(), db, uuid.New(), uuid.New(), nil)
	requireFiberStatus(t, err, fiber.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_LostRaceConflict(t *testing.T) {
	db, mock := newMockDB(t)

	expectCount(mock, "events", 1)
	expectCount(mock, "users", 1)
	expectCount(mock, "event_transport_requests", 0)
	// the competing insert committed between the pre-check and ours
	mock.ExpectQuery(`INSERT INTO "event_transport_requests"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "uq_transport_event_user"`))

	_, err := CreateRequest(context.Background(), db, uuid.New(), uuid.New(), nil)
	requireFiberStatus(t, err, fiber.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
