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

func expectCodeLookup(mock sqlmock.Sqlmock, ownerID *uuid.UUID) {
	rows := sqlmock.NewRows([]string{"id", "user_id", "code", "is_active", "created_at"})
	if ownerID != nil {
		rows.AddRow(uuid.NewString(), ownerID.String(), "AB12CD34", true, time.Now())
	}
	mock.ExpectQuery(`SELECT \* FROM "user_codes"`).WillReturnRows(rows)
}

func expectPairingCount(mock sqlmock.Sqlmock, count int) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "volunteer_assisted"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

// expectRoleRecompute covers one recomputeRoleFlags call: both relation
// counts plus the flag update. Map assignments render in sorted column
// order, so is_assisted binds before is_volunteer.
func expectRoleRecompute(mock sqlmock.Sqlmock, userID uuid.UUID, volunteerCount, assistedCount int) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "volunteer_assisted" WHERE volunteer_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(volunteerCount))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "volunteer_assisted" WHERE assisted_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(assistedCount))
	mock.ExpectExec(`UPDATE "users" SET`).
		WithArgs(assistedCount > 0, volunteerCount > 0, sqlmock.AnyArg(), userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestAssociateByCode_VolunteerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	expectUserExists(mock, false)

	_, err := AssociateByCode(context.Background(), db, uuid.New(), "AB12CD34")
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociateByCode_AssistedVolunteerForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()

	expectUserExists(mock, true)
	expectAssistedBy(mock, uuid.New(), volunteerID)

	_, err := AssociateByCode(context.Background(), db, volunteerID, "AB12CD34")
	requireFiberStatus(t, err, fiber.StatusForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociateByCode_InvalidCode(t *testing.T) {
	db, mock := newMockDB(t)

	expectUserExists(mock, true)
	expectNotAssisted(mock)
	expectCodeLookup(mock, nil)

	_, err := AssociateByCode(context.Background(), db, uuid.New(), "NOPE0000")
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociateByCode_OwnerAlreadyAssisted(t *testing.T) {
	db, mock := newMockDB(t)
	ownerID := uuid.New()

	expectUserExists(mock, true)
	expectNotAssisted(mock)
	expectCodeLookup(mock, &ownerID)
	expectUserExists(mock, true)
	expectAssistedBy(mock, uuid.New(), ownerID)

	_, err := AssociateByCode(context.Background(), db, uuid.New(), "AB12CD34")
	requireFiberStatus(t, err, fiber.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociateByCode_SelfPairingRejected(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()

	expectUserExists(mock, true)
	expectNotAssisted(mock)
	expectCodeLookup(mock, &volunteerID)
	expectUserExists(mock, true)
	expectNotAssisted(mock)

	_, err := AssociateByCode(context.Background(), db, volunteerID, "AB12CD34")
	requireFiberStatus(t, err, fiber.StatusBadRequest)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociateByCode_Success(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()
	assistedID := uuid.New()

	expectUserExists(mock, true)
	expectNotAssisted(mock)
	expectCodeLookup(mock, &assistedID)
	expectUserExists(mock, true)
	expectNotAssisted(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "volunteer_assisted"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	expectRoleRecompute(mock, volunteerID, 1, 0)
	expectRoleRecompute(mock, assistedID, 0, 1)
	mock.ExpectExec(`UPDATE "user_codes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pairing, err := AssociateByCode(context.Background(), db, volunteerID, "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, volunteerID, pairing.VolunteerID)
	assert.Equal(t, assistedID, pairing.AssistedID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociateByCode_LostRaceReturnsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	assistedID := uuid.New()

	expectUserExists(mock, true)
	expectNotAssisted(mock)
	expectCodeLookup(mock, &assistedID)
	expectUserExists(mock, true)
	expectNotAssisted(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "volunteer_assisted"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_volunteer_assisted_assisted_id"`))
	mock.ExpectRollback()

	_, err := AssociateByCode(context.Background(), db, uuid.New(), "AB12CD34")
	requireFiberStatus(t, err, fiber.StatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisassociate_ConfirmationCheckedBeforeAnythingElse(t *testing.T) {
	db, mock := newMockDB(t)

	// no expectations registered: a bad phrase must not touch storage
	err := Disassociate(context.Background(), db, uuid.New(), uuid.New(), "yes please")
	requireFiberStatus(t, err, fiber.StatusBadRequest)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisassociate_ConfirmationIsCaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()
	assistedID := uuid.New()

	expectUserExists(mock, true)
	expectUserExists(mock, true)
	expectPairingCount(mock, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "volunteer_assisted"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectRoleRecompute(mock, volunteerID, 0, 0)
	expectRoleRecompute(mock, assistedID, 0, 0)
	mock.ExpectCommit()

	err := Disassociate(context.Background(), db, volunteerID, assistedID, "  confirmar ")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisassociate_VolunteerKeepsFlagWithRemainingAssisted(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()
	assistedID := uuid.New()

	expectUserExists(mock, true)
	expectUserExists(mock, true)
	expectPairingCount(mock, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "volunteer_assisted"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// one other pairing survives, so is_volunteer stays true
	expectRoleRecompute(mock, volunteerID, 1, 0)
	expectRoleRecompute(mock, assistedID, 0, 0)
	mock.ExpectCommit()

	err := Disassociate(context.Background(), db, volunteerID, assistedID, "CONFIRMAR")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisassociate_PairingNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	expectUserExists(mock, true)
	expectUserExists(mock, true)
	expectPairingCount(mock, 0)

	err := Disassociate(context.Background(), db, uuid.New(), uuid.New(), "CONFIRMAR")
	requireFiberStatus(t, err, fiber.StatusNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCanActOnBehalfOf_SelfNeedsNoPairing(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	ok, err := CanActOnBehalfOf(db, userID, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCanActOnBehalfOf_IsAsymmetric(t *testing.T) {
	db, mock := newMockDB(t)
	volunteerID := uuid.New()
	assistedID := uuid.New()

	expectPairingCount(mock, 1)
	ok, err := CanActOnBehalfOf(db, volunteerID, assistedID)
	require.NoError(t, err)
	assert.True(t, ok)

	// the assisted user acting for the volunteer is not a pairing edge
	expectPairingCount(mock, 0)
	ok, err = CanActOnBehalfOf(db, assistedID, volunteerID)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCanMessage_EitherDirection(t *testing.T) {
	db, mock := newMockDB(t)

	expectPairingCount(mock, 0)
	expectPairingCount(mock, 1)
	ok, err := CanMessage(db, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)

	expectPairingCount(mock, 0)
	expectPairingCount(mock, 0)
	ok, err = CanMessage(db, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
