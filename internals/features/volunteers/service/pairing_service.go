package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "convivio_backend/internals/features/users/model"
	"convivio_backend/internals/features/volunteers/dto"
	"convivio_backend/internals/features/volunteers/model"
	helper "convivio_backend/internals/helpers"
)

// ConfirmationPhrase must be typed (case-insensitively) to destroy a pairing.
const ConfirmationPhrase = "CONFIRMAR"

// CheckUserIsAssisted returns the volunteer id of the user's pairing, or nil
// when the user is not assisted. This lookup is the sole source of truth for
// "is this user assisted" in every pre-mutation check.
func CheckUserIsAssisted(db *gorm.DB, userID uuid.UUID) (*uuid.UUID, error) {
	var row model.PairingModel
	err := db.Where("assisted_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.VolunteerID, nil
}

// PairingExists reports whether volunteerID currently assists assistedID.
func PairingExists(db *gorm.DB, volunteerID, assistedID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.PairingModel{}).
		Where("volunteer_id = ? AND assisted_id = ?", volunteerID, assistedID).
		Count(&count).Error
	return count > 0, err
}

// CanActOnBehalfOf gates proxy actions (interest, transport). Asymmetric:
// a user acts for themselves, or a volunteer acts for their assisted user.
// An assisted user never acts for their volunteer.
func CanActOnBehalfOf(db *gorm.DB, actorID, subjectID uuid.UUID) (bool, error) {
	if actorID == subjectID {
		return true, nil
	}
	return PairingExists(db, actorID, subjectID)
}

// CanMessage gates messaging: allowed over a pairing edge in either
// direction.
func CanMessage(db *gorm.DB, senderID, receiverID uuid.UUID) (bool, error) {
	ok, err := PairingExists(db, senderID, receiverID)
	if err != nil || ok {
		return ok, err
	}
	return PairingExists(db, receiverID, senderID)
}

// recomputeRoleFlags re-derives is_volunteer/is_assisted for a user from the
// volunteer_assisted table. Every pairing mutation goes through this instead
// of flipping flags ad hoc, so the flags can never drift from the relation.
func recomputeRoleFlags(tx *gorm.DB, userID uuid.UUID) error {
	var volunteerCount int64
	if err := tx.Model(&model.PairingModel{}).
		Where("volunteer_id = ?", userID).
		Count(&volunteerCount).Error; err != nil {
		return err
	}

	var assistedCount int64
	if err := tx.Model(&model.PairingModel{}).
		Where("assisted_id = ?", userID).
		Count(&assistedCount).Error; err != nil {
		return err
	}

	return tx.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_volunteer": volunteerCount > 0,
			"is_assisted":  assistedCount > 0,
		}).Error
}

// AssociateByCode pairs a volunteer with the owner of an active code. The
// checks run in a fixed order, each short-circuiting with its own status;
// once they pass, the pairing insert, both flag updates and the code
// deactivation commit together or not at all.
func AssociateByCode(ctx context.Context, db *gorm.DB, volunteerID uuid.UUID, code string) (*model.PairingModel, error) {
	db = db.WithContext(ctx)

	exists, err := userModel.UserExists(db, volunteerID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify volunteer")
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "Volunteer not found")
	}

	volunteerOf, err := CheckUserIsAssisted(db, volunteerID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify pairing state")
	}
	if volunteerOf != nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Assisted users cannot read codes")
	}

	assistedID, err := UserIDByCode(db, code)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve code")
	}
	if assistedID == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Invalid code")
	}

	exists, err = userModel.UserExists(db, *assistedID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "User associated with code not found")
	}

	alreadyPaired, err := CheckUserIsAssisted(db, *assistedID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify pairing state")
	}
	if alreadyPaired != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "This user is already associated with a volunteer")
	}

	if volunteerID == *assistedID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Cannot associate user with themselves")
	}

	pairing := model.PairingModel{VolunteerID: volunteerID, AssistedID: *assistedID}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pairing).Error; err != nil {
			// the unique index on assisted_id serialises concurrent
			// redemptions of the same code: one commits, the rest land here
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "This user is already associated with a volunteer")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create association")
		}

		if err := recomputeRoleFlags(tx, volunteerID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update volunteer flags")
		}
		if err := recomputeRoleFlags(tx, *assistedID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update assisted flags")
		}

		if err := deactivateCodes(tx, *assistedID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate code")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &pairing, nil
}

// Disassociate destroys a pairing. The confirmation phrase is validated
// before any existence check runs.
func Disassociate(ctx context.Context, db *gorm.DB, volunteerID, assistedID uuid.UUID, confirmation string) error {
	if !strings.EqualFold(strings.TrimSpace(confirmation), ConfirmationPhrase) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Invalid confirmation. Please type '"+ConfirmationPhrase+"' to confirm")
	}

	db = db.WithContext(ctx)

	exists, err := userModel.UserExists(db, volunteerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify volunteer")
	}
	if !exists {
		return fiber.NewError(fiber.StatusNotFound, "Volunteer not found")
	}

	exists, err = userModel.UserExists(db, assistedID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify assisted user")
	}
	if !exists {
		return fiber.NewError(fiber.StatusNotFound, "Assisted user not found")
	}

	paired, err := PairingExists(db, volunteerID, assistedID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify association")
	}
	if !paired {
		return fiber.NewError(fiber.StatusNotFound, "Association not found")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("volunteer_id = ? AND assisted_id = ?", volunteerID, assistedID).
			Delete(&model.PairingModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete association")
		}

		// re-query, never assume: the volunteer may still assist others
		if err := recomputeRoleFlags(tx, volunteerID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update volunteer flags")
		}
		if err := recomputeRoleFlags(tx, assistedID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update assisted flags")
		}

		return nil
	})
}

// AssistedUsersByVolunteer lists the users a volunteer assists, newest
// pairing first.
func AssistedUsersByVolunteer(db *gorm.DB, volunteerID uuid.UUID) ([]dto.PairedUserResponse, error) {
	var rows []dto.PairedUserResponse
	err := db.Table("users AS u").
		Select("u.id, u.name, u.age, u.gender, u.city, va.created_at AS paired_at").
		Joins("JOIN volunteer_assisted va ON u.id = va.assisted_id").
		Where("va.volunteer_id = ?", volunteerID).
		Order("va.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// VolunteerForAssisted returns the volunteer paired with an assisted user,
// or nil when unpaired.
func VolunteerForAssisted(db *gorm.DB, assistedID uuid.UUID) (*dto.PairedUserResponse, error) {
	var rows []dto.PairedUserResponse
	err := db.Table("users AS u").
		Select("u.id, u.name, u.age, u.gender, u.city, va.created_at AS paired_at").
		Joins("JOIN volunteer_assisted va ON u.id = va.volunteer_id").
		Where("va.assisted_id = ?", assistedID).
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}
