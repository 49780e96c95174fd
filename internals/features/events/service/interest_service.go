package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"convivio_backend/internals/features/events/model"
	userModel "convivio_backend/internals/features/users/model"
	volunteerService "convivio_backend/internals/features/volunteers/service"
	helper "convivio_backend/internals/helpers"
)

// InterestExists reports whether the (user, event) join row is present.
func InterestExists(db *gorm.DB, userID, eventID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.EventInterestModel{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

// addInterest inserts the join row and bumps interested_count in one
// transaction. Returns false when the user was already interested, in which
// case nothing is written and the counter does not move.
func addInterest(db *gorm.DB, eventID, userID uuid.UUID) (bool, error) {
	already, err := InterestExists(db, userID, eventID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to check interest")
	}
	if already {
		return false, nil
	}

	raced := false
	err = db.Transaction(func(tx *gorm.DB) error {
		row := model.EventInterestModel{UserID: userID, EventID: eventID}
		if err := tx.Create(&row).Error; err != nil {
			// concurrent duplicate: the other writer's insert won, counter
			// already moved exactly once
			if helper.IsUniqueViolation(err) {
				raced = true
				return nil
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to register interest")
		}

		if err := tx.Model(&model.EventModel{}).
			Where("id = ?", eventID).
			UpdateColumn("interested_count", gorm.Expr("interested_count + ?", 1)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update interest count")
		}

		return nil
	})
	if err != nil {
		return false, err
	}
	return !raced, nil
}

// MarkInterest registers a user's interest in an event. Idempotent on
// repeat calls: the first returns created=true, later ones created=false.
func MarkInterest(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID) (bool, error) {
	db = db.WithContext(ctx)

	exists, err := userModel.UserExists(db, userID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return false, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	exists, err = model.EventExists(db, eventID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify event")
	}
	if !exists {
		return false, fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	return addInterest(db, eventID, userID)
}

// MarkInterestForAssisted lets a volunteer register interest on behalf of
// their assisted user, behind the same proxy gate transport uses. The gate
// is asymmetric: only the volunteer side may proxy.
func MarkInterestForAssisted(ctx context.Context, db *gorm.DB, eventID, volunteerID, assistedID uuid.UUID) (bool, error) {
	db = db.WithContext(ctx)

	exists, err := userModel.UserExists(db, volunteerID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify volunteer")
	}
	if !exists {
		return false, fiber.NewError(fiber.StatusNotFound, "Volunteer not found")
	}

	exists, err = userModel.UserExists(db, assistedID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify assisted user")
	}
	if !exists {
		return false, fiber.NewError(fiber.StatusNotFound, "Assisted user not found")
	}

	exists, err = model.EventExists(db, eventID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify event")
	}
	if !exists {
		return false, fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	allowed, err := volunteerService.CanActOnBehalfOf(db, volunteerID, assistedID)
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify association")
	}
	if !allowed {
		return false, fiber.NewError(fiber.StatusForbidden, "User is not associated with this volunteer")
	}

	return addInterest(db, eventID, assistedID)
}

// RemoveInterest deletes the join row and decrements interested_count in
// one transaction.
func RemoveInterest(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID) error {
	db = db.WithContext(ctx)

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND event_id = ?", userID, eventID).
			Delete(&model.EventInterestModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove interest")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "User was not interested in this event")
		}

		if err := tx.Model(&model.EventModel{}).
			Where("id = ?", eventID).
			UpdateColumn("interested_count", gorm.Expr("interested_count - ?", 1)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update interest count")
		}

		return nil
	})
}
