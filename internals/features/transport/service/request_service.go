package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "convivio_backend/internals/features/events/model"
	"convivio_backend/internals/features/transport/model"
	userModel "convivio_backend/internals/features/users/model"
	volunteerService "convivio_backend/internals/features/volunteers/service"
	helper "convivio_backend/internals/helpers"
)

// CreateRequest runs the check sequence shared by the direct and proxied
// transport routes and inserts the request. requestedBy, when set, must pass
// the proxy gate for userID.
func CreateRequest(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID, requestedBy *uuid.UUID) (*model.TransportRequestModel, error) {
	db = db.WithContext(ctx)

	exists, err := eventModel.EventExists(db, eventID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify event")
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	exists, err = userModel.UserExists(db, userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if requestedBy != nil {
		exists, err = userModel.UserExists(db, *requestedBy)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify volunteer")
		}
		if !exists {
			return nil, fiber.NewError(fiber.StatusNotFound, "Volunteer not found")
		}

		allowed, err := volunteerService.CanActOnBehalfOf(db, *requestedBy, userID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify association")
		}
		if !allowed {
			return nil, fiber.NewError(fiber.StatusForbidden, "User is not associated with this volunteer")
		}
	}

	var count int64
	if err := db.Model(&model.TransportRequestModel{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check transport request")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Transport request already exists for this user and event")
	}

	request := model.TransportRequestModel{
		EventID:                eventID,
		UserID:                 userID,
		RequestedByVolunteerID: requestedBy,
	}
	if err := db.Create(&request).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Transport request already exists for this user and event")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create transport request")
	}

	return &request, nil
}
