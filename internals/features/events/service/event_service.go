package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"convivio_backend/internals/features/events/model"
	organisationModel "convivio_backend/internals/features/organisations/model"
	helper "convivio_backend/internals/helpers"
)

// CreateEvent checks name uniqueness and organisation existence, then
// inserts, all inside one transaction. Event names are globally unique.
func CreateEvent(ctx context.Context, db *gorm.DB, name, description string, date time.Time, organisationID *uuid.UUID) (*model.EventModel, error) {
	var event model.EventModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.EventModel{}).
			Where("name = ?", name).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check event name")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "An event with this name already exists")
		}

		if organisationID != nil {
			exists, err := organisationModel.OrganisationExists(tx, *organisationID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify organisation")
			}
			if !exists {
				return fiber.NewError(fiber.StatusNotFound, "Organisation not found")
			}
		}

		event = model.EventModel{
			Name:           name,
			Description:    description,
			Date:           date,
			OrganisationID: organisationID,
		}
		if err := tx.Create(&event).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "An event with this name already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}
