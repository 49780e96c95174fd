package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "convivio_backend/internals/features/events/model"
	"convivio_backend/internals/features/transport/dto"
	"convivio_backend/internals/features/transport/model"
	"convivio_backend/internals/features/transport/service"
	helper "convivio_backend/internals/helpers"
)

var validate = validator.New()

type TransportController struct {
	DB *gorm.DB
}

func NewTransportController(db *gorm.DB) *TransportController {
	return &TransportController{DB: db}
}

func (tc *TransportController) createRequest(c *fiber.Ctx, eventID, userID uuid.UUID, requestedBy *uuid.UUID) error {
	request, err := service.CreateRequest(c.UserContext(), tc.DB, eventID, userID, requestedBy)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Created transport request %s (event=%s user=%s)\n", request.ID, eventID, userID)
	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Transport request created successfully", request)
}

// POST /event/:id/transport
func (tc *TransportController) CreateRequest(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.CreateTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := tc.createRequest(c, eventID, req.UserID, req.RequestedByVolunteerID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return nil
}

// POST /event/:id/transport/assisted
func (tc *TransportController) CreateRequestForAssisted(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.AssistedTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := tc.createRequest(c, eventID, req.AssistedID, &req.VolunteerID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return nil
}

// GET /event/:id/transport
func (tc *TransportController) GetRequests(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	db := tc.DB.WithContext(c.UserContext())

	exists, err := eventModel.EventExists(db, eventID)
	if err != nil {
		log.Println("[ERROR] Event lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify event")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	var requests []dto.TransportResponse
	if err := db.Table("event_transport_requests AS etr").
		Select(`etr.id, etr.user_id, etr.requested_by_volunteer_id, etr.created_at,
			u.name AS user_name, u.age AS user_age, u.city AS user_city,
			v.name AS volunteer_name`).
		Joins("JOIN users u ON etr.user_id = u.id").
		Joins("LEFT JOIN users v ON etr.requested_by_volunteer_id = v.id").
		Where("etr.event_id = ?", eventID).
		Order("etr.created_at DESC").
		Scan(&requests).Error; err != nil {
		log.Println("[ERROR] Failed to fetch transport requests:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve transport requests")
	}

	return helper.Success(c, "Transport requests fetched successfully", fiber.Map{
		"transport_requests": requests,
		"count":              len(requests),
	})
}

// DELETE /event/:id/transport
func (tc *TransportController) DeleteRequest(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.RemoveTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := tc.DB.WithContext(c.UserContext()).
		Where("event_id = ? AND user_id = ?", eventID, req.UserID).
		Delete(&model.TransportRequestModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete transport request:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete transport request")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Transport request not found")
	}

	return helper.Success(c, "Transport request deleted successfully", nil)
}
