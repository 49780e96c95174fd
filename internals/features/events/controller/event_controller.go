package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"convivio_backend/internals/features/events/dto"
	"convivio_backend/internals/features/events/model"
	"convivio_backend/internals/features/events/service"
	helper "convivio_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// POST /event
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date format. Use dd-MM-yyyy")
	}

	event, err := service.CreateEvent(c.UserContext(), ec.DB, req.Name, req.Description, date, req.OrganisationID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[SUCCESS] Created event %s\n", event.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created successfully",
		dto.ToEventResponse(event))
}

// DELETE /event/:id
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res := ec.DB.WithContext(c.UserContext()).
		Where("id = ?", eventID).
		Delete(&model.EventModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete event:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	log.Printf("[SUCCESS] Deleted event %s\n", eventID)
	return helper.Success(c, "Event deleted successfully", fiber.Map{"id": eventID})
}

// GET /events?name=&date=
func (ec *EventController) GetEvents(c *fiber.Ctx) error {
	q := ec.DB.WithContext(c.UserContext()).Model(&model.EventModel{})

	if name := c.Query("name"); name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	if rawDate := c.Query("date"); rawDate != "" {
		date, err := helper.ParseDate(rawDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid date format. Use dd-MM-yyyy")
		}
		q = q.Where("date = ?", date)
	}

	var events []model.EventModel
	if err := q.Order("date ASC").Find(&events).Error; err != nil {
		log.Println("[ERROR] Failed to fetch events:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	resp := dto.ToEventResponses(events)
	return helper.Success(c, "Events fetched successfully", fiber.Map{
		"events": resp,
		"count":  len(resp),
	})
}

// GET /event/:id
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.WithContext(c.UserContext()).
		First(&event, "id = ?", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.Success(c, "Event fetched successfully", fiber.Map{
		"event": dto.ToEventResponse(&event),
	})
}

// POST /event/:id/interest
func (ec *EventController) MarkInterest(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.InterestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	created, err := service.MarkInterest(c.UserContext(), ec.DB, eventID, req.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !created {
		return helper.Success(c, "User is already interested in this event", nil)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Interest registered successfully", nil)
}

// POST /event/:id/interest/assisted
func (ec *EventController) MarkInterestForAssisted(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.AssistedInterestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	created, err := service.MarkInterestForAssisted(c.UserContext(), ec.DB, eventID, req.VolunteerID, req.AssistedID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !created {
		return helper.Success(c, "User is already interested in this event", nil)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Interest registered successfully for assisted user", nil)
}

// DELETE /event/:id/interest
func (ec *EventController) RemoveInterest(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.InterestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.RemoveInterest(c.UserContext(), ec.DB, eventID, req.UserID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Interest removed successfully", nil)
}
