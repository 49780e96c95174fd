package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "convivio_backend/internals/features/users/model"
	"convivio_backend/internals/features/volunteers/dto"
	"convivio_backend/internals/features/volunteers/service"
	helper "convivio_backend/internals/helpers"
)

var validate = validator.New()

type VolunteerController struct {
	DB *gorm.DB
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db}
}

// GET /user/:id/code
func (vc *VolunteerController) GetCode(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	code, err := service.GetOrCreateCode(c.UserContext(), vc.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Pairing code fetched successfully", dto.CodeResponse{
		UserID: userID,
		Code:   code,
	})
}

// POST /volunteer/associate
func (vc *VolunteerController) Associate(c *fiber.Ctx) error {
	var req dto.AssociateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	pairing, err := service.AssociateByCode(c.UserContext(), vc.DB, req.VolunteerID, req.Code)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[SUCCESS] Paired volunteer %s with assisted %s\n", pairing.VolunteerID, pairing.AssistedID)
	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Successfully associated volunteer with assisted user", fiber.Map{
			"volunteer_id": pairing.VolunteerID,
			"assisted_id":  pairing.AssistedID,
		})
}

// POST /volunteer/disassociate
func (vc *VolunteerController) Disassociate(c *fiber.Ctx) error {
	var req dto.DisassociateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.Disassociate(c.UserContext(), vc.DB, req.VolunteerID, req.AssistedID, req.Confirmation); err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[SUCCESS] Unpaired volunteer %s from assisted %s\n", req.VolunteerID, req.AssistedID)
	return helper.Success(c, "Successfully disassociated volunteer from assisted user", nil)
}

// GET /volunteer/:id/assisted-users
func (vc *VolunteerController) GetAssistedUsers(c *fiber.Ctx) error {
	volunteerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid volunteer id")
	}

	db := vc.DB.WithContext(c.UserContext())

	exists, err := userModel.UserExists(db, volunteerID)
	if err != nil {
		log.Println("[ERROR] Volunteer lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify volunteer")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "Volunteer not found")
	}

	assisted, err := service.AssistedUsersByVolunteer(db, volunteerID)
	if err != nil {
		log.Println("[ERROR] Failed to fetch assisted users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve assisted users")
	}

	return helper.Success(c, "Assisted users fetched successfully", fiber.Map{
		"assisted_users": assisted,
		"count":          len(assisted),
	})
}

// GET /assisted/:id/volunteer
func (vc *VolunteerController) GetVolunteer(c *fiber.Ctx) error {
	assistedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	db := vc.DB.WithContext(c.UserContext())

	exists, err := userModel.UserExists(db, assistedID)
	if err != nil {
		log.Println("[ERROR] User lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "Assisted user not found")
	}

	volunteer, err := service.VolunteerForAssisted(db, assistedID)
	if err != nil {
		log.Println("[ERROR] Failed to fetch volunteer:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve volunteer")
	}
	if volunteer == nil {
		return helper.Error(c, fiber.StatusNotFound, "No volunteer associated with this user")
	}

	return helper.Success(c, "Volunteer fetched successfully", fiber.Map{"volunteer": volunteer})
}
