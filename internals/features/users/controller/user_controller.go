package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	organisationModel "convivio_backend/internals/features/organisations/model"
	"convivio_backend/internals/features/users/dto"
	"convivio_backend/internals/features/users/model"
	helper "convivio_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /user
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := uc.DB.WithContext(c.UserContext())

	if req.OrganisationID != nil {
		exists, err := organisationModel.OrganisationExists(db, *req.OrganisationID)
		if err != nil {
			log.Println("[ERROR] Organisation lookup failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify organisation")
		}
		if !exists {
			return helper.Error(c, fiber.StatusNotFound, "Organisation not found")
		}
	}

	user := req.ToModel()
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] Failed to create user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	log.Printf("[SUCCESS] Created user %s\n", user.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", user)
}

// GET /users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).
		Order("created_at ASC, id ASC").
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.Success(c, "Users fetched successfully", fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// DELETE /user/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	db := uc.DB.WithContext(c.UserContext())

	exists, err := model.UserExists(db, userID)
	if err != nil {
		log.Println("[ERROR] User lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	if err := db.Where("id = ?", userID).Delete(&model.UserModel{}).Error; err != nil {
		log.Println("[ERROR] Failed to delete user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	log.Printf("[SUCCESS] Deleted user %s\n", userID)
	return helper.Success(c, "User deleted successfully", fiber.Map{"id": userID})
}
