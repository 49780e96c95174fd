package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationModel "convivio_backend/internals/features/locations/model"
	"convivio_backend/internals/features/organisations/dto"
	"convivio_backend/internals/features/organisations/model"
	userModel "convivio_backend/internals/features/users/model"
	helper "convivio_backend/internals/helpers"
)

var validate = validator.New()

type OrganisationController struct {
	DB *gorm.DB
}

func NewOrganisationController(db *gorm.DB) *OrganisationController {
	return &OrganisationController{DB: db}
}

const organisationAggregateSelect = `
SELECT o.id::text AS id, o.name, o.description, o.head_user_id::text AS head_user_id,
       COALESCE(ARRAY_AGG(DISTINCT m.id::text) FILTER (WHERE m.id IS NOT NULL), '{}') AS allowed_municipality_ids,
       COALESCE(ARRAY_AGG(DISTINCT m.name) FILTER (WHERE m.name IS NOT NULL), '{}')    AS allowed_municipalities,
       COALESCE(ARRAY_AGG(DISTINCT p.id::text) FILTER (WHERE p.id IS NOT NULL), '{}')  AS allowed_parish_ids,
       COALESCE(ARRAY_AGG(DISTINCT p.name) FILTER (WHERE p.name IS NOT NULL), '{}')    AS allowed_parishes
FROM organisations o
LEFT JOIN organisation_allowed_municipalities oam ON o.id = oam.organisation_id
LEFT JOIN municipalities m ON oam.municipality_id = m.id
LEFT JOIN organisation_allowed_parishes oap ON o.id = oap.organisation_id
LEFT JOIN parishes p ON oap.parish_id = p.id
%s
GROUP BY o.id, o.name, o.description, o.head_user_id`

// POST /organisation
func (oc *OrganisationController) CreateOrganisation(c *fiber.Ctx) error {
	var req dto.CreateOrganisationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if len(req.AllowedMunicipalityIDs) == 0 && len(req.AllowedParishIDs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest,
			"At least one allowed municipality or parish must be specified")
	}

	var created model.OrganisationModel

	err := oc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.OrganisationModel{}).
			Where("name = ?", req.Name).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check organisation name")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "An organisation with this name already exists")
		}

		exists, err := userModel.UserExists(tx, req.HeadUserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify head user")
		}
		if !exists {
			return fiber.NewError(fiber.StatusNotFound, "User in charge not found")
		}

		for _, munID := range req.AllowedMunicipalityIDs {
			var n int64
			if err := tx.Model(&locationModel.MunicipalityModel{}).
				Where("id = ?", munID).
				Count(&n).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify municipality")
			}
			if n == 0 {
				return fiber.NewError(fiber.StatusNotFound,
					fmt.Sprintf("Municipality with id %s not found", munID))
			}
		}

		for _, parishID := range req.AllowedParishIDs {
			var n int64
			if err := tx.Model(&locationModel.ParishModel{}).
				Where("id = ?", parishID).
				Count(&n).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify parish")
			}
			if n == 0 {
				return fiber.NewError(fiber.StatusNotFound,
					fmt.Sprintf("Parish with id %s not found", parishID))
			}
		}

		created = model.OrganisationModel{
			Name:        req.Name,
			Description: req.Description,
			HeadUserID:  req.HeadUserID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create organisation")
		}

		for _, munID := range req.AllowedMunicipalityIDs {
			row := model.OrganisationAllowedMunicipalityModel{
				OrganisationID: created.ID,
				MunicipalityID: munID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to link municipality")
			}
		}

		for _, parishID := range req.AllowedParishIDs {
			row := model.OrganisationAllowedParishModel{
				OrganisationID: created.ID,
				ParishID:       parishID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to link parish")
			}
		}

		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var resp dto.OrganisationResponse
	query := fmt.Sprintf(organisationAggregateSelect, "WHERE o.id = ?")
	if err := oc.DB.WithContext(c.UserContext()).
		Raw(query, created.ID).
		Scan(&resp).Error; err != nil {
		log.Println("[ERROR] Failed to load created organisation:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load created organisation")
	}

	log.Printf("[SUCCESS] Created organisation %s\n", created.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Organisation created successfully", resp)
}

// GET /organisations
func (oc *OrganisationController) GetOrganisations(c *fiber.Ctx) error {
	var organisations []dto.OrganisationResponse
	query := fmt.Sprintf(organisationAggregateSelect, "") + "\nORDER BY o.name ASC"
	if err := oc.DB.WithContext(c.UserContext()).
		Raw(query).
		Scan(&organisations).Error; err != nil {
		log.Println("[ERROR] Failed to fetch organisations:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve organisations")
	}

	return helper.Success(c, "Organisations fetched successfully", fiber.Map{
		"organisations": organisations,
		"count":         len(organisations),
	})
}
