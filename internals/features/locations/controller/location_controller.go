package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"convivio_backend/internals/features/locations/dto"
	"convivio_backend/internals/features/locations/model"
	helper "convivio_backend/internals/helpers"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// GET /districts
func (lc *LocationController) GetDistricts(c *fiber.Ctx) error {
	var districts []model.DistrictModel
	if err := lc.DB.WithContext(c.UserContext()).
		Order("name ASC").
		Find(&districts).Error; err != nil {
		log.Println("[ERROR] Failed to fetch districts:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve districts")
	}

	return helper.Success(c, "Districts fetched successfully", fiber.Map{
		"districts": districts,
		"count":     len(districts),
	})
}

// GET /municipalities?district_id=
func (lc *LocationController) GetMunicipalities(c *fiber.Ctx) error {
	q := lc.DB.WithContext(c.UserContext()).
		Table("municipalities AS m").
		Select("m.id, m.name, m.district_id, d.name AS district_name").
		Joins("JOIN districts d ON d.id = m.district_id").
		Order("m.name ASC")

	if raw := c.Query("district_id"); raw != "" {
		districtID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid district_id")
		}
		q = q.Where("m.district_id = ?", districtID)
	}

	var municipalities []dto.MunicipalityResponse
	if err := q.Scan(&municipalities).Error; err != nil {
		log.Println("[ERROR] Failed to fetch municipalities:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve municipalities")
	}

	return helper.Success(c, "Municipalities fetched successfully", fiber.Map{
		"municipalities": municipalities,
		"count":          len(municipalities),
	})
}

// GET /parishes?municipality_id=
func (lc *LocationController) GetParishes(c *fiber.Ctx) error {
	q := lc.DB.WithContext(c.UserContext()).
		Table("parishes AS p").
		Select("p.id, p.name, p.municipality_id, m.name AS municipality_name, d.name AS district_name").
		Joins("JOIN municipalities m ON m.id = p.municipality_id").
		Joins("JOIN districts d ON d.id = m.district_id").
		Order("p.name ASC")

	if raw := c.Query("municipality_id"); raw != "" {
		municipalityID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid municipality_id")
		}
		q = q.Where("p.municipality_id = ?", municipalityID)
	}

	var parishes []dto.ParishResponse
	if err := q.Scan(&parishes).Error; err != nil {
		log.Println("[ERROR] Failed to fetch parishes:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve parishes")
	}

	return helper.Success(c, "Parishes fetched successfully", fiber.Map{
		"parishes": parishes,
		"count":    len(parishes),
	})
}
