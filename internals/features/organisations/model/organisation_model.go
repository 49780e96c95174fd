package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganisationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:150;unique;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	HeadUserID  uuid.UUID `gorm:"type:uuid;not null" json:"head_user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OrganisationModel) TableName() string {
	return "organisations"
}

// Join rows scoping an organisation to the divisions it may operate in.

type OrganisationAllowedMunicipalityModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	MunicipalityID uuid.UUID `gorm:"type:uuid;not null" json:"municipality_id"`
}

func (OrganisationAllowedMunicipalityModel) TableName() string {
	return "organisation_allowed_municipalities"
}

type OrganisationAllowedParishModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	ParishID       uuid.UUID `gorm:"type:uuid;not null" json:"parish_id"`
}

func (OrganisationAllowedParishModel) TableName() string {
	return "organisation_allowed_parishes"
}

func OrganisationExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&OrganisationModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
