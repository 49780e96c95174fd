package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table.
//
// IsVolunteer and IsAssisted are derived caches of pairing-row existence:
// the pairing service is the only writer, always by recomputing from the
// volunteer_assisted table. Nothing else may set them.
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	Age             int        `gorm:"not null" json:"age"`
	Gender          string     `gorm:"type:varchar(10);not null" json:"gender"`
	Street          string     `gorm:"size:150;not null" json:"street"`
	StreetNumber    string     `gorm:"size:20;not null" json:"street_number"`
	Apartment       *string    `gorm:"size:20" json:"apartment,omitempty"`
	PostalCode      string     `gorm:"size:16;not null" json:"postal_code"`
	City            string     `gorm:"size:100;not null" json:"city"`
	IsVolunteer     bool       `gorm:"not null;default:false" json:"is_volunteer"`
	IsAssisted      bool       `gorm:"not null;default:false" json:"is_assisted"`
	HasOrganisation bool       `gorm:"not null;default:false" json:"has_organisation"`
	OrganisationID  *uuid.UUID `gorm:"type:uuid" json:"organisation_id,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserExists is the existence check shared by every feature that references
// a user id.
func UserExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
