package model

import "github.com/google/uuid"

// The geographic reference tables are seeded externally; this service only
// ever reads them.

type DistrictModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:100;unique;not null" json:"name"`
}

func (DistrictModel) TableName() string {
	return "districts"
}

type MunicipalityModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	DistrictID uuid.UUID `gorm:"type:uuid;not null;index" json:"district_id"`
}

func (MunicipalityModel) TableName() string {
	return "municipalities"
}

type ParishModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	MunicipalityID uuid.UUID `gorm:"type:uuid;not null;index" json:"municipality_id"`
}

func (ParishModel) TableName() string {
	return "parishes"
}
