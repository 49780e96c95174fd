package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateOrganisationRequest struct {
	Name                   string      `json:"name" validate:"required,min=2,max=150"`
	Description            *string     `json:"description"`
	HeadUserID             uuid.UUID   `json:"head_user_id" validate:"required"`
	AllowedMunicipalityIDs []uuid.UUID `json:"allowed_municipality_ids"`
	AllowedParishIDs       []uuid.UUID `json:"allowed_parish_ids"`
}

// OrganisationResponse carries the ARRAY_AGG aggregates from the read query;
// ids are cast to text[] in SQL so pq.StringArray can scan them.
type OrganisationResponse struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name"`
	Description            *string        `json:"description"`
	HeadUserID             string         `json:"head_user_id"`
	AllowedMunicipalityIDs pq.StringArray `gorm:"type:text[]" json:"allowed_municipality_ids"`
	AllowedMunicipalities  pq.StringArray `gorm:"type:text[]" json:"allowed_municipalities"`
	AllowedParishIDs       pq.StringArray `gorm:"type:text[]" json:"allowed_parish_ids"`
	AllowedParishes        pq.StringArray `gorm:"type:text[]" json:"allowed_parishes"`
}
