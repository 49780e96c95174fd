package dto

import "github.com/google/uuid"

type MunicipalityResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DistrictID   uuid.UUID `json:"district_id"`
	DistrictName string    `json:"district_name"`
}

type ParishResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	MunicipalityID   uuid.UUID `json:"municipality_id"`
	MunicipalityName string    `json:"municipality_name"`
	DistrictName     string    `json:"district_name"`
}
