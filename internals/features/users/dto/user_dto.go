package dto

import (
	"github.com/google/uuid"

	"convivio_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	Name           string     `json:"name" validate:"required,min=2,max=100"`
	Age            int        `json:"age" validate:"required,gte=1,lte=120"`
	Gender         string     `json:"gender" validate:"required,oneof=male female other"`
	Street         string     `json:"street" validate:"required,max=150"`
	StreetNumber   string     `json:"street_number" validate:"required,max=20"`
	Apartment      *string    `json:"apartment" validate:"omitempty,max=20"`
	PostalCode     string     `json:"postal_code" validate:"required,max=16"`
	City           string     `json:"city" validate:"required,max=100"`
	OrganisationID *uuid.UUID `json:"organisation_id"`
}

func (r *CreateUserRequest) ToModel() model.UserModel {
	return model.UserModel{
		Name:            r.Name,
		Age:             r.Age,
		Gender:          r.Gender,
		Street:          r.Street,
		StreetNumber:    r.StreetNumber,
		Apartment:       r.Apartment,
		PostalCode:      r.PostalCode,
		City:            r.City,
		HasOrganisation: r.OrganisationID != nil,
		OrganisationID:  r.OrganisationID,
	}
}
