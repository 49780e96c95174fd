package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateUserRequest {
	return CreateUserRequest{
		Name:         "Maria Santos",
		Age:          67,
		Gender:       "female",
		Street:       "Rua das Flores",
		StreetNumber: "12",
		PostalCode:   "4000-123",
		City:         "Porto",
	}
}

func TestCreateUserRequest_Validation(t *testing.T) {
	validate := validator.New()

	req := validRequest()
	assert.NoError(t, validate.Struct(&req))

	req = validRequest()
	req.Gender = "unknown"
	assert.Error(t, validate.Struct(&req))

	req = validRequest()
	req.Gender = ""
	assert.Error(t, validate.Struct(&req))

	req = validRequest()
	req.Age = 0
	assert.Error(t, validate.Struct(&req))

	req = validRequest()
	req.Name = "M"
	assert.Error(t, validate.Struct(&req))
}

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := validRequest()
	m := req.ToModel()

	require.Equal(t, req.Name, m.Name)
	assert.Equal(t, req.City, m.City)
	assert.False(t, m.IsVolunteer)
	assert.False(t, m.IsAssisted)
	assert.False(t, m.HasOrganisation)
	assert.Nil(t, m.OrganisationID)
}
