package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssociateRequest_CodeShape(t *testing.T) {
	validate := validator.New()

	req := AssociateRequest{VolunteerID: uuid.New(), Code: "AB12CD34"}
	assert.NoError(t, validate.Struct(&req))

	req.Code = "short"
	assert.Error(t, validate.Struct(&req))

	req.Code = "AB12CD3!"
	assert.Error(t, validate.Struct(&req))

	req.Code = ""
	assert.Error(t, validate.Struct(&req))
}
