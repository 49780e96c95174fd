package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "x"`)))
	assert.True(t, IsUniqueViolation(errors.New("ERROR: unique violation (SQLSTATE 23505)")))
	assert.False(t, IsUniqueViolation(errors.New("connection reset by peer")))
}
