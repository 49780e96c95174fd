package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "convivio_backend/internals/features/users/model"
	"convivio_backend/internals/features/volunteers/model"
	helper "convivio_backend/internals/helpers"
)

const (
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength      = 8
	maxCodeAttempts = 10
)

// generateCode draws codeLength characters from the alphabet using
// crypto/rand.
func generateCode() (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// GetOrCreateCode returns the user's active pairing code, creating one
// lazily. Idempotent: a second call returns the same code. Assisted users
// never hold an active code.
func GetOrCreateCode(ctx context.Context, db *gorm.DB, userID uuid.UUID) (string, error) {
	db = db.WithContext(ctx)

	exists, err := userModel.UserExists(db, userID)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to verify user")
	}
	if !exists {
		return "", fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	volunteerID, err := CheckUserIsAssisted(db, userID)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to verify pairing state")
	}
	if volunteerID != nil {
		return "", fiber.NewError(fiber.StatusForbidden, "Assisted users cannot have active codes")
	}

	var existing model.PairingCodeModel
	err = db.Where("user_id = ? AND is_active = TRUE", userID).First(&existing).Error
	if err == nil {
		return existing.Code, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to look up pairing code")
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to generate pairing code")
		}

		row := model.PairingCodeModel{UserID: userID, Code: code, IsActive: true}
		err = db.Create(&row).Error
		if err == nil {
			return code, nil
		}
		if !helper.IsUniqueViolation(err) {
			return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store pairing code")
		}

		// either the per-user active slot or the code itself collided. A
		// concurrent request for the same user may have won the slot; hand
		// back its code instead of fighting over the index.
		var winner model.PairingCodeModel
		err = db.Where("user_id = ? AND is_active = TRUE", userID).First(&winner).Error
		if err == nil {
			return winner.Code, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to look up pairing code")
		}
	}

	return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to generate a unique pairing code")
}

// UserIDByCode resolves an active code to its owner.
func UserIDByCode(db *gorm.DB, code string) (*uuid.UUID, error) {
	var row model.PairingCodeModel
	err := db.Where("code = ? AND is_active = TRUE", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.UserID, nil
}

// deactivateCodes marks every code of a user inactive. Idempotent. Only
// invoked inside the pairing-creation transaction, never from a route.
func deactivateCodes(tx *gorm.DB, userID uuid.UUID) error {
	return tx.Model(&model.PairingCodeModel{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
}
