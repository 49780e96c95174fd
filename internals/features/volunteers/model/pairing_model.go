package model

import (
	"time"

	"github.com/google/uuid"
)

// PairingCodeModel represents the user_codes table. A user has at most one
// active code at a time, enforced by the partial unique index on user_id;
// codes never expire by age, only by pairing.
type PairingCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_codes_active_user,where:is_active" json:"user_id"`
	Code      string    `gorm:"size:8;uniqueIndex;not null" json:"code"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PairingCodeModel) TableName() string {
	return "user_codes"
}

// PairingModel represents the volunteer_assisted table, the sole source of
// truth for the users' derived role flags. An assisted user appears in at
// most one row; a volunteer may appear in many.
type PairingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;index" json:"volunteer_id"`
	AssistedID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"assisted_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PairingModel) TableName() string {
	return "volunteer_assisted"
}
