package types

import (
	"time"
	"github.com/google/uuid"
)

// UserBadge is the award record for a single badge. The composite unique
// index on (user_id, name) is what guarantees a badge name appears at most
// once per user, even under concurrent evaluations.
type UserBadge struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge_name" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Name        string    `gorm:"not null;uniqueIndex:idx_user_badge_name;column:name" json:"name"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Icon        string    `gorm:"not null;column:icon" json:"icon"`
	EarnedAt    time.Time `gorm:"not null;default:now();column:earned_at" json:"earned_at"`
}

func (UserBadge) TableName() string { return "user_badge" }
