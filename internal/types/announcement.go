package types

import (
	"time"
	"github.com/google/uuid"
)

const (
	AnnouncementInfo    = "info"
	AnnouncementSuccess = "success"
	AnnouncementWarning = "warning"
	AnnouncementDefault = "announcement"
)

func ValidAnnouncementType(t string) bool {
	switch t {
	case AnnouncementInfo, AnnouncementSuccess, AnnouncementWarning, AnnouncementDefault:
		return true
	}
	return false
}

type Announcement struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string     `gorm:"not null;column:title" json:"title"`
	Content     string     `gorm:"not null;column:content" json:"content"`
	Type        string     `gorm:"not null;default:announcement;column:type" json:"type"`
	IsActive    bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	CreatedBy   *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CreatedByID;references:ID" json:"created_by_user,omitempty"`
	ExpiresAt   *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Announcement) TableName() string { return "announcement" }
