package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MoodVeryHappy = "very-happy"
	MoodHappy     = "happy"
	MoodNeutral   = "neutral"
	MoodSad       = "sad"
	MoodVerySad   = "very-sad"
)

func ValidMoodCategory(m string) bool {
	switch m {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad:
		return true
	}
	return false
}

// Mood is one logged entry. Date is truncated to the calendar day and is the
// column streak computation runs over; CreatedAt keeps the full timestamp.
type Mood struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_mood_user_date" json:"user_id"`
	User       *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Mood       string         `gorm:"not null;column:mood" json:"mood"`
	Intensity  int            `gorm:"not null;column:intensity" json:"intensity"`
	Note       string         `gorm:"column:note" json:"note"`
	Activities datatypes.JSON `gorm:"type:jsonb;column:activities" json:"activities,omitempty"`
	Date       time.Time      `gorm:"not null;index:idx_mood_user_date,sort:desc;column:date" json:"date"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Mood) TableName() string { return "mood" }
