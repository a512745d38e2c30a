package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Journal struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_journal_user_created" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title     string         `gorm:"not null;size:200;column:title" json:"title"`
	Content   string         `gorm:"not null;column:content" json:"content"`
	Mood      string         `gorm:"column:mood" json:"mood,omitempty"`
	Tags      datatypes.JSON `gorm:"type:jsonb;column:tags" json:"tags,omitempty"`
	IsPrivate bool           `gorm:"not null;default:true;column:is_private" json:"is_private"`
	CreatedAt time.Time      `gorm:"not null;default:now();index:idx_journal_user_created,sort:desc" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Journal) TableName() string { return "journal" }
