package types

import (
  "time"
  "github.com/google/uuid"
)

const (
  RoleUser  = "user"
  RoleStaff = "staff"
  RoleAdmin = "admin"
)

func ValidRole(r string) bool {
  switch r {
  case RoleUser, RoleStaff, RoleAdmin:
    return true
  }
  return false
}

type User struct {
  ID              uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Email           string        `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password        string        `gorm:"not null;column:password" json:"-"`
  AnonymousName   string        `gorm:"not null;column:anonymous_name" json:"anonymous_name"`
  Role            string        `gorm:"not null;default:user;column:role" json:"role"`
  IsActive        bool          `gorm:"not null;default:true;column:is_active" json:"is_active"`
  Points          int           `gorm:"not null;default:0;column:points" json:"points"`
  Badges          []*UserBadge  `gorm:"foreignKey:UserID;references:ID" json:"badges,omitempty"`
  CreatedAt       time.Time     `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time     `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
  return "user"
}
