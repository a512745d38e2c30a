package types

import (
	"time"
	"github.com/google/uuid"
)

const (
	ReactionHeart   = "heart"
	ReactionSupport = "support"
	ReactionHug     = "hug"
	ReactionStar    = "star"
)

const (
	ReportReasonSpam           = "spam"
	ReportReasonHarassment     = "harassment"
	ReportReasonInappropriate  = "inappropriate"
	ReportReasonMisinformation = "misinformation"
	ReportReasonOther          = "other"
)

const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

func ValidReactionType(t string) bool {
	switch t {
	case ReactionHeart, ReactionSupport, ReactionHug, ReactionStar:
		return true
	}
	return false
}

func ValidReportReason(r string) bool {
	switch r {
	case ReportReasonSpam, ReportReasonHarassment, ReportReasonInappropriate, ReportReasonMisinformation, ReportReasonOther:
		return true
	}
	return false
}

func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

// Post carries the author's anonymous name denormalized at creation time so
// the community feed never needs to join against the user table.
type Post struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	AnonymousName string          `gorm:"not null;column:anonymous_name" json:"anonymous_name"`
	Content       string          `gorm:"not null;column:content" json:"content"`
	IsModerated   bool            `gorm:"not null;default:true;column:is_moderated" json:"is_moderated"`
	Comments      []*PostComment  `gorm:"foreignKey:PostID;references:ID" json:"comments,omitempty"`
	Reactions     []*PostReaction `gorm:"foreignKey:PostID;references:ID" json:"reactions,omitempty"`
	Reports       []*PostReport   `gorm:"foreignKey:PostID;references:ID" json:"reports,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Post) TableName() string { return "post" }

type PostComment struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PostID        uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Post          *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AnonymousName string    `gorm:"not null;column:anonymous_name" json:"anonymous_name"`
	Content       string    `gorm:"not null;column:content" json:"content"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PostComment) TableName() string { return "post_comment" }

// PostReaction has a unique (post_id, user_id) index: a user holds at most
// one reaction per post, which is what makes the toggle semantics work.
type PostReaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_reaction_user" json:"post_id"`
	Post      *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_reaction_user" json:"user_id"`
	Type      string    `gorm:"not null;column:type" json:"type"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (PostReaction) TableName() string { return "post_reaction" }

type PostReport struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PostID      uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Post        *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason      string    `gorm:"not null;column:reason" json:"reason"`
	Description string    `gorm:"column:description" json:"description"`
	Status      string    `gorm:"not null;default:pending;column:status" json:"status"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (PostReport) TableName() string { return "post_report" }
