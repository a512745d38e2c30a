package app

import (
	"gorm.io/gorm"
	"github.com/mindnest/mindnest-backend/internal/platform/logger"
	"github.com/mindnest/mindnest-backend/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	UserBadge    repos.UserBadgeRepo
	Post         repos.PostRepo
	PostComment  repos.PostCommentRepo
	PostReaction repos.PostReactionRepo
	PostReport   repos.PostReportRepo
	Mood         repos.MoodRepo
	Journal      repos.JournalRepo
	Announcement repos.AnnouncementRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		UserBadge:    repos.NewUserBadgeRepo(db, log),
		Post:         repos.NewPostRepo(db, log),
		PostComment:  repos.NewPostCommentRepo(db, log),
		PostReaction: repos.NewPostReactionRepo(db, log),
		PostReport:   repos.NewPostReportRepo(db, log),
		Mood:         repos.NewMoodRepo(db, log),
		Journal:      repos.NewJournalRepo(db, log),
		Announcement: repos.NewAnnouncementRepo(db, log),
	}
}
