package app

import (
	"github.com/mindnest/mindnest-backend/internal/handlers"
	"github.com/mindnest/mindnest-backend/internal/platform/logger"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Post         *handlers.PostHandler
	Mood         *handlers.MoodHandler
	Journal      *handlers.JournalHandler
	Announcement *handlers.AnnouncementHandler
	Quote        *handlers.QuoteHandler
	Leaderboard  *handlers.LeaderboardHandler
	Admin        *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:         handlers.NewAuthHandler(services.Auth),
		User:         handlers.NewUserHandler(services.User, services.Achievement),
		Post:         handlers.NewPostHandler(services.Post),
		Mood:         handlers.NewMoodHandler(services.Mood),
		Journal:      handlers.NewJournalHandler(services.Journal),
		Announcement: handlers.NewAnnouncementHandler(services.Announcement),
		Quote:        handlers.NewQuoteHandler(services.Quote),
		Leaderboard:  handlers.NewLeaderboardHandler(services.Leaderboard),
		Admin:        handlers.NewAdminHandler(services.Admin),
	}
}
