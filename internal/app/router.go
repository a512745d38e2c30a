package app

import (
	"github.com/gin-gonic/gin"
	"github.com/mindnest/mindnest-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:         handlers.Auth,
		AuthMiddleware:      middleware.Auth,
		UserHandler:         handlers.User,
		PostHandler:         handlers.Post,
		MoodHandler:         handlers.Mood,
		JournalHandler:      handlers.Journal,
		AnnouncementHandler: handlers.Announcement,
		QuoteHandler:        handlers.Quote,
		LeaderboardHandler:  handlers.Leaderboard,
		AdminHandler:        handlers.Admin,
		AllowedOrigins:      cfg.AllowedOrigins,
	})
}
