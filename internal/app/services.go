package app

import (
	"gorm.io/gorm"
	"github.com/mindnest/mindnest-backend/internal/platform/logger"
	"github.com/mindnest/mindnest-backend/internal/services"
)

type Services struct {
	Auth         services.AuthService
	User         services.UserService
	Achievement  services.AchievementService
	Leaderboard  services.LeaderboardService
	Post         services.PostService
	Mood         services.MoodService
	Journal      services.JournalService
	Announcement services.AnnouncementService
	Quote        services.QuoteService
	Admin        services.AdminService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")

	leaderboardService := services.NewLeaderboardService(db, log, repos.User, cfg.RedisAddr)
	achievementService := services.NewAchievementService(
		db,
		log,
		repos.User,
		repos.UserBadge,
		repos.Post,
		repos.PostComment,
		repos.PostReaction,
		repos.Mood,
		repos.Journal,
		leaderboardService,
	)

	return Services{
		Auth:        services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.TokenTTL),
		User:        services.NewUserService(db, log, repos.User),
		Achievement: achievementService,
		Leaderboard: leaderboardService,
		Post: services.NewPostService(
			db,
			log,
			repos.Post,
			repos.PostComment,
			repos.PostReaction,
			repos.PostReport,
			repos.User,
			achievementService,
		),
		Mood:         services.NewMoodService(db, log, repos.Mood, achievementService),
		Journal:      services.NewJournalService(db, log, repos.Journal, achievementService),
		Announcement: services.NewAnnouncementService(db, log, repos.Announcement),
		Quote:        services.NewQuoteService(log),
		Admin: services.NewAdminService(
			db,
			log,
			repos.User,
			repos.Post,
			repos.Mood,
			repos.Journal,
			repos.PostReport,
		),
	}
}
