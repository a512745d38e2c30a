package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/mindnest/mindnest-backend/internal/handlers"
  "github.com/mindnest/mindnest-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  UserHandler         *handlers.UserHandler
  PostHandler         *handlers.PostHandler
  MoodHandler         *handlers.MoodHandler
  JournalHandler      *handlers.JournalHandler
  AnnouncementHandler *handlers.AnnouncementHandler
  QuoteHandler        *handlers.QuoteHandler
  LeaderboardHandler  *handlers.LeaderboardHandler
  AdminHandler        *handlers.AdminHandler
  AllowedOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  origins := cfg.AllowedOrigins
  if len(origins) == 0 {
    origins = []string{"http://localhost:3000", "http://localhost:5173"}
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))
  router.Use(otelgin.Middleware("mindnest"))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  api := router.Group("/api")
  {
    api.POST("/users/register", cfg.AuthHandler.Register)
    api.POST("/users/login", cfg.AuthHandler.Login)
    api.GET("/posts", cfg.PostHandler.List)
    api.GET("/quotes/daily", cfg.QuoteHandler.Daily)
    api.GET("/announcements/active", cfg.AnnouncementHandler.ListActive)
    api.GET("/leaderboard", cfg.LeaderboardHandler.Top)
  }

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // User
  protected.GET("/users/me", cfg.UserHandler.Me)
  protected.PUT("/users/anonymous-name", cfg.UserHandler.UpdateAnonymousName)
  // Posts
  protected.POST("/posts", cfg.PostHandler.Create)
  protected.GET("/posts/my-posts", cfg.PostHandler.MyPosts)
  protected.PUT("/posts/:postId", cfg.PostHandler.Update)
  protected.DELETE("/posts/:postId", cfg.PostHandler.Delete)
  protected.POST("/posts/:postId/comments", cfg.PostHandler.AddComment)
  protected.POST("/posts/:postId/reactions", cfg.PostHandler.ToggleReaction)
  protected.POST("/posts/:postId/report", cfg.PostHandler.Report)
  // Moods
  protected.POST("/moods", cfg.MoodHandler.Create)
  protected.GET("/moods", cfg.MoodHandler.List)
  protected.GET("/moods/analytics", cfg.MoodHandler.Analytics)
  protected.PUT("/moods/:moodId", cfg.MoodHandler.Update)
  protected.DELETE("/moods/:moodId", cfg.MoodHandler.Delete)
  // Journals
  protected.POST("/journals", cfg.JournalHandler.Create)
  protected.GET("/journals", cfg.JournalHandler.List)
  protected.GET("/journals/:journalId", cfg.JournalHandler.Get)
  protected.PUT("/journals/:journalId", cfg.JournalHandler.Update)
  protected.DELETE("/journals/:journalId", cfg.JournalHandler.Delete)

// ===============
// || Staff     ||
// ===============
  staff := protected.Group("/admin")
  staff.Use(cfg.AuthMiddleware.RequireStaff())
  staff.GET("/stats", cfg.AdminHandler.DashboardStats)
  staff.GET("/users", cfg.AdminHandler.ListUsers)
  staff.PUT("/users/:userId/status", cfg.AdminHandler.ToggleUserStatus)
  staff.GET("/posts", cfg.AdminHandler.ListPosts)
  staff.PUT("/posts/:postId/moderate", cfg.AdminHandler.TogglePostModeration)
  staff.DELETE("/posts/:postId", cfg.AdminHandler.DeletePost)
  staff.GET("/reports", cfg.AdminHandler.ListReports)
  staff.PUT("/reports/:reportId", cfg.AdminHandler.UpdateReportStatus)
  staff.GET("/announcements", cfg.AnnouncementHandler.ListAll)

// ===============
// || Admin     ||
// ===============
  admin := protected.Group("/admin")
  admin.Use(cfg.AuthMiddleware.RequireAdmin())
  admin.PUT("/users/:userId/role", cfg.AdminHandler.UpdateUserRole)
  admin.DELETE("/users/:userId", cfg.AdminHandler.DeleteUser)
  admin.POST("/announcements", cfg.AnnouncementHandler.Create)
  admin.PUT("/announcements/:announcementId", cfg.AnnouncementHandler.Update)
  admin.PUT("/announcements/:announcementId/toggle", cfg.AnnouncementHandler.ToggleStatus)
  admin.DELETE("/announcements/:announcementId", cfg.AnnouncementHandler.Delete)

  return router
}
