package handlers

import (
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type LeaderboardHandler struct {
  leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
  return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (lh *LeaderboardHandler) Top(c *gin.Context) {
  limit, _ := strconv.Atoi(c.Query("limit"))
  entries, err := lh.leaderboardService.Top(c.Request.Context(), limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"leaderboard": entries})
}
