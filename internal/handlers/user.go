package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type UserHandler struct {
  userService        services.UserService
  achievementService services.AchievementService
}

func NewUserHandler(userService services.UserService, achievementService services.AchievementService) *UserHandler {
  return &UserHandler{userService: userService, achievementService: achievementService}
}

// Me returns the profile with the badge list. Badge evaluation runs here as
// a catch-up pass, so badges earned while award calls failed still appear.
func (uh *UserHandler) Me(c *gin.Context) {
  user, err := uh.userService.GetMe(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  badges, bErr := uh.achievementService.CheckAndAwardBadges(c.Request.Context(), user.ID)
  if bErr != nil {
    RespondServiceError(c, bErr)
    return
  }
  RespondOK(c, gin.H{"user": user, "badges": badges})
}

func (uh *UserHandler) UpdateAnonymousName(c *gin.Context) {
  var req struct {
    AnonymousName string `json:"anonymous_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  user, err := uh.userService.UpdateAnonymousName(c.Request.Context(), req.AnonymousName)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}
