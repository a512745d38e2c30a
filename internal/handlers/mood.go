package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type MoodHandler struct {
  moodService services.MoodService
}

func NewMoodHandler(moodService services.MoodService) *MoodHandler {
  return &MoodHandler{moodService: moodService}
}

func (mh *MoodHandler) Create(c *gin.Context) {
  var req services.MoodInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  mood, err := mh.moodService.Create(c.Request.Context(), req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"mood": mood})
}

func (mh *MoodHandler) List(c *gin.Context) {
  var from, to *time.Time
  if raw := c.Query("from"); raw != "" {
    t, err := time.Parse(time.RFC3339, raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_query", errors.New("invalid from date"))
      return
    }
    from = &t
  }
  if raw := c.Query("to"); raw != "" {
    t, err := time.Parse(time.RFC3339, raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_query", errors.New("invalid to date"))
      return
    }
    to = &t
  }
  limit, _ := strconv.Atoi(c.Query("limit"))

  moods, err := mh.moodService.List(c.Request.Context(), from, to, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"moods": moods})
}

func (mh *MoodHandler) Analytics(c *gin.Context) {
  windowDays, _ := strconv.Atoi(c.Query("days"))
  analytics, err := mh.moodService.GetAnalytics(c.Request.Context(), windowDays)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"analytics": analytics})
}

func (mh *MoodHandler) Update(c *gin.Context) {
  moodID, ok := pathUUID(c, "moodId")
  if !ok {
    return
  }
  var req services.MoodInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  mood, err := mh.moodService.Update(c.Request.Context(), moodID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"mood": mood})
}

func (mh *MoodHandler) Delete(c *gin.Context) {
  moodID, ok := pathUUID(c, "moodId")
  if !ok {
    return
  }
  if err := mh.moodService.Delete(c.Request.Context(), moodID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "mood entry deleted"})
}
