package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type AnnouncementHandler struct {
  announcementService services.AnnouncementService
}

func NewAnnouncementHandler(announcementService services.AnnouncementService) *AnnouncementHandler {
  return &AnnouncementHandler{announcementService: announcementService}
}

func (ah *AnnouncementHandler) ListActive(c *gin.Context) {
  announcements, err := ah.announcementService.ListActive(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"announcements": announcements})
}

func (ah *AnnouncementHandler) ListAll(c *gin.Context) {
  announcements, err := ah.announcementService.ListAll(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"announcements": announcements})
}

func (ah *AnnouncementHandler) Create(c *gin.Context) {
  var req services.AnnouncementInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  announcement, err := ah.announcementService.Create(c.Request.Context(), req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"announcement": announcement})
}

func (ah *AnnouncementHandler) Update(c *gin.Context) {
  announcementID, ok := pathUUID(c, "announcementId")
  if !ok {
    return
  }
  var req services.AnnouncementInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  announcement, err := ah.announcementService.Update(c.Request.Context(), announcementID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"announcement": announcement})
}

func (ah *AnnouncementHandler) ToggleStatus(c *gin.Context) {
  announcementID, ok := pathUUID(c, "announcementId")
  if !ok {
    return
  }
  announcement, err := ah.announcementService.ToggleStatus(c.Request.Context(), announcementID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"announcement": announcement})
}

func (ah *AnnouncementHandler) Delete(c *gin.Context) {
  announcementID, ok := pathUUID(c, "announcementId")
  if !ok {
    return
  }
  if err := ah.announcementService.Delete(c.Request.Context(), announcementID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "announcement deleted"})
}
