package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type JournalHandler struct {
  journalService services.JournalService
}

func NewJournalHandler(journalService services.JournalService) *JournalHandler {
  return &JournalHandler{journalService: journalService}
}

func (jh *JournalHandler) Create(c *gin.Context) {
  var req services.JournalInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  journal, err := jh.journalService.Create(c.Request.Context(), req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"journal": journal})
}

func (jh *JournalHandler) List(c *gin.Context) {
  page, _ := strconv.Atoi(c.Query("page"))
  limit, _ := strconv.Atoi(c.Query("limit"))

  result, err := jh.journalService.List(c.Request.Context(), c.Query("search"), c.Query("mood"), page, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}

func (jh *JournalHandler) Get(c *gin.Context) {
  journalID, ok := pathUUID(c, "journalId")
  if !ok {
    return
  }
  journal, err := jh.journalService.Get(c.Request.Context(), journalID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"journal": journal})
}

func (jh *JournalHandler) Update(c *gin.Context) {
  journalID, ok := pathUUID(c, "journalId")
  if !ok {
    return
  }
  var req services.JournalInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  journal, err := jh.journalService.Update(c.Request.Context(), journalID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"journal": journal})
}

func (jh *JournalHandler) Delete(c *gin.Context) {
  journalID, ok := pathUUID(c, "journalId")
  if !ok {
    return
  }
  if err := jh.journalService.Delete(c.Request.Context(), journalID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "journal entry deleted"})
}
