package handlers

import (
  "time"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type QuoteHandler struct {
  quoteService services.QuoteService
}

func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
  return &QuoteHandler{quoteService: quoteService}
}

func (qh *QuoteHandler) Daily(c *gin.Context) {
  RespondOK(c, gin.H{"quote": qh.quoteService.DailyQuote(time.Now())})
}
