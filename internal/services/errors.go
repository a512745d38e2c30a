package services

import (
  "errors"
  "net/http"

  "github.com/mindnest/mindnest-backend/internal/platform/apierr"
)

// Service-level sentinels. Handlers unwrap these with errors.As to pick the
// response status; anything else surfaces as a 500.
var (
  ErrUserNotFound         = apierr.New(http.StatusNotFound, "user_not_found", errors.New("user not found"))
  ErrPostNotFound         = apierr.New(http.StatusNotFound, "post_not_found", errors.New("post not found"))
  ErrMoodNotFound         = apierr.New(http.StatusNotFound, "mood_not_found", errors.New("mood entry not found"))
  ErrJournalNotFound      = apierr.New(http.StatusNotFound, "journal_not_found", errors.New("journal entry not found"))
  ErrAnnouncementNotFound = apierr.New(http.StatusNotFound, "announcement_not_found", errors.New("announcement not found"))
  ErrReportNotFound       = apierr.New(http.StatusNotFound, "report_not_found", errors.New("report not found"))
  ErrNotAuthorized        = apierr.New(http.StatusForbidden, "forbidden", errors.New("not authorized"))
  ErrNotAuthenticated     = apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
)

func invalidInput(msg string) error {
  return apierr.New(http.StatusBadRequest, "invalid_input", errors.New(msg))
}

func conflict(msg string) error {
  return apierr.New(http.StatusBadRequest, "conflict", errors.New(msg))
}
