package services

import (
  "context"
  "encoding/json"
  "errors"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/mindnest/mindnest-backend/internal/achievements"
  "github.com/mindnest/mindnest-backend/internal/normalization"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/types"
)

const (
  journalTitleMaxLength = 200
  journalDefaultLimit   = 10
  journalMaxLimit       = 50
)

type JournalInput struct {
  Title     string   `json:"title"`
  Content   string   `json:"content"`
  Mood      string   `json:"mood"`
  Tags      []string `json:"tags"`
  IsPrivate *bool    `json:"is_private"`
}

type JournalPage struct {
  Journals   []*types.Journal `json:"journals"`
  Total      int64            `json:"total"`
  Page       int              `json:"page"`
  TotalPages int              `json:"total_pages"`
}

type JournalService interface {
  Create(ctx context.Context, input JournalInput) (*types.Journal, error)
  Get(ctx context.Context, journalID uuid.UUID) (*types.Journal, error)
  List(ctx context.Context, search, mood string, page, limit int) (*JournalPage, error)
  Update(ctx context.Context, journalID uuid.UUID, input JournalInput) (*types.Journal, error)
  Delete(ctx context.Context, journalID uuid.UUID) error
}

type journalService struct {
  db                 *gorm.DB
  log                *logger.Logger
  journalRepo        repos.JournalRepo
  achievementService AchievementService
}

func NewJournalService(db *gorm.DB, baseLog *logger.Logger, journalRepo repos.JournalRepo, achievementService AchievementService) JournalService {
  serviceLog := baseLog.With("service", "JournalService")
  return &journalService{db: db, log: serviceLog, journalRepo: journalRepo, achievementService: achievementService}
}

func validateJournalInput(input JournalInput) (JournalInput, error) {
  input.Title = normalization.TrimInputString(input.Title)
  input.Content = normalization.TrimInputString(input.Content)
  if input.Title == "" {
    return input, invalidInput("Journal title is required")
  }
  if len(input.Title) > journalTitleMaxLength {
    return input, invalidInput("Journal title must be at most 200 characters")
  }
  if input.Content == "" {
    return input, invalidInput("Journal content is required")
  }
  if input.Mood != "" && !types.ValidMoodCategory(input.Mood) {
    return input, invalidInput("Invalid mood category")
  }
  return input, nil
}

func tagsJSON(tags []string) (datatypes.JSON, error) {
  if tags == nil {
    tags = []string{}
  }
  raw, err := json.Marshal(tags)
  if err != nil {
    return nil, err
  }
  return datatypes.JSON(raw), nil
}

func (js *journalService) Create(ctx context.Context, input JournalInput) (*types.Journal, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  input, vErr := validateJournalInput(input)
  if vErr != nil {
    return nil, vErr
  }

  tags, tErr := tagsJSON(input.Tags)
  if tErr != nil {
    return nil, tErr
  }

  isPrivate := true
  if input.IsPrivate != nil {
    isPrivate = *input.IsPrivate
  }

  journal := &types.Journal{
    ID:        uuid.New(),
    UserID:    userID,
    Title:     input.Title,
    Content:   input.Content,
    Mood:      input.Mood,
    Tags:      tags,
    IsPrivate: isPrivate,
  }
  if _, cErr := js.journalRepo.Create(ctx, nil, journal); cErr != nil {
    return nil, cErr
  }

  if _, awErr := js.achievementService.AwardPoints(ctx, userID, achievements.PointsCreateJournal); awErr != nil {
    js.log.Warn("points award failed", "user_id", userID, "error", awErr)
  }
  return journal, nil
}

func (js *journalService) Get(ctx context.Context, journalID uuid.UUID) (*types.Journal, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  return js.getOwnedJournal(ctx, journalID, userID)
}

func (js *journalService) List(ctx context.Context, search, mood string, page, limit int) (*JournalPage, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if page < 1 {
    page = 1
  }
  if limit <= 0 {
    limit = journalDefaultLimit
  }
  if limit > journalMaxLimit {
    limit = journalMaxLimit
  }
  if mood != "" && !types.ValidMoodCategory(mood) {
    return nil, invalidInput("Invalid mood category")
  }

  offset := (page - 1) * limit
  journals, lErr := js.journalRepo.List(ctx, nil, userID, search, mood, offset, limit)
  if lErr != nil {
    return nil, lErr
  }
  total, cErr := js.journalRepo.Count(ctx, nil, userID, search, mood)
  if cErr != nil {
    return nil, cErr
  }

  totalPages := int((total + int64(limit) - 1) / int64(limit))
  return &JournalPage{Journals: journals, Total: total, Page: page, TotalPages: totalPages}, nil
}

func (js *journalService) Update(ctx context.Context, journalID uuid.UUID, input JournalInput) (*types.Journal, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  input, vErr := validateJournalInput(input)
  if vErr != nil {
    return nil, vErr
  }

  journal, gErr := js.getOwnedJournal(ctx, journalID, userID)
  if gErr != nil {
    return nil, gErr
  }

  tags, tErr := tagsJSON(input.Tags)
  if tErr != nil {
    return nil, tErr
  }

  journal.Title = input.Title
  journal.Content = input.Content
  journal.Mood = input.Mood
  journal.Tags = tags
  if input.IsPrivate != nil {
    journal.IsPrivate = *input.IsPrivate
  }

  if uErr := js.journalRepo.Update(ctx, nil, journal); uErr != nil {
    return nil, uErr
  }
  return journal, nil
}

func (js *journalService) Delete(ctx context.Context, journalID uuid.UUID) error {
  userID, err := currentUserID(ctx)
  if err != nil {
    return err
  }
  if _, gErr := js.getOwnedJournal(ctx, journalID, userID); gErr != nil {
    return gErr
  }
  return js.journalRepo.Delete(ctx, nil, journalID)
}

func (js *journalService) getOwnedJournal(ctx context.Context, journalID, userID uuid.UUID) (*types.Journal, error) {
  journal, err := js.journalRepo.GetByID(ctx, nil, journalID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrJournalNotFound
    }
    return nil, err
  }
  if journal.UserID != userID {
    return nil, ErrNotAuthorized
  }
  return journal, nil
}
