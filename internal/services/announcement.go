package services

import (
  "context"
  "errors"
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/mindnest/mindnest-backend/internal/normalization"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/types"
)

const announcementListLimit = 20

type AnnouncementInput struct {
  Title     string     `json:"title"`
  Content   string     `json:"content"`
  Type      string     `json:"type"`
  IsActive  *bool      `json:"is_active"`
  ExpiresAt *time.Time `json:"expires_at"`
}

type AnnouncementService interface {
  ListActive(ctx context.Context) ([]*types.Announcement, error)
  ListAll(ctx context.Context) ([]*types.Announcement, error)
  Create(ctx context.Context, input AnnouncementInput) (*types.Announcement, error)
  Update(ctx context.Context, announcementID uuid.UUID, input AnnouncementInput) (*types.Announcement, error)
  ToggleStatus(ctx context.Context, announcementID uuid.UUID) (*types.Announcement, error)
  Delete(ctx context.Context, announcementID uuid.UUID) error
}

type announcementService struct {
  db               *gorm.DB
  log              *logger.Logger
  announcementRepo repos.AnnouncementRepo
}

func NewAnnouncementService(db *gorm.DB, baseLog *logger.Logger, announcementRepo repos.AnnouncementRepo) AnnouncementService {
  serviceLog := baseLog.With("service", "AnnouncementService")
  return &announcementService{db: db, log: serviceLog, announcementRepo: announcementRepo}
}

func (as *announcementService) ListActive(ctx context.Context) ([]*types.Announcement, error) {
  return as.announcementRepo.ListActive(ctx, nil, time.Now(), announcementListLimit)
}

func (as *announcementService) ListAll(ctx context.Context) ([]*types.Announcement, error) {
  return as.announcementRepo.ListAll(ctx, nil)
}

func (as *announcementService) Create(ctx context.Context, input AnnouncementInput) (*types.Announcement, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  input.Title = normalization.TrimInputString(input.Title)
  input.Content = normalization.TrimInputString(input.Content)
  if input.Title == "" || input.Content == "" {
    return nil, invalidInput("Announcement title and content are required")
  }
  announcementType := input.Type
  if announcementType == "" {
    announcementType = types.AnnouncementDefault
  }
  if !types.ValidAnnouncementType(announcementType) {
    return nil, invalidInput("Invalid announcement type")
  }

  isActive := true
  if input.IsActive != nil {
    isActive = *input.IsActive
  }

  announcement := &types.Announcement{
    ID:          uuid.New(),
    Title:       input.Title,
    Content:     input.Content,
    Type:        announcementType,
    IsActive:    isActive,
    CreatedByID: userID,
    ExpiresAt:   input.ExpiresAt,
  }
  if _, cErr := as.announcementRepo.Create(ctx, nil, announcement); cErr != nil {
    return nil, cErr
  }
  as.log.Info("announcement created", "announcement_id", announcement.ID, "type", announcement.Type)
  return announcement, nil
}

func (as *announcementService) Update(ctx context.Context, announcementID uuid.UUID, input AnnouncementInput) (*types.Announcement, error) {
  announcement, gErr := as.getAnnouncement(ctx, announcementID)
  if gErr != nil {
    return nil, gErr
  }

  if title := normalization.TrimInputString(input.Title); title != "" {
    announcement.Title = title
  }
  if content := normalization.TrimInputString(input.Content); content != "" {
    announcement.Content = content
  }
  if input.Type != "" {
    if !types.ValidAnnouncementType(input.Type) {
      return nil, invalidInput("Invalid announcement type")
    }
    announcement.Type = input.Type
  }
  if input.IsActive != nil {
    announcement.IsActive = *input.IsActive
  }
  if input.ExpiresAt != nil {
    announcement.ExpiresAt = input.ExpiresAt
  }

  if uErr := as.announcementRepo.Update(ctx, nil, announcement); uErr != nil {
    return nil, uErr
  }
  return announcement, nil
}

func (as *announcementService) ToggleStatus(ctx context.Context, announcementID uuid.UUID) (*types.Announcement, error) {
  announcement, gErr := as.getAnnouncement(ctx, announcementID)
  if gErr != nil {
    return nil, gErr
  }
  announcement.IsActive = !announcement.IsActive
  if uErr := as.announcementRepo.Update(ctx, nil, announcement); uErr != nil {
    return nil, uErr
  }
  as.log.Info("announcement status toggled", "announcement_id", announcementID, "is_active", announcement.IsActive)
  return announcement, nil
}

func (as *announcementService) Delete(ctx context.Context, announcementID uuid.UUID) error {
  if _, gErr := as.getAnnouncement(ctx, announcementID); gErr != nil {
    return gErr
  }
  return as.announcementRepo.Delete(ctx, nil, announcementID)
}

func (as *announcementService) getAnnouncement(ctx context.Context, announcementID uuid.UUID) (*types.Announcement, error) {
  announcement, err := as.announcementRepo.GetByID(ctx, nil, announcementID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrAnnouncementNotFound
    }
    return nil, err
  }
  return announcement, nil
}
