package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type AnnouncementRepo interface {
  Create(ctx context.Context, tx *gorm.DB, announcement *types.Announcement) (*types.Announcement, error)
  GetByID(ctx context.Context, tx *gorm.DB, announcementID uuid.UUID) (*types.Announcement, error)
  ListActive(ctx context.Context, tx *gorm.DB, now time.Time, limit int) ([]*types.Announcement, error)
  ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Announcement, error)
  Update(ctx context.Context, tx *gorm.DB, announcement *types.Announcement) error
  Delete(ctx context.Context, tx *gorm.DB, announcementID uuid.UUID) error
}

type announcementRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAnnouncementRepo(db *gorm.DB, baseLog *logger.Logger) AnnouncementRepo {
  repoLog := baseLog.With("repo", "AnnouncementRepo")
  return &announcementRepo{db: db, log: repoLog}
}

func (ar *announcementRepo) Create(ctx context.Context, tx *gorm.DB, announcement *types.Announcement) (*types.Announcement, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if err := transaction.WithContext(ctx).Create(announcement).Error; err != nil {
    return nil, err
  }
  return announcement, nil
}

func (ar *announcementRepo) GetByID(ctx context.Context, tx *gorm.DB, announcementID uuid.UUID) (*types.Announcement, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var result types.Announcement
  err := transaction.WithContext(ctx).
    Preload("CreatedBy").
    Where("id = ?", announcementID).
    First(&result).Error
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (ar *announcementRepo) ListActive(ctx context.Context, tx *gorm.DB, now time.Time, limit int) ([]*types.Announcement, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.Announcement
  if err := transaction.WithContext(ctx).
    Preload("CreatedBy").
    Where("is_active = ?", true).
    Where("expires_at IS NULL OR expires_at > ?", now).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ar *announcementRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Announcement, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.Announcement
  if err := transaction.WithContext(ctx).
    Preload("CreatedBy").
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ar *announcementRepo) Update(ctx context.Context, tx *gorm.DB, announcement *types.Announcement) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  return transaction.WithContext(ctx).Save(announcement).Error
}

func (ar *announcementRepo) Delete(ctx context.Context, tx *gorm.DB, announcementID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", announcementID).
    Delete(&types.Announcement{}).Error
}
