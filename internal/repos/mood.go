package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type MoodRepo interface {
  Create(ctx context.Context, tx *gorm.DB, mood *types.Mood) (*types.Mood, error)
  GetByID(ctx context.Context, tx *gorm.DB, moodID uuid.UUID) (*types.Mood, error)
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to *time.Time, limit int) ([]*types.Mood, error)
  ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.Mood, error)
  RecentDates(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]time.Time, error)
  Update(ctx context.Context, tx *gorm.DB, mood *types.Mood) error
  Delete(ctx context.Context, tx *gorm.DB, moodID uuid.UUID) error
  DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
  CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type moodRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMoodRepo(db *gorm.DB, baseLog *logger.Logger) MoodRepo {
  repoLog := baseLog.With("repo", "MoodRepo")
  return &moodRepo{db: db, log: repoLog}
}

func (mr *moodRepo) Create(ctx context.Context, tx *gorm.DB, mood *types.Mood) (*types.Mood, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  if err := transaction.WithContext(ctx).Create(mood).Error; err != nil {
    return nil, err
  }
  return mood, nil
}

func (mr *moodRepo) GetByID(ctx context.Context, tx *gorm.DB, moodID uuid.UUID) (*types.Mood, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var result types.Mood
  err := transaction.WithContext(ctx).
    Where("id = ?", moodID).
    First(&result).Error
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (mr *moodRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to *time.Time, limit int) ([]*types.Mood, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  q := transaction.WithContext(ctx).Where("user_id = ?", userID)
  if from != nil {
    q = q.Where("date >= ?", *from)
  }
  if to != nil {
    q = q.Where("date <= ?", *to)
  }

  var results []*types.Mood
  if err := q.Order("date DESC").Limit(limit).Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (mr *moodRepo) ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.Mood, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var results []*types.Mood
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND date >= ?", userID, since).
    Order("date ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// RecentDates returns the dates of the user's most recent mood records, not
// distinct days. The consecutive-days badge checks records exactly the way
// they were logged.
func (mr *moodRepo) RecentDates(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]time.Time, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var dates []time.Time
  if err := transaction.WithContext(ctx).
    Model(&types.Mood{}).
    Where("user_id = ?", userID).
    Order("date DESC").
    Limit(limit).
    Pluck("date", &dates).Error; err != nil {
    return nil, err
  }
  return dates, nil
}

func (mr *moodRepo) Update(ctx context.Context, tx *gorm.DB, mood *types.Mood) error {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  return transaction.WithContext(ctx).Save(mood).Error
}

func (mr *moodRepo) Delete(ctx context.Context, tx *gorm.DB, moodID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", moodID).
    Delete(&types.Mood{}).Error
}

func (mr *moodRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  return transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Delete(&types.Mood{}).Error
}

func (mr *moodRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Mood{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (mr *moodRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Mood{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
