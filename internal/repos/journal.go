package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type JournalRepo interface {
  Create(ctx context.Context, tx *gorm.DB, journal *types.Journal) (*types.Journal, error)
  GetByID(ctx context.Context, tx *gorm.DB, journalID uuid.UUID) (*types.Journal, error)
  List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, search, mood string, offset, limit int) ([]*types.Journal, error)
  Count(ctx context.Context, tx *gorm.DB, userID uuid.UUID, search, mood string) (int64, error)
  Update(ctx context.Context, tx *gorm.DB, journal *types.Journal) error
  Delete(ctx context.Context, tx *gorm.DB, journalID uuid.UUID) error
  DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
  CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type journalRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewJournalRepo(db *gorm.DB, baseLog *logger.Logger) JournalRepo {
  repoLog := baseLog.With("repo", "JournalRepo")
  return &journalRepo{db: db, log: repoLog}
}

func (jr *journalRepo) Create(ctx context.Context, tx *gorm.DB, journal *types.Journal) (*types.Journal, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  if err := transaction.WithContext(ctx).Create(journal).Error; err != nil {
    return nil, err
  }
  return journal, nil
}

func (jr *journalRepo) GetByID(ctx context.Context, tx *gorm.DB, journalID uuid.UUID) (*types.Journal, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var result types.Journal
  err := transaction.WithContext(ctx).
    Where("id = ?", journalID).
    First(&result).Error
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (jr *journalRepo) filtered(ctx context.Context, transaction *gorm.DB, userID uuid.UUID, search, mood string) *gorm.DB {
  q := transaction.WithContext(ctx).Model(&types.Journal{}).Where("user_id = ?", userID)
  if search != "" {
    q = q.Where("title ILIKE ? OR content ILIKE ?", "%"+search+"%", "%"+search+"%")
  }
  if mood != "" {
    q = q.Where("mood = ?", mood)
  }
  return q
}

func (jr *journalRepo) List(ctx context.Context, tx *gorm.DB, userID uuid.UUID, search, mood string, offset, limit int) ([]*types.Journal, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var results []*types.Journal
  if err := jr.filtered(ctx, transaction, userID, search, mood).
    Order("created_at DESC").
    Offset(offset).
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (jr *journalRepo) Count(ctx context.Context, tx *gorm.DB, userID uuid.UUID, search, mood string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var count int64
  if err := jr.filtered(ctx, transaction, userID, search, mood).Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (jr *journalRepo) Update(ctx context.Context, tx *gorm.DB, journal *types.Journal) error {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  return transaction.WithContext(ctx).Save(journal).Error
}

func (jr *journalRepo) Delete(ctx context.Context, tx *gorm.DB, journalID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", journalID).
    Delete(&types.Journal{}).Error
}

func (jr *journalRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  return transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Delete(&types.Journal{}).Error
}

func (jr *journalRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Journal{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (jr *journalRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Journal{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
