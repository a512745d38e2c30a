package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type UserBadgeRepo interface {
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserBadge, error)
  NamesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]string, error)
  CreateIgnoreDuplicates(ctx context.Context, tx *gorm.DB, badge *types.UserBadge) (int64, error)
}

type userBadgeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserBadgeRepo(db *gorm.DB, baseLog *logger.Logger) UserBadgeRepo {
  repoLog := baseLog.With("repo", "UserBadgeRepo")
  return &userBadgeRepo{db: db, log: repoLog}
}

func (br *userBadgeRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserBadge, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  var results []*types.UserBadge
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("earned_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (br *userBadgeRepo) NamesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]string, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  var names []string
  if err := transaction.WithContext(ctx).
    Model(&types.UserBadge{}).
    Where("user_id = ?", userID).
    Order("earned_at ASC").
    Pluck("name", &names).Error; err != nil {
    return nil, err
  }
  return names, nil
}

// CreateIgnoreDuplicates races safely against a concurrent evaluation of the
// same user: the conflict target is the (user_id, name) unique index, and a
// zero row count tells the caller the badge was already there.
func (br *userBadgeRepo) CreateIgnoreDuplicates(ctx context.Context, tx *gorm.DB, badge *types.UserBadge) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = br.db
  }

  res := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
      DoNothing: true,
    }).
    Create(badge)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}
