package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type UserRepo interface {
  Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error)
  GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, userEmail string) (*types.User, error)
  EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error)
  IncrementPoints(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta int) (int64, error)
  GetPoints(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int, error)
  UpdateAnonymousName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) (int64, error)
  UpdateRole(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role string) error
  SetActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID, active bool) error
  Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  List(ctx context.Context, tx *gorm.DB, role, search string, offset, limit int) ([]*types.User, error)
  Count(ctx context.Context, tx *gorm.DB, role, search string) (int64, error)
  Recent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.User, error)
  TopByPoints(ctx context.Context, tx *gorm.DB, limit int) ([]*types.User, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if len(users) == 0 {
    return []*types.User{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
    return nil, err
  }

  return users, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var result types.User
  err := transaction.WithContext(ctx).
    Preload("Badges", func(db *gorm.DB) *gorm.DB {
      return db.Order("earned_at ASC")
    }).
    Where("id = ?", userID).
    First(&result).Error
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, userEmail string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var result types.User
  err := transaction.WithContext(ctx).
    Where("email = ?", userEmail).
    First(&result).Error
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var count int64

  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("email = ?", userEmail).
    Count(&count).Error; err != nil {
    return false, err
  }
  exists := count > 0
  return exists, nil
}

// IncrementPoints is an atomic storage-level increment; concurrent awards to
// the same user serialize on the row and none are lost. The returned row
// count is zero when the user does not exist.
func (ur *userRepo) IncrementPoints(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta int) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", userID).
    UpdateColumn("points", gorm.Expr("points + ?", delta))
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

func (ur *userRepo) GetPoints(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var points int
  err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", userID).
    Pluck("points", &points).Error
  if err != nil {
    return 0, err
  }
  return points, nil
}

func (ur *userRepo) UpdateAnonymousName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", userID).
    Update("anonymous_name", name)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

func (ur *userRepo) UpdateRole(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role string) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  return transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", userID).
    Update("role", role).Error
}

func (ur *userRepo) SetActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID, active bool) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  return transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", userID).
    Update("is_active", active).Error
}

func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", userID).
    Delete(&types.User{}).Error
}

func (ur *userRepo) List(ctx context.Context, tx *gorm.DB, role, search string, offset, limit int) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  q := transaction.WithContext(ctx).Model(&types.User{})
  if role != "" {
    q = q.Where("role = ?", role)
  }
  if search != "" {
    q = q.Where("email ILIKE ?", "%"+search+"%")
  }

  var results []*types.User
  if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ur *userRepo) Count(ctx context.Context, tx *gorm.DB, role, search string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  q := transaction.WithContext(ctx).Model(&types.User{})
  if role != "" {
    q = q.Where("role = ?", role)
  }
  if search != "" {
    q = q.Where("email ILIKE ?", "%"+search+"%")
  }

  var count int64
  if err := q.Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (ur *userRepo) Recent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var results []*types.User
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ur *userRepo) TopByPoints(ctx context.Context, tx *gorm.DB, limit int) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var results []*types.User
  if err := transaction.WithContext(ctx).
    Where("is_active = ?", true).
    Order("points DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
