package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type PostRepo interface {
  Create(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error)
  GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error)
  ListModerated(ctx context.Context, tx *gorm.DB) ([]*types.Post, error)
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Post, error)
  ListAll(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Post, error)
  UpdateContent(ctx context.Context, tx *gorm.DB, postID uuid.UUID, content string) error
  SetModerated(ctx context.Context, tx *gorm.DB, postID uuid.UUID, moderated bool) error
  Delete(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error
  DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
  CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
  Recent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Post, error)
}

type postRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
  repoLog := baseLog.With("repo", "PostRepo")
  return &postRepo{db: db, log: repoLog}
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if err := transaction.WithContext(ctx).Create(post).Error; err != nil {
    return nil, err
  }
  return post, nil
}

func (pr *postRepo) GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Post
  err := transaction.WithContext(ctx).
    Preload("Comments", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at ASC")
    }).
    Preload("Reactions").
    Where("id = ?", postID).
    First(&result).Error
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (pr *postRepo) ListModerated(ctx context.Context, tx *gorm.DB) ([]*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Post
  err := transaction.WithContext(ctx).
    Preload("Comments", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at ASC")
    }).
    Preload("Reactions").
    Preload("User.Badges").
    Where("is_moderated = ?", true).
    Order("created_at DESC").
    Find(&results).Error
  if err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *postRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Post
  err := transaction.WithContext(ctx).
    Preload("Comments", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at ASC")
    }).
    Preload("Reactions").
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error
  if err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *postRepo) ListAll(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Post
  err := transaction.WithContext(ctx).
    Preload("User").
    Preload("Reports").
    Order("created_at DESC").
    Offset(offset).
    Limit(limit).
    Find(&results).Error
  if err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *postRepo) UpdateContent(ctx context.Context, tx *gorm.DB, postID uuid.UUID, content string) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Post{}).
    Where("id = ?", postID).
    Update("content", content).Error
}

func (pr *postRepo) SetModerated(ctx context.Context, tx *gorm.DB, postID uuid.UUID, moderated bool) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Post{}).
    Where("id = ?", postID).
    Update("is_moderated", moderated).Error
}

func (pr *postRepo) Delete(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", postID).
    Delete(&types.Post{}).Error
}

func (pr *postRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  return transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Delete(&types.Post{}).Error
}

func (pr *postRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Post{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (pr *postRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Post{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (pr *postRepo) Recent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Post, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Post
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
