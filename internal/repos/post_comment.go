package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type PostCommentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, comment *types.PostComment) (*types.PostComment, error)
  // CountDistinctPostsByUserID counts the posts a user has commented on at
  // least once. Several comments on the same post count it once; this is
  // the measure the Conversation Starter badge uses.
  CountDistinctPostsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type postCommentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostCommentRepo(db *gorm.DB, baseLog *logger.Logger) PostCommentRepo {
  repoLog := baseLog.With("repo", "PostCommentRepo")
  return &postCommentRepo{db: db, log: repoLog}
}

func (cr *postCommentRepo) Create(ctx context.Context, tx *gorm.DB, comment *types.PostComment) (*types.PostComment, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).Create(comment).Error; err != nil {
    return nil, err
  }
  return comment, nil
}

func (cr *postCommentRepo) CountDistinctPostsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.PostComment{}).
    Where("user_id = ?", userID).
    Distinct("post_id").
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
