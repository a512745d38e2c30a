package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type PostReactionRepo interface {
  GetByPostAndUser(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (*types.PostReaction, error)
  Create(ctx context.Context, tx *gorm.DB, reaction *types.PostReaction) (*types.PostReaction, error)
  UpdateType(ctx context.Context, tx *gorm.DB, reactionID uuid.UUID, reactionType string) error
  Delete(ctx context.Context, tx *gorm.DB, reactionID uuid.UUID) error
  // CountByUserID equals the number of distinct posts the user has reacted
  // to, because the (post_id, user_id) unique index caps reactions at one
  // per post.
  CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type postReactionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostReactionRepo(db *gorm.DB, baseLog *logger.Logger) PostReactionRepo {
  repoLog := baseLog.With("repo", "PostReactionRepo")
  return &postReactionRepo{db: db, log: repoLog}
}

func (rr *postReactionRepo) GetByPostAndUser(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (*types.PostReaction, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var result types.PostReaction
  err := transaction.WithContext(ctx).
    Where("post_id = ? AND user_id = ?", postID, userID).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (rr *postReactionRepo) Create(ctx context.Context, tx *gorm.DB, reaction *types.PostReaction) (*types.PostReaction, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Create(reaction).Error; err != nil {
    return nil, err
  }
  return reaction, nil
}

func (rr *postReactionRepo) UpdateType(ctx context.Context, tx *gorm.DB, reactionID uuid.UUID, reactionType string) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.PostReaction{}).
    Where("id = ?", reactionID).
    Update("type", reactionType).Error
}

func (rr *postReactionRepo) Delete(ctx context.Context, tx *gorm.DB, reactionID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", reactionID).
    Delete(&types.PostReaction{}).Error
}

func (rr *postReactionRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.PostReaction{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
