package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type PostReportRepo interface {
  Create(ctx context.Context, tx *gorm.DB, report *types.PostReport) (*types.PostReport, error)
  HasPendingByPostAndUser(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error)
  ListByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.PostReport, error)
  UpdateStatus(ctx context.Context, tx *gorm.DB, reportID uuid.UUID, status string) (int64, error)
}

type postReportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostReportRepo(db *gorm.DB, baseLog *logger.Logger) PostReportRepo {
  repoLog := baseLog.With("repo", "PostReportRepo")
  return &postReportRepo{db: db, log: repoLog}
}

func (rr *postReportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.PostReport) (*types.PostReport, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
    return nil, err
  }
  return report, nil
}

func (rr *postReportRepo) HasPendingByPostAndUser(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.PostReport{}).
    Where("post_id = ? AND user_id = ? AND status = ?", postID, userID, types.ReportStatusPending).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (rr *postReportRepo) ListByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.PostReport, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.PostReport
  if err := transaction.WithContext(ctx).
    Preload("Post").
    Preload("Post.User").
    Where("status = ?", status).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *postReportRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, reportID uuid.UUID, status string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.PostReport{}).
    Where("id = ?", reportID).
    Update("status", status)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}
