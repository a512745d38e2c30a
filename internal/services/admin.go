package services

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/types"
)

const (
  adminDefaultPageSize = 20
  adminMaxPageSize     = 100
  dashboardRecentLimit = 5
)

type DashboardStats struct {
  TotalUsers    int64         `json:"total_users"`
  TotalPosts    int64         `json:"total_posts"`
  TotalMoods    int64         `json:"total_moods"`
  TotalJournals int64         `json:"total_journals"`
  RecentUsers   []*types.User `json:"recent_users"`
  RecentPosts   []*types.Post `json:"recent_posts"`
}

type UserPage struct {
  Users      []*types.User `json:"users"`
  Total      int64         `json:"total"`
  Page       int           `json:"page"`
  TotalPages int           `json:"total_pages"`
}

type PostPage struct {
  Posts      []*types.Post `json:"posts"`
  Total      int64         `json:"total"`
  Page       int           `json:"page"`
  TotalPages int           `json:"total_pages"`
}

type AdminService interface {
  GetDashboardStats(ctx context.Context) (*DashboardStats, error)
  ListUsers(ctx context.Context, role, search string, page, limit int) (*UserPage, error)
  UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (*types.User, error)
  ToggleUserStatus(ctx context.Context, userID uuid.UUID) (*types.User, error)
  DeleteUser(ctx context.Context, userID uuid.UUID) error
  ListPosts(ctx context.Context, page, limit int) (*PostPage, error)
  TogglePostModeration(ctx context.Context, postID uuid.UUID) (*types.Post, error)
  DeletePost(ctx context.Context, postID uuid.UUID) error
  ListReports(ctx context.Context, status string) ([]*types.PostReport, error)
  UpdateReportStatus(ctx context.Context, reportID uuid.UUID, status string) error
}

type adminService struct {
  db          *gorm.DB
  log         *logger.Logger
  userRepo    repos.UserRepo
  postRepo    repos.PostRepo
  moodRepo    repos.MoodRepo
  journalRepo repos.JournalRepo
  reportRepo  repos.PostReportRepo
}

func NewAdminService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  postRepo repos.PostRepo,
  moodRepo repos.MoodRepo,
  journalRepo repos.JournalRepo,
  reportRepo repos.PostReportRepo,
) AdminService {
  serviceLog := baseLog.With("service", "AdminService")
  return &adminService{
    db:          db,
    log:         serviceLog,
    userRepo:    userRepo,
    postRepo:    postRepo,
    moodRepo:    moodRepo,
    journalRepo: journalRepo,
    reportRepo:  reportRepo,
  }
}

func (as *adminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
  stats := &DashboardStats{}

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    n, err := as.userRepo.Count(gctx, nil, "", "")
    stats.TotalUsers = n
    return err
  })
  g.Go(func() error {
    n, err := as.postRepo.CountAll(gctx, nil)
    stats.TotalPosts = n
    return err
  })
  g.Go(func() error {
    n, err := as.moodRepo.CountAll(gctx, nil)
    stats.TotalMoods = n
    return err
  })
  g.Go(func() error {
    n, err := as.journalRepo.CountAll(gctx, nil)
    stats.TotalJournals = n
    return err
  })
  g.Go(func() error {
    users, err := as.userRepo.Recent(gctx, nil, dashboardRecentLimit)
    stats.RecentUsers = users
    return err
  })
  g.Go(func() error {
    posts, err := as.postRepo.Recent(gctx, nil, dashboardRecentLimit)
    stats.RecentPosts = posts
    return err
  })
  if err := g.Wait(); err != nil {
    return nil, err
  }
  return stats, nil
}

func clampPage(page, limit int) (int, int) {
  if page < 1 {
    page = 1
  }
  if limit <= 0 {
    limit = adminDefaultPageSize
  }
  if limit > adminMaxPageSize {
    limit = adminMaxPageSize
  }
  return page, limit
}

func (as *adminService) ListUsers(ctx context.Context, role, search string, page, limit int) (*UserPage, error) {
  if role != "" && !types.ValidRole(role) {
    return nil, invalidInput("Invalid role")
  }
  page, limit = clampPage(page, limit)

  users, err := as.userRepo.List(ctx, nil, role, search, (page-1)*limit, limit)
  if err != nil {
    return nil, err
  }
  total, cErr := as.userRepo.Count(ctx, nil, role, search)
  if cErr != nil {
    return nil, cErr
  }

  totalPages := int((total + int64(limit) - 1) / int64(limit))
  return &UserPage{Users: users, Total: total, Page: page, TotalPages: totalPages}, nil
}

func (as *adminService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (*types.User, error) {
  if !types.ValidRole(role) {
    return nil, invalidInput("Invalid role")
  }
  if _, err := as.getUser(ctx, userID); err != nil {
    return nil, err
  }
  if err := as.userRepo.UpdateRole(ctx, nil, userID, role); err != nil {
    return nil, err
  }
  as.log.Info("user role updated", "user_id", userID, "role", role)
  return as.getUser(ctx, userID)
}

func (as *adminService) ToggleUserStatus(ctx context.Context, userID uuid.UUID) (*types.User, error) {
  user, err := as.getUser(ctx, userID)
  if err != nil {
    return nil, err
  }
  if sErr := as.userRepo.SetActive(ctx, nil, userID, !user.IsActive); sErr != nil {
    return nil, sErr
  }
  as.log.Info("user status toggled", "user_id", userID, "is_active", !user.IsActive)
  return as.getUser(ctx, userID)
}

// DeleteUser removes the account and everything it authored in one
// transaction. Admin accounts cannot be deleted.
func (as *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
  user, err := as.getUser(ctx, userID)
  if err != nil {
    return err
  }
  if user.Role == types.RoleAdmin {
    return ErrNotAuthorized
  }

  return as.db.Transaction(func(tx *gorm.DB) error {
    if dErr := as.postRepo.DeleteByUserID(ctx, tx, userID); dErr != nil {
      return dErr
    }
    if dErr := as.moodRepo.DeleteByUserID(ctx, tx, userID); dErr != nil {
      return dErr
    }
    if dErr := as.journalRepo.DeleteByUserID(ctx, tx, userID); dErr != nil {
      return dErr
    }
    return as.userRepo.Delete(ctx, tx, userID)
  })
}

func (as *adminService) ListPosts(ctx context.Context, page, limit int) (*PostPage, error) {
  page, limit = clampPage(page, limit)

  posts, err := as.postRepo.ListAll(ctx, nil, (page-1)*limit, limit)
  if err != nil {
    return nil, err
  }
  total, cErr := as.postRepo.CountAll(ctx, nil)
  if cErr != nil {
    return nil, cErr
  }

  totalPages := int((total + int64(limit) - 1) / int64(limit))
  return &PostPage{Posts: posts, Total: total, Page: page, TotalPages: totalPages}, nil
}

func (as *adminService) TogglePostModeration(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
  post, err := as.getPost(ctx, postID)
  if err != nil {
    return nil, err
  }
  if sErr := as.postRepo.SetModerated(ctx, nil, postID, !post.IsModerated); sErr != nil {
    return nil, sErr
  }
  return as.getPost(ctx, postID)
}

func (as *adminService) DeletePost(ctx context.Context, postID uuid.UUID) error {
  if _, err := as.getPost(ctx, postID); err != nil {
    return err
  }
  return as.postRepo.Delete(ctx, nil, postID)
}

func (as *adminService) ListReports(ctx context.Context, status string) ([]*types.PostReport, error) {
  if status == "" {
    status = types.ReportStatusPending
  }
  if !types.ValidReportStatus(status) {
    return nil, invalidInput("Invalid report status")
  }
  return as.reportRepo.ListByStatus(ctx, nil, status)
}

func (as *adminService) UpdateReportStatus(ctx context.Context, reportID uuid.UUID, status string) error {
  if !types.ValidReportStatus(status) {
    return invalidInput("Invalid report status")
  }
  rows, err := as.reportRepo.UpdateStatus(ctx, nil, reportID, status)
  if err != nil {
    return err
  }
  if rows == 0 {
    return ErrReportNotFound
  }
  return nil
}

func (as *adminService) getUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
  user, err := as.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrUserNotFound
    }
    return nil, err
  }
  return user, nil
}

func (as *adminService) getPost(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
  post, err := as.postRepo.GetByID(ctx, nil, postID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrPostNotFound
    }
    return nil, err
  }
  return post, nil
}
