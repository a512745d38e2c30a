package services

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/mindnest/mindnest-backend/internal/achievements"
  "github.com/mindnest/mindnest-backend/internal/normalization"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type PostService interface {
  Create(ctx context.Context, content string) (*types.Post, error)
  List(ctx context.Context) ([]*types.Post, error)
  MyPosts(ctx context.Context) ([]*types.Post, error)
  Update(ctx context.Context, postID uuid.UUID, content string) (*types.Post, error)
  Delete(ctx context.Context, postID uuid.UUID) error
  AddComment(ctx context.Context, postID uuid.UUID, content string) (*types.Post, error)
  ToggleReaction(ctx context.Context, postID uuid.UUID, reactionType string) (*types.Post, error)
  Report(ctx context.Context, postID uuid.UUID, reason, description string) (*types.Post, error)
}

type postService struct {
  db                 *gorm.DB
  log                *logger.Logger
  postRepo           repos.PostRepo
  commentRepo        repos.PostCommentRepo
  reactionRepo       repos.PostReactionRepo
  reportRepo         repos.PostReportRepo
  userRepo           repos.UserRepo
  achievementService AchievementService
}

func NewPostService(
  db *gorm.DB,
  baseLog *logger.Logger,
  postRepo repos.PostRepo,
  commentRepo repos.PostCommentRepo,
  reactionRepo repos.PostReactionRepo,
  reportRepo repos.PostReportRepo,
  userRepo repos.UserRepo,
  achievementService AchievementService,
) PostService {
  serviceLog := baseLog.With("service", "PostService")
  return &postService{
    db:                 db,
    log:                serviceLog,
    postRepo:           postRepo,
    commentRepo:        commentRepo,
    reactionRepo:       reactionRepo,
    reportRepo:         reportRepo,
    userRepo:           userRepo,
    achievementService: achievementService,
  }
}

// awardBestEffort absorbs award failures: losing a few points must never
// fail the post, comment or reaction that triggered them.
func (ps *postService) awardBestEffort(ctx context.Context, userID uuid.UUID, points int) {
  if _, err := ps.achievementService.AwardPoints(ctx, userID, points); err != nil {
    ps.log.Warn("points award failed", "user_id", userID, "points", points, "error", err)
  }
}

func (ps *postService) Create(ctx context.Context, content string) (*types.Post, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  content = normalization.TrimInputString(content)
  if content == "" {
    return nil, invalidInput("Post content is required")
  }

  user, uErr := ps.userRepo.GetByID(ctx, nil, userID)
  if uErr != nil {
    if errors.Is(uErr, gorm.ErrRecordNotFound) {
      return nil, ErrUserNotFound
    }
    return nil, uErr
  }

  post := &types.Post{
    ID:            uuid.New(),
    UserID:        userID,
    AnonymousName: user.AnonymousName,
    Content:       content,
    IsModerated:   true,
  }
  if _, cErr := ps.postRepo.Create(ctx, nil, post); cErr != nil {
    return nil, cErr
  }

  ps.awardBestEffort(ctx, userID, achievements.PointsCreatePost)
  return post, nil
}

func (ps *postService) List(ctx context.Context) ([]*types.Post, error) {
  return ps.postRepo.ListModerated(ctx, nil)
}

func (ps *postService) MyPosts(ctx context.Context) ([]*types.Post, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  return ps.postRepo.ListByUserID(ctx, nil, userID)
}

func (ps *postService) Update(ctx context.Context, postID uuid.UUID, content string) (*types.Post, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  content = normalization.TrimInputString(content)
  if content == "" {
    return nil, invalidInput("Post content is required")
  }

  post, gErr := ps.getPost(ctx, postID)
  if gErr != nil {
    return nil, gErr
  }
  if post.UserID != userID {
    return nil, ErrNotAuthorized
  }

  if uErr := ps.postRepo.UpdateContent(ctx, nil, postID, content); uErr != nil {
    return nil, uErr
  }
  return ps.getPost(ctx, postID)
}

func (ps *postService) Delete(ctx context.Context, postID uuid.UUID) error {
  userID, err := currentUserID(ctx)
  if err != nil {
    return err
  }

  post, gErr := ps.getPost(ctx, postID)
  if gErr != nil {
    return gErr
  }
  if post.UserID != userID {
    return ErrNotAuthorized
  }

  return ps.postRepo.Delete(ctx, nil, postID)
}

func (ps *postService) AddComment(ctx context.Context, postID uuid.UUID, content string) (*types.Post, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  content = normalization.TrimInputString(content)
  if content == "" {
    return nil, invalidInput("Comment content is required")
  }

  post, gErr := ps.getPost(ctx, postID)
  if gErr != nil {
    return nil, gErr
  }

  user, uErr := ps.userRepo.GetByID(ctx, nil, userID)
  if uErr != nil {
    if errors.Is(uErr, gorm.ErrRecordNotFound) {
      return nil, ErrUserNotFound
    }
    return nil, uErr
  }

  comment := &types.PostComment{
    ID:            uuid.New(),
    PostID:        postID,
    UserID:        userID,
    AnonymousName: user.AnonymousName,
    Content:       content,
  }
  if _, cErr := ps.commentRepo.Create(ctx, nil, comment); cErr != nil {
    return nil, cErr
  }

  ps.awardBestEffort(ctx, userID, achievements.PointsAddComment)
  if post.UserID != userID {
    ps.awardBestEffort(ctx, post.UserID, achievements.PointsReceiveComment)
  }

  return ps.getPost(ctx, postID)
}

// ToggleReaction keeps one reaction per user per post: same type removes it,
// a different type re-types it, none adds one. Points flow only when a new
// reaction is added.
func (ps *postService) ToggleReaction(ctx context.Context, postID uuid.UUID, reactionType string) (*types.Post, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  if !types.ValidReactionType(reactionType) {
    return nil, invalidInput("Invalid reaction type")
  }

  post, gErr := ps.getPost(ctx, postID)
  if gErr != nil {
    return nil, gErr
  }

  existing, rErr := ps.reactionRepo.GetByPostAndUser(ctx, nil, postID, userID)
  if rErr != nil {
    return nil, rErr
  }

  isAddingReaction := false
  switch {
  case existing == nil:
    reaction := &types.PostReaction{
      ID:     uuid.New(),
      PostID: postID,
      UserID: userID,
      Type:   reactionType,
    }
    if _, cErr := ps.reactionRepo.Create(ctx, nil, reaction); cErr != nil {
      return nil, cErr
    }
    isAddingReaction = true
  case existing.Type == reactionType:
    if dErr := ps.reactionRepo.Delete(ctx, nil, existing.ID); dErr != nil {
      return nil, dErr
    }
  default:
    if uErr := ps.reactionRepo.UpdateType(ctx, nil, existing.ID, reactionType); uErr != nil {
      return nil, uErr
    }
  }

  if isAddingReaction {
    ps.awardBestEffort(ctx, userID, achievements.PointsAddReaction)
    if post.UserID != userID {
      ps.awardBestEffort(ctx, post.UserID, achievements.PointsReceiveReaction)
    }
  }

  return ps.getPost(ctx, postID)
}

func (ps *postService) Report(ctx context.Context, postID uuid.UUID, reason, description string) (*types.Post, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  if reason == "" {
    return nil, invalidInput("Report reason is required")
  }
  if !types.ValidReportReason(reason) {
    return nil, invalidInput("Invalid report reason")
  }

  if _, gErr := ps.getPost(ctx, postID); gErr != nil {
    return nil, gErr
  }

  alreadyReported, aErr := ps.reportRepo.HasPendingByPostAndUser(ctx, nil, postID, userID)
  if aErr != nil {
    return nil, aErr
  }
  if alreadyReported {
    return nil, conflict("You have already reported this post")
  }

  report := &types.PostReport{
    ID:          uuid.New(),
    PostID:      postID,
    UserID:      userID,
    Reason:      reason,
    Description: normalization.TrimInputString(description),
    Status:      types.ReportStatusPending,
  }
  if _, cErr := ps.reportRepo.Create(ctx, nil, report); cErr != nil {
    return nil, cErr
  }

  return ps.getPost(ctx, postID)
}

func (ps *postService) getPost(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
  post, err := ps.postRepo.GetByID(ctx, nil, postID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrPostNotFound
    }
    return nil, err
  }
  return post, nil
}
