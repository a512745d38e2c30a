package services

import (
  "context"
  "errors"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/achievements"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/types"
)

// AchievementService is the single choke point for "user state changed":
// every qualifying action goes through AwardPoints, and every AwardPoints
// re-evaluates the badge catalog for that user.
type AchievementService interface {
  // AwardPoints applies the delta atomically and returns the new total.
  AwardPoints(ctx context.Context, userID uuid.UUID, points int) (int, error)
  // CheckAndAwardBadges runs one pass over the catalog, appends any newly
  // earned badges with their bonus points, and returns the full badge list.
  CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) ([]*types.UserBadge, error)
}

type achievementService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  badgeRepo     repos.UserBadgeRepo
  postRepo      repos.PostRepo
  commentRepo   repos.PostCommentRepo
  reactionRepo  repos.PostReactionRepo
  moodRepo      repos.MoodRepo
  journalRepo   repos.JournalRepo
  leaderboard   LeaderboardPublisher
}

// LeaderboardPublisher receives fresh point totals. Nil is fine; publishing
// is always best effort.
type LeaderboardPublisher interface {
  RecordPoints(ctx context.Context, userID uuid.UUID, points int)
}

func NewAchievementService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  badgeRepo repos.UserBadgeRepo,
  postRepo repos.PostRepo,
  commentRepo repos.PostCommentRepo,
  reactionRepo repos.PostReactionRepo,
  moodRepo repos.MoodRepo,
  journalRepo repos.JournalRepo,
  leaderboard LeaderboardPublisher,
) AchievementService {
  serviceLog := baseLog.With("service", "AchievementService")
  return &achievementService{
    db:           db,
    log:          serviceLog,
    userRepo:     userRepo,
    badgeRepo:    badgeRepo,
    postRepo:     postRepo,
    commentRepo:  commentRepo,
    reactionRepo: reactionRepo,
    moodRepo:     moodRepo,
    journalRepo:  journalRepo,
    leaderboard:  leaderboard,
  }
}

func (as *achievementService) AwardPoints(ctx context.Context, userID uuid.UUID, points int) (int, error) {
  rows, err := as.userRepo.IncrementPoints(ctx, nil, userID, points)
  if err != nil {
    return 0, err
  }
  if rows == 0 {
    return 0, ErrUserNotFound
  }

  // Badge evaluation after any award keeps the trigger surface small. A
  // failed evaluation must not undo or fail the award itself.
  if _, err := as.CheckAndAwardBadges(ctx, userID); err != nil {
    as.log.Warn("badge evaluation after award failed", "user_id", userID, "error", err)
  }

  total, err := as.userRepo.GetPoints(ctx, nil, userID)
  if err != nil {
    return 0, err
  }
  if as.leaderboard != nil {
    as.leaderboard.RecordPoints(ctx, userID, total)
  }
  return total, nil
}

func (as *achievementService) CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) ([]*types.UserBadge, error) {
  catalog, err := achievements.Catalog()
  if err != nil {
    return nil, err
  }

  if _, err := as.userRepo.GetByID(ctx, nil, userID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrUserNotFound
    }
    return nil, err
  }

  earnedNames, err := as.badgeRepo.NamesByUserID(ctx, nil, userID)
  if err != nil {
    return nil, err
  }
  earned := make(map[string]bool, len(earnedNames))
  for _, name := range earnedNames {
    earned[name] = true
  }

  activity, err := as.loadActivity(ctx, userID)
  if err != nil {
    return nil, err
  }

  now := time.Now().UTC()
  for _, def := range catalog {
    if earned[def.Name] {
      continue
    }
    if !achievements.Eligible(def, activity) {
      continue
    }

    // Badge append and bonus land in one transaction. The conflict-ignoring
    // insert decides the race: whoever actually appended pays out the bonus.
    badge := &types.UserBadge{
      ID:          uuid.New(),
      UserID:      userID,
      Name:        def.Name,
      Description: def.Description,
      Icon:        def.Icon,
      EarnedAt:    now,
    }
    err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
      rows, cErr := as.badgeRepo.CreateIgnoreDuplicates(ctx, tx, badge)
      if cErr != nil {
        return cErr
      }
      if rows == 0 {
        return nil
      }
      if _, iErr := as.userRepo.IncrementPoints(ctx, tx, userID, achievements.PointsBadgeBonus); iErr != nil {
        return iErr
      }
      as.log.Info("badge awarded", "user_id", userID, "badge", def.Name)
      return nil
    })
    if err != nil {
      return nil, err
    }
  }

  return as.badgeRepo.ListByUserID(ctx, nil, userID)
}

func (as *achievementService) loadActivity(ctx context.Context, userID uuid.UUID) (achievements.Activity, error) {
  var activity achievements.Activity
  var err error

  if activity.PostCount, err = as.postRepo.CountByUserID(ctx, nil, userID); err != nil {
    return activity, err
  }
  if activity.JournalCount, err = as.journalRepo.CountByUserID(ctx, nil, userID); err != nil {
    return activity, err
  }
  if activity.MoodCount, err = as.moodRepo.CountByUserID(ctx, nil, userID); err != nil {
    return activity, err
  }
  if activity.ReactedPostCount, err = as.reactionRepo.CountByUserID(ctx, nil, userID); err != nil {
    return activity, err
  }
  if activity.CommentedPostCount, err = as.commentRepo.CountDistinctPostsByUserID(ctx, nil, userID); err != nil {
    return activity, err
  }

  dates, err := as.moodRepo.RecentDates(ctx, nil, userID, 7)
  if err != nil {
    return activity, err
  }
  for i := range dates {
    dates[i] = achievements.TruncateDay(dates[i])
  }
  activity.RecentMoodDates = dates

  return activity, nil
}
