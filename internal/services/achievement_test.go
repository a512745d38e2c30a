package services

import (
  "context"
  "errors"
  "testing"
  "time"

  "github.com/google/uuid"

  "github.com/mindnest/mindnest-backend/internal/achievements"
  "github.com/mindnest/mindnest-backend/internal/types"
)

func TestAwardPointsIncrementsTotal(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "points@example.com")
  ctx := context.Background()

  total, err := env.achievements.AwardPoints(ctx, user.ID, achievements.PointsCreatePost)
  if err != nil {
    t.Fatalf("AwardPoints: %v", err)
  }
  if total != achievements.PointsCreatePost {
    t.Fatalf("total: want=%d got=%d", achievements.PointsCreatePost, total)
  }

  total, err = env.achievements.AwardPoints(ctx, user.ID, achievements.PointsLogMood)
  if err != nil {
    t.Fatalf("AwardPoints: %v", err)
  }
  if total != achievements.PointsCreatePost+achievements.PointsLogMood {
    t.Fatalf("total: want=%d got=%d", achievements.PointsCreatePost+achievements.PointsLogMood, total)
  }
}

func TestAwardPointsUnknownUser(t *testing.T) {
  env := newTestEnv(t)

  _, err := env.achievements.AwardPoints(context.Background(), uuid.New(), 10)
  if !errors.Is(err, ErrUserNotFound) {
    t.Fatalf("want ErrUserNotFound got %v", err)
  }
}

func TestFirstPostBadgeWithBonus(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "badge@example.com")
  ctx := context.Background()

  post := &types.Post{
    ID:            uuid.New(),
    UserID:        user.ID,
    AnonymousName: user.AnonymousName,
    Content:       "first",
    IsModerated:   true,
  }
  if _, err := env.postRepo.Create(ctx, nil, post); err != nil {
    t.Fatalf("create post: %v", err)
  }

  badges, err := env.achievements.CheckAndAwardBadges(ctx, user.ID)
  if err != nil {
    t.Fatalf("CheckAndAwardBadges: %v", err)
  }
  if len(badges) != 1 || badges[0].Name != "First Steps" {
    t.Fatalf("unexpected badges: %+v", badges)
  }
  if points := env.userPoints(t, user.ID); points != achievements.PointsBadgeBonus {
    t.Fatalf("bonus points: want=%d got=%d", achievements.PointsBadgeBonus, points)
  }
}

func TestBadgeEvaluationIsIdempotent(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "idempotent@example.com")
  ctx := context.Background()

  post := &types.Post{
    ID:            uuid.New(),
    UserID:        user.ID,
    AnonymousName: user.AnonymousName,
    Content:       "only once",
    IsModerated:   true,
  }
  if _, err := env.postRepo.Create(ctx, nil, post); err != nil {
    t.Fatalf("create post: %v", err)
  }

  for i := 0; i < 3; i++ {
    if _, err := env.achievements.CheckAndAwardBadges(ctx, user.ID); err != nil {
      t.Fatalf("CheckAndAwardBadges #%d: %v", i, err)
    }
  }

  if names := env.userBadgeNames(t, user.ID); len(names) != 1 {
    t.Fatalf("badge count: want=1 got=%d (%v)", len(names), names)
  }
  if points := env.userPoints(t, user.ID); points != achievements.PointsBadgeBonus {
    t.Fatalf("bonus paid more than once: got=%d", points)
  }
}

func TestCheckAndAwardBadgesUnknownUser(t *testing.T) {
  env := newTestEnv(t)

  _, err := env.achievements.CheckAndAwardBadges(context.Background(), uuid.New())
  if !errors.Is(err, ErrUserNotFound) {
    t.Fatalf("want ErrUserNotFound got %v", err)
  }
}

func TestMoodTrackerBadgeNeedsConsecutiveDays(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()
  today := achievements.TruncateDay(time.Now())

  gappedUser := env.createUser(t, "gapped@example.com")
  gapped := make([]time.Time, 0, 7)
  for i := 0; i < 7; i++ {
    gapped = append(gapped, today.AddDate(0, 0, -2*i))
  }
  env.seedMoodOnDates(t, gappedUser.ID, gapped)
  if _, err := env.achievements.CheckAndAwardBadges(ctx, gappedUser.ID); err != nil {
    t.Fatalf("CheckAndAwardBadges: %v", err)
  }
  for _, name := range env.userBadgeNames(t, gappedUser.ID) {
    if name == "Mood Tracker" {
      t.Fatalf("gapped days must not earn Mood Tracker")
    }
  }

  steadyUser := env.createUser(t, "steady@example.com")
  steady := make([]time.Time, 0, 7)
  for i := 0; i < 7; i++ {
    steady = append(steady, today.AddDate(0, 0, -i))
  }
  env.seedMoodOnDates(t, steadyUser.ID, steady)
  if _, err := env.achievements.CheckAndAwardBadges(ctx, steadyUser.ID); err != nil {
    t.Fatalf("CheckAndAwardBadges: %v", err)
  }
  found := false
  for _, name := range env.userBadgeNames(t, steadyUser.ID) {
    if name == "Mood Tracker" {
      found = true
    }
  }
  if !found {
    t.Fatalf("7 consecutive days should earn Mood Tracker, got %v", env.userBadgeNames(t, steadyUser.ID))
  }
}
