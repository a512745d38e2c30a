package services

import (
  "errors"
  "net/http"
  "testing"
  "time"

  "github.com/mindnest/mindnest-backend/internal/achievements"
)

func TestCreateMoodAwardsPoints(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "mood@example.com")
  svc := NewMoodService(env.db, env.log, env.moodRepo, env.achievements)

  mood, err := svc.Create(authedCtx(user.ID), MoodInput{
    Mood:       "happy",
    Intensity:  7,
    Note:       "  good day  ",
    Activities: []string{"exercise", "reading"},
  })
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  if mood.Note != "good day" {
    t.Fatalf("note not trimmed: %q", mood.Note)
  }
  if !mood.Date.Equal(achievements.TruncateDay(time.Now())) {
    t.Fatalf("date not truncated to today: %v", mood.Date)
  }
  if points := env.userPoints(t, user.ID); points != achievements.PointsLogMood {
    t.Fatalf("points: want=%d got=%d", achievements.PointsLogMood, points)
  }
}

func TestCreateMoodValidation(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "moodvalidation@example.com")
  svc := NewMoodService(env.db, env.log, env.moodRepo, env.achievements)
  ctx := authedCtx(user.ID)

  cases := []struct {
    name  string
    input MoodInput
  }{
    {"unknown category", MoodInput{Mood: "ecstatic", Intensity: 5}},
    {"intensity too low", MoodInput{Mood: "happy", Intensity: 0}},
    {"intensity too high", MoodInput{Mood: "happy", Intensity: 11}},
  }
  for _, tc := range cases {
    _, err := svc.Create(ctx, tc.input)
    if err == nil {
      t.Fatalf("%s: expected error", tc.name)
    }
    if status := apiStatus(t, err); status != http.StatusBadRequest {
      t.Fatalf("%s: status want=400 got=%d", tc.name, status)
    }
  }
}

func TestMoodAnalytics(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "analytics@example.com")
  svc := NewMoodService(env.db, env.log, env.moodRepo, env.achievements)
  ctx := authedCtx(user.ID)
  today := achievements.TruncateDay(time.Now())

  entries := []struct {
    daysAgo   int
    mood      string
    intensity int
  }{
    {2, "sad", 4},
    {1, "neutral", 6},
    {0, "happy", 8},
  }
  for _, e := range entries {
    date := today.AddDate(0, 0, -e.daysAgo)
    if _, err := svc.Create(ctx, MoodInput{Mood: e.mood, Intensity: e.intensity, Date: &date}); err != nil {
      t.Fatalf("Create: %v", err)
    }
  }

  analytics, err := svc.GetAnalytics(ctx, 0)
  if err != nil {
    t.Fatalf("GetAnalytics: %v", err)
  }
  if analytics.WindowDays != 30 {
    t.Fatalf("window: want=30 got=%d", analytics.WindowDays)
  }
  if analytics.TotalEntries != 3 {
    t.Fatalf("total entries: want=3 got=%d", analytics.TotalEntries)
  }
  if analytics.AverageIntensity != "6.0" {
    t.Fatalf("average intensity: want=6.0 got=%s", analytics.AverageIntensity)
  }
  if analytics.CurrentStreak != 3 || analytics.LongestStreak != 3 {
    t.Fatalf("streaks: want=3/3 got=%d/%d", analytics.CurrentStreak, analytics.LongestStreak)
  }
  if analytics.Distribution["happy"] != 1 || analytics.Distribution["neutral"] != 1 || analytics.Distribution["sad"] != 1 {
    t.Fatalf("unexpected distribution: %v", analytics.Distribution)
  }
  if len(analytics.RecentMoods) != 3 {
    t.Fatalf("recent moods: want=3 got=%d", len(analytics.RecentMoods))
  }
}

func TestMoodOwnershipEnforced(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "moodowner@example.com")
  other := env.createUser(t, "moodother@example.com")
  svc := NewMoodService(env.db, env.log, env.moodRepo, env.achievements)

  mood, err := svc.Create(authedCtx(owner.ID), MoodInput{Mood: "happy", Intensity: 5})
  if err != nil {
    t.Fatalf("Create: %v", err)
  }

  _, err = svc.Update(authedCtx(other.ID), mood.ID, MoodInput{Mood: "sad", Intensity: 2})
  if !errors.Is(err, ErrNotAuthorized) {
    t.Fatalf("want ErrNotAuthorized got %v", err)
  }
  if err := svc.Delete(authedCtx(other.ID), mood.ID); !errors.Is(err, ErrNotAuthorized) {
    t.Fatalf("want ErrNotAuthorized got %v", err)
  }

  updated, err := svc.Update(authedCtx(owner.ID), mood.ID, MoodInput{Mood: "very-happy", Intensity: 9})
  if err != nil {
    t.Fatalf("Update: %v", err)
  }
  if updated.Mood != "very-happy" || updated.Intensity != 9 {
    t.Fatalf("unexpected update: %+v", updated)
  }
  if err := svc.Delete(authedCtx(owner.ID), mood.ID); err != nil {
    t.Fatalf("Delete: %v", err)
  }
}

func TestMoodAnalyticsEmpty(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "nomoods@example.com")
  svc := NewMoodService(env.db, env.log, env.moodRepo, env.achievements)

  analytics, err := svc.GetAnalytics(authedCtx(user.ID), 0)
  if err != nil {
    t.Fatalf("GetAnalytics: %v", err)
  }
  if analytics.TotalEntries != 0 {
    t.Fatalf("total: want=0 got=%d", analytics.TotalEntries)
  }
  if analytics.AverageIntensity != "0.0" {
    t.Fatalf("average: want=0.0 got=%q", analytics.AverageIntensity)
  }
  if analytics.CurrentStreak != 0 || analytics.LongestStreak != 0 {
    t.Fatalf("streaks: want=0/0 got=%d/%d", analytics.CurrentStreak, analytics.LongestStreak)
  }
  if len(analytics.Distribution) != 0 {
    t.Fatalf("distribution should be empty: %v", analytics.Distribution)
  }
  if len(analytics.RecentMoods) != 0 {
    t.Fatalf("recent moods should be empty: %v", analytics.RecentMoods)
  }
}
