package services

import (
  "context"
  "testing"
)

func TestTopFallsBackToDatabase(t *testing.T) {
  env := newTestEnv(t)
  svc := NewLeaderboardService(env.db, env.log, env.userRepo, "")
  ctx := context.Background()

  first := env.createUser(t, "first@example.com")
  second := env.createUser(t, "second@example.com")
  third := env.createUser(t, "third@example.com")
  if _, err := env.achievements.AwardPoints(ctx, first.ID, 100); err != nil {
    t.Fatalf("award: %v", err)
  }
  if _, err := env.achievements.AwardPoints(ctx, second.ID, 250); err != nil {
    t.Fatalf("award: %v", err)
  }
  if _, err := env.achievements.AwardPoints(ctx, third.ID, 50); err != nil {
    t.Fatalf("award: %v", err)
  }

  entries, err := svc.Top(ctx, 2)
  if err != nil {
    t.Fatalf("Top: %v", err)
  }
  if len(entries) != 2 {
    t.Fatalf("entries: want=2 got=%d", len(entries))
  }
  if entries[0].UserID != second.ID || entries[0].Points != 250 {
    t.Fatalf("first entry: %+v", entries[0])
  }
  if entries[1].UserID != first.ID || entries[1].Points != 100 {
    t.Fatalf("second entry: %+v", entries[1])
  }
}

func TestTopDefaultsLimit(t *testing.T) {
  env := newTestEnv(t)
  svc := NewLeaderboardService(env.db, env.log, env.userRepo, "")

  entries, err := svc.Top(context.Background(), 0)
  if err != nil {
    t.Fatalf("Top: %v", err)
  }
  if len(entries) != 0 {
    t.Fatalf("entries: want=0 got=%d", len(entries))
  }
}
