package services

import (
  "context"
  "testing"
  "time"

  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/requestdata"
  "github.com/mindnest/mindnest-backend/internal/types"
)

// The schema is created with explicit DDL because the production column
// defaults (uuid_generate_v4, now()) are postgres functions sqlite cannot
// parse. IDs are always set by the services, so the defaults never matter
// in tests.
var testSchema = []string{
  `CREATE TABLE "user" (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    anonymous_name TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user',
    is_active NUMERIC NOT NULL DEFAULT 1,
    points INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME,
    updated_at DATETIME
  )`,
  `CREATE TABLE "user_badge" (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    icon TEXT NOT NULL,
    earned_at DATETIME
  )`,
  `CREATE UNIQUE INDEX idx_user_badge_name ON "user_badge" (user_id, name)`,
  `CREATE TABLE "post" (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    anonymous_name TEXT NOT NULL,
    content TEXT NOT NULL,
    is_moderated NUMERIC NOT NULL DEFAULT 1,
    created_at DATETIME,
    updated_at DATETIME
  )`,
  `CREATE TABLE "post_comment" (
    id TEXT PRIMARY KEY,
    post_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    anonymous_name TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at DATETIME,
    updated_at DATETIME
  )`,
  `CREATE TABLE "post_reaction" (
    id TEXT PRIMARY KEY,
    post_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    type TEXT NOT NULL,
    created_at DATETIME
  )`,
  `CREATE UNIQUE INDEX idx_post_reaction_user ON "post_reaction" (post_id, user_id)`,
  `CREATE TABLE "post_report" (
    id TEXT PRIMARY KEY,
    post_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    reason TEXT NOT NULL,
    description TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    created_at DATETIME
  )`,
  `CREATE TABLE "mood" (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    mood TEXT NOT NULL,
    intensity INTEGER NOT NULL,
    note TEXT,
    activities TEXT,
    date DATETIME NOT NULL,
    created_at DATETIME,
    updated_at DATETIME
  )`,
  `CREATE TABLE "journal" (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    mood TEXT,
    tags TEXT,
    is_private NUMERIC NOT NULL DEFAULT 1,
    created_at DATETIME,
    updated_at DATETIME
  )`,
  `CREATE TABLE "announcement" (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT 'announcement',
    is_active NUMERIC NOT NULL DEFAULT 1,
    created_by TEXT NOT NULL,
    expires_at DATETIME,
    created_at DATETIME,
    updated_at DATETIME
  )`,
}

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  // A named shared-cache database keeps gorm's pooled connections on the
  // same in-memory store; the random name isolates tests from each other.
  dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  for _, stmt := range testSchema {
    if err := db.Exec(stmt).Error; err != nil {
      t.Fatalf("create schema: %v", err)
    }
  }
  t.Cleanup(func() {
    sqlDB, dErr := db.DB()
    if dErr == nil {
      _ = sqlDB.Close()
    }
  })
  return db
}

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  return log
}

type testEnv struct {
  db  *gorm.DB
  log *logger.Logger

  userRepo     repos.UserRepo
  badgeRepo    repos.UserBadgeRepo
  postRepo     repos.PostRepo
  commentRepo  repos.PostCommentRepo
  reactionRepo repos.PostReactionRepo
  reportRepo   repos.PostReportRepo
  moodRepo     repos.MoodRepo
  journalRepo  repos.JournalRepo

  achievements AchievementService
}

func newTestEnv(t *testing.T) *testEnv {
  t.Helper()
  db := newTestDB(t)
  log := newTestLogger(t)

  env := &testEnv{
    db:           db,
    log:          log,
    userRepo:     repos.NewUserRepo(db, log),
    badgeRepo:    repos.NewUserBadgeRepo(db, log),
    postRepo:     repos.NewPostRepo(db, log),
    commentRepo:  repos.NewPostCommentRepo(db, log),
    reactionRepo: repos.NewPostReactionRepo(db, log),
    reportRepo:   repos.NewPostReportRepo(db, log),
    moodRepo:     repos.NewMoodRepo(db, log),
    journalRepo:  repos.NewJournalRepo(db, log),
  }
  env.achievements = NewAchievementService(
    db,
    log,
    env.userRepo,
    env.badgeRepo,
    env.postRepo,
    env.commentRepo,
    env.reactionRepo,
    env.moodRepo,
    env.journalRepo,
    nil,
  )
  return env
}

func (e *testEnv) postService() PostService {
  return NewPostService(e.db, e.log, e.postRepo, e.commentRepo, e.reactionRepo, e.reportRepo, e.userRepo, e.achievements)
}

func (e *testEnv) createUser(t *testing.T, email string) *types.User {
  t.Helper()
  user := &types.User{
    ID:            uuid.New(),
    Email:         email,
    Password:      "hashed",
    AnonymousName: "Anonymous_test",
    Role:          types.RoleUser,
    IsActive:      true,
    Points:        0,
  }
  if _, err := e.userRepo.Create(context.Background(), nil, []*types.User{user}); err != nil {
    t.Fatalf("create user: %v", err)
  }
  return user
}

func authedCtx(userID uuid.UUID) context.Context {
  return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
    UserID: userID,
    Role:   types.RoleUser,
  })
}

func (e *testEnv) userPoints(t *testing.T, userID uuid.UUID) int {
  t.Helper()
  points, err := e.userRepo.GetPoints(context.Background(), nil, userID)
  if err != nil {
    t.Fatalf("get points: %v", err)
  }
  return points
}

func (e *testEnv) userBadgeNames(t *testing.T, userID uuid.UUID) []string {
  t.Helper()
  names, err := e.badgeRepo.NamesByUserID(context.Background(), nil, userID)
  if err != nil {
    t.Fatalf("badge names: %v", err)
  }
  return names
}

func (e *testEnv) seedMoodOnDates(t *testing.T, userID uuid.UUID, dates []time.Time) {
  t.Helper()
  for _, d := range dates {
    mood := &types.Mood{
      ID:        uuid.New(),
      UserID:    userID,
      Mood:      types.MoodNeutral,
      Intensity: 5,
      Date:      d,
    }
    if _, err := e.moodRepo.Create(context.Background(), nil, mood); err != nil {
      t.Fatalf("seed mood: %v", err)
    }
  }
}
