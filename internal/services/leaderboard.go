package services

import (
  "context"
  "strings"
  "time"
  "github.com/google/uuid"
  goredis "github.com/redis/go-redis/v9"
  "gorm.io/gorm"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
)

const leaderboardKey = "leaderboard:points"

type LeaderboardEntry struct {
  UserID        uuid.UUID `json:"user_id"`
  AnonymousName string    `json:"anonymous_name"`
  Points        int       `json:"points"`
}

// LeaderboardService ranks users by points. With redis configured it keeps a
// sorted set fed by the achievement flow; without redis it falls back to an
// ORDER BY points query, so the feature degrades instead of disappearing.
type LeaderboardService interface {
  LeaderboardPublisher
  Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type leaderboardService struct {
  db       *gorm.DB
  log      *logger.Logger
  rdb      *goredis.Client
  userRepo repos.UserRepo
}

func NewLeaderboardService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, redisAddr string) LeaderboardService {
  serviceLog := baseLog.With("service", "LeaderboardService")

  var rdb *goredis.Client
  addr := strings.TrimSpace(redisAddr)
  if addr != "" {
    client := goredis.NewClient(&goredis.Options{
      Addr:        addr,
      DialTimeout: 5 * time.Second,
    })
    pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := client.Ping(pingCtx).Err(); err != nil {
      serviceLog.Warn("redis unavailable, leaderboard falls back to postgres", "error", err)
      _ = client.Close()
    } else {
      rdb = client
    }
  }

  return &leaderboardService{db: db, log: serviceLog, rdb: rdb, userRepo: userRepo}
}

func (ls *leaderboardService) RecordPoints(ctx context.Context, userID uuid.UUID, points int) {
  if ls.rdb == nil {
    return
  }
  if err := ls.rdb.ZAdd(ctx, leaderboardKey, goredis.Z{
    Score:  float64(points),
    Member: userID.String(),
  }).Err(); err != nil {
    ls.log.Warn("leaderboard update failed", "user_id", userID, "error", err)
  }
}

func (ls *leaderboardService) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
  if limit <= 0 {
    limit = 10
  }

  if ls.rdb != nil {
    entries, err := ls.topFromRedis(ctx, limit)
    if err == nil {
      return entries, nil
    }
    ls.log.Warn("redis leaderboard read failed, using postgres", "error", err)
  }

  users, err := ls.userRepo.TopByPoints(ctx, nil, limit)
  if err != nil {
    return nil, err
  }
  entries := make([]LeaderboardEntry, 0, len(users))
  for _, u := range users {
    entries = append(entries, LeaderboardEntry{
      UserID:        u.ID,
      AnonymousName: u.AnonymousName,
      Points:        u.Points,
    })
  }
  return entries, nil
}

func (ls *leaderboardService) topFromRedis(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
  zs, err := ls.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
  if err != nil {
    return nil, err
  }

  entries := make([]LeaderboardEntry, 0, len(zs))
  for _, z := range zs {
    member, ok := z.Member.(string)
    if !ok {
      continue
    }
    userID, pErr := uuid.Parse(member)
    if pErr != nil {
      continue
    }
    user, uErr := ls.userRepo.GetByID(ctx, nil, userID)
    if uErr != nil {
      // Deleted users linger in the sorted set until the next rebuild;
      // skip them rather than fail the whole board.
      continue
    }
    entries = append(entries, LeaderboardEntry{
      UserID:        userID,
      AnonymousName: user.AnonymousName,
      Points:        int(z.Score),
    })
  }
  return entries, nil
}
