package services

import (
  "context"
  "encoding/json"
  "errors"
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/mindnest/mindnest-backend/internal/achievements"
  "github.com/mindnest/mindnest-backend/internal/normalization"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/types"
)

const defaultAnalyticsWindowDays = 30

type MoodInput struct {
  Mood       string   `json:"mood"`
  Intensity  int      `json:"intensity"`
  Note       string   `json:"note"`
  Activities []string `json:"activities"`
  Date       *time.Time `json:"date"`
}

// MoodAnalytics summarizes a user's mood history over a rolling window.
// AverageIntensity is a pre-formatted string for API compatibility.
type MoodAnalytics struct {
  TotalEntries     int            `json:"total_entries"`
  AverageIntensity string         `json:"average_intensity"`
  Distribution     map[string]int `json:"mood_distribution"`
  CurrentStreak    int            `json:"current_streak"`
  LongestStreak    int            `json:"longest_streak"`
  RecentMoods      []*types.Mood  `json:"recent_moods"`
  WindowDays       int            `json:"window_days"`
}

type MoodService interface {
  Create(ctx context.Context, input MoodInput) (*types.Mood, error)
  List(ctx context.Context, from, to *time.Time, limit int) ([]*types.Mood, error)
  Update(ctx context.Context, moodID uuid.UUID, input MoodInput) (*types.Mood, error)
  Delete(ctx context.Context, moodID uuid.UUID) error
  GetAnalytics(ctx context.Context, windowDays int) (*MoodAnalytics, error)
}

type moodService struct {
  db                 *gorm.DB
  log                *logger.Logger
  moodRepo           repos.MoodRepo
  achievementService AchievementService
}

func NewMoodService(db *gorm.DB, baseLog *logger.Logger, moodRepo repos.MoodRepo, achievementService AchievementService) MoodService {
  serviceLog := baseLog.With("service", "MoodService")
  return &moodService{db: db, log: serviceLog, moodRepo: moodRepo, achievementService: achievementService}
}

func validateMoodInput(input MoodInput) error {
  if !types.ValidMoodCategory(input.Mood) {
    return invalidInput("Invalid mood category")
  }
  if input.Intensity < 1 || input.Intensity > 10 {
    return invalidInput("Intensity must be between 1 and 10")
  }
  return nil
}

func activitiesJSON(activities []string) (datatypes.JSON, error) {
  if activities == nil {
    activities = []string{}
  }
  raw, err := json.Marshal(activities)
  if err != nil {
    return nil, err
  }
  return datatypes.JSON(raw), nil
}

func (ms *moodService) Create(ctx context.Context, input MoodInput) (*types.Mood, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if vErr := validateMoodInput(input); vErr != nil {
    return nil, vErr
  }

  activities, aErr := activitiesJSON(input.Activities)
  if aErr != nil {
    return nil, aErr
  }

  entryDate := time.Now()
  if input.Date != nil {
    entryDate = *input.Date
  }

  mood := &types.Mood{
    ID:         uuid.New(),
    UserID:     userID,
    Mood:       input.Mood,
    Intensity:  input.Intensity,
    Note:       normalization.TrimInputString(input.Note),
    Activities: activities,
    Date:       achievements.TruncateDay(entryDate),
  }
  if _, cErr := ms.moodRepo.Create(ctx, nil, mood); cErr != nil {
    return nil, cErr
  }

  if _, awErr := ms.achievementService.AwardPoints(ctx, userID, achievements.PointsLogMood); awErr != nil {
    ms.log.Warn("points award failed", "user_id", userID, "error", awErr)
  }
  return mood, nil
}

func (ms *moodService) List(ctx context.Context, from, to *time.Time, limit int) ([]*types.Mood, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if limit <= 0 || limit > 100 {
    limit = 100
  }
  return ms.moodRepo.ListByUserID(ctx, nil, userID, from, to, limit)
}

func (ms *moodService) Update(ctx context.Context, moodID uuid.UUID, input MoodInput) (*types.Mood, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if vErr := validateMoodInput(input); vErr != nil {
    return nil, vErr
  }

  mood, gErr := ms.getOwnedMood(ctx, moodID, userID)
  if gErr != nil {
    return nil, gErr
  }

  activities, aErr := activitiesJSON(input.Activities)
  if aErr != nil {
    return nil, aErr
  }

  mood.Mood = input.Mood
  mood.Intensity = input.Intensity
  mood.Note = normalization.TrimInputString(input.Note)
  mood.Activities = activities
  if input.Date != nil {
    mood.Date = achievements.TruncateDay(*input.Date)
  }

  if uErr := ms.moodRepo.Update(ctx, nil, mood); uErr != nil {
    return nil, uErr
  }
  return mood, nil
}

func (ms *moodService) Delete(ctx context.Context, moodID uuid.UUID) error {
  userID, err := currentUserID(ctx)
  if err != nil {
    return err
  }
  if _, gErr := ms.getOwnedMood(ctx, moodID, userID); gErr != nil {
    return gErr
  }
  return ms.moodRepo.Delete(ctx, nil, moodID)
}

func (ms *moodService) GetAnalytics(ctx context.Context, windowDays int) (*MoodAnalytics, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if windowDays <= 0 {
    windowDays = defaultAnalyticsWindowDays
  }

  today := achievements.TruncateDay(time.Now())
  since := today.AddDate(0, 0, -(windowDays - 1))

  moods, lErr := ms.moodRepo.ListByUserSince(ctx, nil, userID, since)
  if lErr != nil {
    return nil, lErr
  }

  intensities := make([]int, 0, len(moods))
  categories := make([]string, 0, len(moods))
  dates := make([]time.Time, 0, len(moods))
  for _, m := range moods {
    intensities = append(intensities, m.Intensity)
    categories = append(categories, m.Mood)
    dates = append(dates, m.Date)
  }
  current, longest := achievements.Streaks(dates, today)

  recent := moods
  if len(recent) > 7 {
    recent = recent[len(recent)-7:]
  }

  return &MoodAnalytics{
    TotalEntries:     len(moods),
    AverageIntensity: achievements.AverageIntensity(intensities),
    Distribution:     achievements.Distribution(categories),
    CurrentStreak:    current,
    LongestStreak:    longest,
    RecentMoods:      recent,
    WindowDays:       windowDays,
  }, nil
}

func (ms *moodService) getOwnedMood(ctx context.Context, moodID, userID uuid.UUID) (*types.Mood, error) {
  mood, err := ms.moodRepo.GetByID(ctx, nil, moodID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrMoodNotFound
    }
    return nil, err
  }
  if mood.UserID != userID {
    return nil, ErrNotAuthorized
  }
  return mood, nil
}
