package services

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/mindnest/mindnest-backend/internal/normalization"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/requestdata"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type UserService interface {
  GetMe(ctx context.Context) (*types.User, error)
  UpdateAnonymousName(ctx context.Context, name string) (*types.User, error)
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := baseLog.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  user, uErr := us.userRepo.GetByID(ctx, nil, userID)
  if uErr != nil {
    if errors.Is(uErr, gorm.ErrRecordNotFound) {
      return nil, ErrUserNotFound
    }
    return nil, uErr
  }
  return user, nil
}

func (us *userService) UpdateAnonymousName(ctx context.Context, name string) (*types.User, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  name = normalization.TrimInputString(name)
  if name == "" {
    return nil, invalidInput("Anonymous name is required")
  }
  if len(name) > 30 {
    return nil, invalidInput("Anonymous name must be 30 characters or fewer")
  }

  rows, uErr := us.userRepo.UpdateAnonymousName(ctx, nil, userID, name)
  if uErr != nil {
    return nil, uErr
  }
  if rows == 0 {
    return nil, ErrUserNotFound
  }
  return us.userRepo.GetByID(ctx, nil, userID)
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, ErrNotAuthenticated
  }
  return rd.UserID, nil
}
