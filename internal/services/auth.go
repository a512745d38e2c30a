package services

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "time"
  "gorm.io/gorm"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/mindnest/mindnest-backend/internal/normalization"
  "github.com/mindnest/mindnest-backend/internal/platform/apierr"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/repos"
  "github.com/mindnest/mindnest-backend/internal/requestdata"
  "github.com/mindnest/mindnest-backend/internal/types"
  "github.com/mindnest/mindnest-backend/internal/utils"
)

type AuthService interface {
  RegisterUser(ctx context.Context, email, password string) (string, *types.User, error)
  LoginUser(ctx context.Context, email, password string) (string, *types.User, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
  db           *gorm.DB
  log          *logger.Logger
  userRepo     repos.UserRepo
  jwtSecretKey string
  tokenTTL     time.Duration
}

func NewAuthService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, tokenTTL time.Duration) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{
    db:           db,
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: jwtSecretKey,
    tokenTTL:     tokenTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, email, password string) (string, *types.User, error) {
  email = normalization.ParseInputString(email)

  if vErr := utils.ValidateCredentials(email, password); vErr != nil {
    return "", nil, invalidInput(vErr.Error())
  }

  emailExists, err := as.userRepo.EmailExists(ctx, nil, email)
  if err != nil {
    return "", nil, fmt.Errorf("Failed to check user email: %w", err)
  }
  if emailExists {
    return "", nil, conflict("User already exists")
  }

  hashedPassword, hErr := utils.HashPassword(as.log, password)
  if hErr != nil {
    return "", nil, hErr
  }

  user := &types.User{
    ID:            uuid.New(),
    Email:         email,
    Password:      hashedPassword,
    AnonymousName: utils.GenerateAnonymousName(),
    Role:          types.RoleUser,
    IsActive:      true,
    Points:        0,
  }
  if _, cErr := as.userRepo.Create(ctx, nil, []*types.User{user}); cErr != nil {
    return "", nil, fmt.Errorf("Failed to create user: %w", cErr)
  }

  token, tErr := as.generateToken(user)
  if tErr != nil {
    return "", nil, tErr
  }
  return token, user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, *types.User, error) {
  email = normalization.ParseInputString(email)
  if email == "" || password == "" {
    return "", nil, invalidInput("Please provide email and password")
  }

  user, err := as.userRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return "", nil, invalidCredentials()
    }
    return "", nil, fmt.Errorf("Error retrieving user by email: %w", err)
  }

  if !utils.CheckPassword(user.Password, password) {
    return "", nil, invalidCredentials()
  }

  if !user.IsActive {
    return "", nil, ErrNotAuthorized
  }

  token, tErr := as.generateToken(user)
  if tErr != nil {
    return "", nil, tErr
  }
  return token, user, nil
}

// SetContextFromToken validates the token and re-reads the user so role
// changes and deactivations take effect on the next request, not at the next
// login.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return ctx, ErrNotAuthenticated
  }

  claims, ok := token.Claims.(*jwt.RegisteredClaims)
  if !ok {
    return ctx, ErrNotAuthenticated
  }
  userID, pErr := uuid.Parse(claims.Subject)
  if pErr != nil {
    return ctx, ErrNotAuthenticated
  }

  user, uErr := as.userRepo.GetByID(ctx, nil, userID)
  if uErr != nil {
    if errors.Is(uErr, gorm.ErrRecordNotFound) {
      return ctx, ErrNotAuthenticated
    }
    return ctx, uErr
  }
  if !user.IsActive {
    return ctx, ErrNotAuthorized
  }

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      user.ID,
    Role:        user.Role,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) generateToken(user *types.User) (string, error) {
  now := time.Now()
  claims := jwt.RegisteredClaims{
    Subject:   user.ID.String(),
    IssuedAt:  jwt.NewNumericDate(now),
    ExpiresAt: jwt.NewNumericDate(now.Add(as.tokenTTL)),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    as.log.Error("Failed to sign token", "error", err)
    return "", fmt.Errorf("Failed to sign token")
  }
  return signed, nil
}

func invalidCredentials() error {
  return apierr.New(http.StatusUnauthorized, "invalid_credentials", errors.New("Invalid email or password"))
}
