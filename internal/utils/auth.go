package utils

import (
  "crypto/rand"
  "fmt"
  "math/big"
  "regexp"
  "golang.org/x/crypto/bcrypt"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
)

var emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

const minPasswordLength = 6

func ValidateCredentials(email, password string) error {
  if email == "" {
    return fmt.Errorf("An email is required")
  }
  if !emailRe.MatchString(email) {
    return fmt.Errorf("Please provide a valid email")
  }
  if password == "" {
    return fmt.Errorf("A password is required")
  }
  if len(password) < minPasswordLength {
    return fmt.Errorf("Password must be at least %d characters", minPasswordLength)
  }
  return nil
}

func HashPassword(log *logger.Logger, password string) (string, error) {
  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    if log != nil {
      log.Error("Failed to hash password", "error", err)
    }
    return "", fmt.Errorf("Failed to hash password")
  }
  return string(hashedPassword), nil
}

func CheckPassword(hashed, password string) bool {
  return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

const anonymousAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateAnonymousName builds the handle users post under, e.g.
// "Anonymous_x3k9q2". Community content never shows the real identity.
func GenerateAnonymousName() string {
  suffix := make([]byte, 6)
  for i := range suffix {
    n, err := rand.Int(rand.Reader, big.NewInt(int64(len(anonymousAlphabet))))
    if err != nil {
      suffix[i] = anonymousAlphabet[0]
      continue
    }
    suffix[i] = anonymousAlphabet[n.Int64()]
  }
  return "Anonymous_" + string(suffix)
}
