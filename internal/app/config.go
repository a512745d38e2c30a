package app

import (
	"strings"
	"time"

	"github.com/mindnest/mindnest-backend/internal/platform/logger"
	"github.com/mindnest/mindnest-backend/internal/utils"
)

type Config struct {
	Port           string
	JWTSecretKey   string
	TokenTTL       time.Duration
	RedisAddr      string
	AllowedOrigins []string
	Environment    string
	Version        string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	tokenTTLSeconds := utils.GetEnvAsInt("TOKEN_TTL", 30*24*3600, log)
	port := utils.GetEnv("PORT", "8080", log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	origins := strings.Split(utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return Config{
		Port:           port,
		JWTSecretKey:   jwtSecretKey,
		TokenTTL:       time.Duration(tokenTTLSeconds) * time.Second,
		RedisAddr:      redisAddr,
		AllowedOrigins: origins,
		Environment:    utils.GetEnv("APP_ENV", "development", log),
		Version:        utils.GetEnv("APP_VERSION", "dev", log),
	}
}
