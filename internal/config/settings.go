package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Settings struct {
	Server   ServerSettings
	Database DatabaseSettings
	Auth     AuthSettings
	Gemini   GeminiSettings
	Quiz     QuizSettings
	Redis    RedisSettings
	Log      LogSettings
}

type ServerSettings struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TrustedOrigins  []string
}

type DatabaseSettings struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthSettings struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type GeminiSettings struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type QuizSettings struct {
	MaxQuestions int
}

type RedisSettings struct {
	Addr           string
	Password       string
	DB             int
	RateLimit      int
	RateLimitEvery time.Duration
}

type LogSettings struct {
	Level  string
	Format string
}

// Load reads settings from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		Server: ServerSettings{
			Port:            getEnv("PORT", "3000"),
			Env:             getEnv("APP_ENV", "dev"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			TrustedOrigins:  getSliceEnv("TRUSTED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseSettings{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			DSN:             os.Getenv("DATABASE_DSN"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Auth: AuthSettings{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  getDurationEnv("TOKEN_TTL", 24*time.Hour),
		},
		Gemini: GeminiSettings{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout: getDurationEnv("GEMINI_TIMEOUT", 60*time.Second),
		},
		Quiz: QuizSettings{
			MaxQuestions: getIntEnv("QUIZ_MAX_QUESTIONS", 50),
		},
		Redis: RedisSettings{
			Addr:           os.Getenv("REDIS_ADDR"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             getIntEnv("REDIS_DB", 0),
			RateLimit:      getIntEnv("RATE_LIMIT", 20),
			RateLimitEvery: getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogSettings{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
	}

	if s.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return s, nil
}

func (s *ServerSettings) IsDevelopment() bool {
	return s.Env == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getDurationEnv accepts Go durations ("90s", "24h") or a bare number of seconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
