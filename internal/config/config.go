package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // часовой пояс календарного дня не должен зависеть от образа

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Sessions written by the identity provider
	SessionKeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"session:"`

	// Verification Config
	VerificationRequiredCheckins int            `env:"VERIFICATION_REQUIRED_CHECKINS" envDefault:"3"`
	VerificationWindowDays       int            `env:"VERIFICATION_WINDOW_DAYS" envDefault:"7"`
	VerificationTimezone         string         `env:"VERIFICATION_TIMEZONE" envDefault:"Asia/Dhaka"`
	VerificationLocation         *time.Location `env:"-"`

	// Location Config
	LocationTimeout           time.Duration `env:"LOCATION_TIMEOUT" envDefault:"10s"`
	LocationMaxAccuracyMeters float64       `env:"LOCATION_MAX_ACCURACY_METERS" envDefault:"0"`

	AreaCacheTTL time.Duration `env:"AREA_CACHE_TTL" envDefault:"5m"`

	// Rate limit for check-ins, per user
	CheckinRatePerMinute int `env:"CHECKIN_RATE_PER_MINUTE" envDefault:"6"`
	CheckinRateBurst     int `env:"CHECKIN_RATE_BURST" envDefault:"3"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                  os.Getenv("DATABASE_URL"),
		HTTPPort:                     getEnv("HTTP_PORT", "8080"),
		LogLevel:                     getEnv("LOG_LEVEL", "info"),
		RedisAddr:                    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                    os.Getenv("REDIS_PASSWORD"),
		RedisDB:                      getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                   os.Getenv("WEBHOOK_URL"),
		WebhookSecret:                os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:               getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:            getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:             getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes:       getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		SessionKeyPrefix:             getEnv("SESSION_KEY_PREFIX", "session:"),
		VerificationRequiredCheckins: getEnvAsInt("VERIFICATION_REQUIRED_CHECKINS", 3),
		VerificationWindowDays:       getEnvAsInt("VERIFICATION_WINDOW_DAYS", 7),
		VerificationTimezone:         getEnv("VERIFICATION_TIMEZONE", "Asia/Dhaka"),
		LocationTimeout:              getEnvAsDuration("LOCATION_TIMEOUT", 10*time.Second),
		LocationMaxAccuracyMeters:    getEnvAsFloat("LOCATION_MAX_ACCURACY_METERS", 0),
		AreaCacheTTL:                 getEnvAsDuration("AREA_CACHE_TTL", 5*time.Minute),
		CheckinRatePerMinute:         getEnvAsInt("CHECKIN_RATE_PER_MINUTE", 6),
		CheckinRateBurst:             getEnvAsInt("CHECKIN_RATE_BURST", 3),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	loc, err := time.LoadLocation(cfg.VerificationTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid VERIFICATION_TIMEZONE %q: %w", cfg.VerificationTimezone, err)
	}
	cfg.VerificationLocation = loc

	if cfg.VerificationRequiredCheckins < 1 {
		return nil, fmt.Errorf("VERIFICATION_REQUIRED_CHECKINS must be positive, got %d", cfg.VerificationRequiredCheckins)
	}
	if cfg.VerificationWindowDays < 1 {
		return nil, fmt.Errorf("VERIFICATION_WINDOW_DAYS must be positive, got %d", cfg.VerificationWindowDays)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
