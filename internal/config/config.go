package config

import (
	"strings"
	"time"

	"github.com/renovalte/renovalte/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	App         AppConfig
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Auth        AuthConfig
	Minio       MinioConfig
	Gemini      GeminiConfig
}

type AppConfig struct {
	// SITE_URL is the public base URL used to build absolute offer-upload links.
	SITE_URL     string
	FRONTEND_URL string
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MailConfig struct {
	SEND_GRID   SendGridConfig
	FROM_EMAIL  string
	SendTimeout time.Duration
}

type SendGridConfig struct {
	API_KEY string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type GeminiConfig struct {
	API_KEY  string
	MODEL    string
	BASE_URL string
	Timeout  time.Duration
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimitTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimitTimeFrame = 60 * time.Second
	}

	mailSendTimeout, err := time.ParseDuration(env.GetString("MAIL_SEND_TIMEOUT", "15s"))
	if err != nil {
		mailSendTimeout = 15 * time.Second
	}

	geminiTimeout, err := time.ParseDuration(env.GetString("GEMINI_TIMEOUT", "30s"))
	if err != nil {
		geminiTimeout = 30 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		App: AppConfig{
			SITE_URL:     env.GetString("SITE_URL", "http://localhost:8080"),
			FRONTEND_URL: env.GetString("FRONTEND_URL", "http://localhost:5173"),
		},
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "renovalte"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimitTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			FROM_EMAIL: env.GetString("MAIL_FROM_MAIL", ""),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
			SendTimeout: mailSendTimeout,
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "renovalte"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		Gemini: GeminiConfig{
			API_KEY:  env.GetString("GEMINI_API_KEY", ""),
			MODEL:    env.GetString("GEMINI_MODEL", "gemini-1.5-pro"),
			BASE_URL: env.GetString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Timeout:  geminiTimeout,
		},
	}
}
