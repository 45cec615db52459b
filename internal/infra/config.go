package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSecretKey signs session cookies when SECRET_KEY is unset. It is
// public by definition and must be overridden outside development.
const DefaultSecretKey = "e63e2e84e1524cf81ae38ec402f92716a9b2c7966b7fb5ea615a247cb9589bac"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DatabasePath     string
	SecretKey        string
	UploadDir        string
	TemplateDir      string
	StaticDir        string
	AdminPassword    string
	CORSOrigins      []string
	SessionTTL       time.Duration
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "10000"),
		DatabasePath:     getEnv("DATABASE_PATH", "database.db"),
		SecretKey:        getEnv("SECRET_KEY", DefaultSecretKey),
		UploadDir:        getEnv("UPLOAD_DIR", "static/uploads"),
		TemplateDir:      getEnv("TEMPLATE_DIR", "web/templates"),
		StaticDir:        getEnv("STATIC_DIR", "static"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "pageforward2025"),
		CORSOrigins:      splitCSV(os.Getenv("CORS_ORIGINS")),
		SessionTTL:       time.Hour * time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
