package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Projects  ProjectsConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
	Contact   ContactConfig
	Admin     AdminConfig
	App       AppConfig
}

type ServerConfig struct {
	Port             string
	CORSOrigins      []string
	PlaceholderImage string
	// ImagesDir is served at /images for project artwork.
	ImagesDir string
}

type DatabaseConfig struct {
	Path string
}

type ProjectsConfig struct {
	// File is an optional YAML catalog. When empty the embedded catalog is used.
	File            string
	Watch           bool
	RefreshSchedule string
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type AnalyticsConfig struct {
	RetentionDays int
}

type ContactConfig struct {
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	ToEmail       string
	RatePerMinute int
}

type AdminConfig struct {
	Username string
	Password string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogPretty   bool
	Version     string

	// EnvFileLoaded reports whether a .env file was found and applied.
	EnvFileLoaded bool
}

// Load applies ./.env when present and then reads the environment. A missing
// .env is not an error; a malformed one is.
func Load() (*Config, error) {
	loaded := true
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
		loaded = false
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	cfg.App.EnvFileLoaded = loaded
	return cfg, nil
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			CORSOrigins:      getEnvAsList("CORS_ORIGINS", []string{"*"}),
			PlaceholderImage: getEnv("PLACEHOLDER_IMAGE", "/static/placeholder.svg"),
			ImagesDir:        getEnv("IMAGES_DIR", "images"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "portfolio.db"),
		},
		Projects: ProjectsConfig{
			File:            getEnv("PROJECTS_FILE", ""),
			Watch:           getEnvAsBool("WATCH_PROJECTS", false),
			RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 15m"),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			TTL:           getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		},
		Analytics: AnalyticsConfig{
			RetentionDays: getEnvAsInt("VISITOR_RETENTION_DAYS", 365),
		},
		Contact: ContactConfig{
			SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:      getEnv("SMTP_PORT", "587"),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			ToEmail:       getEnv("TO_EMAIL", ""),
			RatePerMinute: getEnvAsInt("CONTACT_RATE_PER_MINUTE", 5),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		App: AppConfig{
			Environment: env,
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogPretty:   getEnvAsBool("LOG_PRETTY", env == "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	// Default credentials for development only
	if cfg.IsDevelopment() {
		if cfg.Admin.Username == "" {
			cfg.Admin.Username = "admin"
		}
		if cfg.Admin.Password == "" {
			cfg.Admin.Password = "admin123"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}

	if c.Analytics.RetentionDays <= 0 {
		return fmt.Errorf("VISITOR_RETENTION_DAYS must be positive")
	}

	if c.Contact.RatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive")
	}

	if !c.IsDevelopment() && (c.Admin.Username == "" || c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required outside development")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// SMTPConfigured reports whether contact mail can be delivered.
func (c ContactConfig) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
