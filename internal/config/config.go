package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAdminHandle is used when no ADMIN_USERNAME override is set
const DefaultAdminHandle = "kipa_s"

// Config holds all application configuration
type Config struct {
	BotToken     string
	GeminiAPIKey string
	GeminiModel  string
	AdminHandle  string
	AdminChatID  int64
	GenTimeout   time.Duration
	Database     DatabaseConfig
}

// DatabaseConfig holds the optional action-log archive settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		AdminHandle:  getEnv("ADMIN_USERNAME", DefaultAdminHandle),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "deptbot"),
			User:     getEnv("DB_USER", "deptbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID must be an integer: %w", err)
		}
		cfg.AdminChatID = id
	}

	timeoutSeconds, err := strconv.Atoi(getEnv("GENAI_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("GENAI_TIMEOUT_SECONDS must be a positive integer")
	}
	cfg.GenTimeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.DatabaseEnabled() && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required when DB_HOST is set")
	}

	return cfg, nil
}

// DatabaseEnabled reports whether the durable action-log archive is configured
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
