package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Debug    bool
	Database DatabaseConfig
	Reminder ReminderConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// ReminderConfig holds practice reminder settings.
// A zero Interval disables reminders.
type ReminderConfig struct {
	Interval time.Duration
	IdleFor  time.Duration
}

// Load reads bot configuration from environment variables
func Load() (*Config, error) {
	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", os.Getenv("TOKEN_BOT")),
		Database: *db,
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	if cfg.Debug, err = strconv.ParseBool(getEnv("BOT_DEBUG", "false")); err != nil {
		return nil, fmt.Errorf("invalid BOT_DEBUG: %w", err)
	}
	if cfg.Reminder.Interval, err = time.ParseDuration(getEnv("REMINDER_INTERVAL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid REMINDER_INTERVAL: %w", err)
	}
	if cfg.Reminder.IdleFor, err = time.ParseDuration(getEnv("REMINDER_IDLE", "24h")); err != nil {
		return nil, fmt.Errorf("invalid REMINDER_IDLE: %w", err)
	}
	if cfg.Reminder.Interval < 0 || cfg.Reminder.IdleFor < 0 {
		return nil, fmt.Errorf("reminder durations must not be negative")
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings, used by the word loader
func LoadDatabase() (*DatabaseConfig, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	db := &DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "wordbot"),
		User:     getEnv("DB_USER", "wordbot"),
		Password: os.Getenv("DB_PASSWORD"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if db.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return db, nil
}

// DSN returns PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
