package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// Config represents the bot configuration
type Config struct {
	BotToken      string        `env:"BOT_TOKEN" validate:"required"`
	BotDebug      bool          `env:"BOT_DEBUG"`
	SuperAdmins   []string      `env:"SUPER_ADMINS" envSeparator:","`
	DBPath        string        `env:"DB_PATH" envDefault:"./bot.db" validate:"required"`
	BlobPath      string        `env:"BLOB_PATH" envDefault:"./data" validate:"required"`
	NotifyHour    int           `env:"NOTIFY_HOUR" envDefault:"15" validate:"gte=0,lte=23"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"60s" validate:"gte=1s"`
	SendRate      float64       `env:"SEND_RATE" envDefault:"25" validate:"gt=0"`
	MetricsAddr   string        `env:"METRICS_ADDR" validate:"omitempty,hostname_port"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error disabled"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
}

// LoadConfig loads configuration from .env file and environment variables
func LoadConfig() (*Config, error) {
	// Try to load from .env file
	if err := loadEnvFile(".env"); err == nil {
		log.Info().Msg("Loaded .env file")
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	config.SuperAdmins = cleanUsernames(config.SuperAdmins)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &config, nil
}

// loadEnvFile loads environment variables from a .env file.
// Variables already present in the environment win.
func loadEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		os.Setenv(key, strings.Trim(strings.TrimSpace(value), `"'`))
	}

	return scanner.Err()
}

// cleanUsernames trims spaces and leading @ and drops empty entries.
func cleanUsernames(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimPrefix(strings.TrimSpace(name), "@")
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// IsSuperAdmin checks if a username may manage every channel
func (c *Config) IsSuperAdmin(username string) bool {
	return username != "" && slices.Contains(c.SuperAdmins, username)
}
