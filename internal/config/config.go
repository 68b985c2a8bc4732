package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendMemory        = "memory"
	BackendFile          = "file"
	BackendSQLite        = "sqlite"
	BackendElasticsearch = "elasticsearch"
)

// Config holds all configuration for the application
type Config struct {
	// Discord configuration
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"APP_ID"`
	GuildID string `env:"GUILD_ID"`

	// Storage
	DataDir        string `env:"DATA_DIR"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	DBPath         string `env:"DB_PATH"`
	RoundsFile     string `env:"ROUNDS_FILE"`

	// Elasticsearch, used when StorageBackend is "elasticsearch"
	ElasticsearchURL         string `env:"ELASTICSEARCH_URL" envDefault:"http://localhost:9200"`
	ElasticsearchUsername    string `env:"ELASTICSEARCH_USERNAME"`
	ElasticsearchPassword    string `env:"ELASTICSEARCH_PASSWORD"`
	ElasticsearchIndexPrefix string `env:"ELASTICSEARCH_INDEX_PREFIX" envDefault:"ginrummy"`

	// Game
	HandSize int `env:"HAND_SIZE" envDefault:"10"`

	// Maintenance
	PruneInterval  time.Duration `env:"PRUNE_INTERVAL" envDefault:"24h"`
	RoundRetention time.Duration `env:"ROUND_RETENTION" envDefault:"720h"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development" or "production"
}

// Load reads the configuration from a .env file, if present, and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg.DataDir = filepath.Join(wd, "data")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "rummy.db")
	}
	if cfg.RoundsFile == "" {
		cfg.RoundsFile = filepath.Join(cfg.DataDir, "rounds.json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings every entry point relies on
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendFile, BackendSQLite, BackendElasticsearch:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of %s, %s, %s, %s, got %q",
			BackendMemory, BackendFile, BackendSQLite, BackendElasticsearch, c.StorageBackend)
	}
	if c.HandSize < 1 || c.HandSize > 26 {
		return fmt.Errorf("HAND_SIZE must be between 1 and 26, got %d", c.HandSize)
	}
	return nil
}

// ValidateDiscord checks the credentials the bot needs
func (c *Config) ValidateDiscord() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
