package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "INSIGHTS"

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Environment names derive from field names, e.g. INSIGHTS_DATASET_PATH.
// No envconfig tags: envconfig also looks up the bare tag, so PATH would
// read $PATH.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
	BodyLimit       int           `yaml:"body_limit" split_words:"true"`
}

type DatasetConfig struct {
	Source      string `yaml:"source" split_words:"true"`
	Path        string `yaml:"path" split_words:"true"`
	PostgresDSN string `yaml:"postgres_dsn" split_words:"true"`
	Table       string `yaml:"table" split_words:"true"`

	// StrictColumns is nil until set by file or env; see Strict.
	StrictColumns *bool `yaml:"strict_columns" split_words:"true"`
}

// Strict reports whether unrecognized dataset columns are a load error.
func (d DatasetConfig) Strict() bool {
	return d.StrictColumns == nil || *d.StrictColumns
}

type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"`
}

// Load reads ./.env if present, then the YAML file at path (optional),
// then INSIGHTS_* environment variables, which win over the file.
// Unset values fall back to defaults.
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Server.BodyLimit == 0 {
		c.Server.BodyLimit = 1 << 20
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = SourceCSV
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "data/EduNest_Synthetic_Dataset.csv"
	}
	if c.Dataset.Table == "" {
		c.Dataset.Table = "customers"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

func (c *Config) validate() error {
	c.Dataset.Source = strings.ToLower(c.Dataset.Source)
	switch c.Dataset.Source {
	case SourceCSV:
	case SourcePostgres:
		if c.Dataset.PostgresDSN == "" {
			return fmt.Errorf("dataset.postgres_dsn is required when dataset.source is %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("dataset.source must be %q or %q, got %q", SourceCSV, SourcePostgres, c.Dataset.Source)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if c.Server.BodyLimit < 0 {
		return fmt.Errorf("server.body_limit must not be negative")
	}
	return nil
}
