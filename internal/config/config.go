package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const FileName = "evseed.config"

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Server   Server   `json:"server" mapstructure:"server"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Name     string `json:"name,omitempty" mapstructure:"name"` // overrides the database in the URL
}

type Server struct {
	Port int `json:"port" mapstructure:"port"`
}

// Seed overrides parts of the compiled-in seed plan. Phases themselves
// cannot be switched on or off here.
type Seed struct {
	Counts      map[string]int `json:"counts,omitempty" mapstructure:"counts"`
	BookingLink string         `json:"booking_link,omitempty" mapstructure:"booking_link"`
	Concurrency int            `json:"concurrency,omitempty" mapstructure:"concurrency"`
	RandomSeed  uint64         `json:"random_seed,omitempty" mapstructure:"random_seed"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Provider == "" {
		c.Database.Provider = "mongodb"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DB_CONNECTION"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Seed.BookingLink == "" {
		c.Seed.BookingLink = "batch"
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"mongodb", "mongo", "memory"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Seed.Concurrency < 0 {
		return fmt.Errorf("seed concurrency cannot be negative")
	}

	return nil
}
