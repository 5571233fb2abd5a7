package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	APIURL   string `mapstructure:"api_url"`
	PageSize int    `mapstructure:"page_size"`
	DataDir  string `mapstructure:"data_dir"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from a local .env file (if present) and
// PADMIN_-prefixed environment variables, with defaults for everything.
func Load() (*Config, error) {
	// A missing .env is fine; env vars alone are enough.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PADMIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("page_size", 10)
	v.SetDefault("data_dir", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	// AutomaticEnv does not surface env vars through Unmarshal, so bind each
	// key explicitly before unmarshalling.
	for _, key := range []string{"api_url", "page_size", "data_dir", "log_file", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	return v.Unmarshal(cfg)
}

// Validate rejects configurations the client cannot run with
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url must not be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	return nil
}
