// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lenahart/ledgerlens/internal/common"
	"github.com/lenahart/ledgerlens/internal/llm"
)

// Config is the resolved application configuration.
type Config struct {
	StorePath     string
	UserID        string
	ListenAddr    string
	Oracle        llm.Config
	OracleTimeout time.Duration
	WindowDays    int
}

// Load resolves configuration from Viper (config file or LENS_ env vars)
// with sensible defaults.
func Load() (*Config, error) {
	viper.SetDefault("store.path", defaultStorePath())
	viper.SetDefault("server.listen", ":5001")
	viper.SetDefault("oracle.provider", "gemini")
	viper.SetDefault("oracle.timeout", "30s")
	viper.SetDefault("oracle.requests_per_minute", 30)
	viper.SetDefault("analytics.window_days", 30)

	cfg := &Config{
		StorePath:  ExpandPath(viper.GetString("store.path")),
		UserID:     viper.GetString("user_id"),
		ListenAddr: viper.GetString("server.listen"),
		Oracle: llm.Config{
			Provider:          viper.GetString("oracle.provider"),
			APIKey:            viper.GetString("oracle.api_key"),
			Model:             viper.GetString("oracle.model"),
			Temperature:       viper.GetFloat64("oracle.temperature"),
			MaxTokens:         viper.GetInt("oracle.max_tokens"),
			RequestsPerMinute: viper.GetInt("oracle.requests_per_minute"),
		},
		OracleTimeout: viper.GetDuration("oracle.timeout"),
		WindowDays:    viper.GetInt("analytics.window_days"),
	}

	// Provider API keys fall back to their conventional env vars.
	if cfg.Oracle.APIKey == "" {
		switch cfg.Oracle.Provider {
		case "gemini", "":
			cfg.Oracle.APIKey = os.Getenv("GEMINI_API_KEY")
		case "anthropic":
			cfg.Oracle.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			cfg.Oracle.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("%w: store.path", common.ErrMissingConfig)
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("%w: analytics.window_days must be positive", common.ErrInvalidConfig)
	}
	switch c.Oracle.Provider {
	case "", "gemini", "anthropic", "openai":
	default:
		return fmt.Errorf("%w: unknown oracle provider %q", common.ErrInvalidConfig, c.Oracle.Provider)
	}
	return nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ledgerlens.db"
	}
	return filepath.Join(home, ".local", "share", "lens", "ledgerlens.db")
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
