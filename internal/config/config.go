// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
)

// Config holds runtime settings for the intake CLI.
type Config struct {
	DBPath     string
	LogLevel   string
	LogFormat  string
	SessionTTL time.Duration
}

// Load reads configuration from viper, applying defaults for anything unset.
func Load() (Config, error) {
	viper.SetDefault("database.path", "~/.local/share/intake/intake.db")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("session.ttl", "24h")

	ttl, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: session.ttl: %v", common.ErrInvalidConfig, err)
	}

	return Config{
		DBPath:     ExpandPath(viper.GetString("database.path")),
		LogLevel:   viper.GetString("logging.level"),
		LogFormat:  viper.GetString("logging.format"),
		SessionTTL: ttl,
	}, nil
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
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

	// Then expand environment variables
	return os.ExpandEnv(path)
}
