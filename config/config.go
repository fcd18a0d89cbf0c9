package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/gamejolt/gamejolt"
)

// EnvPrefix prefixes environment overrides, e.g. GJCTL_GAMEJOLT_PRIVATE_KEY
const EnvPrefix = "GJCTL"

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gjctl"))
		}
		v.AddConfigPath("/etc/gjctl/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Without a file the environment can still supply everything
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets a default so
// AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("gamejolt.game_id", "")
	v.SetDefault("gamejolt.private_key", "")
	v.SetDefault("gamejolt.base_url", gamejolt.DefaultBaseURL)
	v.SetDefault("gamejolt.api_version", gamejolt.DefaultVersion)
	v.SetDefault("gamejolt.format", gamejolt.DefaultFormat)

	v.SetDefault("user.username", "")
	v.SetDefault("user.token", "")

	v.SetDefault("http.timeout", "30s")
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.user_agent", "gjctl")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.GameJolt.GameID == "" {
		return fmt.Errorf("gamejolt.game_id is required")
	}

	if cfg.GameJolt.PrivateKey == "" || cfg.GameJolt.PrivateKey == "your-private-key-here" {
		return fmt.Errorf("gamejolt.private_key must be set to the game's private key")
	}

	validVersions := []string{"v1", "v1_1", "v1_2"}
	if !slices.Contains(validVersions, cfg.GameJolt.APIVersion) {
		return fmt.Errorf("invalid gamejolt.api_version: %s (must be one of %s)",
			cfg.GameJolt.APIVersion, strings.Join(validVersions, ", "))
	}

	// Only JSON responses can be evaluated by the CLI
	if cfg.GameJolt.Format != gamejolt.DefaultFormat {
		return fmt.Errorf("invalid gamejolt.format: %s (gjctl only reads json)", cfg.GameJolt.Format)
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}
	if cfg.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must not be negative")
	}
	if cfg.HTTP.RateLimit < 0 {
		return fmt.Errorf("http.rate_limit must not be negative")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
