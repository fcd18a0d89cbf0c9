package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	GameJolt GameJoltConfig `mapstructure:"gamejolt"`
	User     UserConfig     `mapstructure:"user"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// GameJoltConfig holds the game credentials and API selection
type GameJoltConfig struct {
	GameID     string `mapstructure:"game_id"`
	PrivateKey string `mapstructure:"private_key"`
	BaseURL    string `mapstructure:"base_url"`
	APIVersion string `mapstructure:"api_version"`
	Format     string `mapstructure:"format"`
}

// UserConfig holds the default player for user-scoped commands
type UserConfig struct {
	Username string `mapstructure:"username"`
	Token    string `mapstructure:"token"`
}

// HTTPConfig tunes the transport
type HTTPConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RateLimit  float64       `mapstructure:"rate_limit"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
