package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		GameJolt: GameJoltConfig{
			GameID:     "123",
			PrivateKey: "secret",
			APIVersion: "v1_2",
			Format:     "json",
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing game id",
			mutate:  func(c *Config) { c.GameJolt.GameID = "" },
			wantErr: "gamejolt.game_id is required",
		},
		{
			name:    "placeholder private key",
			mutate:  func(c *Config) { c.GameJolt.PrivateKey = "your-private-key-here" },
			wantErr: "gamejolt.private_key",
		},
		{
			name:    "unknown api version",
			mutate:  func(c *Config) { c.GameJolt.APIVersion = "v2" },
			wantErr: "invalid gamejolt.api_version: v2",
		},
		{
			name:    "non-json format",
			mutate:  func(c *Config) { c.GameJolt.Format = "xml" },
			wantErr: "invalid gamejolt.format",
		},
		{
			// --token can supply the other half
			name:   "username without token",
			mutate: func(c *Config) { c.User.Username = "cros" },
		},
		{
			name: "username with token",
			mutate: func(c *Config) {
				c.User.Username = "cros"
				c.User.Token = "tok"
			},
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.HTTP.Timeout = 0 },
			wantErr: "http.timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.HTTP.MaxRetries = -1 },
			wantErr: "http.max_retries",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.HTTP.RateLimit = -2 },
			wantErr: "http.rate_limit",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want message containing %q", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
gamejolt:
  game_id: "123"
  private_key: secret
user:
  username: cros
  token: tok
http:
  timeout: 5s
  rate_limit: 2.5
filter:
  presets:
    missing-gold: 'Difficulty == "Gold" && !Achieved'
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GameJolt.GameID != "123" {
		t.Errorf("game id = %q", cfg.GameJolt.GameID)
	}
	if cfg.GameJolt.APIVersion != "v1_2" {
		t.Errorf("api version default = %q", cfg.GameJolt.APIVersion)
	}
	if cfg.GameJolt.BaseURL != "https://api.gamejolt.com/api/game/" {
		t.Errorf("base url default = %q", cfg.GameJolt.BaseURL)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRetries != 3 {
		t.Errorf("max retries default = %d", cfg.HTTP.MaxRetries)
	}
	if cfg.HTTP.RateLimit != 2.5 {
		t.Errorf("rate limit = %v", cfg.HTTP.RateLimit)
	}
	if cfg.Filter.Presets["missing-gold"] == "" {
		t.Errorf("preset not loaded: %v", cfg.Filter.Presets)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
gamejolt:
  game_id: "123"
  private_key: from-file
`)
	t.Setenv("GJCTL_GAMEJOLT_PRIVATE_KEY", "from-env")
	t.Setenv("GJCTL_GAMEJOLT_API_VERSION", "v1_1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GameJolt.PrivateKey != "from-env" {
		t.Errorf("private key = %q, want env override", cfg.GameJolt.PrivateKey)
	}
	if cfg.GameJolt.APIVersion != "v1_1" {
		t.Errorf("api version = %q, want env override", cfg.GameJolt.APIVersion)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}

	path := writeConfig(t, "gamejolt:\n  game_id: \"123\"\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "private_key") {
		t.Errorf("expected validation error, got %v", err)
	}
}
