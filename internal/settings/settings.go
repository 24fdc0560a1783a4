// Package settings loads toolkit configuration from .resilience/settings.yaml.
//
// Every accessor is safe on a nil *Settings and falls back to the default,
// so a missing settings file needs no special casing by callers.
// Environment variables override the file.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultAddr         = "127.0.0.1:8085"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultSessionTTL   = 2 * time.Hour
	DefaultOutputDir    = "reports"
	DefaultLogLevel     = "info"
)

// Environment overrides.
const (
	EnvAddr      = "RESILIENCE_ADDR"
	EnvLogLevel  = "RESILIENCE_LOG_LEVEL"
	EnvOutputDir = "RESILIENCE_OUTPUT_DIR"
)

// Settings holds configuration from .resilience/settings.yaml.
type Settings struct {
	Server Server `yaml:"server"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Server configures the HTTP service.
type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// SessionTTL evicts sessions idle for longer. Example: "30m".
	SessionTTL time.Duration `yaml:"session_ttl"`
	// RateLimit caps requests per second across all clients; 0 disables it.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// Output configures report export.
type Output struct {
	Dir string `yaml:"dir"`
}

// Log configures the console logger.
type Log struct {
	Level string `yaml:"level"`
}

// Path returns the settings file path under root.
func Path(root string) string {
	return filepath.Join(root, ".resilience", "settings.yaml")
}

// LoadSettings reads .resilience/settings.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func LoadSettings(root string) (*Settings, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// WithEnv returns a copy of s with environment overrides applied. lookup is
// os.LookupEnv in production.
func (s *Settings) WithEnv(lookup func(string) (string, bool)) *Settings {
	var out Settings
	if s != nil {
		out = *s
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		out.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		out.Log.Level = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		out.Output.Dir = v
	}
	return &out
}

// Addr returns the listen address.
func (s *Settings) Addr() string {
	if s == nil || s.Server.Addr == "" {
		return DefaultAddr
	}
	return s.Server.Addr
}

// ReadTimeout returns the server read timeout.
func (s *Settings) ReadTimeout() time.Duration {
	if s == nil || s.Server.ReadTimeout <= 0 {
		return DefaultReadTimeout
	}
	return s.Server.ReadTimeout
}

// WriteTimeout returns the server write timeout.
func (s *Settings) WriteTimeout() time.Duration {
	if s == nil || s.Server.WriteTimeout <= 0 {
		return DefaultWriteTimeout
	}
	return s.Server.WriteTimeout
}

// SessionTTL returns the idle session lifetime.
func (s *Settings) SessionTTL() time.Duration {
	if s == nil || s.Server.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return s.Server.SessionTTL
}

// RateLimit returns the request rate cap in requests per second, or 0 for
// no limit.
func (s *Settings) RateLimit() float64 {
	if s == nil || s.Server.RateLimit < 0 {
		return 0
	}
	return s.Server.RateLimit
}

// RateBurst returns the limiter burst. It defaults to the rate, and is at
// least 1.
func (s *Settings) RateBurst() int {
	if s != nil && s.Server.RateBurst > 0 {
		return s.Server.RateBurst
	}
	if b := int(s.RateLimit()); b > 1 {
		return b
	}
	return 1
}

// OutputDir returns the report directory.
func (s *Settings) OutputDir() string {
	if s == nil || s.Output.Dir == "" {
		return DefaultOutputDir
	}
	return s.Output.Dir
}

// LogLevel returns the configured log level name.
func (s *Settings) LogLevel() string {
	if s == nil || s.Log.Level == "" {
		return DefaultLogLevel
	}
	return s.Log.Level
}
