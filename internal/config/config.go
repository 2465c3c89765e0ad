package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the local-development fallback for the remote API
const DefaultAPIBaseURL = "http://localhost:8080/api"

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	API       APIConfig       `yaml:"api"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains the dashboard HTTP listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// APIConfig points at the remote Mountain Ride API
type APIConfig struct {
	BaseURL               string `yaml:"base_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"` // 0 means no timeout
}

// SessionConfig selects where the operator session is persisted
type SessionConfig struct {
	Backend       string `yaml:"backend"` // "file", "redis" or "memory"
	Path          string `yaml:"path"`    // directory for the file backend
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedules (seconds precision, UTC)
type SchedulerConfig struct {
	SessionExpiryCheck string `yaml:"session_expiry_check"`
}

// Load reads configuration from a YAML file. A missing file is not an error:
// the dashboard can run from environment variables and defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// .env is optional; values already in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg.loadEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnv overrides configuration with environment variables
func (c *Config) loadEnv() {
	// API
	if val := os.Getenv("API_BASE_URL"); val != "" {
		c.API.BaseURL = val
	}
	if val := os.Getenv("API_REQUEST_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.API.RequestTimeoutSeconds)
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Session
	if val := os.Getenv("SESSION_BACKEND"); val != "" {
		c.Session.Backend = val
	}
	if val := os.Getenv("SESSION_PATH"); val != "" {
		c.Session.Path = val
	}
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Session.RedisAddr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Session.RedisPassword = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		fmt.Sscanf(val, "%d", &c.Session.RedisDB)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Scheduler
	if val := os.Getenv("SCHEDULER_SESSION_EXPIRY_CHECK"); val != "" {
		c.Scheduler.SessionExpiryCheck = val
	}
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}

	if c.Session.Backend == "" {
		c.Session.Backend = "file"
	}
	if c.Session.Path == "" {
		c.Session.Path = ".mountainride"
	}
	if c.Session.KeyPrefix == "" {
		c.Session.KeyPrefix = "mountainride:"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.SessionExpiryCheck == "" {
		c.Scheduler.SessionExpiryCheck = "0 * * * * *" // every minute
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.API.BaseURL)
	}
	if c.API.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("invalid API request timeout: %d", c.API.RequestTimeoutSeconds)
	}

	switch c.Session.Backend {
	case "file":
		if c.Session.Path == "" {
			return fmt.Errorf("session path is required for the file backend")
		}
	case "memory":
	case "redis":
		if c.Session.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis backend")
		}
	default:
		return fmt.Errorf("unsupported session backend: %s", c.Session.Backend)
	}

	return nil
}

// GetServerAddress returns the dashboard listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// RequestTimeout returns the remote call timeout; zero disables it
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.RequestTimeoutSeconds) * time.Second
}
