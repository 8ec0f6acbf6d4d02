package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidPort     = errors.New("port must be between 1 and 65535")
	ErrInvalidBasePath = errors.New("base path must start with / and not end with /")
)

// Config represents the server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// BasePath is the prefix the blog post routes are mounted under.
	BasePath string `yaml:"base_path"`
	// ExpectedHost enables Host header validation when non-empty.
	ExpectedHost    string        `yaml:"expected_host"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	GinMode         string        `yaml:"gin_mode"`
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SeedConfig struct {
	SamplePosts bool `yaml:"sample_posts"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			BasePath:        "/blog-post",
			ShutdownTimeout: 10 * time.Second,
			GinMode:         "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Seed: SeedConfig{
			SamplePosts: true,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path
// and environment variable overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Host = getEnv("BACKEND_HOST", c.Server.Host)
	c.Server.BasePath = getEnv("BASE_PATH", c.Server.BasePath)
	c.Server.ExpectedHost = getEnv("EXPECTED_HOST", c.Server.ExpectedHost)
	c.Server.GinMode = getEnv("GIN_MODE", c.Server.GinMode)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	if v, ok := os.LookupEnv("BACKEND_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BACKEND_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}

	if v, ok := os.LookupEnv("SEED_SAMPLE_POSTS"); ok && v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEED_SAMPLE_POSTS %q: %w", v, err)
		}
		c.Seed.SamplePosts = seed
	}

	return nil
}

// Validate checks the values that cannot be caught by YAML decoding.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%d: %w", c.Server.Port, ErrInvalidPort)
	}
	if !strings.HasPrefix(c.Server.BasePath, "/") || strings.HasSuffix(c.Server.BasePath, "/") {
		return fmt.Errorf("%q: %w", c.Server.BasePath, ErrInvalidBasePath)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
