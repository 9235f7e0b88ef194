package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the resolved server configuration
type Config struct {
	Server ServerConfig `toml:"server"`
	Gemini GeminiConfig `toml:"gemini"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Host      string `toml:"host"`
	Port      string `toml:"port"`
	BodyLimit string `toml:"body_limit"`
}

type GeminiConfig struct {
	Model          string  `toml:"model"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	Temperature    float32 `toml:"temperature"`
	Mock           bool    `toml:"mock"`

	// Never read from the config file
	APIKey string `toml:"-"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns config with the values the service runs with out of the box
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      "5000",
			BodyLimit: "25M",
		},
		Gemini: GeminiConfig{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the config from defaults, an optional TOML file and the
// environment, in that order. A .env file in the working directory is loaded
// into the environment first; variables already set take precedence over it.
// An empty path falls back to $SOLACE_CONFIG.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("SOLACE_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("HOST"); ok && v != "" {
		cfg.Server.Host = v
	}
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		cfg.Server.Port = v
	}
	if v, ok := os.LookupEnv("SOLACE_BODY_LIMIT"); ok && v != "" {
		cfg.Server.BodyLimit = v
	}

	cfg.Gemini.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if v, ok := os.LookupEnv("GEMINI_MODEL"); ok && v != "" {
		cfg.Gemini.Model = v
	}
	if v, ok := os.LookupEnv("GEMINI_TIMEOUT_SECONDS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be a non-negative integer, got %q", v)
		}
		cfg.Gemini.TimeoutSeconds = n
	}
	if v, ok := os.LookupEnv("SOLACE_MOCK_GEMINI"); ok && v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("SOLACE_MOCK_GEMINI: %w", err)
		}
		cfg.Gemini.Mock = b
	}

	if v, ok := os.LookupEnv("SOLACE_LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv("SOLACE_DEV_LOG"); ok && v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("SOLACE_DEV_LOG: %w", err)
		}
		cfg.Log.Development = b
	}
	return nil
}

// Address is the listen address for the HTTP server
func (c Config) Address() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool %q", s)
}
