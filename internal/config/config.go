// Package config loads dashboard configuration from a YAML file with
// .env and environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataConfig holds workbook location settings. WorkbookPath is tried
// first, then FallbackPaths in order.
type DataConfig struct {
	WorkbookPath  string   `yaml:"workbook_path"`
	FallbackPaths []string `yaml:"fallback_paths"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the zero-config defaults: a local listener and the
// conventional workbook locations.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			AllowedOrigins: []string{"*"},
		},
		Data: DataConfig{
			WorkbookPath:  "Data.xlsx",
			FallbackPaths: []string{"./Data.xlsx", "data/Data.xlsx"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadFromEnv reads the YAML file if present, then applies .env and
// environment overrides. A missing config file is not an error; defaults
// apply.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("FUNDSCOPE_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FUNDSCOPE_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FUNDSCOPE_PORT %q: %w", v, err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("FUNDSCOPE_WORKBOOK"); v != "" {
		cfg.Data.WorkbookPath = v
	}
	if v := os.Getenv("FUNDSCOPE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return cfg, nil
}

// Addr returns the listener address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// WorkbookPaths returns the primary path followed by the fallbacks, in
// try order.
func (c *Config) WorkbookPaths() []string {
	paths := make([]string, 0, 1+len(c.Data.FallbackPaths))
	if c.Data.WorkbookPath != "" {
		paths = append(paths, c.Data.WorkbookPath)
	}
	return append(paths, c.Data.FallbackPaths...)
}
