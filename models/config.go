// Package models defines data structures for configuration.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for a mirror run. Every field has a
// compiled default; an optional config.yaml can override them, and CLI flags
// override both.
type Config struct {
	BaseURL   string
	OutputDir string
	Timeout   time.Duration
	Delay     time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "https://docs.shipany.ai/en",
		OutputDir: "shipany_docs",
		Timeout:   10 * time.Second,
		Delay:     1 * time.Second,
	}
}

// fileConfig is the on-disk shape; durations are written as strings like
// "10s" and parsed with time.ParseDuration.
type fileConfig struct {
	BaseURL   string `yaml:"base_url"`
	OutputDir string `yaml:"output_dir"`
	Timeout   string `yaml:"timeout"`
	Delay     string `yaml:"delay"`
}

// LoadConfig returns the defaults overlaid with values from path. A missing
// file is not an error: the tool must run with no setup at all.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.BaseURL != "" {
		config.BaseURL = file.BaseURL
	}
	if file.OutputDir != "" {
		config.OutputDir = file.OutputDir
	}
	if file.Timeout != "" {
		config.Timeout, err = time.ParseDuration(file.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout in %s: %w", path, err)
		}
	}
	if file.Delay != "" {
		config.Delay, err = time.ParseDuration(file.Delay)
		if err != nil {
			return nil, fmt.Errorf("invalid delay in %s: %w", path, err)
		}
	}
	return config, nil
}
