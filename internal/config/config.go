// Package config loads the process's ambient settings: log verbosity
// and the HTTP client timeout. None of it reaches the core extractor,
// which remains a pure function of its HTML/BaseURL arguments.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI/server's ambient settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Client  ClientConfig  `yaml:"client"`
}

// LoggingConfig controls internal/logging.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// ClientConfig controls pkg/fetch.
type ClientConfig struct {
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`
}

// Load reads path as YAML and applies defaults for anything left
// unset. A missing file is not an error — it just means defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	setDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// NewDefault returns a Config with every default applied and no file
// read. The CLI falls back to it when Load returns an error.
func NewDefault() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	if cfg.Client.HTTPTimeoutSeconds == 0 {
		cfg.Client.HTTPTimeoutSeconds = 30
	}
}

func applyEnvOverrides(cfg *Config) {
	if os.Getenv("READURL_LOG_DEBUG") == "1" {
		cfg.Logging.Debug = true
	}
}
