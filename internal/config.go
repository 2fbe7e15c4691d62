package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the home directory when no config path is given
const DefaultConfigFile = ".loxrc.yaml"

// Config holds the settings of the command line front end
type Config struct {
	LogLevel     string `yaml:"log_level"`
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	Color        bool   `yaml:"color"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() Config {
	return Config{
		LogLevel:     "warning",
		Prompt:       "> ",
		HistoryFile:  "~/.lox_history",
		MaxCallDepth: defaultMaxCallDepth,
		Color:        true,
	}
}

// LoadConfig reads a YAML config over the defaults. With an empty path the
// default file in the home directory is used if it exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be fixed by defaults
func (c Config) Validate() error {
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max_call_depth must be positive, got %d", c.MaxCallDepth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, Validate must have succeeded
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// HistoryPath expands a leading "~/" of the history file
func (c Config) HistoryPath() string {
	if !strings.HasPrefix(c.HistoryFile, "~/") {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile[2:])
}

// Options converts the config into interpreter options
func (c Config) Options(logger logrus.FieldLogger) []Option {
	return []Option{
		WithLogger(logger),
		WithMaxCallDepth(c.MaxCallDepth),
	}
}
