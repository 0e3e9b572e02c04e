package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"app-registry/internal/logger"
	"app-registry/internal/models"
)

const (
	DefaultDatabasePath = "applications.db"
	DefaultWindowWidth  = 720
	DefaultWindowHeight = 480
)

// Environment overrides, applied after the config file
const (
	EnvDatabase    = "APPREG_DB"
	EnvLogLevel    = "APPREG_LOG_LEVEL"
	EnvJSONLogs    = "APPREG_JSON_LOGS"
	EnvMatchMode   = "APPREG_MATCH_MODE"
	EnvErrorPolicy = "APPREG_ERROR_POLICY"
)

type Config struct {
	DatabasePath string             `yaml:"database"`
	LogLevel     string             `yaml:"log_level"`
	JSONLogs     bool               `yaml:"json_logs"`
	MatchMode    models.MatchMode   `yaml:"match_mode"`
	ErrorPolicy  models.ErrorPolicy `yaml:"error_policy"`
	Window       Window             `yaml:"window"`
}

type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func Default() Config {
	return Config{
		DatabasePath: DefaultDatabasePath,
		LogLevel:     "info",
		MatchMode:    models.MatchAll,
		ErrorPolicy:  models.PolicySilent,
		Window: Window{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path or a
// missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from APPREG_* variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvDatabase); ok && v != "" {
		c.DatabasePath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvJSONLogs); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJSONLogs, err)
		}
		c.JSONLogs = b
	}
	if v, ok := lookup(EnvMatchMode); ok && v != "" {
		c.MatchMode = models.MatchMode(v)
	}
	if v, ok := lookup(EnvErrorPolicy); ok && v != "" {
		c.ErrorPolicy = models.ErrorPolicy(v)
	}
	return nil
}

// Validate normalises enum fields and rejects unknown values
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("database path is empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	mode, err := models.ParseMatchMode(string(c.MatchMode))
	if err != nil {
		return err
	}
	c.MatchMode = mode

	policy, err := models.ParseErrorPolicy(string(c.ErrorPolicy))
	if err != nil {
		return err
	}
	c.ErrorPolicy = policy

	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultWindowHeight
	}
	return nil
}
