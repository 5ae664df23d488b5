// Package config loads aoc settings from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its config file.
const DefaultPath = "aoc.yaml"

// Config holds all aoc configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Runner  RunnerConfig  `yaml:"runner"`
	Store   StoreConfig   `yaml:"store"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates puzzle inputs.
type InputConfig struct {
	Dir     string `yaml:"dir" env:"AOC_INPUT_DIR"`
	Pattern string `yaml:"pattern" env:"AOC_INPUT_PATTERN"` // must hold one %d verb
}

// RunnerConfig bounds solver execution.
type RunnerConfig struct {
	Workers     int    `yaml:"workers" env:"AOC_WORKERS"`
	PartTimeout string `yaml:"part_timeout" env:"AOC_PART_TIMEOUT"`
	FailFast    bool   `yaml:"fail_fast"`
}

// StoreConfig configures the answers ledger.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" env:"AOC_DB"`
}

// FetchConfig configures input downloads. The session cookie is only read
// from the environment and never written back to disk.
type FetchConfig struct {
	BaseURL string `yaml:"base_url" env:"AOC_FETCH_URL"`
	Timeout string `yaml:"timeout"`
	PageDir string `yaml:"page_dir"`        // cached puzzle descriptions
	Style   string `yaml:"style,omitempty"` // glamour style for show, auto when empty
	Session string `yaml:"-" env:"AOC_SESSION"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"AOC_LOG_LEVEL"` // debug, info, warn, error
	Format     string          `yaml:"format"`                    // console, json
	File       string          `yaml:"file"`                      // optional, stderr when empty
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     "input/2020",
			Pattern: "day%d.txt",
		},
		Runner: RunnerConfig{
			Workers:     4,
			PartTimeout: "30s",
			FailFast:    true,
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    ".aoc/results.db",
		},
		Fetch: FetchConfig{
			BaseURL: "https://adventofcode.com",
			Timeout: "15s",
			PageDir: ".aoc/pages",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides. Unset variables
// leave the file or default value in place.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GetPartTimeout returns the per-part timeout as a duration.
func (c *Config) GetPartTimeout() time.Duration {
	d, err := time.ParseDuration(c.Runner.PartTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetFetchTimeout returns the HTTP timeout for input downloads.
func (c *Config) GetFetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// ValidLevels lists accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir must not be empty")
	}
	if strings.Count(c.Input.Pattern, "%") != 1 || !validPattern(c.Input.Pattern) {
		return fmt.Errorf("invalid input.pattern %q: must contain exactly one %%d verb", c.Input.Pattern)
	}
	if c.Runner.Workers < 1 {
		return fmt.Errorf("runner.workers must be at least 1, got %d", c.Runner.Workers)
	}
	if _, err := time.ParseDuration(c.Runner.PartTimeout); err != nil {
		return fmt.Errorf("invalid runner.part_timeout %q: %w", c.Runner.PartTimeout, err)
	}
	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("store.path must be set when the store is enabled")
	}

	validLevel := false
	for _, l := range ValidLevels {
		if strings.EqualFold(c.Logging.Level, l) {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	return nil
}

// validPattern accepts an optional zero-padded width between % and d, e.g. %02d.
func validPattern(p string) bool {
	i := strings.Index(p, "%")
	j := i + 1
	for j < len(p) && p[j] >= '0' && p[j] <= '9' {
		j++
	}
	return j < len(p) && p[j] == 'd'
}
