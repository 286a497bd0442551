// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CheckerConfig contains configuration for a collision check run
type CheckerConfig struct {
	Scene     string       `json:"scene" yaml:"scene"`
	Collision SystemConfig `json:"collision" yaml:"collision"`
	Output    OutputConfig `json:"output" yaml:"output"`
}

// SystemConfig tunes the collision system
type SystemConfig struct {
	// Workers is the number of goroutines narrow-phase pairs are sharded over.
	Workers int `json:"workers" yaml:"workers"`
	// BroadPhase skips pairs whose rectangle hulls do not overlap.
	BroadPhase bool `json:"broadPhase" yaml:"broadPhase"`
}

// OutputConfig controls what the report contains
type OutputConfig struct {
	Hulls    bool   `json:"hulls" yaml:"hulls"`
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvScene      = "SATCHECK_SCENE"
	EnvWorkers    = "SATCHECK_WORKERS"
	EnvBroadPhase = "SATCHECK_BROAD_PHASE"
	EnvHulls      = "SATCHECK_HULLS"
	EnvLogLevel   = "SATCHECK_LOG_LEVEL"
)

// LoadConfig loads a configuration from a JSON or YAML file, chosen by
// extension. Fields missing from the file keep their default values.
func LoadConfig(path string) (*CheckerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a JSON or YAML file, chosen by extension
func SaveConfig(config *CheckerConfig, path string) error {
	if config == nil {
		return fmt.Errorf("failed to marshal config: nil config")
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default checker configuration
func DefaultConfig() *CheckerConfig {
	return &CheckerConfig{
		Scene: "scene.yaml",
		Collision: SystemConfig{
			Workers:    runtime.GOMAXPROCS(0),
			BroadPhase: true,
		},
		Output: OutputConfig{
			Hulls:    false,
			LogLevel: "INFO",
		},
	}
}

// ApplyEnvironmentOverrides replaces configuration values with the
// SATCHECK_* environment variables that are set.
func ApplyEnvironmentOverrides(config *CheckerConfig) error {
	if v, ok := os.LookupEnv(EnvScene); ok && v != "" {
		config.Scene = v
	}
	if err := getEnvInt(EnvWorkers, &config.Collision.Workers); err != nil {
		return err
	}
	if err := getEnvBool(EnvBroadPhase, &config.Collision.BroadPhase); err != nil {
		return err
	}
	if err := getEnvBool(EnvHulls, &config.Output.Hulls); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		config.Output.LogLevel = v
	}
	return config.Validate()
}

// Validate checks the configuration for values the checker cannot run with
func (c *CheckerConfig) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("scene path cannot be empty")
	}
	if c.Collision.Workers < 1 {
		return fmt.Errorf("invalid worker count: %d (must be at least 1)", c.Collision.Workers)
	}
	switch strings.ToUpper(c.Output.LogLevel) {
	case "", "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %q", c.Output.LogLevel)
	}
	return nil
}

func getEnvInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func getEnvBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
