package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the variable that points at an optional YAML config file.
	EnvConfigFile = "MATH_TOOLS_CONFIG"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "MATH_TOOLS_LOG_LEVEL"
	// EnvLogEncoding overrides the log encoding.
	EnvLogEncoding = "MATH_TOOLS_LOG_ENCODING"

	defaultLogLevel    = "warn"
	defaultLogEncoding = "json"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: Environment variables > YAML config > Defaults
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
}

// Load resolves configuration from the optional YAML file named by
// MATH_TOOLS_CONFIG and the MATH_TOOLS_LOG_* environment variables.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := strings.TrimSpace(os.Getenv(EnvConfigFile)); path != "" {
		yamlCfg, err := loadFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyEnvConfig(&cfg)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level returns the parsed log level. Load has already validated it.
func (c Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if encoding := strings.TrimSpace(yamlCfg.LogEncoding); encoding != "" {
		cfg.LogEncoding = strings.ToLower(encoding)
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if encoding := strings.TrimSpace(os.Getenv(EnvLogEncoding)); encoding != "" {
		cfg.LogEncoding = strings.ToLower(encoding)
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("log encoding must be json or console, got %q", cfg.LogEncoding)
	}
	return nil
}
