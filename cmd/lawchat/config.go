package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/chat"
	"github.com/fwojciec/lawchat/gemini"
	lcopenai "github.com/fwojciec/lawchat/openai"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names.
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// Config holds settings read from the optional YAML file. Command-line
// flags take precedence over file values.
type Config struct {
	Backend       string        `yaml:"backend"`
	Model         string        `yaml:"model"`
	BaseURL       string        `yaml:"base_url"`
	CitationLimit int           `yaml:"citation_limit"`
	Timeout       time.Duration `yaml:"timeout"`
	RateLimit     float64       `yaml:"rate_limit"`
	LogLevel      string        `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendGemini,
		CitationLimit: lawchat.DefaultCitationLimit,
		Timeout:       chat.DefaultTimeout,
		RateLimit:     1,
		LogLevel:      "warn",
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, lawchat.Errorf(lawchat.EINVALID, "invalid config %q: %v", path, err)
	}
	return cfg, cfg.Validate()
}

// Apply overrides file values with non-empty flags.
func (c *Config) Apply(cli *CLI) {
	if cli.Backend != "" {
		c.Backend = cli.Backend
	}
	if cli.Model != "" {
		c.Model = cli.Model
	}
	if cli.Verbose {
		c.LogLevel = "debug"
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGemini, BackendOpenAI:
	default:
		return lawchat.Errorf(lawchat.EINVALID, "unknown backend %q", c.Backend)
	}
	if c.CitationLimit <= 0 {
		return lawchat.Errorf(lawchat.EINVALID, "citation_limit must be positive")
	}
	if c.Timeout < 0 {
		return lawchat.Errorf(lawchat.EINVALID, "timeout must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, lawchat.Errorf(lawchat.EINVALID, "invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// DefaultModel returns the model for the configured backend.
func (c *Config) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Backend == BackendOpenAI {
		return lcopenai.DefaultModel
	}
	return gemini.DefaultModel
}

// loadEnv loads variables from path into the environment. A missing file
// is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
