package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/tasksave/internal/constants"
	"gopkg.in/yaml.v3"
)

// ErrConfigInvalid wraps every validation failure.
var ErrConfigInvalid = errors.New("invalid config")

var agentNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Config struct {
	GHBinary    string            `yaml:"gh_binary"`
	LogLevel    string            `yaml:"log_level"`
	LogFile     string            `yaml:"log_file,omitempty"`
	PRChecklist PRChecklistConfig `yaml:"pr_checklist"`
	Subagent    SubagentConfig    `yaml:"subagent"`
	Timeout     time.Duration     `yaml:"timeout"`
}

type PRChecklistConfig struct {
	Context string `yaml:"context"`
}

type SubagentConfig struct {
	Context string   `yaml:"context"`
	Exclude []string `yaml:"exclude"`
}

// Load reads the config at path. A missing file is not an error: the defaults
// are returned with found set to false.
func Load(fs afero.Fs, path string) (cfg *Config, found bool, err error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), false, nil
		}
		return nil, false, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err = LoadFromYAML(data)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// LoadFromYAML parses YAML on top of the defaults, so omitted keys keep their
// default values.
func LoadFromYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GHBinary) == "" {
		return fmt.Errorf("%w: gh_binary cannot be empty", ErrConfigInvalid)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrConfigInvalid, c.Timeout)
	}

	if c.Timeout > constants.MaxLookupTimeout {
		return fmt.Errorf("%w: timeout must be at most %s so gh finishes before the %ds hook limit, got %s",
			ErrConfigInvalid, constants.MaxLookupTimeout, constants.HookTimeoutSeconds, c.Timeout)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("%w: unknown log_level '%s'", ErrConfigInvalid, c.LogLevel)
	}

	if strings.TrimSpace(c.PRChecklist.Context) == "" {
		return fmt.Errorf("%w: pr_checklist.context cannot be empty", ErrConfigInvalid)
	}

	if strings.TrimSpace(c.Subagent.Context) == "" {
		return fmt.Errorf("%w: subagent.context cannot be empty", ErrConfigInvalid)
	}

	for i, name := range c.Subagent.Exclude {
		if !agentNamePattern.MatchString(name) {
			return fmt.Errorf("%w: subagent.exclude %d: '%s' is not a plain agent name", ErrConfigInvalid, i+1, name)
		}
	}

	return nil
}

// Level returns the zerolog level for LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// SubagentMatcher returns the SubagentStart matcher that skips excluded agent
// types, e.g. ^(?!Bash$|Explore$). An empty exclusion list matches everything.
func (c *Config) SubagentMatcher() string {
	if len(c.Subagent.Exclude) == 0 {
		return ""
	}

	alternatives := make([]string, 0, len(c.Subagent.Exclude))
	for _, name := range c.Subagent.Exclude {
		alternatives = append(alternatives, name+"$")
	}
	return "^(?!" + strings.Join(alternatives, "|") + ")"
}
