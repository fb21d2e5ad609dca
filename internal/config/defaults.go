package config

import (
	"fmt"

	"github.com/wizzomafizzo/tasksave/internal/constants"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPRChecklistContext is surfaced when a new PR still has unchecked items.
	DefaultPRChecklistContext = "PR has unchecked items. Call TaskCreate for each checklist item."

	// DefaultSubagentContext is injected into every non-excluded subagent.
	DefaultSubagentContext = "If your analysis produces actionable findings " +
		"(bugs, gaps, issues, recommendations), " +
		"register each via TaskCreate before returning results. " +
		"This ensures findings persist beyond coordinator synthesis."
)

// DefaultConfig returns the default tasksave configuration
func DefaultConfig() *Config {
	return &Config{
		GHBinary: constants.GHBinary,
		Timeout:  constants.LookupTimeout,
		LogLevel: "info",
		PRChecklist: PRChecklistConfig{
			Context: DefaultPRChecklistContext,
		},
		Subagent: SubagentConfig{
			Context: DefaultSubagentContext,
			Exclude: append([]string(nil), constants.DefaultSubagentExclusions...),
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
