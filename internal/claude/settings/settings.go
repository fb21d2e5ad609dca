// Package settings provides programmatic access to Claude settings.json files.
package settings

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Schema: https://www.schemastore.org/claude-code-settings.json

// HookEvent represents a hook event key under "hooks".
type HookEvent string

const (
	PostToolUseEvent   HookEvent = "PostToolUse"
	SubagentStartEvent HookEvent = "SubagentStart"
)

// Settings represents a Claude settings.json file. Only hooks are modelled;
// every other top-level key is carried through untouched.
type Settings struct {
	Hooks map[HookEvent][]HookMatcher
	other map[string]json.RawMessage
}

// HookMatcher represents a single matcher within a hook event.
type HookMatcher struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []HookCommand `json:"hooks"`
}

// HookCommand represents a single command to execute when a hook matches.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// UnmarshalJSON splits the hooks section from the remaining keys.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	s.Hooks = nil
	if hooksJSON, ok := raw["hooks"]; ok {
		if err := json.Unmarshal(hooksJSON, &s.Hooks); err != nil {
			return fmt.Errorf("failed to parse hooks: %w", err)
		}
		delete(raw, "hooks")
	}
	s.other = raw
	return nil
}

// MarshalJSON writes hooks back alongside the untouched keys.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.other)+1)
	for key, value := range s.other {
		out[key] = value
	}
	if len(s.Hooks) > 0 {
		out["hooks"] = s.Hooks
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}
