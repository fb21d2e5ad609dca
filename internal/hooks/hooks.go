// Package hooks defines the JSON contract between Claude Code and tasksave hooks.
package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/wizzomafizzo/tasksave/internal/constants"
)

var (
	// ErrMalformedInput is returned when stdin is empty or not valid JSON.
	ErrMalformedInput = errors.New("malformed hook input")

	// ErrUnexpectedShape is returned when valid JSON does not fit the event record.
	ErrUnexpectedShape = errors.New("unexpected hook input shape")
)

type HookType int

const (
	UnknownHook HookType = iota
	PostToolUseHook
	SubagentStartHook
)

// String returns the hook event name Claude Code uses for the hook type
func (h HookType) String() string {
	switch h {
	case PostToolUseHook:
		return constants.PostToolUseEvent
	case SubagentStartHook:
		return constants.SubagentStartEvent
	case UnknownHook:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// ToolInput and ToolResponse only declare the fields the PR hook reads, so
// unrelated fields of any type never fail decoding.
type ToolInput struct {
	Command string `json:"command"`
}

type ToolResponse struct {
	Stdout string `json:"stdout"`
}

// PostToolUseInput is the subset of a PostToolUse event the PR hook reads.
type PostToolUseInput struct {
	ToolName     string       `json:"tool_name"`     //nolint:tagliatelle // API uses snake_case
	ToolInput    ToolInput    `json:"tool_input"`    //nolint:tagliatelle // API uses snake_case
	ToolResponse ToolResponse `json:"tool_response"` //nolint:tagliatelle // API uses snake_case
}

// SubagentStartInput is the subset of a SubagentStart event the subagent hook reads.
// AgentType is decoded loosely so a non-string value degrades to "unknown".
type SubagentStartInput struct {
	AgentType any `json:"agent_type"` //nolint:tagliatelle // API uses snake_case
}

// AgentTypeOrDefault returns the agent type label, or "unknown" when it is
// missing, empty or not a string.
func (s *SubagentStartInput) AgentTypeOrDefault() string {
	if agentType, ok := s.AgentType.(string); ok && agentType != "" {
		return agentType
	}
	return constants.UnknownAgentType
}

// ReadInput reads the whole event from reader and decodes it into v.
func ReadInput(reader io.Reader, v any) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: failed to read hook input: %w", ErrMalformedInput, err)
	}
	return Decode(data, v)
}

// Decode unmarshals a hook event, classifying failures as ErrMalformedInput
// (not JSON at all) or ErrUnexpectedShape (JSON of the wrong kind). A bare
// null is not an event object.
func Decode(data []byte, v any) error {
	if len(data) == 0 || !json.Valid(data) {
		return ErrMalformedInput
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: event is null", ErrUnexpectedShape)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	return nil
}
