package hooks

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// HookSpecificOutput represents the hook-specific output structure
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// Response wraps the hook specific output
type Response struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

// NewContextResponse builds a response that surfaces text to the agent.
func NewContextResponse(hookType HookType, text string) *Response {
	return &Response{
		HookSpecificOutput: HookSpecificOutput{
			HookEventName:     hookType.String(),
			AdditionalContext: text,
		},
	}
}

// Write encodes resp as a single JSON line. A nil response writes nothing.
func Write(w io.Writer, resp *Response) error {
	if resp == nil {
		return nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
