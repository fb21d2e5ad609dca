package testutil

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog" //nolint:depguard // Test utilities need direct zerolog access
	"github.com/wizzomafizzo/tasksave/internal/logging"
)

// LogCapture holds what a test logger wrote to each sink.
type LogCapture struct {
	file   strings.Builder
	stderr strings.Builder
	mu     sync.Mutex
}

// File returns the structured JSON log output.
func (c *LogCapture) File() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file.String()
}

// Stderr returns the tagged diagnostic lines.
func (c *LogCapture) Stderr() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stderr.String()
}

type lockedWriter struct {
	mu  *sync.Mutex
	dst *strings.Builder
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dst.Write(p) //nolint:wrapcheck // strings.Builder never fails
}

// NewTestContext creates a context with logger for race-safe testing
// Returns a context with logger attached and the capture of both sinks
func NewTestContext(t *testing.T, component string) (context.Context, *LogCapture) {
	t.Helper()

	capture := &LogCapture{}
	ctx, err := logging.New(context.Background(), nil, logging.Config{
		Writer:    lockedWriter{mu: &capture.mu, dst: &capture.file},
		Stderr:    lockedWriter{mu: &capture.mu, dst: &capture.stderr},
		Component: component,
		ProjectID: "test-project",
		Level:     zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, capture
}
