package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/tasksave/internal/config"
	"github.com/wizzomafizzo/tasksave/internal/gh"
)

// mockFetcher returns a canned gh result and records the URLs it was asked for.
type mockFetcher struct {
	result gh.Result
	urls   []string
}

func (m *mockFetcher) PRBody(_ context.Context, url string) gh.Result {
	m.urls = append(m.urls, url)
	return m.result
}

func noEnv(string) string { return "" }

func newTestApp(result gh.Result) (*App, *mockFetcher) {
	fetcher := &mockFetcher{result: result}
	return NewApp(nil, WithFetcher(fetcher), WithGetenv(noEnv)), fetcher
}

func TestNewApp_Defaults(t *testing.T) {
	t.Parallel()

	app := NewApp(nil)

	assert.Equal(t, config.DefaultConfig(), app.Config())
	runner, ok := app.fetcher.(*gh.Runner)
	require.True(t, ok)
	assert.Equal(t, "gh", runner.Binary)
	assert.Equal(t, 10*time.Second, runner.Timeout)
}

func TestNewApp_RunnerFollowsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.GHBinary = "/opt/bin/gh"
	cfg.Timeout = 2 * time.Second

	runner, ok := NewApp(cfg).fetcher.(*gh.Runner)
	require.True(t, ok)
	assert.Equal(t, "/opt/bin/gh", runner.Binary)
	assert.Equal(t, 2*time.Second, runner.Timeout)
}
