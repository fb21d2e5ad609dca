// Package cli implements the tasksave hooks and the install/status operations
// behind the command line.
package cli

import (
	"os"

	"github.com/wizzomafizzo/tasksave/internal/config"
	"github.com/wizzomafizzo/tasksave/internal/gh"
)

// App processes hook events with a fixed configuration
type App struct {
	config  *config.Config
	fetcher BodyFetcher
	getenv  func(string) string
}

// Option customises an App
type Option func(*App)

// WithFetcher replaces the gh runner, typically with a mock in tests.
func WithFetcher(fetcher BodyFetcher) Option {
	return func(a *App) {
		a.fetcher = fetcher
	}
}

// WithGetenv replaces os.Getenv for the skip switch.
func WithGetenv(getenv func(string) string) Option {
	return func(a *App) {
		a.getenv = getenv
	}
}

// NewApp creates an App. A nil config means the defaults.
func NewApp(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	app := &App{
		config: cfg,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.fetcher == nil {
		app.fetcher = gh.NewRunner(cfg.GHBinary, cfg.Timeout)
	}
	return app
}

// Config returns the configuration the App runs with.
func (a *App) Config() *config.Config {
	return a.config
}
