package constants

import "time"

const (
	// GHBinary is the default pull request CLI.
	GHBinary = "gh"

	// PRCreateCommand is the command substring that marks a PR creation.
	PRCreateCommand = "gh pr create"

	// LookupTimeout bounds a single gh pr view call.
	LookupTimeout = 10 * time.Second

	// HookTimeoutSeconds is written to settings.local.json for installed hooks.
	HookTimeoutSeconds = 30

	// MaxLookupTimeout keeps a configured gh timeout under HookTimeoutSeconds,
	// with room left for the killed process to be reaped and the hook to exit.
	MaxLookupTimeout = 25 * time.Second
)
