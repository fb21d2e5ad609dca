package cli

import (
	"context"
	"errors"
	"io"

	"github.com/wizzomafizzo/tasksave/internal/checklist"
	"github.com/wizzomafizzo/tasksave/internal/constants"
	"github.com/wizzomafizzo/tasksave/internal/gh"
	"github.com/wizzomafizzo/tasksave/internal/hooks"
	"github.com/wizzomafizzo/tasksave/internal/logging"
)

// ProcessPRChecklist handles a PostToolUse event. It returns a response only
// when the event created a pull request whose body still has unchecked items;
// every other outcome, including failures, is logged and returns nil.
func (a *App) ProcessPRChecklist(ctx context.Context, input io.Reader) *hooks.Response {
	logger := logging.Get(ctx)

	if a.skipped() {
		logger.Debug().Msg(constants.SkipEnvVar + " is set, skipping hook processing")
		return nil
	}

	var event hooks.PostToolUseInput
	if err := hooks.ReadInput(input, &event); err != nil {
		if errors.Is(err, hooks.ErrUnexpectedShape) {
			logger.Warn().Err(err).Msg("Unexpected hook input shape")
		} else {
			logger.Warn().Err(err).Msg("Failed to read hook input")
		}
		return nil
	}

	if event.ToolName != "" && event.ToolName != constants.BashTool {
		logger.Debug().Str("tool_name", event.ToolName).Msg("not a shell command, skipping")
		return nil
	}

	if !checklist.IsPRCreate(event.ToolInput.Command) {
		return nil
	}

	stdout := event.ToolResponse.Stdout
	prURL, found := checklist.ExtractPRURL(stdout)
	if !found {
		if stdout != "" {
			logger.Info().Msg("No PR URL found in gh pr create output")
		}
		return nil
	}

	body, ok := a.fetchBody(ctx, prURL)
	if !ok {
		return nil
	}
	if !checklist.HasUncheckedItems(body) {
		logger.Debug().Str("url", prURL).Msg("no unchecked items")
		return nil
	}

	logger.Info().
		Str("url", prURL).
		Int("unchecked", checklist.CountUncheckedItems(body)).
		Msg("PR has unchecked items")

	return hooks.NewContextResponse(hooks.PostToolUseHook, a.config.PRChecklist.Context)
}

// fetchBody maps every non-success lookup to a distinct diagnostic.
func (a *App) fetchBody(ctx context.Context, prURL string) (string, bool) {
	logger := logging.Get(ctx)

	result := a.fetcher.PRBody(ctx, prURL)
	switch result.Status {
	case gh.StatusSuccess:
		return result.Body, true
	case gh.StatusNonZeroExit:
		logger.Warn().
			Str("url", prURL).
			Int("exit_code", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("gh pr view failed")
	case gh.StatusNotFound:
		logger.Warn().Err(result.Err).Msg("gh CLI not found")
	case gh.StatusTimedOut:
		logger.Warn().
			Str("url", prURL).
			Dur("timeout", a.config.Timeout).
			Msg("gh pr view timed out")
	case gh.StatusFailed:
		logger.Warn().Err(result.Err).Str("url", prURL).Msg("gh pr view could not run")
	}
	return "", false
}

func (a *App) skipped() bool {
	return a.getenv(constants.SkipEnvVar) == "1"
}
