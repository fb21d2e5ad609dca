package cli

import (
	"context"
	"io"

	"github.com/wizzomafizzo/tasksave/internal/constants"
	"github.com/wizzomafizzo/tasksave/internal/hooks"
	"github.com/wizzomafizzo/tasksave/internal/logging"
)

// ProcessSubagentStart handles a SubagentStart event. Any JSON object yields
// the persistence reminder; unreadable input is logged and yields nil.
func (a *App) ProcessSubagentStart(ctx context.Context, input io.Reader) *hooks.Response {
	logger := logging.Get(ctx)

	if a.skipped() {
		logger.Debug().Msg(constants.SkipEnvVar + " is set, skipping hook processing")
		return nil
	}

	var event hooks.SubagentStartInput
	if err := hooks.ReadInput(input, &event); err != nil {
		logger.Warn().Err(err).Msg("Failed to read hook input")
		return nil
	}

	agentType := event.AgentTypeOrDefault()
	logger.Info().Msgf("Injecting TaskCreate context for agent_type=%s", agentType)

	return hooks.NewContextResponse(hooks.SubagentStartHook, a.config.Subagent.Context)
}
