package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/tasksave/internal/cli"
	"github.com/wizzomafizzo/tasksave/internal/config"
	"github.com/wizzomafizzo/tasksave/internal/constants"
	"github.com/wizzomafizzo/tasksave/internal/hooks"
	"github.com/wizzomafizzo/tasksave/internal/logging"
)

// HookExitError represents an error with a specific exit code for hook processing
type HookExitError struct {
	Message string
	Code    int
}

func (e *HookExitError) Error() string {
	return e.Message
}

// hookProcessor is one of the cli.App hook methods.
type hookProcessor func(app *cli.App, ctx context.Context, input io.Reader) *hooks.Response

// initLogging initializes logging for hook commands and returns context with logger.
// When the log file cannot be opened, diagnostics still reach stderr.
func initLogging(fs afero.Fs, cfg *config.Config, component, projectRoot string, stderr io.Writer) context.Context {
	logConfig := logging.Config{
		Stderr:    stderr,
		Component: component,
		ProjectID: projectRoot,
		LogFile:   cfg.LogFile,
		Level:     cfg.Level(),
	}

	ctx, err := logging.New(context.Background(), fs, logConfig)
	if err == nil {
		return ctx
	}

	logConfig.Writer = io.Discard
	ctx, fallbackErr := logging.New(context.Background(), fs, logConfig)
	if fallbackErr != nil {
		return context.Background()
	}
	logging.Get(ctx).Debug().Err(err).Msg("file logging unavailable")
	return ctx
}

// runHook reads one event from stdin and writes at most one response line to
// stdout. Only a panic produces a non-zero exit.
func runHook(cmd *cobra.Command, component string, process hookProcessor) (err error) {
	fs := afero.NewOsFs()
	projectRoot := findWorkingDir()

	cfg, configPath, _, cfgErr := loadConfigFromCommand(cmd, fs, projectRoot)
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	ctx := initLogging(fs, cfg, component, projectRoot, cmd.ErrOrStderr())
	logger := logging.Get(ctx)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Str("path", configPath).Msg("Failed to load config, using defaults")
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Msgf("Unexpected error: %v", r)
			err = &HookExitError{Code: 1, Message: fmt.Sprintf("unexpected error: %v", r)}
		}
	}()

	resp := process(cli.NewApp(cfg), ctx, cmd.InOrStdin())
	if writeErr := hooks.Write(cmd.OutOrStdout(), resp); writeErr != nil {
		logger.Error().Err(writeErr).Msg("Failed to write hook response")
	}
	return nil
}

func newHookSubcommand(use, component, short string, process hookProcessor) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHook(cmd, component, process)
		},
	}
}

// createHookCommand creates the hook processing command.
func createHookCommand() *cobra.Command {
	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Process hook input from Claude Code",
		Long: "Process a single Claude Code hook event from stdin. Output, if any, is one JSON " +
			"line on stdout; diagnostics go to stderr.",
		SilenceUsage: true,
	}

	hookCmd.AddCommand(
		newHookSubcommand(
			"pr-checklist",
			constants.PRChecklistComponent,
			"PostToolUse: ask for TaskCreate when a new PR has unchecked checklist items",
			(*cli.App).ProcessPRChecklist,
		),
		newHookSubcommand(
			"subagent-start",
			constants.SubagentComponent,
			"SubagentStart: remind subagents to register findings as tasks",
			(*cli.App).ProcessSubagentStart,
		),
	)

	return hookCmd
}
