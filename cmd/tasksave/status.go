package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/tasksave/internal/cli"
	"github.com/wizzomafizzo/tasksave/internal/config"
	"github.com/wizzomafizzo/tasksave/internal/gh"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Check hook status",
		Long:         "Report the config in use, whether gh can be found and which hooks are installed",
		SilenceUsage: true,
		RunE:         runStatusCommand,
	}
}

func runStatusCommand(cmd *cobra.Command, _ []string) error {
	fs := afero.NewOsFs()
	projectRoot := findWorkingDir()
	out := cmd.OutOrStdout()

	cfg, configPath, found, err := loadConfigFromCommand(cmd, fs, projectRoot)
	switch {
	case err != nil:
		printCheck(out, false, "config: %v", err)
		cfg = config.DefaultConfig()
	case found:
		printCheck(out, true, "config: %s", configPath)
	default:
		printCheck(out, true, "config: defaults (no %s)", configPath)
	}

	runner := gh.NewRunner(cfg.GHBinary, cfg.Timeout)
	if path, ok := runner.Available(); ok {
		printCheck(out, true, "gh: %s", path)
	} else {
		printCheck(out, false, "gh: %s not found, PR checklist hook will stay silent", cfg.GHBinary)
	}

	status, err := cli.NewInstaller(fs, cfg, projectRoot, "", "").Status()
	if err != nil {
		printCheck(out, false, "settings: %v", err)
		return nil
	}
	printCheck(out, status.PRChecklistInstalled, "PostToolUse pr-checklist hook in %s", status.SettingsPath)
	printCheck(out, status.SubagentInstalled, "SubagentStart subagent-start hook in %s", status.SettingsPath)
	return nil
}

func printCheck(out io.Writer, ok bool, format string, args ...any) {
	mark := color.GreenString("✓")
	if !ok {
		mark = color.RedString("✗")
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
