package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/tasksave/internal/cli"
	"github.com/wizzomafizzo/tasksave/internal/prompt"
)

// createInstallCommand creates the install command.
func createInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install tasksave hooks into Claude settings",
		Long: "Install the PostToolUse and SubagentStart hooks into .claude/settings.local.json " +
			"of the current project. Existing tasksave hooks are replaced.",
		SilenceUsage: true,
		RunE:         runInstallCommand,
	}
	cmd.Flags().BoolP("yes", "y", false, "Replace existing tasksave hooks without asking")
	return cmd
}

func runInstallCommand(cmd *cobra.Command, _ []string) error {
	fs := afero.NewOsFs()
	projectRoot := findWorkingDir()

	cfg, configPath, found, err := loadConfigFromCommand(cmd, fs, projectRoot)
	if err != nil {
		return err
	}
	if !found {
		configPath = ""
	}

	binaryPath, err := cli.ExecutablePath()
	if err != nil {
		return err
	}

	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("failed to get yes flag: %w", err)
	}

	var confirm cli.ConfirmFunc
	if !yes {
		confirm = func(existing int) (bool, error) {
			prompter := prompt.NewLinerPrompter()
			defer func() { _ = prompter.Close() }()
			return prompt.Confirm(prompter, fmt.Sprintf("Replace %d existing tasksave hook(s)?", existing))
		}
	}

	installer := cli.NewInstaller(fs, cfg, projectRoot, binaryPath, configPath)
	result, err := installer.Install(confirm)
	if errors.Is(err, cli.ErrInstallDeclined) || errors.Is(err, prompt.ErrCancelled) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("Install cancelled, settings unchanged"))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to install hooks: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s %s\n", color.GreenString("Installed hooks in"), result.SettingsPath)
	_, _ = fmt.Fprintf(out, "  PostToolUse   %s\n", installer.PRChecklistCommand())
	_, _ = fmt.Fprintf(out, "  SubagentStart %s\n", installer.SubagentCommand())
	if result.Replaced > 0 {
		_, _ = fmt.Fprintf(out, "Replaced %d earlier tasksave hook(s)\n", result.Replaced)
	}
	if result.BackupPath != "" {
		_, _ = fmt.Fprintf(out, "Backup written to %s\n", result.BackupPath)
	}
	return nil
}
