package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/tasksave/internal/config"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate configuration file",
		Long:         "Load the config file and report any validation errors",
		SilenceUsage: true,
		RunE:         runValidateCommand,
	}
	cmd.Flags().Bool("print-defaults", false, "Print the default configuration as YAML and exit")
	return cmd
}

func runValidateCommand(cmd *cobra.Command, _ []string) error {
	printDefaults, err := cmd.Flags().GetBool("print-defaults")
	if err != nil {
		return fmt.Errorf("failed to get print-defaults flag: %w", err)
	}
	if printDefaults {
		data, err := config.DefaultConfigYAML()
		if err != nil {
			return err
		}
		_, _ = cmd.OutOrStdout().Write(data)
		return nil
	}

	_, configPath, found, err := loadConfigFromCommand(cmd, afero.NewOsFs(), findWorkingDir())
	if err != nil {
		return err
	}

	if !found {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No config at %s, defaults apply\n", configPath)
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Configuration is valid:"), configPath)
	return nil
}
