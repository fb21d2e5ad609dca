package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/tasksave/internal/config"
	"github.com/wizzomafizzo/tasksave/internal/constants"
	"github.com/wizzomafizzo/tasksave/internal/project"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Claude Code hooks that keep PR checklists and subagent findings as tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")

	rootCmd.AddCommand(
		createHookCommand(),
		createInstallCommand(),
		createStatusCommand(),
		createValidateCommand(),
	)

	return rootCmd
}

// findWorkingDir finds the project working directory, falling back to "."
// so hooks keep running when the cwd is unreadable.
func findWorkingDir() string {
	root, err := project.FindRoot()
	if err != nil {
		return "."
	}
	return root
}

// resolveConfigPath returns the --config value, anchored at the project root
// when relative.
func resolveConfigPath(cmd *cobra.Command, projectRoot string) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(projectRoot, configPath)
	}
	return configPath, nil
}

// loadConfigFromCommand loads the config named by --config.
func loadConfigFromCommand(
	cmd *cobra.Command, fs afero.Fs, projectRoot string,
) (cfg *config.Config, configPath string, found bool, err error) {
	configPath, err = resolveConfigPath(cmd, projectRoot)
	if err != nil {
		return nil, "", false, err
	}

	cfg, found, err = config.Load(fs, configPath)
	if err != nil {
		return nil, configPath, found, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg, configPath, found, nil
}
