package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/tasksave/internal/claude/settings"
	"github.com/wizzomafizzo/tasksave/internal/config"
	"github.com/wizzomafizzo/tasksave/internal/constants"
)

const (
	prChecklistSubcommand = "hook pr-checklist"
	subagentSubcommand    = "hook subagent-start"
)

// ErrInstallDeclined is returned when the user refuses to replace existing hooks.
var ErrInstallDeclined = errors.New("install declined")

// ConfirmFunc is asked before existing tasksave hooks are replaced.
type ConfirmFunc func(existing int) (bool, error)

// Installer writes the tasksave hooks into a project's settings.local.json.
type Installer struct {
	fs          afero.Fs
	config      *config.Config
	projectRoot string
	binaryPath  string
	configPath  string
}

// InstallResult describes what Install changed.
type InstallResult struct {
	SettingsPath string
	BackupPath   string
	Replaced     int
}

// HookStatus reports which tasksave hooks a settings file contains.
type HookStatus struct {
	SettingsPath         string
	SettingsFound        bool
	PRChecklistInstalled bool
	SubagentInstalled    bool
}

// NewInstaller creates an installer. configPath is only referenced from the
// installed commands when it is non-empty.
func NewInstaller(fs afero.Fs, cfg *config.Config, projectRoot, binaryPath, configPath string) *Installer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Installer{
		fs:          fs,
		config:      cfg,
		projectRoot: projectRoot,
		binaryPath:  binaryPath,
		configPath:  configPath,
	}
}

// SettingsPath returns the settings.local.json path inside the project.
func (i *Installer) SettingsPath() string {
	return filepath.Join(i.projectRoot, constants.ClaudeDir, constants.SettingsFilename)
}

// PRChecklistCommand is the command line installed for PostToolUse.
func (i *Installer) PRChecklistCommand() string {
	return i.command(prChecklistSubcommand)
}

// SubagentCommand is the command line installed for SubagentStart.
func (i *Installer) SubagentCommand() string {
	return i.command(subagentSubcommand)
}

func (i *Installer) command(subcommand string) string {
	parts := []string{shellQuote(i.binaryPath)}
	if i.configPath != "" {
		parts = append(parts, "-c", shellQuote(i.configPath))
	}
	parts = append(parts, subcommand)
	return strings.Join(parts, " ")
}

// Status reports whether the hooks are present without modifying anything.
func (i *Installer) Status() (HookStatus, error) {
	status := HookStatus{SettingsPath: i.SettingsPath()}

	s, found, err := i.load()
	if err != nil {
		return status, err
	}
	status.SettingsFound = found
	status.PRChecklistInstalled = len(s.FindCommands(settings.PostToolUseEvent, ownsSubcommand(prChecklistSubcommand))) > 0
	status.SubagentInstalled = len(s.FindCommands(settings.SubagentStartEvent, ownsSubcommand(subagentSubcommand))) > 0
	return status, nil
}

// Install adds both hooks, replacing earlier tasksave entries. confirm is
// consulted only when earlier entries exist; a nil confirm replaces them.
func (i *Installer) Install(confirm ConfirmFunc) (InstallResult, error) {
	result := InstallResult{SettingsPath: i.SettingsPath()}

	s, found, err := i.load()
	if err != nil {
		return result, err
	}

	existing := len(s.FindCommands(settings.PostToolUseEvent, ownsSubcommand(prChecklistSubcommand))) +
		len(s.FindCommands(settings.SubagentStartEvent, ownsSubcommand(subagentSubcommand)))
	if existing > 0 && confirm != nil {
		ok, confirmErr := confirm(existing)
		if confirmErr != nil {
			return result, confirmErr
		}
		if !ok {
			return result, ErrInstallDeclined
		}
	}

	result.Replaced = s.RemoveCommands(settings.PostToolUseEvent, ownsSubcommand(prChecklistSubcommand)) +
		s.RemoveCommands(settings.SubagentStartEvent, ownsSubcommand(subagentSubcommand))

	err = s.AddHook(settings.PostToolUseEvent, constants.BashTool, settings.HookCommand{
		Type:    "command",
		Command: i.PRChecklistCommand(),
		Timeout: constants.HookTimeoutSeconds,
	})
	if err != nil {
		return result, fmt.Errorf("failed to add PostToolUse hook: %w", err)
	}

	err = s.AddHook(settings.SubagentStartEvent, i.config.SubagentMatcher(), settings.HookCommand{
		Type:    "command",
		Command: i.SubagentCommand(),
		Timeout: constants.HookTimeoutSeconds,
	})
	if err != nil {
		return result, fmt.Errorf("failed to add SubagentStart hook: %w", err)
	}

	if err := i.fs.MkdirAll(filepath.Dir(result.SettingsPath), 0o750); err != nil {
		return result, fmt.Errorf("failed to create %s: %w", constants.ClaudeDir, err)
	}

	if found {
		result.BackupPath, err = settings.CreateBackup(i.fs, result.SettingsPath)
		if err != nil {
			return result, fmt.Errorf("failed to back up settings: %w", err)
		}
	}

	if err := settings.SaveToFile(i.fs, s, result.SettingsPath); err != nil {
		return result, fmt.Errorf("failed to save settings: %w", err)
	}

	return result, nil
}

func (i *Installer) load() (*settings.Settings, bool, error) {
	path := i.SettingsPath()
	exists, err := afero.Exists(i.fs, path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check settings file: %w", err)
	}
	if !exists {
		return &settings.Settings{}, false, nil
	}

	s, err := settings.LoadFromFile(i.fs, path)
	if err != nil {
		return nil, true, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, true, nil
}

func ownsSubcommand(subcommand string) settings.CommandFilter {
	return func(c settings.HookCommand) bool {
		return strings.HasSuffix(c.Command, " "+subcommand)
	}
}

func shellQuote(path string) string {
	if !strings.ContainsAny(path, " \t'\"$") {
		return path
	}
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}

// ExecutablePath returns the absolute path of the running binary.
func ExecutablePath() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path, nil //nolint:nilerr // unresolvable symlink still names a runnable binary
	}
	return resolved, nil
}
