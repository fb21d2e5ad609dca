// Package constants contains names, paths and conventions shared across tasksave.
package constants

const (
	// ClaudeDir is the primary Claude configuration directory name (.claude).
	ClaudeDir = ".claude"

	// AppName is used for XDG directories and the binary name.
	AppName = "tasksave"

	// LogFilename is the default log file name for tasksave.
	LogFilename = "tasksave.log"

	// ConfigFilename is the default config file name.
	ConfigFilename = "tasksave.yml"

	// SettingsFilename is the Claude settings file name that tasksave modifies.
	SettingsFilename = "settings.local.json"
)
