package settings

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSettingsFilename = "/project/.claude/settings.local.json"

func TestLoadFromFile_Success(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testSettingsFilename, []byte(exampleSettings), 0o600))

	result, err := LoadFromFile(fs, testSettingsFilename)
	require.NoError(t, err)
	assert.Len(t, result.Hooks["PreToolUse"], 1)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(afero.NewMemMapFs(), testSettingsFilename)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testSettingsFilename, []byte("{not json"), 0o600))

	_, err := LoadFromFile(fs, testSettingsFilename)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings JSON")
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testSettingsFilename, []byte(exampleSettings), 0o600))

	loaded, err := LoadFromFile(fs, testSettingsFilename)
	require.NoError(t, err)
	require.NoError(t, loaded.AddHook(SubagentStartEvent, "^(?!Bash$|Explore$)", HookCommand{
		Type:    "command",
		Command: "tasksave hook subagent-start",
	}))
	require.NoError(t, SaveToFile(fs, loaded, testSettingsFilename))

	reloaded, err := LoadFromFile(fs, testSettingsFilename)
	require.NoError(t, err)
	assert.Equal(t, loaded.Hooks, reloaded.Hooks)

	data, err := afero.ReadFile(fs, testSettingsFilename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"outputStyle"`)
	assert.Contains(t, string(data), `"SubagentStart"`)
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testSettingsFilename, []byte(exampleSettings), 0o600))

	backupPath, err := CreateBackup(fs, testSettingsFilename)
	require.NoError(t, err)
	assert.Equal(t, testSettingsFilename+".bak", backupPath)

	data, err := afero.ReadFile(fs, backupPath)
	require.NoError(t, err)
	assert.Equal(t, exampleSettings, string(data))
}

func TestCreateBackup_MissingOriginal(t *testing.T) {
	t.Parallel()

	_, err := CreateBackup(afero.NewMemMapFs(), testSettingsFilename)
	assert.Error(t, err)
}
