package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/tasksave/internal/claude/settings"
	"github.com/wizzomafizzo/tasksave/internal/config"
)

const (
	testProjectRoot = "/work/project"
	testBinary      = "/usr/local/bin/tasksave"
)

func newTestInstaller(fs afero.Fs, configPath string) *Installer {
	return NewInstaller(fs, config.DefaultConfig(), testProjectRoot, testBinary, configPath)
}

func TestInstaller_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		binary     string
		configPath string
		wantPR     string
		wantSub    string
	}{
		{
			name:    "no config",
			binary:  testBinary,
			wantPR:  "/usr/local/bin/tasksave hook pr-checklist",
			wantSub: "/usr/local/bin/tasksave hook subagent-start",
		},
		{
			name:       "with config",
			binary:     testBinary,
			configPath: "/work/project/tasksave.yml",
			wantPR:     "/usr/local/bin/tasksave -c /work/project/tasksave.yml hook pr-checklist",
			wantSub:    "/usr/local/bin/tasksave -c /work/project/tasksave.yml hook subagent-start",
		},
		{
			name:    "binary path with spaces",
			binary:  "/Users/me/My Tools/tasksave",
			wantPR:  "'/Users/me/My Tools/tasksave' hook pr-checklist",
			wantSub: "'/Users/me/My Tools/tasksave' hook subagent-start",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			installer := NewInstaller(afero.NewMemMapFs(), nil, testProjectRoot, tt.binary, tt.configPath)
			assert.Equal(t, tt.wantPR, installer.PRChecklistCommand())
			assert.Equal(t, tt.wantSub, installer.SubagentCommand())
		})
	}
}

func TestInstaller_InstallFreshProject(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	installer := newTestInstaller(fs, "")

	result, err := installer.Install(nil)
	require.NoError(t, err)

	wantPath := filepath.Join(testProjectRoot, ".claude", "settings.local.json")
	assert.Equal(t, wantPath, result.SettingsPath)
	assert.Empty(t, result.BackupPath)
	assert.Zero(t, result.Replaced)

	s, err := settings.LoadFromFile(fs, wantPath)
	require.NoError(t, err)

	require.Len(t, s.Hooks[settings.PostToolUseEvent], 1)
	post := s.Hooks[settings.PostToolUseEvent][0]
	assert.Equal(t, "Bash", post.Matcher)
	assert.Equal(t, []settings.HookCommand{{
		Type:    "command",
		Command: "/usr/local/bin/tasksave hook pr-checklist",
		Timeout: 30,
	}}, post.Hooks)

	require.Len(t, s.Hooks[settings.SubagentStartEvent], 1)
	sub := s.Hooks[settings.SubagentStartEvent][0]
	assert.Equal(t, "^(?!Bash$|Explore$)", sub.Matcher)
	assert.Equal(t, "/usr/local/bin/tasksave hook subagent-start", sub.Hooks[0].Command)

	status, err := installer.Status()
	require.NoError(t, err)
	assert.True(t, status.SettingsFound)
	assert.True(t, status.PRChecklistInstalled)
	assert.True(t, status.SubagentInstalled)
}

func TestInstaller_ReinstallReplacesAndBacksUp(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	existing := `{
  "model": "opus",
  "hooks": {
    "PostToolUse": [
      {"matcher": "Bash", "hooks": [
        {"type": "command", "command": "other-tool"},
        {"type": "command", "command": "/old/path/tasksave hook pr-checklist"}
      ]}
    ]
  }
}`
	settingsPath := filepath.Join(testProjectRoot, ".claude", "settings.local.json")
	require.NoError(t, afero.WriteFile(fs, settingsPath, []byte(existing), 0o600))

	asked := 0
	result, err := newTestInstaller(fs, "").Install(func(n int) (bool, error) {
		asked = n
		return true, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, asked)
	assert.Equal(t, 1, result.Replaced)
	assert.Equal(t, settingsPath+".bak", result.BackupPath)

	backup, err := afero.ReadFile(fs, result.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, existing, string(backup))

	s, err := settings.LoadFromFile(fs, settingsPath)
	require.NoError(t, err)
	require.Len(t, s.Hooks[settings.PostToolUseEvent], 1)
	assert.Equal(t, []settings.HookCommand{
		{Type: "command", Command: "other-tool"},
		{Type: "command", Command: "/usr/local/bin/tasksave hook pr-checklist", Timeout: 30},
	}, s.Hooks[settings.PostToolUseEvent][0].Hooks)

	data, err := afero.ReadFile(fs, settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"model"`)
}

func TestInstaller_Declined(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	installer := newTestInstaller(fs, "")
	_, err := installer.Install(nil)
	require.NoError(t, err)

	before, err := afero.ReadFile(fs, installer.SettingsPath())
	require.NoError(t, err)

	_, err = installer.Install(func(int) (bool, error) { return false, nil })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInstallDeclined))

	after, err := afero.ReadFile(fs, installer.SettingsPath())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInstaller_ConfirmErrorAborts(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	installer := newTestInstaller(fs, "")
	_, err := installer.Install(nil)
	require.NoError(t, err)

	boom := errors.New("no tty")
	_, err = installer.Install(func(int) (bool, error) { return false, boom })
	assert.True(t, errors.Is(err, boom))
}

func TestInstaller_ConfirmNotAskedWithoutExistingHooks(t *testing.T) {
	t.Parallel()

	_, err := newTestInstaller(afero.NewMemMapFs(), "").Install(func(int) (bool, error) {
		t.Error("confirm must not be called on a fresh install")
		return false, nil
	})
	require.NoError(t, err)
}

func TestInstaller_CustomExclusions(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := config.DefaultConfig()
	cfg.Subagent.Exclude = nil

	installer := NewInstaller(fs, cfg, testProjectRoot, testBinary, "")
	_, err := installer.Install(nil)
	require.NoError(t, err)

	s, err := settings.LoadFromFile(fs, installer.SettingsPath())
	require.NoError(t, err)
	require.Len(t, s.Hooks[settings.SubagentStartEvent], 1)
	assert.Empty(t, s.Hooks[settings.SubagentStartEvent][0].Matcher)
}

func TestInstaller_StatusWithoutSettings(t *testing.T) {
	t.Parallel()

	status, err := newTestInstaller(afero.NewMemMapFs(), "").Status()
	require.NoError(t, err)
	assert.False(t, status.SettingsFound)
	assert.False(t, status.PRChecklistInstalled)
	assert.False(t, status.SubagentInstalled)
}

func TestInstaller_CorruptSettings(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	installer := newTestInstaller(fs, "")
	require.NoError(t, afero.WriteFile(fs, installer.SettingsPath(), []byte("{oops"), 0o600))

	_, err := installer.Install(nil)
	require.Error(t, err)

	_, err = installer.Status()
	require.Error(t, err)
}
