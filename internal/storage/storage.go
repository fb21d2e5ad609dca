// Package storage provides XDG-compliant storage path management for tasksave.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/tasksave/internal/constants"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs      afero.Fs
	dataDir string
}

// New creates a new storage manager rooted at the XDG data directory
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs, dataDir: filepath.Join(xdg.DataHome, constants.AppName)}
}

// NewWithDataDir creates a storage manager rooted at dataDir instead of XDG.
func NewWithDataDir(fs afero.Fs, dataDir string) *Manager {
	return &Manager{fs: fs, dataDir: dataDir}
}

// GetDataDir returns the data directory for tasksave, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	err := m.fs.MkdirAll(m.dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", m.dataDir, err)
	}
	return m.dataDir, nil
}

// GetLogPath returns the full path to the tasksave log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}
