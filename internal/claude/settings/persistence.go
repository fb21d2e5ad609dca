package settings

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// LoadFromFile loads Claude settings from a JSON file.
func LoadFromFile(fs afero.Fs, filename string) (*Settings, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", filename, err)
	}

	var settings Settings
	err = json.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON from %s: %w", filename, err)
	}

	return &settings, nil
}

// SaveToFile saves Claude settings to a JSON file.
func SaveToFile(fs afero.Fs, settings *Settings, filename string) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}

	err = afero.WriteFile(fs, filename, append(data, '\n'), 0o600)
	if err != nil {
		return fmt.Errorf("failed to write settings to file %s: %w", filename, err)
	}
	return nil
}

// CreateBackup creates a simple .bak backup of the settings file.
func CreateBackup(fs afero.Fs, filename string) (string, error) {
	backupPath := GetBackupPath(filename)

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read original file: %w", err)
	}

	err = afero.WriteFile(fs, backupPath, data, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	return backupPath, nil
}

// GetBackupPath returns the backup file path for the given settings file.
func GetBackupPath(filename string) string {
	return filename + ".bak"
}
