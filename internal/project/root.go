// Package project provides utilities for detecting project root directories.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectDirEnvVar is set by Claude Code to the project the session runs in.
const ProjectDirEnvVar = "CLAUDE_PROJECT_DIR"

var markers = []string{".git", ".claude", "go.mod", "package.json"}

// FindRoot finds the project root directory on the real filesystem.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return FindRootFrom(afero.NewOsFs(), cwd, os.Getenv(ProjectDirEnvVar)), nil
}

// FindRootFrom resolves the project root: projectDir when it names an existing
// directory, else the nearest ancestor of startDir holding a project marker,
// else startDir itself.
func FindRootFrom(fs afero.Fs, startDir, projectDir string) string {
	if projectDir != "" {
		if abs, err := filepath.Abs(projectDir); err == nil {
			if isDir, _ := afero.IsDir(fs, abs); isDir {
				return abs
			}
		}
	}

	if root, found := findProjectMarker(fs, startDir); found {
		return root
	}

	return startDir
}

// findProjectMarker searches for project root markers starting from the given directory
func findProjectMarker(fs afero.Fs, startDir string) (string, bool) {
	currentDir := startDir

	for {
		if hasProjectMarker(fs, currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func hasProjectMarker(fs afero.Fs, dir string) bool {
	for _, marker := range markers {
		if exists, _ := afero.Exists(fs, filepath.Join(dir, marker)); exists {
			return true
		}
	}
	return false
}
