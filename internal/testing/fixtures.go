package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteFakeGH writes an executable shell script standing in for the gh CLI
// and returns its path. Tests using it are skipped where no POSIX shell exists.
func WriteFakeGH(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake gh scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "gh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700) // #nosec G306
	if err != nil {
		t.Fatalf("Failed to write fake gh: %v", err)
	}
	return path
}

// FakeGHBody returns a fake gh script that prints body and exits 0.
func FakeGHBody(t *testing.T, body string) string {
	t.Helper()

	bodyFile := filepath.Join(t.TempDir(), "body.txt")
	if err := os.WriteFile(bodyFile, []byte(body), 0o600); err != nil {
		t.Fatalf("Failed to write fake PR body: %v", err)
	}
	return WriteFakeGH(t, "cat '"+bodyFile+"'")
}
