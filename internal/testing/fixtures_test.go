package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFakeGH(t *testing.T) {
	t.Parallel()

	path := WriteFakeGH(t, "exit 0")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "fake gh must be executable")

	data, err := os.ReadFile(path) // #nosec G304
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nexit 0\n", string(data))
}
