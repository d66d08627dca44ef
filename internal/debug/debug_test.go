package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Close() })

	Log("rendered %d lines", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendered 3 lines")
}

func TestInit_EmptyPathDiscards(t *testing.T) {
	require.NoError(t, Init(""))
	t.Cleanup(func() { _ = Close() })

	assert.NotPanics(t, func() { Log("dropped") })
	assert.NotNil(t, Logger())
}
