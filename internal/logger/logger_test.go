package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLogReceivesOnlyErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_error.log")
	log, err := New(false, "debug", path)
	require.NoError(t, err)

	log.Info("routine")
	log.Error("readiness failed")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "readiness failed")
	assert.NotContains(t, string(data), "routine")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New(true, "loud", "")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
	assert.True(t, log.Core().Enabled(0))
}
