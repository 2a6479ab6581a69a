package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/columnar/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFileModeSet(t *testing.T) {
	var m logger.FileMode
	require.NoError(t, m.Set(""))
	assert.Equal(t, logger.FileModeAppend, m)
	require.NoError(t, m.Set("rotate"))
	assert.Equal(t, logger.FileModeRotate, m)
	require.NoError(t, m.UnmarshalText([]byte("truncate")))
	assert.Equal(t, logger.FileModeTruncate, m)
	assert.Error(t, m.Set("sideways"))
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "col.log")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))
	log, err := logger.New(logger.Config{
		Path:  path,
		Mode:  logger.FileModeTruncate,
		Level: zapcore.InfoLevel,
	})
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("loaded", zap.Int("rows", 3))
	require.NoError(t, log.Sync())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale")
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), `"msg":"loaded"`)
	assert.Contains(t, string(b), `"rows":3`)
}

func TestRotateNeedsDirectory(t *testing.T) {
	_, err := logger.OpenFile(filepath.Join(t.TempDir(), "missing", "x.log"), logger.FileModeRotate)
	assert.Error(t, err)
}
