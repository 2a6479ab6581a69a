package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/pkg/config"
	"github.com/brimdata/columnar/pkg/logger"
	"github.com/brimdata/columnar/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRead(t *testing.T) {
	const input = `
tags: bitmap
batch: 16
log:
  level: debug
  path: stdout
  filemode: rotate
`
	c, err := config.Read(strings.NewReader(input))
	require.NoError(t, err)
	enc, err := c.TagEncoding()
	require.NoError(t, err)
	assert.Equal(t, vector.BitmapTags, enc)
	assert.Equal(t, 16, c.Batch)
	assert.Equal(t, config.DefaultParallel, c.Parallel)
	assert.Equal(t, zapcore.DebugLevel, c.Log.Level)
	assert.Equal(t, "stdout", c.Log.Path)
	assert.Equal(t, logger.FileModeRotate, c.Log.Mode)
}

func TestReadEmpty(t *testing.T) {
	c, err := config.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "batches: 3\n",
		"bad encoding":  "tags: packed\n",
		"zero batch":    "batch: 0\n",
		"neg parallel":  "parallel: -1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, colerr.Is(err, colerr.Invalid), "unexpected error: %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel: 2\n"), 0644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Parallel)
	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
