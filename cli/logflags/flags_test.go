package logflags_test

import (
	"flag"
	"testing"

	"github.com/brimdata/columnar/cli/logflags"
	"github.com/brimdata/columnar/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMerge(t *testing.T) {
	var f logflags.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-log.level", "warn"}))
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	f.Merge(logger.Config{
		Path:  "/var/log/colstat.log",
		Mode:  logger.FileModeRotate,
		Level: zap.DebugLevel,
	}, func(name string) bool { return set[name] })
	assert.Equal(t, zap.WarnLevel, f.Config.Level)
	assert.Equal(t, "/var/log/colstat.log", f.Config.Path)
	assert.Equal(t, logger.FileModeRotate, f.Config.Mode)
	assert.False(t, f.Config.DevMode)
}

func TestOpen(t *testing.T) {
	var f logflags.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-log.path", "/dev/null"}))
	l, err := f.Open()
	require.NoError(t, err)
	l.Info("discarded")
}
