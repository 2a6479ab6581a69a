package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/columnar/cmd/colstat/root"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes colstat with args, sending standard output to the file
// named stdout.
func run(t *testing.T, stdout string, args ...string) error {
	f, err := os.Create(stdout)
	require.NoError(t, err)
	saved := os.Stdout
	os.Stdout = f
	defer func() {
		os.Stdout = saved
		require.NoError(t, f.Close())
	}()
	return root.Colstat.ExecRoot(args)
}

func TestGenLoadVerify(t *testing.T) {
	dir := t.TempDir()
	events := filepath.Join(dir, "events.json")
	out := filepath.Join(dir, "out")
	logs := []string{"-log.path", filepath.Join(dir, "log")}

	require.NoError(t, run(t, events, append(logs, "gen", "-n", "300", "-seed", "3")...))
	b, err := os.ReadFile(events)
	require.NoError(t, err)
	assert.NotEmpty(t, b)

	require.NoError(t, run(t, out, append(logs, "-batch", "64", "load", events)...))
	b, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), events+": 300 rows")
	assert.Contains(t, string(b), "total: 300 rows in 1 file")

	for _, tags := range []string{"word", "bitmap"} {
		require.NoError(t, run(t, out, append(logs, "-tags", tags, "verify", "-stride", "5", events)...))
		b, err = os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, events+": 300 rows ok\n", string(b))
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	events := filepath.Join(dir, "events.json")
	conf := filepath.Join(dir, "colstat.yaml")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(conf, []byte("tags: bitmap\nbatch: 3\nlog:\n  path: "+filepath.Join(dir, "log")+"\n"), 0o644))
	require.NoError(t, run(t, events, "-config", conf, "gen", "-n", "10"))
	require.NoError(t, run(t, out, "-config", conf, "verify", events))

	require.NoError(t, os.WriteFile(conf, []byte("batch: 0\n"), 0o644))
	assert.ErrorContains(t, run(t, out, "-config", conf, "load", events), "batch must be positive")
	require.NoError(t, os.WriteFile(conf, []byte("tags: bitmap\n"), 0o644))
	require.NoError(t, run(t, out, "-config", conf, "-tags", "word", "-log.path", "/dev/null", "load", "-q", events))
}

func TestUsageErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	assert.ErrorContains(t, run(t, out, "-log.path", "/dev/null", "load"), "at least one input file")
	assert.ErrorContains(t, run(t, out, "-log.path", "/dev/null", "-tags", "trie", "load", "x"), "trie")
	assert.ErrorContains(t, run(t, out, "-log.path", "/dev/null", "bogus"), `no such sub-command "bogus"`)
}
