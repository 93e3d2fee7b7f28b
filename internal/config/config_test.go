// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/citymst/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestParse_Defaults(t *testing.T) {
	for _, body := range []string{"", "# nothing here\n"} {
		p, err := config.Parse([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), p)
	}

	p := config.Default()
	assert.Equal(t, config.AlgorithmBoth, p.Algorithm)
	assert.Equal(t, "info", p.Log.Level)
	assert.Equal(t, "console", p.Log.Format)
	assert.False(t, p.RequireSpanning)
}

func TestParse_Fields(t *testing.T) {
	p, err := config.Parse([]byte(`
algorithm: prim
source: Lviv
require_spanning: true
metrics_file: /tmp/mst.prom
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, &config.Profile{
		Algorithm:       config.AlgorithmPrim,
		Source:          "Lviv",
		RequireSpanning: true,
		MetricsFile:     "/tmp/mst.prom",
		Log:             config.LogConfig{Level: "debug", Format: "json"},
	}, p)
}

func TestParse_Rejects(t *testing.T) {
	_, err := config.Parse([]byte("algoritm: prim\n"))
	assert.ErrorContains(t, err, "algoritm")

	_, err = config.Parse([]byte("algorithm: [prim\n"))
	assert.Error(t, err)

	_, err = config.Parse([]byte("algorithm: boruvka\nlog:\n  level: loud\n  format: xml\nsource: \"San Jose\"\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, field := range []string{"algorithm", "log.level", "log.format", "source"} {
		assert.ErrorContains(t, err, field)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	writeFile(t, path, "algorithm: kruskal\n")

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())
	assert.Equal(t, config.AlgorithmKruskal, l.Config().Algorithm)

	var seen atomic.Value
	l.OnChange(func(p *config.Profile) { seen.Store(p.Algorithm) })

	writeFile(t, path, "algorithm: prim\n")
	p, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmPrim, p.Algorithm)
	assert.Equal(t, config.AlgorithmPrim, seen.Load())

	writeFile(t, path, "algorithm: nope\n")
	_, err = l.Reload()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, config.AlgorithmPrim, l.Config().Algorithm)
}

func TestLoader_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	writeFile(t, path, "algorithm: kruskal\n")

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	stop, err := l.Watch(nil)
	require.NoError(t, err)
	defer stop()

	writeFile(t, path, "algorithm: prim\n")
	assert.Eventually(t, func() bool {
		return l.Config().Algorithm == config.AlgorithmPrim
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	writeFile(t, path, "NODES\n0\n")

	var hits atomic.Int32
	stop, err := config.WatchFile(path, func() { hits.Add(1) }, nil)
	require.NoError(t, err)

	writeFile(t, path, "NODES\n1\nA 0 0\n")
	assert.Eventually(t, func() bool { return hits.Load() > 0 }, 5*time.Second, 10*time.Millisecond)

	stop()
	stop() // idempotent

	_, err = config.WatchFile(filepath.Join(t.TempDir(), "missing"), func() {}, nil)
	assert.Error(t, err)
}
