package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glapi/glapitest"
	"github.com/polyfloyd/gltrace/internal/config"
	"github.com/polyfloyd/gltrace/trace"
)

func TestOpenTrace(t *testing.T) {
	w, err := openTrace("")
	require.NoError(t, err)
	assert.Nil(t, w)

	w, err = openTrace("-")
	require.NoError(t, err)
	assert.Equal(t, nopCloseWriter{Writer: os.Stderr}, w)

	path := filepath.Join(t.TempDir(), "out.trace")
	w, err = openTrace(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.FileExists(t, path)

	_, err = openTrace(filepath.Join(t.TempDir(), "missing", "out.trace"))
	assert.Error(t, err)
}

func TestTraced(t *testing.T) {
	rec := &glapitest.Recorder{}
	gl, err := traced(rec, nil)
	require.NoError(t, err)
	assert.Same(t, rec, gl)

	gl, err = traced(rec, &bytes.Buffer{})
	require.NoError(t, err)
	require.IsType(t, &trace.Context{}, gl)
	assert.Same(t, rec, gl.(*trace.Context).Downstream())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	level.Debug(newLogger(&buf, false)).Log("msg", "hidden")
	assert.Empty(t, buf.String())

	level.Debug(newLogger(&buf, true)).Log("msg", "shown")
	assert.Contains(t, buf.String(), "level=debug msg=shown")
}

func TestRootDemoCommand(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "cli.trace")
	t.Cleanup(func() { cfg = config.Default() })

	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.yaml"),
		"--trace", tracePath,
		"demo", "--null", "--frames", "2",
	})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, tracePath, cfg.Trace.Output)

	got, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(got, []byte("glBegin(")))
}
