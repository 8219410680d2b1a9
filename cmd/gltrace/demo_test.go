package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glapi/glapitest"
	"github.com/polyfloyd/gltrace/internal/config"
	"github.com/polyfloyd/gltrace/trace"
)

func TestDrawDemo(t *testing.T) {
	rec := &glapitest.Recorder{}
	var out bytes.Buffer
	gl, err := trace.New(rec, &out)
	require.NoError(t, err)

	presented := 0
	err = drawDemo(context.Background(), gl, 64, 48, 2, time.Second/30, func() bool {
		presented++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 2, presented)
	assert.Equal(t, 3, rec.Count("Begin"))
	assert.Equal(t, 3, rec.Count("End"))
	assert.Equal(t, 0, gl.Indent())
	assert.True(t, strings.HasSuffix(out.String(), "glDeleteLists(<uint> 1, <int> 1)\n"), out.String())
}

func TestDrawDemoStops(t *testing.T) {
	rec := &glapitest.Recorder{}
	presented := 0
	err := drawDemo(context.Background(), rec, 64, 48, 0, time.Second/30, func() bool {
		presented++
		return presented < 5
	})
	require.NoError(t, err)
	assert.Equal(t, 5, presented)

	rec.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = drawDemo(ctx, rec, 64, 48, 0, time.Second/30, func() bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count("Clear"))
}

func TestRunDemoNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.trace")
	t.Cleanup(func() { cfg = config.Default() })
	cfg = config.Default()
	cfg.Trace.Output = path
	cfg.Render.Geometry = "32x32"

	require.NoError(t, runDemo(context.Background(), true, 1))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "glNewList(<uint> 1, <int> 0x1300)\n  glColor3f(")
	assert.Contains(t, string(got), "glBegin(<int> 0x4)\n  glColor3f(<float> 1, <float> 0, <float> 0)\n")
}
