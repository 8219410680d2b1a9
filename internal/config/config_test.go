package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "gltrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
trace:
  output: /tmp/gl.trace
render:
  geometry: 32x16
  framerate: 30
  frames: 90
  format: gif
`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gl.trace", cfg.Trace.Output)
	assert.False(t, cfg.Window.Visible)
	assert.Equal(t, RenderConfig{Geometry: "32x16", Framerate: 30, Frames: 90, Format: "gif"}, cfg.Render)
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "trace:\n  outptu: foo\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{"default", func(*Config) {}, ""},
		{"env geometry", func(c *Config) { c.Render.Geometry = "env" }, ""},
		{"bad geometry", func(c *Config) { c.Render.Geometry = "640" }, `invalid render geometry "640", expected WxH or env`},
		{"negative framerate", func(c *Config) { c.Render.Framerate = -1 }, "invalid framerate -1"},
		{"negative frames", func(c *Config) { c.Render.Frames = -2 }, "invalid frame count -2"},
		{"unknown format", func(c *Config) { c.Render.Format = "bmp" }, `unknown output format "bmp"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.err)
			}
		})
	}
}
