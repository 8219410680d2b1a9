// Package config loads the gltrace configuration file.
package config

import (
	"io"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/polyfloyd/gltrace/encode"
)

var geometryRe = regexp.MustCompile(`^(env|\d+x\d+)$`)

type Config struct {
	Trace  TraceConfig  `yaml:"trace"`
	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
}

type TraceConfig struct {
	// Output is where trace lines are written: a file path, "-" for stderr or
	// empty to disable tracing.
	Output string `yaml:"output"`
}

type WindowConfig struct {
	Visible bool `yaml:"visible"`
}

type RenderConfig struct {
	Geometry  string  `yaml:"geometry"`
	Framerate float64 `yaml:"framerate"`
	// Frames is the number of frames to render. Zero renders until
	// interrupted.
	Frames int    `yaml:"frames"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Trace: TraceConfig{Output: "-"},
		Render: RenderConfig{
			Geometry: "640x480",
			Frames:   1,
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if !geometryRe.MatchString(cfg.Render.Geometry) {
		return errors.Errorf("invalid render geometry %q, expected WxH or env", cfg.Render.Geometry)
	}
	if cfg.Render.Framerate < 0 {
		return errors.Errorf("invalid framerate %v", cfg.Render.Framerate)
	}
	if cfg.Render.Frames < 0 {
		return errors.Errorf("invalid frame count %d", cfg.Render.Frames)
	}
	if cfg.Render.Format != "" {
		if _, ok := encode.Formats[cfg.Render.Format]; !ok {
			return errors.Errorf("unknown output format %q", cfg.Render.Format)
		}
	}
	return nil
}
