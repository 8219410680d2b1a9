package main

import (
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/polyfloyd/gltrace/encode"
	"github.com/polyfloyd/gltrace/glapi/native"
	"github.com/polyfloyd/gltrace/glslsandbox"
	"github.com/polyfloyd/gltrace/internal/window"
	"github.com/polyfloyd/gltrace/renderer"
	"github.com/polyfloyd/gltrace/shadertoy"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a GLSL shader offscreen through the tracer",
	Long: `Renders a glslsandbox.com or shadertoy.com style fragment shader to images. Every OpenGL
command issued by the renderer passes through the tracer when tracing is on.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	formatNames := make([]string, 0, len(encode.Formats))
	for name := range encode.Formats {
		formatNames = append(formatNames, name)
	}
	sort.Strings(formatNames)

	renderCmd.Flags().StringSliceP("input", "i", nil, "The shader file(s) to use")
	renderCmd.Flags().StringP("output", "o", "-", "The file to write the rendered image to")
	renderCmd.Flags().StringP("geometry", "g", "", `The geometry of the rendered image in WIDTHxHEIGHT format. If "env", look for the LEDCAT_GEOMETRY variable`)
	renderCmd.Flags().String("format", "", "The encoding format to use to output the image. Valid values are: "+strings.Join(formatNames, ", "))
	renderCmd.Flags().Float64P("framerate", "f", 0, "Whether to animate using the specified number of frames per second")
	renderCmd.Flags().UintP("frames", "n", 0, "Limit the number of frames in the animation")
	renderCmd.Flags().BoolP("watch", "w", false, "Watch the shader source files for changes")
	renderCmd.MarkFlagRequired("input")
}

func runRender(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	inputFiles, _ := flags.GetStringSlice("input")
	outputFile, _ := flags.GetString("output")
	watch, _ := flags.GetBool("watch")

	rc := cfg.Render
	if flags.Changed("geometry") {
		rc.Geometry, _ = flags.GetString("geometry")
	}
	if flags.Changed("format") {
		rc.Format, _ = flags.GetString("format")
	}
	if flags.Changed("framerate") {
		rc.Framerate, _ = flags.GetFloat64("framerate")
	}
	if flags.Changed("frames") {
		n, _ := flags.GetUint("frames")
		rc.Frames = int(n)
	}

	width, height, err := parseGeometry(rc.Geometry)
	if err != nil {
		return err
	}
	var interval time.Duration
	numFrames := uint(rc.Frames)
	if rc.Framerate > 0 {
		interval = time.Duration(float64(time.Second) / rc.Framerate)
	} else {
		numFrames = 1
	}

	var format encode.Format
	var ok bool
	if rc.Format != "" {
		if format, ok = encode.Formats[rc.Format]; !ok {
			return errors.Errorf("unknown output format %q", rc.Format)
		}
	} else if format, ok = encode.DetectFormat(outputFile); !ok {
		return errors.New("unable to detect output format, please set --format")
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	win, err := window.Open(window.Config{Width: 1, Height: 1, Visible: cfg.Window.Visible})
	if err != nil {
		return err
	}
	defer win.Close()
	downstream, err := native.New()
	if err != nil {
		return err
	}
	traceOut, err := openTrace(cfg.Trace.Output)
	if err != nil {
		return err
	}
	if traceOut != nil {
		defer traceOut.Close()
	}
	gl, err := traced(downstream, traceOut)
	if err != nil {
		return err
	}

	engine, err := renderer.NewShader(gl, width, height, logger)
	if err != nil {
		return errors.Wrap(err, "could not initialize engine")
	}
	defer engine.Close()

	outWriter, err := openWriter(outputFile)
	if err != nil {
		return err
	}
	defer outWriter.Close()

	newFn := func() (renderer.Environment, []string, error) {
		return loadEnvironment(inputFiles)
	}
	if watch {
		go watchEnvironment(ctx, logger, engine, newFn)
	} else {
		env, _, err := newFn()
		if err != nil {
			return err
		}
		engine.SetEnvironment(env)
		if err := engine.Reload(ctx); err != nil {
			if cerr, ok := err.(renderer.CompileError); ok {
				cerr.PrettyPrint(os.Stderr)
			}
			return err
		}
	}

	in := make(chan image.Image, 10)
	out := (<-chan image.Image)(in)
	if numFrames > 0 {
		out = limitNumFrames(out, numFrames)
	}
	encodeErr := make(chan error, 1)
	go func() {
		encodeErr <- format.EncodeAnimation(outWriter, out, interval)
		cancel()
	}()

	engine.Animate(ctx, interval, in)
	close(in)
	return <-encodeErr
}

// loadEnvironment resolves the includes of the input files and builds the
// environment their sources were written for. The returned files are those
// that should be watched for changes, even when loading fails.
func loadEnvironment(inputFiles []string) (renderer.Environment, []string, error) {
	sources, err := renderer.Includes(inputFiles...)
	if err != nil {
		return nil, inputFiles, err
	}
	files := make([]string, 0, len(sources))
	kind := ""
	for _, s := range sources {
		files = append(files, s.Filename)
		if k := detectEnvironment(s); k != "" {
			kind = k
		}
	}
	level.Debug(logger).Log("msg", "detected environment", "environment", kind)

	switch kind {
	case "shadertoy":
		env, err := shadertoy.NewShaderToy(renderer.SourceFiles(sources...), filepath.Dir(files[len(files)-1]))
		return env, files, err
	case "glslsandbox", "":
		return glslsandbox.GLSLSandbox{ShaderSources: renderer.SourceFiles(sources...)}, files, nil
	}
	return nil, files, errors.Errorf("unsupported environment %q", kind)
}

func detectEnvironment(s renderer.SourceFile) string {
	c, err := s.Contents()
	if err != nil {
		return ""
	}
	return renderer.DetectEnvironment(string(c))
}

func limitNumFrames(in <-chan image.Image, desiredTotalNumFrames uint) <-chan image.Image {
	out := make(chan image.Image)
	go func() {
		defer close(out)
		frame := uint(0)
		for img := range in {
			frame++
			out <- img
			if frame >= desiredTotalNumFrames {
				break
			}
		}
		// Keep draining so the producer can shut down.
		for range in {
		}
	}()
	return out
}
