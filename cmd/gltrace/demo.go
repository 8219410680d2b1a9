package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/glapi/glapitest"
	"github.com/polyfloyd/gltrace/glapi/native"
	"github.com/polyfloyd/gltrace/internal/window"
	"github.com/polyfloyd/gltrace/scene"
)

const defaultFramerate = 60

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Draw an immediate mode scene through the tracer",
	Long: `Draws a spinning triangle and a floor compiled into a display list. With
--null no window is opened and the commands go to a recorder instead of a GPU.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		null, _ := cmd.Flags().GetBool("null")
		frames, _ := cmd.Flags().GetInt("frames")
		return runDemo(cmd.Context(), null, frames)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Bool("null", false, "Record the commands instead of executing them")
	demoCmd.Flags().Int("frames", 3, "Number of frames to draw, 0 draws until the window is closed")
}

func runDemo(ctx context.Context, null bool, frames int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	width, height, err := parseGeometry(cfg.Render.Geometry)
	if err != nil {
		return err
	}
	framerate := cfg.Render.Framerate
	if framerate <= 0 {
		framerate = defaultFramerate
	}
	interval := time.Duration(float64(time.Second) / framerate)

	var downstream glapi.GL
	present := func() bool { return true }
	if null {
		rec := &glapitest.Recorder{}
		defer func() {
			level.Debug(logger).Log("msg", "recorded commands", "count", len(rec.Calls))
		}()
		downstream = rec
	} else {
		win, err := window.Open(window.Config{
			Width:   int(width),
			Height:  int(height),
			Title:   "gltrace demo",
			Visible: cfg.Window.Visible,
		})
		if err != nil {
			return err
		}
		defer win.Close()
		if downstream, err = native.New(); err != nil {
			return err
		}
		present = func() bool {
			win.SwapBuffers()
			win.PollEvents()
			return !win.ShouldClose()
		}
		level.Info(logger).Log("msg", "opened window", "renderer", downstream.GetString(glapi.RENDERER), "version", downstream.GetString(glapi.VERSION))
	}

	out, err := openTrace(cfg.Trace.Output)
	if err != nil {
		return err
	}
	if out != nil {
		defer out.Close()
	}
	gl, err := traced(downstream, out)
	if err != nil {
		return err
	}
	return drawDemo(ctx, gl, int(width), int(height), frames, interval, present)
}

// drawDemo draws frames of the demo scene until the count is reached, the
// context is done or present reports that the output is gone.
func drawDemo(ctx context.Context, gl glapi.GL, width, height, frames int, interval time.Duration, present func() bool) error {
	sc, err := scene.Setup(gl, width, height)
	if err != nil {
		return err
	}
	defer sc.Close(gl)

	for i := 0; frames == 0 || i < frames; i++ {
		if ctx.Err() != nil {
			break
		}
		sc.Draw(gl, time.Duration(i)*interval)
		if !present() {
			break
		}
	}
	return nil
}
