package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/internal/config"
	"github.com/polyfloyd/gltrace/trace"
)

var (
	cfg    = config.Default()
	logger = newLogger(os.Stderr, false)
)

var rootCmd = &cobra.Command{
	Use:   "gltrace",
	Short: "Trace the OpenGL commands issued by a program",
	Long: `gltrace runs OpenGL workloads through a tracing layer that prints every
GL command with its arguments and result before passing it on.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "gltrace.yaml", "Configuration file, ignored when it does not exist")
	rootCmd.PersistentFlags().String("trace", "", `Where to write the trace: a file, "-" for stderr or "" to disable tracing`)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger = newLogger(os.Stderr, verbose)

	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("trace") {
		c.Trace.Output, _ = cmd.Flags().GetString("trace")
	}
	cfg = c
	level.Debug(logger).Log("msg", "loaded config", "path", path, "trace", cfg.Trace.Output)
	return nil
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// openTrace opens the trace destination named by output. A nil writer means
// tracing is disabled.
func openTrace(output string) (io.WriteCloser, error) {
	switch output {
	case "":
		return nil, nil
	case "-":
		return nopCloseWriter{Writer: os.Stderr}, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, errors.Wrap(err, "could not open trace output")
	}
	return f, nil
}

// traced wraps gl in a tracing layer writing to out, or returns gl as is
// when out is nil.
func traced(gl glapi.GL, out io.Writer) (glapi.GL, error) {
	if out == nil {
		return gl, nil
	}
	return trace.New(gl, out)
}

func openWriter(filename string) (io.WriteCloser, error) {
	if filename == "-" {
		return nopCloseWriter{Writer: os.Stdout}, nil
	}
	return os.Create(filename)
}

type nopCloseWriter struct {
	io.Writer
}

func (nopCloseWriter) Close() error {
	return nil
}
