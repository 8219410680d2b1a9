// Package trace implements a GL that writes a line of text for every
// command it forwards to another GL.
//
// A trace line consists of the current indentation, the command name and
// its rendered arguments:
//
//	glBegin(<int> 0x4)
//	  glVertex3f(<float> 0, <float> 1, <float> 0)
//	glEnd()
//	glGetError() = <int> 0x0
//
// The indentation grows by two spaces inside glBegin/glEnd and
// glNewList/glEndList blocks so nested immediate-mode code reads as such.
package trace

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
)

// ErrNilDownstream is returned by New when there is no GL to forward to.
var ErrNilDownstream = errors.New("trace: downstream GL is nil")

var _ glapi.GL = &Context{}

// Context is a glapi.GL that traces every call made to it before passing
// it on unaltered to a downstream GL.
//
// Like the GL it wraps, a Context is owned by a single thread. Panics
// raised by the downstream propagate to the caller untouched; the trace
// line of the failing call is left without its terminating newline.
type Context struct {
	downstream glapi.GL
	out        io.Writer
	indent     int
}

// New wraps downstream so that every call is traced to out. If out is nil,
// the trace goes to os.Stderr.
func New(downstream glapi.GL, out io.Writer) (*Context, error) {
	if downstream == nil {
		return nil, ErrNilDownstream
	}
	if out == nil {
		out = os.Stderr
	}
	return &Context{downstream: downstream, out: out}, nil
}

// Downstream returns the GL calls are forwarded to.
func (c *Context) Downstream() glapi.GL {
	return c.downstream
}

// Indent reports the current indentation in spaces.
//
// Unbalanced End or EndList calls may turn it negative. Lines are never
// indented by less than zero spaces.
func (c *Context) Indent() int {
	return c.indent
}

// enter writes the first part of a trace line: the indentation and the
// call itself. Write errors are ignored; tracing never changes the outcome
// of a GL call.
func (c *Context) enter(name string, args ...string) {
	var b strings.Builder
	if c.indent > 0 {
		b.WriteString(strings.Repeat(" ", c.indent))
	}
	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(strings.Join(args, ", "))
	b.WriteByte(')')
	io.WriteString(c.out, b.String())
}

func (c *Context) leave() {
	io.WriteString(c.out, "\n")
}

func (c *Context) leaveWith(result string) {
	io.WriteString(c.out, " = "+result+"\n")
}
