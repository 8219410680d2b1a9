// Package native implements glapi.GL on top of the go-gl bindings for the
// OpenGL 3.3 compatibility profile.
package native

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-compatibility/gl"
	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
)

var _ glapi.GL = &Context{}

// Context issues GL commands to the context that is current on the calling
// OS thread.
type Context struct{}

// New loads the GL function pointers of the current context. The caller
// must have made a context current on its locked OS thread.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "could not initialize OpenGL")
	}
	return &Context{}, nil
}

func f32p(s []float32) *float32 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func f64p(s []float64) *float64 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func i32p(s []int32) *int32 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func u32p(s []uint32) *uint32 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func u64p(s []uint64) *uint64 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func boolp(s []bool) *bool {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func enump(s []glapi.Enum) *uint32 {
	if len(s) == 0 {
		return nil
	}
	return (*uint32)(unsafe.Pointer(&s[0]))
}
