package renderer

import (
	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/glapi/glapitest"
)

// newTestGL returns a recorder that behaves like a driver on which every
// shader compiles, every program links and every framebuffer is complete.
func newTestGL() *glapitest.Recorder {
	rec := &glapitest.Recorder{}
	rec.On("GetShaderiv", func(args ...interface{}) interface{} {
		if args[1].(glapi.Enum) == glapi.COMPILE_STATUS {
			args[2].([]int32)[0] = glapi.TRUE
		}
		return nil
	})
	rec.On("GetProgramiv", func(args ...interface{}) interface{} {
		if args[1].(glapi.Enum) == glapi.LINK_STATUS {
			args[2].([]int32)[0] = glapi.TRUE
		}
		return nil
	})
	rec.On("CheckFramebufferStatus", func(args ...interface{}) interface{} {
		return glapi.FRAMEBUFFER_COMPLETE
	})
	return rec
}

// failCompile makes the recorder reject every shader with the given log.
func failCompile(rec *glapitest.Recorder, log string) {
	rec.On("GetShaderiv", func(args ...interface{}) interface{} {
		args[2].([]int32)[0] = glapi.FALSE
		return nil
	})
	rec.On("GetShaderInfoLog", func(args ...interface{}) interface{} {
		return log
	})
}
