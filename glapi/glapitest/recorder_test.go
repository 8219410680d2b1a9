package glapitest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyfloyd/gltrace/glapi"
)

func TestRecorderNames(t *testing.T) {
	rec := &Recorder{}
	buffers := make([]uint32, 3)
	rec.GenBuffers(buffers)
	assert.Equal(t, []uint32{1, 2, 3}, buffers)
	assert.Equal(t, uint32(4), rec.CreateProgram())
	assert.Equal(t, uint32(5), rec.GenLists(2))
	assert.Equal(t, uint32(7), rec.GenLists(1))
	assert.Equal(t, uint32(0), rec.GenLists(0))
	assert.Equal(t, uint32(8), rec.CreateShader(glapi.VERTEX_SHADER))

	assert.Equal(t, []string{"GenBuffers", "CreateProgram", "GenLists", "GenLists", "GenLists", "CreateShader"}, rec.Names())
	assert.Equal(t, 3, rec.Count("GenLists"))
}

func TestRecorderZeroValues(t *testing.T) {
	rec := &Recorder{}
	assert.Equal(t, glapi.Enum(0), rec.GetError())
	assert.Equal(t, "", rec.GetString(glapi.VERSION))
	assert.False(t, rec.IsEnabled(glapi.DEPTH_TEST))
	assert.Equal(t, glapi.ActiveInfo{}, rec.GetActiveUniform(1, 0))
}

func TestRecorderHooks(t *testing.T) {
	rec := &Recorder{}
	rec.On("GetString", func(args ...interface{}) interface{} {
		if args[0].(glapi.Enum) == glapi.VERSION {
			return "3.3 recorder"
		}
		return ""
	})
	rec.On("GetIntegerv", func(args ...interface{}) interface{} {
		args[1].([]int32)[0] = 16
		return nil
	})
	rec.On("GenTextures", func(args ...interface{}) interface{} {
		args[0].([]uint32)[0] = 99
		return nil
	})
	rec.On("CreateShader", func(args ...interface{}) interface{} {
		return uint32(0)
	})

	assert.Equal(t, "3.3 recorder", rec.GetString(glapi.VERSION))
	v := make([]int32, 1)
	rec.GetIntegerv(glapi.MAX_TEXTURE_SIZE, v)
	assert.Equal(t, int32(16), v[0])
	tex := make([]uint32, 1)
	rec.GenTextures(tex)
	assert.Equal(t, uint32(99), tex[0])
	assert.Equal(t, uint32(0), rec.CreateShader(glapi.VERTEX_SHADER))

	// Hooked allocations do not advance the counter.
	assert.Equal(t, uint32(1), rec.CreateProgram())
}

func TestRecorderHookPanics(t *testing.T) {
	rec := &Recorder{}
	rec.On("Flush", func(args ...interface{}) interface{} {
		panic("lost context")
	})
	assert.PanicsWithValue(t, "lost context", rec.Flush)
	assert.Equal(t, []string{"Flush"}, rec.Names())
}

func TestRecorderReset(t *testing.T) {
	rec := &Recorder{}
	rec.On("GetError", func(args ...interface{}) interface{} {
		return glapi.OUT_OF_MEMORY
	})
	rec.Flush()
	rec.Reset()
	assert.Empty(t, rec.Calls)
	assert.Equal(t, glapi.OUT_OF_MEMORY, rec.GetError())
}
