package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyfloyd/gltrace/glapi"
)

func TestListUniforms(t *testing.T) {
	gl := newTestGL()
	gl.On("GetProgramiv", func(args ...interface{}) interface{} {
		if args[1].(glapi.Enum) == glapi.ACTIVE_UNIFORMS {
			args[2].([]int32)[0] = 2
		}
		return nil
	})
	active := []glapi.ActiveInfo{
		{Name: "time", Size: 1, Type: glapi.FLOAT},
		{Name: "mouse[0]", Size: 2, Type: glapi.FLOAT_VEC2},
	}
	gl.On("GetActiveUniform", func(args ...interface{}) interface{} {
		return active[args[1].(uint32)]
	})
	locations := map[string]int32{"time": 0, "mouse[0]": 1, "mouse[1]": 2}
	gl.On("GetUniformLocation", func(args ...interface{}) interface{} {
		if loc, ok := locations[args[1].(string)]; ok {
			return loc
		}
		return int32(-1)
	})

	uniforms := ListUniforms(gl, 1)
	assert.Equal(t, map[string]Uniform{
		"time":     {Name: "time", Type: glapi.FLOAT, Location: 0},
		"mouse[0]": {Name: "mouse[0]", Type: glapi.FLOAT_VEC2, Location: 1},
		"mouse[1]": {Name: "mouse[1]", Type: glapi.FLOAT_VEC2, Location: 2},
	}, uniforms)
	assert.Equal(t, "uniform vec2 mouse[1] (2)", uniforms["mouse[1]"].String())
}

func TestUniformTypeLiteral(t *testing.T) {
	assert.Equal(t, "sampler2D", Uniform{Type: glapi.SAMPLER_2D}.TypeLiteral())
	assert.Equal(t, "mat4", Uniform{Type: glapi.FLOAT_MAT4}.TypeLiteral())
	assert.Equal(t, "invalid", Uniform{Type: glapi.TRIANGLES}.TypeLiteral())
}
