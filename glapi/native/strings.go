package native

import (
	"strings"

	"github.com/go-gl/gl/v3.3-compatibility/gl"

	"github.com/polyfloyd/gltrace/glapi"
)

func (c *Context) GetString(name glapi.Enum) string {
	return gl.GoStr(gl.GetString(uint32(name)))
}

func (c *Context) GetStringi(name glapi.Enum, index uint32) string {
	return gl.GoStr(gl.GetStringi(uint32(name), index))
}

func (c *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (c *Context) BindFragDataLocation(program, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) GetActiveAttrib(program, index uint32) glapi.ActiveInfo {
	var bufSize int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &bufSize)
	var length, size int32
	var typ uint32
	nameBuf := strings.Repeat("\x00", int(bufSize+1))
	gl.GetActiveAttrib(program, index, bufSize, &length, &size, &typ, gl.Str(nameBuf))
	return glapi.ActiveInfo{
		Name: nameBuf[:length],
		Size: size,
		Type: glapi.Enum(typ),
	}
}

func (c *Context) GetActiveUniform(program, index uint32) glapi.ActiveInfo {
	var bufSize int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &bufSize)
	var length, size int32
	var typ uint32
	nameBuf := strings.Repeat("\x00", int(bufSize+1))
	gl.GetActiveUniform(program, index, bufSize, &length, &size, &typ, gl.Str(nameBuf))
	return glapi.ActiveInfo{
		Name: nameBuf[:length],
		Size: size,
		Type: glapi.Enum(typ),
	}
}
