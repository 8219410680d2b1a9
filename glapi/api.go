// Package glapi describes the OpenGL 3.x compatibility profile command set
// as a Go interface.
//
// Implementations of GL are interchangeable: a native implementation
// issues the commands to the driver while decorators such as the tracer in
// package trace wrap another GL and forward every call to it. Method names
// are the GL command names without their "gl" prefix.
//
// Arrays are passed as slices and their length takes the place of the
// count argument of the C API. Opaque client memory is an unsafe.Pointer,
// while offsets into bound buffer objects are passed as uintptr. GL
// strings are Go strings.
//
// A GL is bound to the OS thread that owns the underlying context and is
// not safe for concurrent use.
package glapi

import "unsafe"

// GL is the command interface of an OpenGL 3.3 compatibility context.
type GL interface {
	// Immediate mode.
	Begin(mode Enum)
	End()
	Vertex2f(x, y float32)
	Vertex3f(x, y, z float32)
	Vertex4f(x, y, z, w float32)
	Vertex2d(x, y float64)
	Vertex3d(x, y, z float64)
	Vertex2i(x, y int32)
	Vertex3fv(v []float32)
	Color3f(red, green, blue float32)
	Color4f(red, green, blue, alpha float32)
	Color3ub(red, green, blue uint8)
	Color4fv(v []float32)
	Normal3f(nx, ny, nz float32)
	Normal3fv(v []float32)
	TexCoord2f(s, t float32)
	TexCoord2fv(v []float32)
	EdgeFlag(flag bool)
	Rectf(x1, y1, x2, y2 float32)
	RasterPos2f(x, y float32)

	// Display lists.
	// NewList starts the definition of display list; every command up to the
	// matching EndList is compiled into it.
	NewList(list uint32, mode Enum)
	EndList()
	CallList(list uint32)
	// CallLists executes the lists, offset by the current list base.
	CallLists(lists []uint32)
	ListBase(base uint32)
	GenLists(xrange int32) uint32
	DeleteLists(list uint32, xrange int32)
	IsList(list uint32) bool

	// Matrix stack.
	MatrixMode(mode Enum)
	LoadIdentity()
	LoadMatrixf(m []float32)
	LoadMatrixd(m []float64)
	MultMatrixf(m []float32)
	PushMatrix()
	PopMatrix()
	Translatef(x, y, z float32)
	Translated(x, y, z float64)
	Rotatef(angle, x, y, z float32)
	Rotated(angle, x, y, z float64)
	Scalef(x, y, z float32)
	Scaled(x, y, z float64)
	Ortho(left, right, bottom, top, zNear, zFar float64)
	Frustum(left, right, bottom, top, zNear, zFar float64)

	// Fixed-function state.
	ShadeModel(mode Enum)
	Lightf(light, pname Enum, param float32)
	Lightfv(light, pname Enum, params []float32)
	LightModeli(pname Enum, param int32)
	LightModelfv(pname Enum, params []float32)
	Materialf(face, pname Enum, param float32)
	Materialfv(face, pname Enum, params []float32)
	ColorMaterial(face, mode Enum)
	Fogf(pname Enum, param float32)
	Fogfv(pname Enum, params []float32)
	TexEnvi(target, pname Enum, param int32)
	TexGeni(coord, pname Enum, param int32)
	ClipPlane(plane Enum, equation []float64)
	PushAttrib(mask Bitfield)
	PopAttrib()
	PushClientAttrib(mask Bitfield)
	PopClientAttrib()

	// Client arrays.
	EnableClientState(array Enum)
	DisableClientState(array Enum)
	VertexPointer(size int32, xtype Enum, stride int32, pointer unsafe.Pointer)
	ColorPointer(size int32, xtype Enum, stride int32, pointer unsafe.Pointer)
	NormalPointer(xtype Enum, stride int32, pointer unsafe.Pointer)
	TexCoordPointer(size int32, xtype Enum, stride int32, pointer unsafe.Pointer)

	// Pipeline state.
	Enable(xcap Enum)
	Disable(xcap Enum)
	IsEnabled(xcap Enum) bool
	Hint(target, mode Enum)
	GetError() Enum
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetIntegerv(pname Enum, data []int32)
	GetFloatv(pname Enum, data []float32)
	GetBooleanv(pname Enum, data []bool)
	Flush()
	Finish()
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	Clear(mask Bitfield)
	ClearColor(red, green, blue, alpha float32)
	ClearDepth(depth float64)
	ClearStencil(s int32)
	ColorMask(red, green, blue, alpha bool)
	DepthMask(flag bool)
	DepthFunc(xfunc Enum)
	DepthRange(n, f float64)
	BlendFunc(sfactor, dfactor Enum)
	BlendFuncSeparate(sfactorRGB, dfactorRGB, sfactorAlpha, dfactorAlpha Enum)
	BlendEquation(mode Enum)
	BlendColor(red, green, blue, alpha float32)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	PolygonMode(face, mode Enum)
	PolygonOffset(factor, units float32)
	PointSize(size float32)
	LineWidth(width float32)
	LogicOp(opcode Enum)
	SampleCoverage(value float32, invert bool)
	StencilFunc(xfunc Enum, ref int32, mask Bitfield)
	StencilOp(fail, zfail, zpass Enum)
	StencilMask(mask Bitfield)
	PixelStorei(pname Enum, param int32)
	ReadBuffer(src Enum)
	DrawBuffer(buf Enum)
	DrawBuffers(bufs []Enum)
	ReadPixels(x, y, width, height int32, format, xtype Enum, pixels unsafe.Pointer)

	// Buffer objects.
	GenBuffers(buffers []uint32)
	DeleteBuffers(buffers []uint32)
	BindBuffer(target Enum, buffer uint32)
	BindBufferBase(target Enum, index, buffer uint32)
	IsBuffer(buffer uint32) bool
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)
	BufferSubData(target Enum, offset, size int, data unsafe.Pointer)
	GetBufferSubData(target Enum, offset, size int, data unsafe.Pointer)
	// MapBuffer returns nil when the buffer could not be mapped.
	MapBuffer(target, access Enum) unsafe.Pointer
	UnmapBuffer(target Enum) bool

	// Vertex arrays and drawing.
	GenVertexArrays(arrays []uint32)
	DeleteVertexArrays(arrays []uint32)
	BindVertexArray(array uint32)
	IsVertexArray(array uint32) bool
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, xtype Enum, stride int32, offset uintptr)
	VertexAttribDivisor(index, divisor uint32)
	VertexAttrib4f(index uint32, x, y, z, w float32)
	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instancecount int32)
	DrawElements(mode Enum, count int32, xtype Enum, offset uintptr)
	DrawElementsInstanced(mode Enum, count int32, xtype Enum, offset uintptr, instancecount int32)
	DrawRangeElements(mode Enum, start, end uint32, count int32, xtype Enum, offset uintptr)
	PrimitiveRestartIndex(index uint32)

	// Textures and samplers.
	GenTextures(textures []uint32)
	DeleteTextures(textures []uint32)
	BindTexture(target Enum, texture uint32)
	IsTexture(texture uint32) bool
	ActiveTexture(texture Enum)
	TexImage2D(target Enum, level, internalformat, width, height, border int32, format, xtype Enum, pixels unsafe.Pointer)
	TexSubImage2D(target Enum, level, xoffset, yoffset, width, height int32, format, xtype Enum, pixels unsafe.Pointer)
	CopyTexSubImage2D(target Enum, level, xoffset, yoffset, x, y, width, height int32)
	GetTexImage(target Enum, level int32, format, xtype Enum, pixels unsafe.Pointer)
	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	GetTexParameteriv(target, pname Enum, params []int32)
	GenerateMipmap(target Enum)
	GenSamplers(samplers []uint32)
	DeleteSamplers(samplers []uint32)
	BindSampler(unit, sampler uint32)
	SamplerParameteri(sampler uint32, pname Enum, param int32)

	// Framebuffers and renderbuffers.
	GenFramebuffers(framebuffers []uint32)
	DeleteFramebuffers(framebuffers []uint32)
	BindFramebuffer(target Enum, framebuffer uint32)
	IsFramebuffer(framebuffer uint32) bool
	CheckFramebufferStatus(target Enum) Enum
	FramebufferTexture2D(target, attachment, textarget Enum, texture uint32, level int32)
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, renderbuffer uint32)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask Bitfield, filter Enum)
	GenRenderbuffers(renderbuffers []uint32)
	DeleteRenderbuffers(renderbuffers []uint32)
	BindRenderbuffer(target Enum, renderbuffer uint32)
	IsRenderbuffer(renderbuffer uint32) bool
	RenderbufferStorage(target, internalformat Enum, width, height int32)
	RenderbufferStorageMultisample(target Enum, samples int32, internalformat Enum, width, height int32)

	// Shaders and programs.
	CreateShader(xtype Enum) uint32
	DeleteShader(shader uint32)
	IsShader(shader uint32) bool
	// ShaderSource replaces the source of shader with a single string.
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname Enum, params []int32)
	// GetShaderInfoLog returns the complete info log of shader.
	GetShaderInfoLog(shader uint32) string
	CreateProgram() uint32
	DeleteProgram(program uint32)
	IsProgram(program uint32) bool
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	UseProgram(program uint32)
	GetProgramiv(program uint32, pname Enum, params []int32)
	GetProgramInfoLog(program uint32) string
	BindAttribLocation(program, index uint32, name string)
	BindFragDataLocation(program, color uint32, name string)
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	GetActiveAttrib(program, index uint32) ActiveInfo
	// GetActiveUniform describes the active uniform at index. The name of an
	// array uniform carries a "[0]" suffix.
	GetActiveUniform(program, index uint32) ActiveInfo

	// Uniforms.
	Uniform1i(location, v0 int32)
	Uniform2i(location, v0, v1 int32)
	Uniform3i(location, v0, v1, v2 int32)
	Uniform4i(location, v0, v1, v2, v3 int32)
	Uniform1ui(location int32, v0 uint32)
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	Uniform1iv(location int32, value []int32)
	Uniform1fv(location int32, value []float32)
	Uniform2fv(location int32, value []float32)
	Uniform3fv(location int32, value []float32)
	Uniform4fv(location int32, value []float32)
	UniformMatrix3fv(location int32, transpose bool, value []float32)
	// UniformMatrix4fv uploads len(value)/16 matrices.
	UniformMatrix4fv(location int32, transpose bool, value []float32)
	GetUniformfv(program uint32, location int32, params []float32)

	// Queries, sync and transform feedback.
	GenQueries(ids []uint32)
	DeleteQueries(ids []uint32)
	BeginQuery(target Enum, id uint32)
	EndQuery(target Enum)
	QueryCounter(id uint32, target Enum)
	GetQueryObjectuiv(id uint32, pname Enum, params []uint32)
	GetQueryObjectui64v(id uint32, pname Enum, params []uint64)
	BeginConditionalRender(id uint32, mode Enum)
	EndConditionalRender()
	BeginTransformFeedback(primitiveMode Enum)
	EndTransformFeedback()
	FenceSync(condition Enum, flags Bitfield) uintptr
	ClientWaitSync(sync uintptr, flags Bitfield, timeout uint64) Enum
	DeleteSync(sync uintptr)
}
