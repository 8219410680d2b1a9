package glapitest

import (
	"unsafe"

	"github.com/polyfloyd/gltrace/glapi"
)

func (r *Recorder) Begin(mode glapi.Enum) {
	r.call("Begin", mode)
}

func (r *Recorder) End() {
	r.call("End")
}

func (r *Recorder) Vertex2f(x, y float32) {
	r.call("Vertex2f", x, y)
}

func (r *Recorder) Vertex3f(x, y, z float32) {
	r.call("Vertex3f", x, y, z)
}

func (r *Recorder) Vertex4f(x, y, z, w float32) {
	r.call("Vertex4f", x, y, z, w)
}

func (r *Recorder) Vertex2d(x, y float64) {
	r.call("Vertex2d", x, y)
}

func (r *Recorder) Vertex3d(x, y, z float64) {
	r.call("Vertex3d", x, y, z)
}

func (r *Recorder) Vertex2i(x, y int32) {
	r.call("Vertex2i", x, y)
}

func (r *Recorder) Vertex3fv(v []float32) {
	r.call("Vertex3fv", v)
}

func (r *Recorder) Color3f(red, green, blue float32) {
	r.call("Color3f", red, green, blue)
}

func (r *Recorder) Color4f(red, green, blue, alpha float32) {
	r.call("Color4f", red, green, blue, alpha)
}

func (r *Recorder) Color3ub(red, green, blue uint8) {
	r.call("Color3ub", red, green, blue)
}

func (r *Recorder) Color4fv(v []float32) {
	r.call("Color4fv", v)
}

func (r *Recorder) Normal3f(nx, ny, nz float32) {
	r.call("Normal3f", nx, ny, nz)
}

func (r *Recorder) Normal3fv(v []float32) {
	r.call("Normal3fv", v)
}

func (r *Recorder) TexCoord2f(s, t float32) {
	r.call("TexCoord2f", s, t)
}

func (r *Recorder) TexCoord2fv(v []float32) {
	r.call("TexCoord2fv", v)
}

func (r *Recorder) EdgeFlag(flag bool) {
	r.call("EdgeFlag", flag)
}

func (r *Recorder) Rectf(x1, y1, x2, y2 float32) {
	r.call("Rectf", x1, y1, x2, y2)
}

func (r *Recorder) RasterPos2f(x, y float32) {
	r.call("RasterPos2f", x, y)
}

func (r *Recorder) NewList(list uint32, mode glapi.Enum) {
	r.call("NewList", list, mode)
}

func (r *Recorder) EndList() {
	r.call("EndList")
}

func (r *Recorder) CallList(list uint32) {
	r.call("CallList", list)
}

func (r *Recorder) CallLists(lists []uint32) {
	r.call("CallLists", lists)
}

func (r *Recorder) ListBase(base uint32) {
	r.call("ListBase", base)
}

func (r *Recorder) GenLists(xrange int32) uint32 {
	_, hooked := r.hooks["GenLists"]
	v, _ := r.call("GenLists", xrange).(uint32)
	if hooked || xrange <= 0 {
		return v
	}
	first := r.names + 1
	r.names += uint32(xrange)
	return first
}

func (r *Recorder) DeleteLists(list uint32, xrange int32) {
	r.call("DeleteLists", list, xrange)
}

func (r *Recorder) IsList(list uint32) bool {
	v, _ := r.call("IsList", list).(bool)
	return v
}

func (r *Recorder) MatrixMode(mode glapi.Enum) {
	r.call("MatrixMode", mode)
}

func (r *Recorder) LoadIdentity() {
	r.call("LoadIdentity")
}

func (r *Recorder) LoadMatrixf(m []float32) {
	r.call("LoadMatrixf", m)
}

func (r *Recorder) LoadMatrixd(m []float64) {
	r.call("LoadMatrixd", m)
}

func (r *Recorder) MultMatrixf(m []float32) {
	r.call("MultMatrixf", m)
}

func (r *Recorder) PushMatrix() {
	r.call("PushMatrix")
}

func (r *Recorder) PopMatrix() {
	r.call("PopMatrix")
}

func (r *Recorder) Translatef(x, y, z float32) {
	r.call("Translatef", x, y, z)
}

func (r *Recorder) Translated(x, y, z float64) {
	r.call("Translated", x, y, z)
}

func (r *Recorder) Rotatef(angle, x, y, z float32) {
	r.call("Rotatef", angle, x, y, z)
}

func (r *Recorder) Rotated(angle, x, y, z float64) {
	r.call("Rotated", angle, x, y, z)
}

func (r *Recorder) Scalef(x, y, z float32) {
	r.call("Scalef", x, y, z)
}

func (r *Recorder) Scaled(x, y, z float64) {
	r.call("Scaled", x, y, z)
}

func (r *Recorder) Ortho(left, right, bottom, top, zNear, zFar float64) {
	r.call("Ortho", left, right, bottom, top, zNear, zFar)
}

func (r *Recorder) Frustum(left, right, bottom, top, zNear, zFar float64) {
	r.call("Frustum", left, right, bottom, top, zNear, zFar)
}

func (r *Recorder) ShadeModel(mode glapi.Enum) {
	r.call("ShadeModel", mode)
}

func (r *Recorder) Lightf(light, pname glapi.Enum, param float32) {
	r.call("Lightf", light, pname, param)
}

func (r *Recorder) Lightfv(light, pname glapi.Enum, params []float32) {
	r.call("Lightfv", light, pname, params)
}

func (r *Recorder) LightModeli(pname glapi.Enum, param int32) {
	r.call("LightModeli", pname, param)
}

func (r *Recorder) LightModelfv(pname glapi.Enum, params []float32) {
	r.call("LightModelfv", pname, params)
}

func (r *Recorder) Materialf(face, pname glapi.Enum, param float32) {
	r.call("Materialf", face, pname, param)
}

func (r *Recorder) Materialfv(face, pname glapi.Enum, params []float32) {
	r.call("Materialfv", face, pname, params)
}

func (r *Recorder) ColorMaterial(face, mode glapi.Enum) {
	r.call("ColorMaterial", face, mode)
}

func (r *Recorder) Fogf(pname glapi.Enum, param float32) {
	r.call("Fogf", pname, param)
}

func (r *Recorder) Fogfv(pname glapi.Enum, params []float32) {
	r.call("Fogfv", pname, params)
}

func (r *Recorder) TexEnvi(target, pname glapi.Enum, param int32) {
	r.call("TexEnvi", target, pname, param)
}

func (r *Recorder) TexGeni(coord, pname glapi.Enum, param int32) {
	r.call("TexGeni", coord, pname, param)
}

func (r *Recorder) ClipPlane(plane glapi.Enum, equation []float64) {
	r.call("ClipPlane", plane, equation)
}

func (r *Recorder) PushAttrib(mask glapi.Bitfield) {
	r.call("PushAttrib", mask)
}

func (r *Recorder) PopAttrib() {
	r.call("PopAttrib")
}

func (r *Recorder) PushClientAttrib(mask glapi.Bitfield) {
	r.call("PushClientAttrib", mask)
}

func (r *Recorder) PopClientAttrib() {
	r.call("PopClientAttrib")
}

func (r *Recorder) EnableClientState(array glapi.Enum) {
	r.call("EnableClientState", array)
}

func (r *Recorder) DisableClientState(array glapi.Enum) {
	r.call("DisableClientState", array)
}

func (r *Recorder) VertexPointer(size int32, xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	r.call("VertexPointer", size, xtype, stride, pointer)
}

func (r *Recorder) ColorPointer(size int32, xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	r.call("ColorPointer", size, xtype, stride, pointer)
}

func (r *Recorder) NormalPointer(xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	r.call("NormalPointer", xtype, stride, pointer)
}

func (r *Recorder) TexCoordPointer(size int32, xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	r.call("TexCoordPointer", size, xtype, stride, pointer)
}

func (r *Recorder) Enable(xcap glapi.Enum) {
	r.call("Enable", xcap)
}

func (r *Recorder) Disable(xcap glapi.Enum) {
	r.call("Disable", xcap)
}

func (r *Recorder) IsEnabled(xcap glapi.Enum) bool {
	v, _ := r.call("IsEnabled", xcap).(bool)
	return v
}

func (r *Recorder) Hint(target, mode glapi.Enum) {
	r.call("Hint", target, mode)
}

func (r *Recorder) GetError() glapi.Enum {
	v, _ := r.call("GetError").(glapi.Enum)
	return v
}

func (r *Recorder) GetString(name glapi.Enum) string {
	v, _ := r.call("GetString", name).(string)
	return v
}

func (r *Recorder) GetStringi(name glapi.Enum, index uint32) string {
	v, _ := r.call("GetStringi", name, index).(string)
	return v
}

func (r *Recorder) GetIntegerv(pname glapi.Enum, data []int32) {
	r.call("GetIntegerv", pname, data)
}

func (r *Recorder) GetFloatv(pname glapi.Enum, data []float32) {
	r.call("GetFloatv", pname, data)
}

func (r *Recorder) GetBooleanv(pname glapi.Enum, data []bool) {
	r.call("GetBooleanv", pname, data)
}

func (r *Recorder) Flush() {
	r.call("Flush")
}

func (r *Recorder) Finish() {
	r.call("Finish")
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.call("Viewport", x, y, width, height)
}

func (r *Recorder) Scissor(x, y, width, height int32) {
	r.call("Scissor", x, y, width, height)
}

func (r *Recorder) Clear(mask glapi.Bitfield) {
	r.call("Clear", mask)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.call("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) ClearDepth(depth float64) {
	r.call("ClearDepth", depth)
}

func (r *Recorder) ClearStencil(s int32) {
	r.call("ClearStencil", s)
}

func (r *Recorder) ColorMask(red, green, blue, alpha bool) {
	r.call("ColorMask", red, green, blue, alpha)
}

func (r *Recorder) DepthMask(flag bool) {
	r.call("DepthMask", flag)
}

func (r *Recorder) DepthFunc(xfunc glapi.Enum) {
	r.call("DepthFunc", xfunc)
}

func (r *Recorder) DepthRange(n, f float64) {
	r.call("DepthRange", n, f)
}

func (r *Recorder) BlendFunc(sfactor, dfactor glapi.Enum) {
	r.call("BlendFunc", sfactor, dfactor)
}

func (r *Recorder) BlendFuncSeparate(sfactorRGB, dfactorRGB, sfactorAlpha, dfactorAlpha glapi.Enum) {
	r.call("BlendFuncSeparate", sfactorRGB, dfactorRGB, sfactorAlpha, dfactorAlpha)
}

func (r *Recorder) BlendEquation(mode glapi.Enum) {
	r.call("BlendEquation", mode)
}

func (r *Recorder) BlendColor(red, green, blue, alpha float32) {
	r.call("BlendColor", red, green, blue, alpha)
}

func (r *Recorder) CullFace(mode glapi.Enum) {
	r.call("CullFace", mode)
}

func (r *Recorder) FrontFace(mode glapi.Enum) {
	r.call("FrontFace", mode)
}

func (r *Recorder) PolygonMode(face, mode glapi.Enum) {
	r.call("PolygonMode", face, mode)
}

func (r *Recorder) PolygonOffset(factor, units float32) {
	r.call("PolygonOffset", factor, units)
}

func (r *Recorder) PointSize(size float32) {
	r.call("PointSize", size)
}

func (r *Recorder) LineWidth(width float32) {
	r.call("LineWidth", width)
}

func (r *Recorder) LogicOp(opcode glapi.Enum) {
	r.call("LogicOp", opcode)
}

func (r *Recorder) SampleCoverage(value float32, invert bool) {
	r.call("SampleCoverage", value, invert)
}

func (r *Recorder) StencilFunc(xfunc glapi.Enum, ref int32, mask glapi.Bitfield) {
	r.call("StencilFunc", xfunc, ref, mask)
}

func (r *Recorder) StencilOp(fail, zfail, zpass glapi.Enum) {
	r.call("StencilOp", fail, zfail, zpass)
}

func (r *Recorder) StencilMask(mask glapi.Bitfield) {
	r.call("StencilMask", mask)
}

func (r *Recorder) PixelStorei(pname glapi.Enum, param int32) {
	r.call("PixelStorei", pname, param)
}

func (r *Recorder) ReadBuffer(src glapi.Enum) {
	r.call("ReadBuffer", src)
}

func (r *Recorder) DrawBuffer(buf glapi.Enum) {
	r.call("DrawBuffer", buf)
}

func (r *Recorder) DrawBuffers(bufs []glapi.Enum) {
	r.call("DrawBuffers", bufs)
}

func (r *Recorder) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	r.call("ReadPixels", x, y, width, height, format, xtype, pixels)
}

func (r *Recorder) GenBuffers(buffers []uint32) {
	r.gen("GenBuffers", buffers)
}

func (r *Recorder) DeleteBuffers(buffers []uint32) {
	r.call("DeleteBuffers", buffers)
}

func (r *Recorder) BindBuffer(target glapi.Enum, buffer uint32) {
	r.call("BindBuffer", target, buffer)
}

func (r *Recorder) BindBufferBase(target glapi.Enum, index, buffer uint32) {
	r.call("BindBufferBase", target, index, buffer)
}

func (r *Recorder) IsBuffer(buffer uint32) bool {
	v, _ := r.call("IsBuffer", buffer).(bool)
	return v
}

func (r *Recorder) BufferData(target glapi.Enum, size int, data unsafe.Pointer, usage glapi.Enum) {
	r.call("BufferData", target, size, data, usage)
}

func (r *Recorder) BufferSubData(target glapi.Enum, offset, size int, data unsafe.Pointer) {
	r.call("BufferSubData", target, offset, size, data)
}

func (r *Recorder) GetBufferSubData(target glapi.Enum, offset, size int, data unsafe.Pointer) {
	r.call("GetBufferSubData", target, offset, size, data)
}

func (r *Recorder) MapBuffer(target, access glapi.Enum) unsafe.Pointer {
	v, _ := r.call("MapBuffer", target, access).(unsafe.Pointer)
	return v
}

func (r *Recorder) UnmapBuffer(target glapi.Enum) bool {
	v, _ := r.call("UnmapBuffer", target).(bool)
	return v
}

func (r *Recorder) GenVertexArrays(arrays []uint32) {
	r.gen("GenVertexArrays", arrays)
}

func (r *Recorder) DeleteVertexArrays(arrays []uint32) {
	r.call("DeleteVertexArrays", arrays)
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.call("BindVertexArray", array)
}

func (r *Recorder) IsVertexArray(array uint32) bool {
	v, _ := r.call("IsVertexArray", array).(bool)
	return v
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.call("EnableVertexAttribArray", index)
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.call("DisableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype glapi.Enum, normalized bool, stride int32, offset uintptr) {
	r.call("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) VertexAttribIPointer(index uint32, size int32, xtype glapi.Enum, stride int32, offset uintptr) {
	r.call("VertexAttribIPointer", index, size, xtype, stride, offset)
}

func (r *Recorder) VertexAttribDivisor(index, divisor uint32) {
	r.call("VertexAttribDivisor", index, divisor)
}

func (r *Recorder) VertexAttrib4f(index uint32, x, y, z, w float32) {
	r.call("VertexAttrib4f", index, x, y, z, w)
}

func (r *Recorder) DrawArrays(mode glapi.Enum, first, count int32) {
	r.call("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawArraysInstanced(mode glapi.Enum, first, count, instancecount int32) {
	r.call("DrawArraysInstanced", mode, first, count, instancecount)
}

func (r *Recorder) DrawElements(mode glapi.Enum, count int32, xtype glapi.Enum, offset uintptr) {
	r.call("DrawElements", mode, count, xtype, offset)
}

func (r *Recorder) DrawElementsInstanced(mode glapi.Enum, count int32, xtype glapi.Enum, offset uintptr, instancecount int32) {
	r.call("DrawElementsInstanced", mode, count, xtype, offset, instancecount)
}

func (r *Recorder) DrawRangeElements(mode glapi.Enum, start, end uint32, count int32, xtype glapi.Enum, offset uintptr) {
	r.call("DrawRangeElements", mode, start, end, count, xtype, offset)
}

func (r *Recorder) PrimitiveRestartIndex(index uint32) {
	r.call("PrimitiveRestartIndex", index)
}

func (r *Recorder) GenTextures(textures []uint32) {
	r.gen("GenTextures", textures)
}

func (r *Recorder) DeleteTextures(textures []uint32) {
	r.call("DeleteTextures", textures)
}

func (r *Recorder) BindTexture(target glapi.Enum, texture uint32) {
	r.call("BindTexture", target, texture)
}

func (r *Recorder) IsTexture(texture uint32) bool {
	v, _ := r.call("IsTexture", texture).(bool)
	return v
}

func (r *Recorder) ActiveTexture(texture glapi.Enum) {
	r.call("ActiveTexture", texture)
}

func (r *Recorder) TexImage2D(target glapi.Enum, level, internalformat, width, height, border int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	r.call("TexImage2D", target, level, internalformat, width, height, border, format, xtype, pixels)
}

func (r *Recorder) TexSubImage2D(target glapi.Enum, level, xoffset, yoffset, width, height int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	r.call("TexSubImage2D", target, level, xoffset, yoffset, width, height, format, xtype, pixels)
}

func (r *Recorder) CopyTexSubImage2D(target glapi.Enum, level, xoffset, yoffset, x, y, width, height int32) {
	r.call("CopyTexSubImage2D", target, level, xoffset, yoffset, x, y, width, height)
}

func (r *Recorder) GetTexImage(target glapi.Enum, level int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	r.call("GetTexImage", target, level, format, xtype, pixels)
}

func (r *Recorder) TexParameteri(target, pname glapi.Enum, param int32) {
	r.call("TexParameteri", target, pname, param)
}

func (r *Recorder) TexParameterf(target, pname glapi.Enum, param float32) {
	r.call("TexParameterf", target, pname, param)
}

func (r *Recorder) GetTexParameteriv(target, pname glapi.Enum, params []int32) {
	r.call("GetTexParameteriv", target, pname, params)
}

func (r *Recorder) GenerateMipmap(target glapi.Enum) {
	r.call("GenerateMipmap", target)
}

func (r *Recorder) GenSamplers(samplers []uint32) {
	r.gen("GenSamplers", samplers)
}

func (r *Recorder) DeleteSamplers(samplers []uint32) {
	r.call("DeleteSamplers", samplers)
}

func (r *Recorder) BindSampler(unit, sampler uint32) {
	r.call("BindSampler", unit, sampler)
}

func (r *Recorder) SamplerParameteri(sampler uint32, pname glapi.Enum, param int32) {
	r.call("SamplerParameteri", sampler, pname, param)
}

func (r *Recorder) GenFramebuffers(framebuffers []uint32) {
	r.gen("GenFramebuffers", framebuffers)
}

func (r *Recorder) DeleteFramebuffers(framebuffers []uint32) {
	r.call("DeleteFramebuffers", framebuffers)
}

func (r *Recorder) BindFramebuffer(target glapi.Enum, framebuffer uint32) {
	r.call("BindFramebuffer", target, framebuffer)
}

func (r *Recorder) IsFramebuffer(framebuffer uint32) bool {
	v, _ := r.call("IsFramebuffer", framebuffer).(bool)
	return v
}

func (r *Recorder) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	v, _ := r.call("CheckFramebufferStatus", target).(glapi.Enum)
	return v
}

func (r *Recorder) FramebufferTexture2D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	r.call("FramebufferTexture2D", target, attachment, textarget, texture, level)
}

func (r *Recorder) FramebufferRenderbuffer(target, attachment, renderbuffertarget glapi.Enum, renderbuffer uint32) {
	r.call("FramebufferRenderbuffer", target, attachment, renderbuffertarget, renderbuffer)
}

func (r *Recorder) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask glapi.Bitfield, filter glapi.Enum) {
	r.call("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (r *Recorder) GenRenderbuffers(renderbuffers []uint32) {
	r.gen("GenRenderbuffers", renderbuffers)
}

func (r *Recorder) DeleteRenderbuffers(renderbuffers []uint32) {
	r.call("DeleteRenderbuffers", renderbuffers)
}

func (r *Recorder) BindRenderbuffer(target glapi.Enum, renderbuffer uint32) {
	r.call("BindRenderbuffer", target, renderbuffer)
}

func (r *Recorder) IsRenderbuffer(renderbuffer uint32) bool {
	v, _ := r.call("IsRenderbuffer", renderbuffer).(bool)
	return v
}

func (r *Recorder) RenderbufferStorage(target, internalformat glapi.Enum, width, height int32) {
	r.call("RenderbufferStorage", target, internalformat, width, height)
}

func (r *Recorder) RenderbufferStorageMultisample(target glapi.Enum, samples int32, internalformat glapi.Enum, width, height int32) {
	r.call("RenderbufferStorageMultisample", target, samples, internalformat, width, height)
}

func (r *Recorder) CreateShader(xtype glapi.Enum) uint32 {
	return r.create("CreateShader", xtype)
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.call("DeleteShader", shader)
}

func (r *Recorder) IsShader(shader uint32) bool {
	v, _ := r.call("IsShader", shader).(bool)
	return v
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.call("ShaderSource", shader, source)
}

func (r *Recorder) CompileShader(shader uint32) {
	r.call("CompileShader", shader)
}

func (r *Recorder) GetShaderiv(shader uint32, pname glapi.Enum, params []int32) {
	r.call("GetShaderiv", shader, pname, params)
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	v, _ := r.call("GetShaderInfoLog", shader).(string)
	return v
}

func (r *Recorder) CreateProgram() uint32 {
	return r.create("CreateProgram")
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.call("DeleteProgram", program)
}

func (r *Recorder) IsProgram(program uint32) bool {
	v, _ := r.call("IsProgram", program).(bool)
	return v
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.call("AttachShader", program, shader)
}

func (r *Recorder) DetachShader(program, shader uint32) {
	r.call("DetachShader", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.call("LinkProgram", program)
}

func (r *Recorder) ValidateProgram(program uint32) {
	r.call("ValidateProgram", program)
}

func (r *Recorder) UseProgram(program uint32) {
	r.call("UseProgram", program)
}

func (r *Recorder) GetProgramiv(program uint32, pname glapi.Enum, params []int32) {
	r.call("GetProgramiv", program, pname, params)
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	v, _ := r.call("GetProgramInfoLog", program).(string)
	return v
}

func (r *Recorder) BindAttribLocation(program, index uint32, name string) {
	r.call("BindAttribLocation", program, index, name)
}

func (r *Recorder) BindFragDataLocation(program, color uint32, name string) {
	r.call("BindFragDataLocation", program, color, name)
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	v, _ := r.call("GetAttribLocation", program, name).(int32)
	return v
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	v, _ := r.call("GetUniformLocation", program, name).(int32)
	return v
}

func (r *Recorder) GetActiveAttrib(program, index uint32) glapi.ActiveInfo {
	v, _ := r.call("GetActiveAttrib", program, index).(glapi.ActiveInfo)
	return v
}

func (r *Recorder) GetActiveUniform(program, index uint32) glapi.ActiveInfo {
	v, _ := r.call("GetActiveUniform", program, index).(glapi.ActiveInfo)
	return v
}

func (r *Recorder) Uniform1i(location, v0 int32) {
	r.call("Uniform1i", location, v0)
}

func (r *Recorder) Uniform2i(location, v0, v1 int32) {
	r.call("Uniform2i", location, v0, v1)
}

func (r *Recorder) Uniform3i(location, v0, v1, v2 int32) {
	r.call("Uniform3i", location, v0, v1, v2)
}

func (r *Recorder) Uniform4i(location, v0, v1, v2, v3 int32) {
	r.call("Uniform4i", location, v0, v1, v2, v3)
}

func (r *Recorder) Uniform1ui(location int32, v0 uint32) {
	r.call("Uniform1ui", location, v0)
}

func (r *Recorder) Uniform1f(location int32, v0 float32) {
	r.call("Uniform1f", location, v0)
}

func (r *Recorder) Uniform2f(location int32, v0, v1 float32) {
	r.call("Uniform2f", location, v0, v1)
}

func (r *Recorder) Uniform3f(location int32, v0, v1, v2 float32) {
	r.call("Uniform3f", location, v0, v1, v2)
}

func (r *Recorder) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	r.call("Uniform4f", location, v0, v1, v2, v3)
}

func (r *Recorder) Uniform1iv(location int32, value []int32) {
	r.call("Uniform1iv", location, value)
}

func (r *Recorder) Uniform1fv(location int32, value []float32) {
	r.call("Uniform1fv", location, value)
}

func (r *Recorder) Uniform2fv(location int32, value []float32) {
	r.call("Uniform2fv", location, value)
}

func (r *Recorder) Uniform3fv(location int32, value []float32) {
	r.call("Uniform3fv", location, value)
}

func (r *Recorder) Uniform4fv(location int32, value []float32) {
	r.call("Uniform4fv", location, value)
}

func (r *Recorder) UniformMatrix3fv(location int32, transpose bool, value []float32) {
	r.call("UniformMatrix3fv", location, transpose, value)
}

func (r *Recorder) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	r.call("UniformMatrix4fv", location, transpose, value)
}

func (r *Recorder) GetUniformfv(program uint32, location int32, params []float32) {
	r.call("GetUniformfv", program, location, params)
}

func (r *Recorder) GenQueries(ids []uint32) {
	r.gen("GenQueries", ids)
}

func (r *Recorder) DeleteQueries(ids []uint32) {
	r.call("DeleteQueries", ids)
}

func (r *Recorder) BeginQuery(target glapi.Enum, id uint32) {
	r.call("BeginQuery", target, id)
}

func (r *Recorder) EndQuery(target glapi.Enum) {
	r.call("EndQuery", target)
}

func (r *Recorder) QueryCounter(id uint32, target glapi.Enum) {
	r.call("QueryCounter", id, target)
}

func (r *Recorder) GetQueryObjectuiv(id uint32, pname glapi.Enum, params []uint32) {
	r.call("GetQueryObjectuiv", id, pname, params)
}

func (r *Recorder) GetQueryObjectui64v(id uint32, pname glapi.Enum, params []uint64) {
	r.call("GetQueryObjectui64v", id, pname, params)
}

func (r *Recorder) BeginConditionalRender(id uint32, mode glapi.Enum) {
	r.call("BeginConditionalRender", id, mode)
}

func (r *Recorder) EndConditionalRender() {
	r.call("EndConditionalRender")
}

func (r *Recorder) BeginTransformFeedback(primitiveMode glapi.Enum) {
	r.call("BeginTransformFeedback", primitiveMode)
}

func (r *Recorder) EndTransformFeedback() {
	r.call("EndTransformFeedback")
}

func (r *Recorder) FenceSync(condition glapi.Enum, flags glapi.Bitfield) uintptr {
	v, _ := r.call("FenceSync", condition, flags).(uintptr)
	return v
}

func (r *Recorder) ClientWaitSync(sync uintptr, flags glapi.Bitfield, timeout uint64) glapi.Enum {
	v, _ := r.call("ClientWaitSync", sync, flags, timeout).(glapi.Enum)
	return v
}

func (r *Recorder) DeleteSync(sync uintptr) {
	r.call("DeleteSync", sync)
}
