package native

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-compatibility/gl"

	"github.com/polyfloyd/gltrace/glapi"
)

func (c *Context) Begin(mode glapi.Enum) {
	gl.Begin(uint32(mode))
}

func (c *Context) End() {
	gl.End()
}

func (c *Context) Vertex2f(x, y float32) {
	gl.Vertex2f(x, y)
}

func (c *Context) Vertex3f(x, y, z float32) {
	gl.Vertex3f(x, y, z)
}

func (c *Context) Vertex4f(x, y, z, w float32) {
	gl.Vertex4f(x, y, z, w)
}

func (c *Context) Vertex2d(x, y float64) {
	gl.Vertex2d(x, y)
}

func (c *Context) Vertex3d(x, y, z float64) {
	gl.Vertex3d(x, y, z)
}

func (c *Context) Vertex2i(x, y int32) {
	gl.Vertex2i(x, y)
}

func (c *Context) Vertex3fv(v []float32) {
	gl.Vertex3fv(f32p(v))
}

func (c *Context) Color3f(red, green, blue float32) {
	gl.Color3f(red, green, blue)
}

func (c *Context) Color4f(red, green, blue, alpha float32) {
	gl.Color4f(red, green, blue, alpha)
}

func (c *Context) Color3ub(red, green, blue uint8) {
	gl.Color3ub(red, green, blue)
}

func (c *Context) Color4fv(v []float32) {
	gl.Color4fv(f32p(v))
}

func (c *Context) Normal3f(nx, ny, nz float32) {
	gl.Normal3f(nx, ny, nz)
}

func (c *Context) Normal3fv(v []float32) {
	gl.Normal3fv(f32p(v))
}

func (c *Context) TexCoord2f(s, t float32) {
	gl.TexCoord2f(s, t)
}

func (c *Context) TexCoord2fv(v []float32) {
	gl.TexCoord2fv(f32p(v))
}

func (c *Context) EdgeFlag(flag bool) {
	gl.EdgeFlag(flag)
}

func (c *Context) Rectf(x1, y1, x2, y2 float32) {
	gl.Rectf(x1, y1, x2, y2)
}

func (c *Context) RasterPos2f(x, y float32) {
	gl.RasterPos2f(x, y)
}

func (c *Context) NewList(list uint32, mode glapi.Enum) {
	gl.NewList(list, uint32(mode))
}

func (c *Context) EndList() {
	gl.EndList()
}

func (c *Context) CallList(list uint32) {
	gl.CallList(list)
}

func (c *Context) CallLists(lists []uint32) {
	gl.CallLists(int32(len(lists)), gl.UNSIGNED_INT, unsafe.Pointer(u32p(lists)))
}

func (c *Context) ListBase(base uint32) {
	gl.ListBase(base)
}

func (c *Context) GenLists(xrange int32) uint32 {
	return gl.GenLists(xrange)
}

func (c *Context) DeleteLists(list uint32, xrange int32) {
	gl.DeleteLists(list, xrange)
}

func (c *Context) IsList(list uint32) bool {
	return gl.IsList(list)
}

func (c *Context) MatrixMode(mode glapi.Enum) {
	gl.MatrixMode(uint32(mode))
}

func (c *Context) LoadIdentity() {
	gl.LoadIdentity()
}

func (c *Context) LoadMatrixf(m []float32) {
	gl.LoadMatrixf(f32p(m))
}

func (c *Context) LoadMatrixd(m []float64) {
	gl.LoadMatrixd(f64p(m))
}

func (c *Context) MultMatrixf(m []float32) {
	gl.MultMatrixf(f32p(m))
}

func (c *Context) PushMatrix() {
	gl.PushMatrix()
}

func (c *Context) PopMatrix() {
	gl.PopMatrix()
}

func (c *Context) Translatef(x, y, z float32) {
	gl.Translatef(x, y, z)
}

func (c *Context) Translated(x, y, z float64) {
	gl.Translated(x, y, z)
}

func (c *Context) Rotatef(angle, x, y, z float32) {
	gl.Rotatef(angle, x, y, z)
}

func (c *Context) Rotated(angle, x, y, z float64) {
	gl.Rotated(angle, x, y, z)
}

func (c *Context) Scalef(x, y, z float32) {
	gl.Scalef(x, y, z)
}

func (c *Context) Scaled(x, y, z float64) {
	gl.Scaled(x, y, z)
}

func (c *Context) Ortho(left, right, bottom, top, zNear, zFar float64) {
	gl.Ortho(left, right, bottom, top, zNear, zFar)
}

func (c *Context) Frustum(left, right, bottom, top, zNear, zFar float64) {
	gl.Frustum(left, right, bottom, top, zNear, zFar)
}

func (c *Context) ShadeModel(mode glapi.Enum) {
	gl.ShadeModel(uint32(mode))
}

func (c *Context) Lightf(light, pname glapi.Enum, param float32) {
	gl.Lightf(uint32(light), uint32(pname), param)
}

func (c *Context) Lightfv(light, pname glapi.Enum, params []float32) {
	gl.Lightfv(uint32(light), uint32(pname), f32p(params))
}

func (c *Context) LightModeli(pname glapi.Enum, param int32) {
	gl.LightModeli(uint32(pname), param)
}

func (c *Context) LightModelfv(pname glapi.Enum, params []float32) {
	gl.LightModelfv(uint32(pname), f32p(params))
}

func (c *Context) Materialf(face, pname glapi.Enum, param float32) {
	gl.Materialf(uint32(face), uint32(pname), param)
}

func (c *Context) Materialfv(face, pname glapi.Enum, params []float32) {
	gl.Materialfv(uint32(face), uint32(pname), f32p(params))
}

func (c *Context) ColorMaterial(face, mode glapi.Enum) {
	gl.ColorMaterial(uint32(face), uint32(mode))
}

func (c *Context) Fogf(pname glapi.Enum, param float32) {
	gl.Fogf(uint32(pname), param)
}

func (c *Context) Fogfv(pname glapi.Enum, params []float32) {
	gl.Fogfv(uint32(pname), f32p(params))
}

func (c *Context) TexEnvi(target, pname glapi.Enum, param int32) {
	gl.TexEnvi(uint32(target), uint32(pname), param)
}

func (c *Context) TexGeni(coord, pname glapi.Enum, param int32) {
	gl.TexGeni(uint32(coord), uint32(pname), param)
}

func (c *Context) ClipPlane(plane glapi.Enum, equation []float64) {
	gl.ClipPlane(uint32(plane), f64p(equation))
}

func (c *Context) PushAttrib(mask glapi.Bitfield) {
	gl.PushAttrib(uint32(mask))
}

func (c *Context) PopAttrib() {
	gl.PopAttrib()
}

func (c *Context) PushClientAttrib(mask glapi.Bitfield) {
	gl.PushClientAttrib(uint32(mask))
}

func (c *Context) PopClientAttrib() {
	gl.PopClientAttrib()
}

func (c *Context) EnableClientState(array glapi.Enum) {
	gl.EnableClientState(uint32(array))
}

func (c *Context) DisableClientState(array glapi.Enum) {
	gl.DisableClientState(uint32(array))
}

func (c *Context) VertexPointer(size int32, xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	gl.VertexPointer(size, uint32(xtype), stride, pointer)
}

func (c *Context) ColorPointer(size int32, xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	gl.ColorPointer(size, uint32(xtype), stride, pointer)
}

func (c *Context) NormalPointer(xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	gl.NormalPointer(uint32(xtype), stride, pointer)
}

func (c *Context) TexCoordPointer(size int32, xtype glapi.Enum, stride int32, pointer unsafe.Pointer) {
	gl.TexCoordPointer(size, uint32(xtype), stride, pointer)
}

func (c *Context) Enable(xcap glapi.Enum) {
	gl.Enable(uint32(xcap))
}

func (c *Context) Disable(xcap glapi.Enum) {
	gl.Disable(uint32(xcap))
}

func (c *Context) IsEnabled(xcap glapi.Enum) bool {
	return gl.IsEnabled(uint32(xcap))
}

func (c *Context) Hint(target, mode glapi.Enum) {
	gl.Hint(uint32(target), uint32(mode))
}

func (c *Context) GetError() glapi.Enum {
	return glapi.Enum(gl.GetError())
}

func (c *Context) GetIntegerv(pname glapi.Enum, data []int32) {
	gl.GetIntegerv(uint32(pname), i32p(data))
}

func (c *Context) GetFloatv(pname glapi.Enum, data []float32) {
	gl.GetFloatv(uint32(pname), f32p(data))
}

func (c *Context) GetBooleanv(pname glapi.Enum, data []bool) {
	gl.GetBooleanv(uint32(pname), boolp(data))
}

func (c *Context) Flush() {
	gl.Flush()
}

func (c *Context) Finish() {
	gl.Finish()
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (c *Context) Clear(mask glapi.Bitfield) {
	gl.Clear(uint32(mask))
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (c *Context) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (c *Context) ClearStencil(s int32) {
	gl.ClearStencil(s)
}

func (c *Context) ColorMask(red, green, blue, alpha bool) {
	gl.ColorMask(red, green, blue, alpha)
}

func (c *Context) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (c *Context) DepthFunc(xfunc glapi.Enum) {
	gl.DepthFunc(uint32(xfunc))
}

func (c *Context) DepthRange(n, f float64) {
	gl.DepthRange(n, f)
}

func (c *Context) BlendFunc(sfactor, dfactor glapi.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (c *Context) BlendFuncSeparate(sfactorRGB, dfactorRGB, sfactorAlpha, dfactorAlpha glapi.Enum) {
	gl.BlendFuncSeparate(uint32(sfactorRGB), uint32(dfactorRGB), uint32(sfactorAlpha), uint32(dfactorAlpha))
}

func (c *Context) BlendEquation(mode glapi.Enum) {
	gl.BlendEquation(uint32(mode))
}

func (c *Context) BlendColor(red, green, blue, alpha float32) {
	gl.BlendColor(red, green, blue, alpha)
}

func (c *Context) CullFace(mode glapi.Enum) {
	gl.CullFace(uint32(mode))
}

func (c *Context) FrontFace(mode glapi.Enum) {
	gl.FrontFace(uint32(mode))
}

func (c *Context) PolygonMode(face, mode glapi.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (c *Context) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}

func (c *Context) PointSize(size float32) {
	gl.PointSize(size)
}

func (c *Context) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (c *Context) LogicOp(opcode glapi.Enum) {
	gl.LogicOp(uint32(opcode))
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	gl.SampleCoverage(value, invert)
}

func (c *Context) StencilFunc(xfunc glapi.Enum, ref int32, mask glapi.Bitfield) {
	gl.StencilFunc(uint32(xfunc), ref, uint32(mask))
}

func (c *Context) StencilOp(fail, zfail, zpass glapi.Enum) {
	gl.StencilOp(uint32(fail), uint32(zfail), uint32(zpass))
}

func (c *Context) StencilMask(mask glapi.Bitfield) {
	gl.StencilMask(uint32(mask))
}

func (c *Context) PixelStorei(pname glapi.Enum, param int32) {
	gl.PixelStorei(uint32(pname), param)
}

func (c *Context) ReadBuffer(src glapi.Enum) {
	gl.ReadBuffer(uint32(src))
}

func (c *Context) DrawBuffer(buf glapi.Enum) {
	gl.DrawBuffer(uint32(buf))
}

func (c *Context) DrawBuffers(bufs []glapi.Enum) {
	gl.DrawBuffers(int32(len(bufs)), enump(bufs))
}

func (c *Context) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(xtype), pixels)
}

func (c *Context) GenBuffers(buffers []uint32) {
	gl.GenBuffers(int32(len(buffers)), u32p(buffers))
}

func (c *Context) DeleteBuffers(buffers []uint32) {
	gl.DeleteBuffers(int32(len(buffers)), u32p(buffers))
}

func (c *Context) BindBuffer(target glapi.Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (c *Context) BindBufferBase(target glapi.Enum, index, buffer uint32) {
	gl.BindBufferBase(uint32(target), index, buffer)
}

func (c *Context) IsBuffer(buffer uint32) bool {
	return gl.IsBuffer(buffer)
}

func (c *Context) BufferData(target glapi.Enum, size int, data unsafe.Pointer, usage glapi.Enum) {
	gl.BufferData(uint32(target), size, data, uint32(usage))
}

func (c *Context) BufferSubData(target glapi.Enum, offset, size int, data unsafe.Pointer) {
	gl.BufferSubData(uint32(target), offset, size, data)
}

func (c *Context) GetBufferSubData(target glapi.Enum, offset, size int, data unsafe.Pointer) {
	gl.GetBufferSubData(uint32(target), offset, size, data)
}

func (c *Context) MapBuffer(target, access glapi.Enum) unsafe.Pointer {
	return gl.MapBuffer(uint32(target), uint32(access))
}

func (c *Context) UnmapBuffer(target glapi.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (c *Context) GenVertexArrays(arrays []uint32) {
	gl.GenVertexArrays(int32(len(arrays)), u32p(arrays))
}

func (c *Context) DeleteVertexArrays(arrays []uint32) {
	gl.DeleteVertexArrays(int32(len(arrays)), u32p(arrays))
}

func (c *Context) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (c *Context) IsVertexArray(array uint32) bool {
	return gl.IsVertexArray(array)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype glapi.Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, uint32(xtype), normalized, stride, gl.PtrOffset(int(offset)))
}

func (c *Context) VertexAttribIPointer(index uint32, size int32, xtype glapi.Enum, stride int32, offset uintptr) {
	gl.VertexAttribIPointer(index, size, uint32(xtype), stride, gl.PtrOffset(int(offset)))
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

func (c *Context) VertexAttrib4f(index uint32, x, y, z, w float32) {
	gl.VertexAttrib4f(index, x, y, z, w)
}

func (c *Context) DrawArrays(mode glapi.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (c *Context) DrawArraysInstanced(mode glapi.Enum, first, count, instancecount int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instancecount)
}

func (c *Context) DrawElements(mode glapi.Enum, count int32, xtype glapi.Enum, offset uintptr) {
	gl.DrawElements(uint32(mode), count, uint32(xtype), gl.PtrOffset(int(offset)))
}

func (c *Context) DrawElementsInstanced(mode glapi.Enum, count int32, xtype glapi.Enum, offset uintptr, instancecount int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(xtype), gl.PtrOffset(int(offset)), instancecount)
}

func (c *Context) DrawRangeElements(mode glapi.Enum, start, end uint32, count int32, xtype glapi.Enum, offset uintptr) {
	gl.DrawRangeElements(uint32(mode), start, end, count, uint32(xtype), gl.PtrOffset(int(offset)))
}

func (c *Context) PrimitiveRestartIndex(index uint32) {
	gl.PrimitiveRestartIndex(index)
}

func (c *Context) GenTextures(textures []uint32) {
	gl.GenTextures(int32(len(textures)), u32p(textures))
}

func (c *Context) DeleteTextures(textures []uint32) {
	gl.DeleteTextures(int32(len(textures)), u32p(textures))
}

func (c *Context) BindTexture(target glapi.Enum, texture uint32) {
	gl.BindTexture(uint32(target), texture)
}

func (c *Context) IsTexture(texture uint32) bool {
	return gl.IsTexture(texture)
}

func (c *Context) ActiveTexture(texture glapi.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (c *Context) TexImage2D(target glapi.Enum, level, internalformat, width, height, border int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	gl.TexImage2D(uint32(target), level, internalformat, width, height, border, uint32(format), uint32(xtype), pixels)
}

func (c *Context) TexSubImage2D(target glapi.Enum, level, xoffset, yoffset, width, height int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	gl.TexSubImage2D(uint32(target), level, xoffset, yoffset, width, height, uint32(format), uint32(xtype), pixels)
}

func (c *Context) CopyTexSubImage2D(target glapi.Enum, level, xoffset, yoffset, x, y, width, height int32) {
	gl.CopyTexSubImage2D(uint32(target), level, xoffset, yoffset, x, y, width, height)
}

func (c *Context) GetTexImage(target glapi.Enum, level int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	gl.GetTexImage(uint32(target), level, uint32(format), uint32(xtype), pixels)
}

func (c *Context) TexParameteri(target, pname glapi.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (c *Context) TexParameterf(target, pname glapi.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (c *Context) GetTexParameteriv(target, pname glapi.Enum, params []int32) {
	gl.GetTexParameteriv(uint32(target), uint32(pname), i32p(params))
}

func (c *Context) GenerateMipmap(target glapi.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (c *Context) GenSamplers(samplers []uint32) {
	gl.GenSamplers(int32(len(samplers)), u32p(samplers))
}

func (c *Context) DeleteSamplers(samplers []uint32) {
	gl.DeleteSamplers(int32(len(samplers)), u32p(samplers))
}

func (c *Context) BindSampler(unit, sampler uint32) {
	gl.BindSampler(unit, sampler)
}

func (c *Context) SamplerParameteri(sampler uint32, pname glapi.Enum, param int32) {
	gl.SamplerParameteri(sampler, uint32(pname), param)
}

func (c *Context) GenFramebuffers(framebuffers []uint32) {
	gl.GenFramebuffers(int32(len(framebuffers)), u32p(framebuffers))
}

func (c *Context) DeleteFramebuffers(framebuffers []uint32) {
	gl.DeleteFramebuffers(int32(len(framebuffers)), u32p(framebuffers))
}

func (c *Context) BindFramebuffer(target glapi.Enum, framebuffer uint32) {
	gl.BindFramebuffer(uint32(target), framebuffer)
}

func (c *Context) IsFramebuffer(framebuffer uint32) bool {
	return gl.IsFramebuffer(framebuffer)
}

func (c *Context) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (c *Context) FramebufferTexture2D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), texture, level)
}

func (c *Context) FramebufferRenderbuffer(target, attachment, renderbuffertarget glapi.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), renderbuffer)
}

func (c *Context) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask glapi.Bitfield, filter glapi.Enum) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, uint32(mask), uint32(filter))
}

func (c *Context) GenRenderbuffers(renderbuffers []uint32) {
	gl.GenRenderbuffers(int32(len(renderbuffers)), u32p(renderbuffers))
}

func (c *Context) DeleteRenderbuffers(renderbuffers []uint32) {
	gl.DeleteRenderbuffers(int32(len(renderbuffers)), u32p(renderbuffers))
}

func (c *Context) BindRenderbuffer(target glapi.Enum, renderbuffer uint32) {
	gl.BindRenderbuffer(uint32(target), renderbuffer)
}

func (c *Context) IsRenderbuffer(renderbuffer uint32) bool {
	return gl.IsRenderbuffer(renderbuffer)
}

func (c *Context) RenderbufferStorage(target, internalformat glapi.Enum, width, height int32) {
	gl.RenderbufferStorage(uint32(target), uint32(internalformat), width, height)
}

func (c *Context) RenderbufferStorageMultisample(target glapi.Enum, samples int32, internalformat glapi.Enum, width, height int32) {
	gl.RenderbufferStorageMultisample(uint32(target), samples, uint32(internalformat), width, height)
}

func (c *Context) CreateShader(xtype glapi.Enum) uint32 {
	return gl.CreateShader(uint32(xtype))
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) IsShader(shader uint32) bool {
	return gl.IsShader(shader)
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) GetShaderiv(shader uint32, pname glapi.Enum, params []int32) {
	gl.GetShaderiv(shader, uint32(pname), i32p(params))
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) IsProgram(program uint32) bool {
	return gl.IsProgram(program)
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) GetProgramiv(program uint32, pname glapi.Enum, params []int32) {
	gl.GetProgramiv(program, uint32(pname), i32p(params))
}

func (c *Context) Uniform1i(location, v0 int32) {
	gl.Uniform1i(location, v0)
}

func (c *Context) Uniform2i(location, v0, v1 int32) {
	gl.Uniform2i(location, v0, v1)
}

func (c *Context) Uniform3i(location, v0, v1, v2 int32) {
	gl.Uniform3i(location, v0, v1, v2)
}

func (c *Context) Uniform4i(location, v0, v1, v2, v3 int32) {
	gl.Uniform4i(location, v0, v1, v2, v3)
}

func (c *Context) Uniform1ui(location int32, v0 uint32) {
	gl.Uniform1ui(location, v0)
}

func (c *Context) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

func (c *Context) Uniform2f(location int32, v0, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

func (c *Context) Uniform3f(location int32, v0, v1, v2 float32) {
	gl.Uniform3f(location, v0, v1, v2)
}

func (c *Context) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (c *Context) Uniform1iv(location int32, value []int32) {
	gl.Uniform1iv(location, int32(len(value)), i32p(value))
}

func (c *Context) Uniform1fv(location int32, value []float32) {
	gl.Uniform1fv(location, int32(len(value)), f32p(value))
}

func (c *Context) Uniform2fv(location int32, value []float32) {
	gl.Uniform2fv(location, int32(len(value)/2), f32p(value))
}

func (c *Context) Uniform3fv(location int32, value []float32) {
	gl.Uniform3fv(location, int32(len(value)/3), f32p(value))
}

func (c *Context) Uniform4fv(location int32, value []float32) {
	gl.Uniform4fv(location, int32(len(value)/4), f32p(value))
}

func (c *Context) UniformMatrix3fv(location int32, transpose bool, value []float32) {
	gl.UniformMatrix3fv(location, int32(len(value)/9), transpose, f32p(value))
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	gl.UniformMatrix4fv(location, int32(len(value)/16), transpose, f32p(value))
}

func (c *Context) GetUniformfv(program uint32, location int32, params []float32) {
	gl.GetUniformfv(program, location, f32p(params))
}

func (c *Context) GenQueries(ids []uint32) {
	gl.GenQueries(int32(len(ids)), u32p(ids))
}

func (c *Context) DeleteQueries(ids []uint32) {
	gl.DeleteQueries(int32(len(ids)), u32p(ids))
}

func (c *Context) BeginQuery(target glapi.Enum, id uint32) {
	gl.BeginQuery(uint32(target), id)
}

func (c *Context) EndQuery(target glapi.Enum) {
	gl.EndQuery(uint32(target))
}

func (c *Context) QueryCounter(id uint32, target glapi.Enum) {
	gl.QueryCounter(id, uint32(target))
}

func (c *Context) GetQueryObjectuiv(id uint32, pname glapi.Enum, params []uint32) {
	gl.GetQueryObjectuiv(id, uint32(pname), u32p(params))
}

func (c *Context) GetQueryObjectui64v(id uint32, pname glapi.Enum, params []uint64) {
	gl.GetQueryObjectui64v(id, uint32(pname), u64p(params))
}

func (c *Context) BeginConditionalRender(id uint32, mode glapi.Enum) {
	gl.BeginConditionalRender(id, uint32(mode))
}

func (c *Context) EndConditionalRender() {
	gl.EndConditionalRender()
}

func (c *Context) BeginTransformFeedback(primitiveMode glapi.Enum) {
	gl.BeginTransformFeedback(uint32(primitiveMode))
}

func (c *Context) EndTransformFeedback() {
	gl.EndTransformFeedback()
}

func (c *Context) FenceSync(condition glapi.Enum, flags glapi.Bitfield) uintptr {
	return gl.FenceSync(uint32(condition), uint32(flags))
}

func (c *Context) ClientWaitSync(sync uintptr, flags glapi.Bitfield, timeout uint64) glapi.Enum {
	return glapi.Enum(gl.ClientWaitSync(sync, uint32(flags), timeout))
}

func (c *Context) DeleteSync(sync uintptr) {
	gl.DeleteSync(sync)
}
