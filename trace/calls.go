package trace

import (
	"unsafe"

	"github.com/polyfloyd/gltrace/glapi"
)

func (c *Context) Begin(mode glapi.Enum) {
	c.enter("glBegin", enum(mode))
	c.downstream.Begin(mode)
	c.leave()
	c.indent += 2
}

func (c *Context) End() {
	c.indent -= 2
	c.enter("glEnd")
	c.downstream.End()
	c.leave()
}

func (c *Context) Vertex2f(x, y float32) {
	c.enter("glVertex2f", f32(x), f32(y))
	c.downstream.Vertex2f(x, y)
	c.leave()
}

func (c *Context) Vertex3f(x, y, z float32) {
	c.enter("glVertex3f", f32(x), f32(y), f32(z))
	c.downstream.Vertex3f(x, y, z)
	c.leave()
}

func (c *Context) Vertex4f(x, y, z, w float32) {
	c.enter("glVertex4f", f32(x), f32(y), f32(z), f32(w))
	c.downstream.Vertex4f(x, y, z, w)
	c.leave()
}

func (c *Context) Vertex2d(x, y float64) {
	c.enter("glVertex2d", f64(x), f64(y))
	c.downstream.Vertex2d(x, y)
	c.leave()
}

func (c *Context) Vertex3d(x, y, z float64) {
	c.enter("glVertex3d", f64(x), f64(y), f64(z))
	c.downstream.Vertex3d(x, y, z)
	c.leave()
}

func (c *Context) Vertex2i(x, y int32) {
	c.enter("glVertex2i", i32(x), i32(y))
	c.downstream.Vertex2i(x, y)
	c.leave()
}

func (c *Context) Vertex3fv(v []float32) {
	c.enter("glVertex3fv", floats(v))
	c.downstream.Vertex3fv(v)
	c.leave()
}

func (c *Context) Color3f(red, green, blue float32) {
	c.enter("glColor3f", f32(red), f32(green), f32(blue))
	c.downstream.Color3f(red, green, blue)
	c.leave()
}

func (c *Context) Color4f(red, green, blue, alpha float32) {
	c.enter("glColor4f", f32(red), f32(green), f32(blue), f32(alpha))
	c.downstream.Color4f(red, green, blue, alpha)
	c.leave()
}

func (c *Context) Color3ub(red, green, blue uint8) {
	c.enter("glColor3ub", ubyte(red), ubyte(green), ubyte(blue))
	c.downstream.Color3ub(red, green, blue)
	c.leave()
}

func (c *Context) Color4fv(v []float32) {
	c.enter("glColor4fv", floats(v))
	c.downstream.Color4fv(v)
	c.leave()
}

func (c *Context) Normal3f(nx, ny, nz float32) {
	c.enter("glNormal3f", f32(nx), f32(ny), f32(nz))
	c.downstream.Normal3f(nx, ny, nz)
	c.leave()
}

func (c *Context) Normal3fv(v []float32) {
	c.enter("glNormal3fv", floats(v))
	c.downstream.Normal3fv(v)
	c.leave()
}

func (c *Context) TexCoord2f(s, t float32) {
	c.enter("glTexCoord2f", f32(s), f32(t))
	c.downstream.TexCoord2f(s, t)
	c.leave()
}

func (c *Context) TexCoord2fv(v []float32) {
	c.enter("glTexCoord2fv", floats(v))
	c.downstream.TexCoord2fv(v)
	c.leave()
}

func (c *Context) EdgeFlag(flag bool) {
	c.enter("glEdgeFlag", boolean(flag))
	c.downstream.EdgeFlag(flag)
	c.leave()
}

func (c *Context) Rectf(x1, y1, x2, y2 float32) {
	c.enter("glRectf", f32(x1), f32(y1), f32(x2), f32(y2))
	c.downstream.Rectf(x1, y1, x2, y2)
	c.leave()
}

func (c *Context) RasterPos2f(x, y float32) {
	c.enter("glRasterPos2f", f32(x), f32(y))
	c.downstream.RasterPos2f(x, y)
	c.leave()
}

func (c *Context) NewList(list uint32, mode glapi.Enum) {
	c.enter("glNewList", u32(list), enum(mode))
	c.downstream.NewList(list, mode)
	c.leave()
	c.indent += 2
}

func (c *Context) EndList() {
	c.indent -= 2
	c.enter("glEndList")
	c.downstream.EndList()
	c.leave()
}

func (c *Context) CallList(list uint32) {
	c.enter("glCallList", u32(list))
	c.downstream.CallList(list)
	c.leave()
}

func (c *Context) CallLists(lists []uint32) {
	c.enter("glCallLists", uints(lists))
	c.downstream.CallLists(lists)
	c.leave()
}

func (c *Context) ListBase(base uint32) {
	c.enter("glListBase", u32(base))
	c.downstream.ListBase(base)
	c.leave()
}

func (c *Context) GenLists(xrange int32) uint32 {
	c.enter("glGenLists", i32(xrange))
	r := c.downstream.GenLists(xrange)
	c.leaveWith(u32(r))
	return r
}

func (c *Context) DeleteLists(list uint32, xrange int32) {
	c.enter("glDeleteLists", u32(list), i32(xrange))
	c.downstream.DeleteLists(list, xrange)
	c.leave()
}

func (c *Context) IsList(list uint32) bool {
	c.enter("glIsList", u32(list))
	r := c.downstream.IsList(list)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) MatrixMode(mode glapi.Enum) {
	c.enter("glMatrixMode", enum(mode))
	c.downstream.MatrixMode(mode)
	c.leave()
}

func (c *Context) LoadIdentity() {
	c.enter("glLoadIdentity")
	c.downstream.LoadIdentity()
	c.leave()
}

func (c *Context) LoadMatrixf(m []float32) {
	c.enter("glLoadMatrixf", floats(m))
	c.downstream.LoadMatrixf(m)
	c.leave()
}

func (c *Context) LoadMatrixd(m []float64) {
	c.enter("glLoadMatrixd", doubles(m))
	c.downstream.LoadMatrixd(m)
	c.leave()
}

func (c *Context) MultMatrixf(m []float32) {
	c.enter("glMultMatrixf", floats(m))
	c.downstream.MultMatrixf(m)
	c.leave()
}

func (c *Context) PushMatrix() {
	c.enter("glPushMatrix")
	c.downstream.PushMatrix()
	c.leave()
}

func (c *Context) PopMatrix() {
	c.enter("glPopMatrix")
	c.downstream.PopMatrix()
	c.leave()
}

func (c *Context) Translatef(x, y, z float32) {
	c.enter("glTranslatef", f32(x), f32(y), f32(z))
	c.downstream.Translatef(x, y, z)
	c.leave()
}

func (c *Context) Translated(x, y, z float64) {
	c.enter("glTranslated", f64(x), f64(y), f64(z))
	c.downstream.Translated(x, y, z)
	c.leave()
}

func (c *Context) Rotatef(angle, x, y, z float32) {
	c.enter("glRotatef", f32(angle), f32(x), f32(y), f32(z))
	c.downstream.Rotatef(angle, x, y, z)
	c.leave()
}

func (c *Context) Rotated(angle, x, y, z float64) {
	c.enter("glRotated", f64(angle), f64(x), f64(y), f64(z))
	c.downstream.Rotated(angle, x, y, z)
	c.leave()
}

func (c *Context) Scalef(x, y, z float32) {
	c.enter("glScalef", f32(x), f32(y), f32(z))
	c.downstream.Scalef(x, y, z)
	c.leave()
}

func (c *Context) Scaled(x, y, z float64) {
	c.enter("glScaled", f64(x), f64(y), f64(z))
	c.downstream.Scaled(x, y, z)
	c.leave()
}

func (c *Context) Ortho(left, right, bottom, top, zNear, zFar float64) {
	c.enter("glOrtho", f64(left), f64(right), f64(bottom), f64(top), f64(zNear), f64(zFar))
	c.downstream.Ortho(left, right, bottom, top, zNear, zFar)
	c.leave()
}

func (c *Context) Frustum(left, right, bottom, top, zNear, zFar float64) {
	c.enter("glFrustum", f64(left), f64(right), f64(bottom), f64(top), f64(zNear), f64(zFar))
	c.downstream.Frustum(left, right, bottom, top, zNear, zFar)
	c.leave()
}

func (c *Context) ShadeModel(mode glapi.Enum) {
	c.enter("glShadeModel", enum(mode))
	c.downstream.ShadeModel(mode)
	c.leave()
}

func (c *Context) Lightf(light, pname glapi.Enum, param float32) {
	c.enter("glLightf", enum(light), enum(pname), f32(param))
	c.downstream.Lightf(light, pname, param)
	c.leave()
}

func (c *Context) Lightfv(light, pname glapi.Enum, params []float32) {
	c.enter("glLightfv", enum(light), enum(pname), floats(params))
	c.downstream.Lightfv(light, pname, params)
	c.leave()
}

func (c *Context) LightModeli(pname glapi.Enum, param int32) {
	c.enter("glLightModeli", enum(pname), i32(param))
	c.downstream.LightModeli(pname, param)
	c.leave()
}

func (c *Context) LightModelfv(pname glapi.Enum, params []float32) {
	c.enter("glLightModelfv", enum(pname), floats(params))
	c.downstream.LightModelfv(pname, params)
	c.leave()
}

func (c *Context) Materialf(face, pname glapi.Enum, param float32) {
	c.enter("glMaterialf", enum(face), enum(pname), f32(param))
	c.downstream.Materialf(face, pname, param)
	c.leave()
}

func (c *Context) Materialfv(face, pname glapi.Enum, params []float32) {
	c.enter("glMaterialfv", enum(face), enum(pname), floats(params))
	c.downstream.Materialfv(face, pname, params)
	c.leave()
}

func (c *Context) ColorMaterial(face, mode glapi.Enum) {
	c.enter("glColorMaterial", enum(face), enum(mode))
	c.downstream.ColorMaterial(face, mode)
	c.leave()
}

func (c *Context) Fogf(pname glapi.Enum, param float32) {
	c.enter("glFogf", enum(pname), f32(param))
	c.downstream.Fogf(pname, param)
	c.leave()
}

func (c *Context) Fogfv(pname glapi.Enum, params []float32) {
	c.enter("glFogfv", enum(pname), floats(params))
	c.downstream.Fogfv(pname, params)
	c.leave()
}

func (c *Context) TexEnvi(target, pname glapi.Enum, param int32) {
	c.enter("glTexEnvi", enum(target), enum(pname), i32(param))
	c.downstream.TexEnvi(target, pname, param)
	c.leave()
}

func (c *Context) TexGeni(coord, pname glapi.Enum, param int32) {
	c.enter("glTexGeni", enum(coord), enum(pname), i32(param))
	c.downstream.TexGeni(coord, pname, param)
	c.leave()
}

func (c *Context) ClipPlane(plane glapi.Enum, equation []float64) {
	c.enter("glClipPlane", enum(plane), doubles(equation))
	c.downstream.ClipPlane(plane, equation)
	c.leave()
}

func (c *Context) PushAttrib(mask glapi.Bitfield) {
	c.enter("glPushAttrib", bitfield(mask))
	c.downstream.PushAttrib(mask)
	c.leave()
}

func (c *Context) PopAttrib() {
	c.enter("glPopAttrib")
	c.downstream.PopAttrib()
	c.leave()
}

func (c *Context) PushClientAttrib(mask glapi.Bitfield) {
	c.enter("glPushClientAttrib", bitfield(mask))
	c.downstream.PushClientAttrib(mask)
	c.leave()
}

func (c *Context) PopClientAttrib() {
	c.enter("glPopClientAttrib")
	c.downstream.PopClientAttrib()
	c.leave()
}

func (c *Context) EnableClientState(array glapi.Enum) {
	c.enter("glEnableClientState", enum(array))
	c.downstream.EnableClientState(array)
	c.leave()
}

func (c *Context) DisableClientState(array glapi.Enum) {
	c.enter("glDisableClientState", enum(array))
	c.downstream.DisableClientState(array)
	c.leave()
}

func (c *Context) VertexPointer(size int32, xtype glapi.Enum, stride int32, ptr unsafe.Pointer) {
	c.enter("glVertexPointer", i32(size), enum(xtype), i32(stride), pointer(ptr))
	c.downstream.VertexPointer(size, xtype, stride, ptr)
	c.leave()
}

func (c *Context) ColorPointer(size int32, xtype glapi.Enum, stride int32, ptr unsafe.Pointer) {
	c.enter("glColorPointer", i32(size), enum(xtype), i32(stride), pointer(ptr))
	c.downstream.ColorPointer(size, xtype, stride, ptr)
	c.leave()
}

func (c *Context) NormalPointer(xtype glapi.Enum, stride int32, ptr unsafe.Pointer) {
	c.enter("glNormalPointer", enum(xtype), i32(stride), pointer(ptr))
	c.downstream.NormalPointer(xtype, stride, ptr)
	c.leave()
}

func (c *Context) TexCoordPointer(size int32, xtype glapi.Enum, stride int32, ptr unsafe.Pointer) {
	c.enter("glTexCoordPointer", i32(size), enum(xtype), i32(stride), pointer(ptr))
	c.downstream.TexCoordPointer(size, xtype, stride, ptr)
	c.leave()
}

func (c *Context) Enable(xcap glapi.Enum) {
	c.enter("glEnable", enum(xcap))
	c.downstream.Enable(xcap)
	c.leave()
}

func (c *Context) Disable(xcap glapi.Enum) {
	c.enter("glDisable", enum(xcap))
	c.downstream.Disable(xcap)
	c.leave()
}

func (c *Context) IsEnabled(xcap glapi.Enum) bool {
	c.enter("glIsEnabled", enum(xcap))
	r := c.downstream.IsEnabled(xcap)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) Hint(target, mode glapi.Enum) {
	c.enter("glHint", enum(target), enum(mode))
	c.downstream.Hint(target, mode)
	c.leave()
}

func (c *Context) GetError() glapi.Enum {
	c.enter("glGetError")
	r := c.downstream.GetError()
	c.leaveWith(enum(r))
	return r
}

func (c *Context) GetString(name glapi.Enum) string {
	c.enter("glGetString", enum(name))
	r := c.downstream.GetString(name)
	c.leaveWith(str(r))
	return r
}

func (c *Context) GetStringi(name glapi.Enum, index uint32) string {
	c.enter("glGetStringi", enum(name), u32(index))
	r := c.downstream.GetStringi(name, index)
	c.leaveWith(str(r))
	return r
}

func (c *Context) GetIntegerv(pname glapi.Enum, data []int32) {
	c.enter("glGetIntegerv", enum(pname), ints(data))
	c.downstream.GetIntegerv(pname, data)
	c.leave()
}

func (c *Context) GetFloatv(pname glapi.Enum, data []float32) {
	c.enter("glGetFloatv", enum(pname), floats(data))
	c.downstream.GetFloatv(pname, data)
	c.leave()
}

func (c *Context) GetBooleanv(pname glapi.Enum, data []bool) {
	c.enter("glGetBooleanv", enum(pname), booleans(data))
	c.downstream.GetBooleanv(pname, data)
	c.leave()
}

func (c *Context) Flush() {
	c.enter("glFlush")
	c.downstream.Flush()
	c.leave()
}

func (c *Context) Finish() {
	c.enter("glFinish")
	c.downstream.Finish()
	c.leave()
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.enter("glViewport", i32(x), i32(y), i32(width), i32(height))
	c.downstream.Viewport(x, y, width, height)
	c.leave()
}

func (c *Context) Scissor(x, y, width, height int32) {
	c.enter("glScissor", i32(x), i32(y), i32(width), i32(height))
	c.downstream.Scissor(x, y, width, height)
	c.leave()
}

func (c *Context) Clear(mask glapi.Bitfield) {
	c.enter("glClear", bitfield(mask))
	c.downstream.Clear(mask)
	c.leave()
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.enter("glClearColor", f32(red), f32(green), f32(blue), f32(alpha))
	c.downstream.ClearColor(red, green, blue, alpha)
	c.leave()
}

func (c *Context) ClearDepth(depth float64) {
	c.enter("glClearDepth", f64(depth))
	c.downstream.ClearDepth(depth)
	c.leave()
}

func (c *Context) ClearStencil(s int32) {
	c.enter("glClearStencil", i32(s))
	c.downstream.ClearStencil(s)
	c.leave()
}

func (c *Context) ColorMask(red, green, blue, alpha bool) {
	c.enter("glColorMask", boolean(red), boolean(green), boolean(blue), boolean(alpha))
	c.downstream.ColorMask(red, green, blue, alpha)
	c.leave()
}

func (c *Context) DepthMask(flag bool) {
	c.enter("glDepthMask", boolean(flag))
	c.downstream.DepthMask(flag)
	c.leave()
}

func (c *Context) DepthFunc(xfunc glapi.Enum) {
	c.enter("glDepthFunc", enum(xfunc))
	c.downstream.DepthFunc(xfunc)
	c.leave()
}

func (c *Context) DepthRange(n, f float64) {
	c.enter("glDepthRange", f64(n), f64(f))
	c.downstream.DepthRange(n, f)
	c.leave()
}

func (c *Context) BlendFunc(sfactor, dfactor glapi.Enum) {
	c.enter("glBlendFunc", enum(sfactor), enum(dfactor))
	c.downstream.BlendFunc(sfactor, dfactor)
	c.leave()
}

func (c *Context) BlendFuncSeparate(sfactorRGB, dfactorRGB, sfactorAlpha, dfactorAlpha glapi.Enum) {
	c.enter("glBlendFuncSeparate", enum(sfactorRGB), enum(dfactorRGB), enum(sfactorAlpha), enum(dfactorAlpha))
	c.downstream.BlendFuncSeparate(sfactorRGB, dfactorRGB, sfactorAlpha, dfactorAlpha)
	c.leave()
}

func (c *Context) BlendEquation(mode glapi.Enum) {
	c.enter("glBlendEquation", enum(mode))
	c.downstream.BlendEquation(mode)
	c.leave()
}

func (c *Context) BlendColor(red, green, blue, alpha float32) {
	c.enter("glBlendColor", f32(red), f32(green), f32(blue), f32(alpha))
	c.downstream.BlendColor(red, green, blue, alpha)
	c.leave()
}

func (c *Context) CullFace(mode glapi.Enum) {
	c.enter("glCullFace", enum(mode))
	c.downstream.CullFace(mode)
	c.leave()
}

func (c *Context) FrontFace(mode glapi.Enum) {
	c.enter("glFrontFace", enum(mode))
	c.downstream.FrontFace(mode)
	c.leave()
}

func (c *Context) PolygonMode(face, mode glapi.Enum) {
	c.enter("glPolygonMode", enum(face), enum(mode))
	c.downstream.PolygonMode(face, mode)
	c.leave()
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.enter("glPolygonOffset", f32(factor), f32(units))
	c.downstream.PolygonOffset(factor, units)
	c.leave()
}

func (c *Context) PointSize(size float32) {
	c.enter("glPointSize", f32(size))
	c.downstream.PointSize(size)
	c.leave()
}

func (c *Context) LineWidth(width float32) {
	c.enter("glLineWidth", f32(width))
	c.downstream.LineWidth(width)
	c.leave()
}

func (c *Context) LogicOp(opcode glapi.Enum) {
	c.enter("glLogicOp", enum(opcode))
	c.downstream.LogicOp(opcode)
	c.leave()
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	c.enter("glSampleCoverage", f32(value), boolean(invert))
	c.downstream.SampleCoverage(value, invert)
	c.leave()
}

func (c *Context) StencilFunc(xfunc glapi.Enum, ref int32, mask glapi.Bitfield) {
	c.enter("glStencilFunc", enum(xfunc), i32(ref), bitfield(mask))
	c.downstream.StencilFunc(xfunc, ref, mask)
	c.leave()
}

func (c *Context) StencilOp(fail, zfail, zpass glapi.Enum) {
	c.enter("glStencilOp", enum(fail), enum(zfail), enum(zpass))
	c.downstream.StencilOp(fail, zfail, zpass)
	c.leave()
}

func (c *Context) StencilMask(mask glapi.Bitfield) {
	c.enter("glStencilMask", bitfield(mask))
	c.downstream.StencilMask(mask)
	c.leave()
}

func (c *Context) PixelStorei(pname glapi.Enum, param int32) {
	c.enter("glPixelStorei", enum(pname), i32(param))
	c.downstream.PixelStorei(pname, param)
	c.leave()
}

func (c *Context) ReadBuffer(src glapi.Enum) {
	c.enter("glReadBuffer", enum(src))
	c.downstream.ReadBuffer(src)
	c.leave()
}

func (c *Context) DrawBuffer(buf glapi.Enum) {
	c.enter("glDrawBuffer", enum(buf))
	c.downstream.DrawBuffer(buf)
	c.leave()
}

func (c *Context) DrawBuffers(bufs []glapi.Enum) {
	c.enter("glDrawBuffers", enums(bufs))
	c.downstream.DrawBuffers(bufs)
	c.leave()
}

func (c *Context) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	c.enter("glReadPixels", i32(x), i32(y), i32(width), i32(height), enum(format), enum(xtype), pointer(pixels))
	c.downstream.ReadPixels(x, y, width, height, format, xtype, pixels)
	c.leave()
}

func (c *Context) GenBuffers(buffers []uint32) {
	c.enter("glGenBuffers", uints(buffers))
	c.downstream.GenBuffers(buffers)
	c.leave()
}

func (c *Context) DeleteBuffers(buffers []uint32) {
	c.enter("glDeleteBuffers", uints(buffers))
	c.downstream.DeleteBuffers(buffers)
	c.leave()
}

func (c *Context) BindBuffer(target glapi.Enum, buffer uint32) {
	c.enter("glBindBuffer", enum(target), u32(buffer))
	c.downstream.BindBuffer(target, buffer)
	c.leave()
}

func (c *Context) BindBufferBase(target glapi.Enum, index, buffer uint32) {
	c.enter("glBindBufferBase", enum(target), u32(index), u32(buffer))
	c.downstream.BindBufferBase(target, index, buffer)
	c.leave()
}

func (c *Context) IsBuffer(buffer uint32) bool {
	c.enter("glIsBuffer", u32(buffer))
	r := c.downstream.IsBuffer(buffer)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) BufferData(target glapi.Enum, size int, data unsafe.Pointer, usage glapi.Enum) {
	c.enter("glBufferData", enum(target), long(size), pointer(data), enum(usage))
	c.downstream.BufferData(target, size, data, usage)
	c.leave()
}

func (c *Context) BufferSubData(target glapi.Enum, offset, size int, data unsafe.Pointer) {
	c.enter("glBufferSubData", enum(target), long(offset), long(size), pointer(data))
	c.downstream.BufferSubData(target, offset, size, data)
	c.leave()
}

func (c *Context) GetBufferSubData(target glapi.Enum, offset, size int, data unsafe.Pointer) {
	c.enter("glGetBufferSubData", enum(target), long(offset), long(size), pointer(data))
	c.downstream.GetBufferSubData(target, offset, size, data)
	c.leave()
}

func (c *Context) MapBuffer(target, access glapi.Enum) unsafe.Pointer {
	c.enter("glMapBuffer", enum(target), enum(access))
	r := c.downstream.MapBuffer(target, access)
	c.leaveWith(pointer(r))
	return r
}

func (c *Context) UnmapBuffer(target glapi.Enum) bool {
	c.enter("glUnmapBuffer", enum(target))
	r := c.downstream.UnmapBuffer(target)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) GenVertexArrays(arrays []uint32) {
	c.enter("glGenVertexArrays", uints(arrays))
	c.downstream.GenVertexArrays(arrays)
	c.leave()
}

func (c *Context) DeleteVertexArrays(arrays []uint32) {
	c.enter("glDeleteVertexArrays", uints(arrays))
	c.downstream.DeleteVertexArrays(arrays)
	c.leave()
}

func (c *Context) BindVertexArray(array uint32) {
	c.enter("glBindVertexArray", u32(array))
	c.downstream.BindVertexArray(array)
	c.leave()
}

func (c *Context) IsVertexArray(array uint32) bool {
	c.enter("glIsVertexArray", u32(array))
	r := c.downstream.IsVertexArray(array)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.enter("glEnableVertexAttribArray", u32(index))
	c.downstream.EnableVertexAttribArray(index)
	c.leave()
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.enter("glDisableVertexAttribArray", u32(index))
	c.downstream.DisableVertexAttribArray(index)
	c.leave()
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype glapi.Enum, normalized bool, stride int32, off uintptr) {
	c.enter("glVertexAttribPointer", u32(index), i32(size), enum(xtype), boolean(normalized), i32(stride), offset(off))
	c.downstream.VertexAttribPointer(index, size, xtype, normalized, stride, off)
	c.leave()
}

func (c *Context) VertexAttribIPointer(index uint32, size int32, xtype glapi.Enum, stride int32, off uintptr) {
	c.enter("glVertexAttribIPointer", u32(index), i32(size), enum(xtype), i32(stride), offset(off))
	c.downstream.VertexAttribIPointer(index, size, xtype, stride, off)
	c.leave()
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	c.enter("glVertexAttribDivisor", u32(index), u32(divisor))
	c.downstream.VertexAttribDivisor(index, divisor)
	c.leave()
}

func (c *Context) VertexAttrib4f(index uint32, x, y, z, w float32) {
	c.enter("glVertexAttrib4f", u32(index), f32(x), f32(y), f32(z), f32(w))
	c.downstream.VertexAttrib4f(index, x, y, z, w)
	c.leave()
}

func (c *Context) DrawArrays(mode glapi.Enum, first, count int32) {
	c.enter("glDrawArrays", enum(mode), i32(first), i32(count))
	c.downstream.DrawArrays(mode, first, count)
	c.leave()
}

func (c *Context) DrawArraysInstanced(mode glapi.Enum, first, count, instancecount int32) {
	c.enter("glDrawArraysInstanced", enum(mode), i32(first), i32(count), i32(instancecount))
	c.downstream.DrawArraysInstanced(mode, first, count, instancecount)
	c.leave()
}

func (c *Context) DrawElements(mode glapi.Enum, count int32, xtype glapi.Enum, off uintptr) {
	c.enter("glDrawElements", enum(mode), i32(count), enum(xtype), offset(off))
	c.downstream.DrawElements(mode, count, xtype, off)
	c.leave()
}

func (c *Context) DrawElementsInstanced(mode glapi.Enum, count int32, xtype glapi.Enum, off uintptr, instancecount int32) {
	c.enter("glDrawElementsInstanced", enum(mode), i32(count), enum(xtype), offset(off), i32(instancecount))
	c.downstream.DrawElementsInstanced(mode, count, xtype, off, instancecount)
	c.leave()
}

func (c *Context) DrawRangeElements(mode glapi.Enum, start, end uint32, count int32, xtype glapi.Enum, off uintptr) {
	c.enter("glDrawRangeElements", enum(mode), u32(start), u32(end), i32(count), enum(xtype), offset(off))
	c.downstream.DrawRangeElements(mode, start, end, count, xtype, off)
	c.leave()
}

func (c *Context) PrimitiveRestartIndex(index uint32) {
	c.enter("glPrimitiveRestartIndex", u32(index))
	c.downstream.PrimitiveRestartIndex(index)
	c.leave()
}

func (c *Context) GenTextures(textures []uint32) {
	c.enter("glGenTextures", uints(textures))
	c.downstream.GenTextures(textures)
	c.leave()
}

func (c *Context) DeleteTextures(textures []uint32) {
	c.enter("glDeleteTextures", uints(textures))
	c.downstream.DeleteTextures(textures)
	c.leave()
}

func (c *Context) BindTexture(target glapi.Enum, texture uint32) {
	c.enter("glBindTexture", enum(target), u32(texture))
	c.downstream.BindTexture(target, texture)
	c.leave()
}

func (c *Context) IsTexture(texture uint32) bool {
	c.enter("glIsTexture", u32(texture))
	r := c.downstream.IsTexture(texture)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) ActiveTexture(texture glapi.Enum) {
	c.enter("glActiveTexture", enum(texture))
	c.downstream.ActiveTexture(texture)
	c.leave()
}

func (c *Context) TexImage2D(target glapi.Enum, level, internalformat, width, height, border int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	c.enter("glTexImage2D", enum(target), i32(level), i32(internalformat), i32(width), i32(height), i32(border), enum(format), enum(xtype), pointer(pixels))
	c.downstream.TexImage2D(target, level, internalformat, width, height, border, format, xtype, pixels)
	c.leave()
}

func (c *Context) TexSubImage2D(target glapi.Enum, level, xoffset, yoffset, width, height int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	c.enter("glTexSubImage2D", enum(target), i32(level), i32(xoffset), i32(yoffset), i32(width), i32(height), enum(format), enum(xtype), pointer(pixels))
	c.downstream.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, xtype, pixels)
	c.leave()
}

func (c *Context) CopyTexSubImage2D(target glapi.Enum, level, xoffset, yoffset, x, y, width, height int32) {
	c.enter("glCopyTexSubImage2D", enum(target), i32(level), i32(xoffset), i32(yoffset), i32(x), i32(y), i32(width), i32(height))
	c.downstream.CopyTexSubImage2D(target, level, xoffset, yoffset, x, y, width, height)
	c.leave()
}

func (c *Context) GetTexImage(target glapi.Enum, level int32, format, xtype glapi.Enum, pixels unsafe.Pointer) {
	c.enter("glGetTexImage", enum(target), i32(level), enum(format), enum(xtype), pointer(pixels))
	c.downstream.GetTexImage(target, level, format, xtype, pixels)
	c.leave()
}

func (c *Context) TexParameteri(target, pname glapi.Enum, param int32) {
	c.enter("glTexParameteri", enum(target), enum(pname), i32(param))
	c.downstream.TexParameteri(target, pname, param)
	c.leave()
}

func (c *Context) TexParameterf(target, pname glapi.Enum, param float32) {
	c.enter("glTexParameterf", enum(target), enum(pname), f32(param))
	c.downstream.TexParameterf(target, pname, param)
	c.leave()
}

func (c *Context) GetTexParameteriv(target, pname glapi.Enum, params []int32) {
	c.enter("glGetTexParameteriv", enum(target), enum(pname), ints(params))
	c.downstream.GetTexParameteriv(target, pname, params)
	c.leave()
}

func (c *Context) GenerateMipmap(target glapi.Enum) {
	c.enter("glGenerateMipmap", enum(target))
	c.downstream.GenerateMipmap(target)
	c.leave()
}

func (c *Context) GenSamplers(samplers []uint32) {
	c.enter("glGenSamplers", uints(samplers))
	c.downstream.GenSamplers(samplers)
	c.leave()
}

func (c *Context) DeleteSamplers(samplers []uint32) {
	c.enter("glDeleteSamplers", uints(samplers))
	c.downstream.DeleteSamplers(samplers)
	c.leave()
}

func (c *Context) BindSampler(unit, sampler uint32) {
	c.enter("glBindSampler", u32(unit), u32(sampler))
	c.downstream.BindSampler(unit, sampler)
	c.leave()
}

func (c *Context) SamplerParameteri(sampler uint32, pname glapi.Enum, param int32) {
	c.enter("glSamplerParameteri", u32(sampler), enum(pname), i32(param))
	c.downstream.SamplerParameteri(sampler, pname, param)
	c.leave()
}

func (c *Context) GenFramebuffers(framebuffers []uint32) {
	c.enter("glGenFramebuffers", uints(framebuffers))
	c.downstream.GenFramebuffers(framebuffers)
	c.leave()
}

func (c *Context) DeleteFramebuffers(framebuffers []uint32) {
	c.enter("glDeleteFramebuffers", uints(framebuffers))
	c.downstream.DeleteFramebuffers(framebuffers)
	c.leave()
}

func (c *Context) BindFramebuffer(target glapi.Enum, framebuffer uint32) {
	c.enter("glBindFramebuffer", enum(target), u32(framebuffer))
	c.downstream.BindFramebuffer(target, framebuffer)
	c.leave()
}

func (c *Context) IsFramebuffer(framebuffer uint32) bool {
	c.enter("glIsFramebuffer", u32(framebuffer))
	r := c.downstream.IsFramebuffer(framebuffer)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	c.enter("glCheckFramebufferStatus", enum(target))
	r := c.downstream.CheckFramebufferStatus(target)
	c.leaveWith(enum(r))
	return r
}

func (c *Context) FramebufferTexture2D(target, attachment, textarget glapi.Enum, texture uint32, level int32) {
	c.enter("glFramebufferTexture2D", enum(target), enum(attachment), enum(textarget), u32(texture), i32(level))
	c.downstream.FramebufferTexture2D(target, attachment, textarget, texture, level)
	c.leave()
}

func (c *Context) FramebufferRenderbuffer(target, attachment, renderbuffertarget glapi.Enum, renderbuffer uint32) {
	c.enter("glFramebufferRenderbuffer", enum(target), enum(attachment), enum(renderbuffertarget), u32(renderbuffer))
	c.downstream.FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer)
	c.leave()
}

func (c *Context) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask glapi.Bitfield, filter glapi.Enum) {
	c.enter("glBlitFramebuffer", i32(srcX0), i32(srcY0), i32(srcX1), i32(srcY1), i32(dstX0), i32(dstY0), i32(dstX1), i32(dstY1), bitfield(mask), enum(filter))
	c.downstream.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
	c.leave()
}

func (c *Context) GenRenderbuffers(renderbuffers []uint32) {
	c.enter("glGenRenderbuffers", uints(renderbuffers))
	c.downstream.GenRenderbuffers(renderbuffers)
	c.leave()
}

func (c *Context) DeleteRenderbuffers(renderbuffers []uint32) {
	c.enter("glDeleteRenderbuffers", uints(renderbuffers))
	c.downstream.DeleteRenderbuffers(renderbuffers)
	c.leave()
}

func (c *Context) BindRenderbuffer(target glapi.Enum, renderbuffer uint32) {
	c.enter("glBindRenderbuffer", enum(target), u32(renderbuffer))
	c.downstream.BindRenderbuffer(target, renderbuffer)
	c.leave()
}

func (c *Context) IsRenderbuffer(renderbuffer uint32) bool {
	c.enter("glIsRenderbuffer", u32(renderbuffer))
	r := c.downstream.IsRenderbuffer(renderbuffer)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) RenderbufferStorage(target, internalformat glapi.Enum, width, height int32) {
	c.enter("glRenderbufferStorage", enum(target), enum(internalformat), i32(width), i32(height))
	c.downstream.RenderbufferStorage(target, internalformat, width, height)
	c.leave()
}

func (c *Context) RenderbufferStorageMultisample(target glapi.Enum, samples int32, internalformat glapi.Enum, width, height int32) {
	c.enter("glRenderbufferStorageMultisample", enum(target), i32(samples), enum(internalformat), i32(width), i32(height))
	c.downstream.RenderbufferStorageMultisample(target, samples, internalformat, width, height)
	c.leave()
}

func (c *Context) CreateShader(xtype glapi.Enum) uint32 {
	c.enter("glCreateShader", enum(xtype))
	r := c.downstream.CreateShader(xtype)
	c.leaveWith(u32(r))
	return r
}

func (c *Context) DeleteShader(shader uint32) {
	c.enter("glDeleteShader", u32(shader))
	c.downstream.DeleteShader(shader)
	c.leave()
}

func (c *Context) IsShader(shader uint32) bool {
	c.enter("glIsShader", u32(shader))
	r := c.downstream.IsShader(shader)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.enter("glShaderSource", u32(shader), str(source))
	c.downstream.ShaderSource(shader, source)
	c.leave()
}

func (c *Context) CompileShader(shader uint32) {
	c.enter("glCompileShader", u32(shader))
	c.downstream.CompileShader(shader)
	c.leave()
}

func (c *Context) GetShaderiv(shader uint32, pname glapi.Enum, params []int32) {
	c.enter("glGetShaderiv", u32(shader), enum(pname), ints(params))
	c.downstream.GetShaderiv(shader, pname, params)
	c.leave()
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	c.enter("glGetShaderInfoLog", u32(shader))
	r := c.downstream.GetShaderInfoLog(shader)
	c.leaveWith(str(r))
	return r
}

func (c *Context) CreateProgram() uint32 {
	c.enter("glCreateProgram")
	r := c.downstream.CreateProgram()
	c.leaveWith(u32(r))
	return r
}

func (c *Context) DeleteProgram(program uint32) {
	c.enter("glDeleteProgram", u32(program))
	c.downstream.DeleteProgram(program)
	c.leave()
}

func (c *Context) IsProgram(program uint32) bool {
	c.enter("glIsProgram", u32(program))
	r := c.downstream.IsProgram(program)
	c.leaveWith(boolean(r))
	return r
}

func (c *Context) AttachShader(program, shader uint32) {
	c.enter("glAttachShader", u32(program), u32(shader))
	c.downstream.AttachShader(program, shader)
	c.leave()
}

func (c *Context) DetachShader(program, shader uint32) {
	c.enter("glDetachShader", u32(program), u32(shader))
	c.downstream.DetachShader(program, shader)
	c.leave()
}

func (c *Context) LinkProgram(program uint32) {
	c.enter("glLinkProgram", u32(program))
	c.downstream.LinkProgram(program)
	c.leave()
}

func (c *Context) ValidateProgram(program uint32) {
	c.enter("glValidateProgram", u32(program))
	c.downstream.ValidateProgram(program)
	c.leave()
}

func (c *Context) UseProgram(program uint32) {
	c.enter("glUseProgram", u32(program))
	c.downstream.UseProgram(program)
	c.leave()
}

func (c *Context) GetProgramiv(program uint32, pname glapi.Enum, params []int32) {
	c.enter("glGetProgramiv", u32(program), enum(pname), ints(params))
	c.downstream.GetProgramiv(program, pname, params)
	c.leave()
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	c.enter("glGetProgramInfoLog", u32(program))
	r := c.downstream.GetProgramInfoLog(program)
	c.leaveWith(str(r))
	return r
}

func (c *Context) BindAttribLocation(program, index uint32, name string) {
	c.enter("glBindAttribLocation", u32(program), u32(index), str(name))
	c.downstream.BindAttribLocation(program, index, name)
	c.leave()
}

func (c *Context) BindFragDataLocation(program, color uint32, name string) {
	c.enter("glBindFragDataLocation", u32(program), u32(color), str(name))
	c.downstream.BindFragDataLocation(program, color, name)
	c.leave()
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	c.enter("glGetAttribLocation", u32(program), str(name))
	r := c.downstream.GetAttribLocation(program, name)
	c.leaveWith(i32(r))
	return r
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.enter("glGetUniformLocation", u32(program), str(name))
	r := c.downstream.GetUniformLocation(program, name)
	c.leaveWith(i32(r))
	return r
}

func (c *Context) GetActiveAttrib(program, index uint32) glapi.ActiveInfo {
	c.enter("glGetActiveAttrib", u32(program), u32(index))
	r := c.downstream.GetActiveAttrib(program, index)
	c.leaveWith(activeInfo(r))
	return r
}

func (c *Context) GetActiveUniform(program, index uint32) glapi.ActiveInfo {
	c.enter("glGetActiveUniform", u32(program), u32(index))
	r := c.downstream.GetActiveUniform(program, index)
	c.leaveWith(activeInfo(r))
	return r
}

func (c *Context) Uniform1i(location, v0 int32) {
	c.enter("glUniform1i", i32(location), i32(v0))
	c.downstream.Uniform1i(location, v0)
	c.leave()
}

func (c *Context) Uniform2i(location, v0, v1 int32) {
	c.enter("glUniform2i", i32(location), i32(v0), i32(v1))
	c.downstream.Uniform2i(location, v0, v1)
	c.leave()
}

func (c *Context) Uniform3i(location, v0, v1, v2 int32) {
	c.enter("glUniform3i", i32(location), i32(v0), i32(v1), i32(v2))
	c.downstream.Uniform3i(location, v0, v1, v2)
	c.leave()
}

func (c *Context) Uniform4i(location, v0, v1, v2, v3 int32) {
	c.enter("glUniform4i", i32(location), i32(v0), i32(v1), i32(v2), i32(v3))
	c.downstream.Uniform4i(location, v0, v1, v2, v3)
	c.leave()
}

func (c *Context) Uniform1ui(location int32, v0 uint32) {
	c.enter("glUniform1ui", i32(location), u32(v0))
	c.downstream.Uniform1ui(location, v0)
	c.leave()
}

func (c *Context) Uniform1f(location int32, v0 float32) {
	c.enter("glUniform1f", i32(location), f32(v0))
	c.downstream.Uniform1f(location, v0)
	c.leave()
}

func (c *Context) Uniform2f(location int32, v0, v1 float32) {
	c.enter("glUniform2f", i32(location), f32(v0), f32(v1))
	c.downstream.Uniform2f(location, v0, v1)
	c.leave()
}

func (c *Context) Uniform3f(location int32, v0, v1, v2 float32) {
	c.enter("glUniform3f", i32(location), f32(v0), f32(v1), f32(v2))
	c.downstream.Uniform3f(location, v0, v1, v2)
	c.leave()
}

func (c *Context) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	c.enter("glUniform4f", i32(location), f32(v0), f32(v1), f32(v2), f32(v3))
	c.downstream.Uniform4f(location, v0, v1, v2, v3)
	c.leave()
}

func (c *Context) Uniform1iv(location int32, value []int32) {
	c.enter("glUniform1iv", i32(location), ints(value))
	c.downstream.Uniform1iv(location, value)
	c.leave()
}

func (c *Context) Uniform1fv(location int32, value []float32) {
	c.enter("glUniform1fv", i32(location), floats(value))
	c.downstream.Uniform1fv(location, value)
	c.leave()
}

func (c *Context) Uniform2fv(location int32, value []float32) {
	c.enter("glUniform2fv", i32(location), floats(value))
	c.downstream.Uniform2fv(location, value)
	c.leave()
}

func (c *Context) Uniform3fv(location int32, value []float32) {
	c.enter("glUniform3fv", i32(location), floats(value))
	c.downstream.Uniform3fv(location, value)
	c.leave()
}

func (c *Context) Uniform4fv(location int32, value []float32) {
	c.enter("glUniform4fv", i32(location), floats(value))
	c.downstream.Uniform4fv(location, value)
	c.leave()
}

func (c *Context) UniformMatrix3fv(location int32, transpose bool, value []float32) {
	c.enter("glUniformMatrix3fv", i32(location), boolean(transpose), floats(value))
	c.downstream.UniformMatrix3fv(location, transpose, value)
	c.leave()
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	c.enter("glUniformMatrix4fv", i32(location), boolean(transpose), floats(value))
	c.downstream.UniformMatrix4fv(location, transpose, value)
	c.leave()
}

func (c *Context) GetUniformfv(program uint32, location int32, params []float32) {
	c.enter("glGetUniformfv", u32(program), i32(location), floats(params))
	c.downstream.GetUniformfv(program, location, params)
	c.leave()
}

func (c *Context) GenQueries(ids []uint32) {
	c.enter("glGenQueries", uints(ids))
	c.downstream.GenQueries(ids)
	c.leave()
}

func (c *Context) DeleteQueries(ids []uint32) {
	c.enter("glDeleteQueries", uints(ids))
	c.downstream.DeleteQueries(ids)
	c.leave()
}

func (c *Context) BeginQuery(target glapi.Enum, id uint32) {
	c.enter("glBeginQuery", enum(target), u32(id))
	c.downstream.BeginQuery(target, id)
	c.leave()
}

func (c *Context) EndQuery(target glapi.Enum) {
	c.enter("glEndQuery", enum(target))
	c.downstream.EndQuery(target)
	c.leave()
}

func (c *Context) QueryCounter(id uint32, target glapi.Enum) {
	c.enter("glQueryCounter", u32(id), enum(target))
	c.downstream.QueryCounter(id, target)
	c.leave()
}

func (c *Context) GetQueryObjectuiv(id uint32, pname glapi.Enum, params []uint32) {
	c.enter("glGetQueryObjectuiv", u32(id), enum(pname), uints(params))
	c.downstream.GetQueryObjectuiv(id, pname, params)
	c.leave()
}

func (c *Context) GetQueryObjectui64v(id uint32, pname glapi.Enum, params []uint64) {
	c.enter("glGetQueryObjectui64v", u32(id), enum(pname), ulongs(params))
	c.downstream.GetQueryObjectui64v(id, pname, params)
	c.leave()
}

func (c *Context) BeginConditionalRender(id uint32, mode glapi.Enum) {
	c.enter("glBeginConditionalRender", u32(id), enum(mode))
	c.downstream.BeginConditionalRender(id, mode)
	c.leave()
}

func (c *Context) EndConditionalRender() {
	c.enter("glEndConditionalRender")
	c.downstream.EndConditionalRender()
	c.leave()
}

func (c *Context) BeginTransformFeedback(primitiveMode glapi.Enum) {
	c.enter("glBeginTransformFeedback", enum(primitiveMode))
	c.downstream.BeginTransformFeedback(primitiveMode)
	c.leave()
}

func (c *Context) EndTransformFeedback() {
	c.enter("glEndTransformFeedback")
	c.downstream.EndTransformFeedback()
	c.leave()
}

func (c *Context) FenceSync(condition glapi.Enum, flags glapi.Bitfield) uintptr {
	c.enter("glFenceSync", enum(condition), bitfield(flags))
	r := c.downstream.FenceSync(condition, flags)
	c.leaveWith(offset(r))
	return r
}

func (c *Context) ClientWaitSync(sync uintptr, flags glapi.Bitfield, timeout uint64) glapi.Enum {
	c.enter("glClientWaitSync", offset(sync), bitfield(flags), ulong(timeout))
	r := c.downstream.ClientWaitSync(sync, flags, timeout)
	c.leaveWith(enum(r))
	return r
}

func (c *Context) DeleteSync(sync uintptr) {
	c.enter("glDeleteSync", offset(sync))
	c.downstream.DeleteSync(sync)
	c.leave()
}
