package shadertoy

import (
	"fmt"
	"image"
	"image/draw"
	"regexp"
	"unsafe"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/renderer"
)

var ichannelNumRe = regexp.MustCompile(`^iChannel(\d+)$`)

// imageTexture is a mapping of a static image texture.
type imageTexture struct {
	gl          glapi.GL
	uniformName string
	id          uint32
	unit        uint32
	rect        image.Rectangle
}

func newImageTexture(gl glapi.GL, img image.Image, uniformName string, unit uint32) *imageTexture {
	tex := &imageTexture{
		gl:          gl,
		uniformName: uniformName,
		unit:        unit,
		rect:        img.Bounds(),
	}
	var names [1]uint32
	gl.GenTextures(names[:])
	tex.id = names[0]
	gl.BindTexture(glapi.TEXTURE_2D, tex.id)

	rgbaImg, ok := img.(*image.RGBA)
	if !ok || rgbaImg.Bounds().Min != (image.Point{}) {
		rgbaImg = image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		draw.Draw(rgbaImg, rgbaImg.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	var pixels unsafe.Pointer
	if len(rgbaImg.Pix) > 0 {
		pixels = unsafe.Pointer(&rgbaImg.Pix[0])
	}
	gl.TexImage2D(
		glapi.TEXTURE_2D,
		0,
		int32(glapi.RGBA),
		int32(tex.rect.Dx()),
		int32(tex.rect.Dy()),
		0,
		glapi.RGBA,
		glapi.UNSIGNED_BYTE,
		pixels,
	)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_S, int32(glapi.REPEAT))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_T, int32(glapi.REPEAT))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MAG_FILTER, int32(glapi.NEAREST))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MIN_FILTER, int32(glapi.NEAREST))
	gl.BindTexture(glapi.TEXTURE_2D, 0)
	return tex
}

func (tex *imageTexture) PreRender(gl glapi.GL, state renderer.RenderState) {
	if loc, ok := state.Uniforms[tex.uniformName]; ok {
		gl.ActiveTexture(glapi.TEXTURE0 + glapi.Enum(tex.unit))
		gl.BindTexture(glapi.TEXTURE_2D, tex.id)
		gl.Uniform1i(loc.Location, int32(tex.unit))
	}
	if m := ichannelNumRe.FindStringSubmatch(tex.uniformName); m != nil {
		if loc, ok := state.Uniforms[fmt.Sprintf("iChannelResolution[%s]", m[1])]; ok {
			gl.Uniform3f(loc.Location, float32(tex.rect.Dx()), float32(tex.rect.Dy()), 1.0)
		}
	}
}

func (tex *imageTexture) Close() {
	tex.gl.DeleteTextures([]uint32{tex.id})
}

// backBuffer feeds the previous frame back into the shader.
type backBuffer struct {
	uniformName string
	unit        uint32
}

func (tex *backBuffer) PreRender(gl glapi.GL, state renderer.RenderState) {
	if loc, ok := state.Uniforms[tex.uniformName]; ok {
		gl.ActiveTexture(glapi.TEXTURE0 + glapi.Enum(tex.unit))
		gl.BindTexture(glapi.TEXTURE_2D, state.PreviousFrameTexID())
		gl.Uniform1i(loc.Location, int32(tex.unit))
	}
	if m := ichannelNumRe.FindStringSubmatch(tex.uniformName); m != nil {
		if loc, ok := state.Uniforms[fmt.Sprintf("iChannelResolution[%s]", m[1])]; ok {
			gl.Uniform3f(loc.Location, float32(state.CanvasWidth), float32(state.CanvasHeight), 1.0)
		}
	}
}

func (tex *backBuffer) Close() {}
