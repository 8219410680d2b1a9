package renderer

import (
	"context"
	"image"
	"image/color"
	"io"
	"time"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
)

// Shader renders an Environment offscreen. All OpenGL commands go through
// the glapi.GL it was created with, which must stay current on the calling
// thread for the lifetime of the Shader.
type Shader struct {
	w, h   uint
	gl     glapi.GL
	logger log.Logger

	vertLoc uint32
	vao     uint32
	vbo     uint32

	uniforms map[string]Uniform
	renderer renderer
	program  uint32

	env     Environment
	newEnvs chan Environment

	time  time.Duration
	frame uint64
}

func NewShader(gl glapi.GL, width, height uint, logger log.Logger) (*Shader, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	sh := &Shader{
		gl:       gl,
		logger:   logger,
		w:        width,
		h:        height,
		renderer: &pboRenderer{gl: gl, w: width, h: height},
		newEnvs:  make(chan Environment, 1),
	}

	// Set up the render targets.
	if err := sh.renderer.Setup(); err != nil {
		sh.renderer.Close()
		return nil, err
	}

	// Create the canvas.
	vertices := []float32{
		-1.0, -1.0, 0.0,
		1.0, -1.0, 0.0,
		-1.0, 1.0, 0.0,
		1.0, 1.0, 0.0,
	}
	var names [1]uint32
	gl.GenVertexArrays(names[:])
	sh.vao = names[0]
	gl.BindVertexArray(sh.vao)
	gl.GenBuffers(names[:])
	sh.vbo = names[0]
	gl.BindBuffer(glapi.ARRAY_BUFFER, sh.vbo)
	gl.BufferData(glapi.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), glapi.STATIC_DRAW)

	return sh, nil
}

// reloadEnvironment ensures that an environment is set and set up for
// rendering.
func (sh *Shader) reloadEnvironment(ctx context.Context) error {
	gl := sh.gl
	var env Environment
	if sh.env == nil {
		// If no environment is set, block until it is set or the context is
		// canceled.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env = <-sh.newEnvs:
		}
	} else {
		// If an environment is already set, check if a newer environment is
		// available or just exit.
		select {
		case env = <-sh.newEnvs:
		default:
			return nil
		}
	}

	// Close the old environment if there is one.
	if sh.env != nil {
		sh.env.Close()
		gl.DeleteProgram(sh.program)
		sh.program = 0
		sh.env = nil
	}
	if env == nil {
		return nil
	}

	sources, err := env.Sources()
	if err != nil {
		env.Close()
		return err
	}
	sh.program, err = linkProgram(gl, sources)
	if err != nil {
		env.Close()
		return err
	}
	gl.UseProgram(sh.program)
	sh.uniforms = ListUniforms(gl, sh.program)

	renderState := RenderState{
		Time:            sh.time,
		FramesProcessed: sh.frame,
		CanvasWidth:     sh.w,
		CanvasHeight:    sh.h,
		Uniforms:        sh.uniforms,
	}
	if err := env.Setup(gl, renderState); err != nil {
		env.Close()
		gl.DeleteProgram(sh.program)
		sh.program = 0
		return errors.Wrap(err, "error setting up environment")
	}

	sh.vertLoc = uint32(gl.GetAttribLocation(sh.program, "vert"))
	gl.EnableVertexAttribArray(sh.vertLoc)
	gl.VertexAttribPointer(sh.vertLoc, 3, glapi.FLOAT, false, 0, 0)

	sh.env = env
	return nil
}

// Reload switches to the environment most recently passed to SetEnvironment
// and compiles its program. It blocks until an environment is available when
// none has been set yet.
func (sh *Shader) Reload(ctx context.Context) error {
	return sh.reloadEnvironment(ctx)
}

func (sh *Shader) SetEnvironment(env Environment) {
	sh.newEnvs <- env
}

func (sh *Shader) drawGeometry() {
	// Assumes sh.vao is the current vertex array, sh.vbo is bound to
	// GL_ARRAY_BUFFER and sh.program is the current shader program.
	sh.gl.DrawArrays(glapi.TRIANGLE_STRIP, 0, 4)
}

// Image renders a single frame of the environment set by SetEnvironment.
func (sh *Shader) Image(ctx context.Context) (image.Image, error) {
	if err := sh.reloadEnvironment(ctx); err != nil {
		return nil, err
	}

	sh.env.PreRender(sh.gl, RenderState{
		Time:               0,
		CanvasWidth:        sh.w,
		CanvasHeight:       sh.h,
		Uniforms:           sh.uniforms,
		PreviousFrameTexID: func() uint32 { return 0 },
	})
	handle := sh.renderer.Draw(sh.drawGeometry)
	return &Flip{Image: sh.renderer.Image(handle)}, nil
}

func (sh *Shader) Animate(ctx context.Context, interval time.Duration, stream chan<- image.Image) {
	var prevImageHandle interface{}
	buffer := make(chan interface{}, sh.renderer.NumBuffers())
	for {
		err := sh.reloadEnvironment(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			level.Error(sh.logger).Log("msg", "error reloading environment", "err", err)
			continue
		}

		var prevTexID uint32
		getPrevTexID := func() uint32 { return 0 }
		if prevImageHandle != nil {
			getPrevTexID = func() uint32 {
				if prevTexID == 0 {
					prevTexID = sh.renderer.Texture(prevImageHandle)
				}
				return prevTexID
			}
		}
		sh.env.PreRender(sh.gl, RenderState{
			Time:               sh.time,
			Interval:           interval,
			FramesProcessed:    sh.frame,
			CanvasWidth:        sh.w,
			CanvasHeight:       sh.h,
			Uniforms:           sh.uniforms,
			PreviousFrameTexID: getPrevTexID,
		})
		sh.time += interval
		sh.frame++

		handle := sh.renderer.Draw(sh.drawGeometry)
		buffer <- handle
		prevImageHandle = handle

		if prevTexID != 0 {
			sh.renderer.FreeTexture(prevTexID)
		}
		if len(buffer) != cap(buffer) {
			// Give the first renders time to complete.
			continue
		}

		img := sh.renderer.Image(<-buffer)
		select {
		case <-ctx.Done():
			return
		case stream <- &Flip{Image: img}:
		}
	}
}

func (sh *Shader) Close() error {
	gl := sh.gl
	var envErr error
	if sh.env != nil {
		envErr = sh.env.Close()
	}
	gl.DeleteProgram(sh.program)
	gl.DeleteVertexArrays([]uint32{sh.vao})
	gl.DeleteBuffers([]uint32{sh.vbo})
	if err := sh.renderer.Close(); err != nil {
		return err
	}
	return envErr
}

// Flip wraps an image and flips it upside down.
type Flip struct {
	image.Image
}

func (flip *Flip) At(x, y int) color.Color {
	h := flip.Bounds().Dy()
	return flip.Image.At(x, h-y-1)
}

type renderer interface {
	io.Closer
	Setup() error
	NumBuffers() int

	Draw(func()) (handle interface{})
	Image(handle interface{}) image.Image

	Texture(handle interface{}) uint32
	FreeTexture(id uint32)
}

type pboRenderer struct {
	gl             glapi.GL
	w, h           uint
	curTargetIndex int
	targets        [3]struct {
		pbo, rbo, fbo uint32
	}
}

func (pr *pboRenderer) Setup() error {
	gl := pr.gl
	for i := range pr.targets {
		t := &pr.targets[i]
		var names [1]uint32
		// Framebuffer.
		gl.GenFramebuffers(names[:])
		t.fbo = names[0]
		gl.BindFramebuffer(glapi.FRAMEBUFFER, t.fbo)
		// Color renderbuffer.
		gl.GenRenderbuffers(names[:])
		t.rbo = names[0]
		gl.BindRenderbuffer(glapi.RENDERBUFFER, t.rbo)
		gl.RenderbufferStorage(glapi.RENDERBUFFER, glapi.RGBA8, int32(pr.w), int32(pr.h))

		gl.FramebufferRenderbuffer(glapi.DRAW_FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.RENDERBUFFER, t.rbo)
		if status := gl.CheckFramebufferStatus(glapi.FRAMEBUFFER); status != glapi.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)
			return errors.Errorf("framebuffer %d is incomplete: 0x%X", i, uint32(status))
		}
		gl.PixelStorei(glapi.UNPACK_ALIGNMENT, 4)
		gl.ReadBuffer(glapi.COLOR_ATTACHMENT0)

		// Pixelbuffer
		gl.GenBuffers(names[:])
		t.pbo = names[0]
		gl.BindBuffer(glapi.PIXEL_PACK_BUFFER, t.pbo)
		gl.BufferData(glapi.PIXEL_PACK_BUFFER, int(pr.w*pr.h*4), nil, glapi.DYNAMIC_READ)
	}
	gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)
	gl.BindBuffer(glapi.PIXEL_PACK_BUFFER, 0)
	gl.BindRenderbuffer(glapi.RENDERBUFFER, 0)
	return nil
}

func (pr *pboRenderer) NumBuffers() int {
	return len(pr.targets)
}

func (pr *pboRenderer) Image(handle interface{}) image.Image {
	gl := pr.gl
	i := handle.(int)
	img := image.NewRGBA(image.Rect(0, 0, int(pr.w), int(pr.h)))
	gl.BindBuffer(glapi.PIXEL_PACK_BUFFER, pr.targets[i].pbo)
	gl.GetBufferSubData(glapi.PIXEL_PACK_BUFFER, 0, int(pr.w*pr.h*4), unsafe.Pointer(&img.Pix[0]))
	gl.BindBuffer(glapi.PIXEL_PACK_BUFFER, 0)
	return img
}

// Draw instructs OpenGL to render a single image with the scene drawn by
// function provided.
// A handle is returned which can be used to access the image data.
func (pr *pboRenderer) Draw(drawFunc func()) interface{} {
	gl := pr.gl
	pr.curTargetIndex = (pr.curTargetIndex + 1) % len(pr.targets)
	t := &pr.targets[pr.curTargetIndex]
	gl.BindFramebuffer(glapi.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, int32(pr.w), int32(pr.h))
	gl.Clear(glapi.COLOR_BUFFER_BIT)
	drawFunc()
	// Start the transfer of the image to the PBO.
	gl.BindBuffer(glapi.PIXEL_PACK_BUFFER, t.pbo)
	gl.ReadPixels(0, 0, int32(pr.w), int32(pr.h), glapi.RGBA, glapi.UNSIGNED_BYTE, nil)
	gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)
	return pr.curTargetIndex
}

func (pr *pboRenderer) Texture(handle interface{}) uint32 {
	gl := pr.gl
	t := pr.targets[handle.(int)]
	var names [1]uint32
	gl.GenTextures(names[:])
	tex := names[0]
	gl.BindTexture(glapi.TEXTURE_2D, tex)
	gl.TexImage2D(glapi.TEXTURE_2D, 0, int32(glapi.RGBA), int32(pr.w), int32(pr.h), 0, glapi.RGBA, glapi.UNSIGNED_BYTE, nil)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_S, int32(glapi.CLAMP_TO_EDGE))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_T, int32(glapi.CLAMP_TO_EDGE))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MAG_FILTER, int32(glapi.NEAREST))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MIN_FILTER, int32(glapi.NEAREST))

	gl.BindBuffer(glapi.PIXEL_UNPACK_BUFFER, t.pbo)
	gl.TexSubImage2D(glapi.TEXTURE_2D, 0, 0, 0, int32(pr.w), int32(pr.h), glapi.RGBA, glapi.UNSIGNED_BYTE, nil)
	gl.BindBuffer(glapi.PIXEL_UNPACK_BUFFER, 0)
	gl.BindTexture(glapi.TEXTURE_2D, 0)
	return tex
}

func (pr *pboRenderer) FreeTexture(id uint32) {
	pr.gl.DeleteTextures([]uint32{id})
}

func (pr *pboRenderer) Close() error {
	gl := pr.gl
	for _, t := range pr.targets {
		gl.DeleteFramebuffers([]uint32{t.fbo})
		gl.DeleteRenderbuffers([]uint32{t.rbo})
		gl.DeleteBuffers([]uint32{t.pbo})
	}
	return nil
}
