package glslsandbox

import (
	"regexp"
	"time"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/renderer"
)

var reGLSLSandbox = regexp.MustCompile(`uniform\s+vec2\s+resolution`)

func init() {
	renderer.RegisterEnvironmentDetector(func(shaderSource string) string {
		// Quick and dirty: run some regular expressions on the source to infer
		// the environment.
		if reGLSLSandbox.MatchString(shaderSource) {
			return "glslsandbox"
		}
		return ""
	})
}

// GLSLSandbox implements the Environment interface to simulate the canvas of glslsandbox.com.
type GLSLSandbox struct {
	// ShaderSources are concatenated into the fragment shader that is used
	// for rendering.
	ShaderSources []renderer.Source
}

func (gs GLSLSandbox) Sources() (map[renderer.Stage][]renderer.Source, error) {
	ss := make([]renderer.Source, 0, len(gs.ShaderSources))
	ss = append(ss, gs.ShaderSources...)
	return map[renderer.Stage][]renderer.Source{
		renderer.StageVertex: {renderer.SourceBuf(`
			attribute vec3 vert;
			varying vec2 surfacePosition;

			void main(void) {
				surfacePosition = vert.xy;
				gl_Position = vec4(vert, 1.0);
			}
		`)},
		renderer.StageFragment: ss,
	}, nil
}

func (GLSLSandbox) Setup(gl glapi.GL, state renderer.RenderState) error { return nil }

func (GLSLSandbox) PreRender(gl glapi.GL, state renderer.RenderState) {
	uniforms := state.Uniforms
	if loc, ok := uniforms["resolution"]; ok {
		gl.Uniform2f(loc.Location, float32(state.CanvasWidth), float32(state.CanvasHeight))
	}
	if loc, ok := uniforms["time"]; ok {
		gl.Uniform1f(loc.Location, float32(state.Time)/float32(time.Second))
	}
	if loc, ok := uniforms["mouse"]; ok {
		gl.Uniform2f(loc.Location, float32(state.CanvasWidth)*0.5, float32(state.CanvasHeight)*0.5)
	}
	if loc, ok := uniforms["surfaceSize"]; ok {
		gl.Uniform2f(loc.Location, float32(state.CanvasWidth), float32(state.CanvasHeight))
	}
	if loc, ok := uniforms["backbuffer"]; ok {
		gl.ActiveTexture(glapi.TEXTURE0)
		gl.BindTexture(glapi.TEXTURE_2D, state.PreviousFrameTexID())
		gl.Uniform1i(loc.Location, 0)
	}
}

func (GLSLSandbox) Close() error { return nil }
