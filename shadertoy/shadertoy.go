// Package shadertoy simulates the image shader environment of shadertoy.com.
package shadertoy

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/renderer"
)

var reShaderToy = regexp.MustCompile(`void\s+mainImage\s*\(\s*out\s+vec4\s+\w+\s*,\s*(?:in)?\s+vec2\s+\w+\s*\)`)

func init() {
	renderer.RegisterEnvironmentDetector(func(shaderSource string) string {
		// The mainImage function should always be present in ShaderToy image
		// shaders.
		if reShaderToy.MatchString(shaderSource) {
			return "shadertoy"
		}
		return ""
	})
}

var inputMappingRe = regexp.MustCompile(`(?m)^//\s+map\s+(\w+)=([^:]+):(.+)$`)

// ShaderToy implements a shader environment similar to the one on
// shadertoy.com.
//
// Inputs are bound with "// map <uniform>=<namespace>:<value>" comments in
// the shader source. Supported are "image:<file>", "audio:<file>" and the
// builtin "Back Buffer", "RGBA Noise Small" and "RGBA Noise Medium" inputs.
// Audio files are decoded with ffmpeg unless given as raw PCM:
// "audio:<file>;<samplerate>:<channels>:s16le".
type ShaderToy struct {
	ShaderSources []renderer.Source
	// ResolveDir is the directory relative input paths are resolved against.
	ResolveDir string

	mappings  []Mapping
	resources []resource
	now       func() time.Time
}

func NewShaderToy(sources []renderer.Source, resolveDir string) (*ShaderToy, error) {
	st := &ShaderToy{
		ShaderSources: sources,
		ResolveDir:    resolveDir,
		now:           time.Now,
	}
	for _, s := range sources {
		c, err := s.Contents()
		if err != nil {
			return nil, err
		}
		st.mappings = append(st.mappings, extractMappings(string(c))...)
	}
	return st, nil
}

func (st *ShaderToy) Sources() (map[renderer.Stage][]renderer.Source, error) {
	mappedUniforms := make([]string, 0, len(st.mappings))
	for _, m := range st.mappings {
		if typ, ok := m.samplerType(); ok {
			mappedUniforms = append(mappedUniforms, fmt.Sprintf("uniform %s %s;", typ, m.Name))
		}
	}

	fragment := []renderer.Source{
		renderer.SourceBuf(`
			#version 130
			uniform vec3 iResolution;
			uniform float iTime;
			uniform float iTimeDelta;
			uniform float iFrame;
			uniform vec4 iMouse;
			uniform vec4 iDate;
			uniform vec3 iChannelResolution[4];
			uniform float iChannelTime[4];
			uniform float iSampleRate;
		` + strings.Join(mappedUniforms, "\n")),
	}
	fragment = append(fragment, st.ShaderSources...)
	fragment = append(fragment, renderer.SourceBuf(`
			void main(void) {
				mainImage(gl_FragColor, gl_FragCoord.xy);
			}
		`))

	return map[renderer.Stage][]renderer.Source{
		renderer.StageVertex: {renderer.SourceBuf(`
			#version 130
			attribute vec3 vert;
			void main(void) {
				gl_Position = vec4(vert, 1.0);
			}
		`)},
		renderer.StageFragment: fragment,
	}, nil
}

func (st *ShaderToy) Setup(gl glapi.GL, state renderer.RenderState) error {
	for i, m := range st.mappings {
		res, err := m.resource(gl, st.ResolveDir, uint32(i))
		if err != nil {
			st.Close()
			return errors.Wrapf(err, "mapping %s", m.Name)
		}
		st.resources = append(st.resources, res)
	}
	// If no mappings are found, we're good to go. If iChannels are referenced
	// anyway we'll let OpenGL decide if we should abort.
	return nil
}

func (st *ShaderToy) PreRender(gl glapi.GL, state renderer.RenderState) {
	uniforms := state.Uniforms
	// https://shadertoyunofficial.wordpress.com/2016/07/20/special-shadertoy-features/
	if loc, ok := uniforms["iResolution"]; ok {
		gl.Uniform3f(loc.Location, float32(state.CanvasWidth), float32(state.CanvasHeight), 1.0)
	}
	if loc, ok := uniforms["iTime"]; ok {
		gl.Uniform1f(loc.Location, float32(state.Time)/float32(time.Second))
	}
	if loc, ok := uniforms["iTimeDelta"]; ok {
		gl.Uniform1f(loc.Location, float32(state.Interval)/float32(time.Second))
	}
	if loc, ok := uniforms["iDate"]; ok {
		t := st.now()
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		gl.Uniform4f(loc.Location,
			float32(t.Year()),
			float32(t.Month()-1),
			float32(t.Day()),
			float32(t.Sub(midnight))/float32(time.Second),
		)
	}
	if loc, ok := uniforms["iFrame"]; ok {
		gl.Uniform1f(loc.Location, float32(state.FramesProcessed))
	}
	for _, res := range st.resources {
		res.PreRender(gl, state)
	}
}

func (st *ShaderToy) Close() error {
	for _, res := range st.resources {
		res.Close()
	}
	st.resources = nil
	return nil
}

type resource interface {
	PreRender(gl glapi.GL, state renderer.RenderState)
	Close()
}
