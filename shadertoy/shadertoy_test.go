package shadertoy

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/glapi/glapitest"
	"github.com/polyfloyd/gltrace/renderer"
)

func TestDetectEnvironment(t *testing.T) {
	sources := []string{
		`void mainImage( out vec4 fragColor, in vec2 fragCoord ) { }`,
		`void mainImage( out vec4 fragColor, vec2 fragCoord )`,
		`void mainImage(out vec4 foo,in vec2 bar){}`,
		`void   mainImage  (  out  vec4  o  ,  in   vec2  i  )  {  }`,
	}
	for _, s := range sources {
		env := renderer.DetectEnvironment(s)
		if env == "" {
			t.Fatalf("unable to detect environment from source: %q", s)
		}
		if env != "shadertoy" {
			t.Fatalf("detect environment is not ShaderToy for source: %q", s)
		}
	}
}

func TestExtractMappings(t *testing.T) {
	mappings := extractMappings(`
// map iChannel0=builtin:RGBA Noise Small
// map iChannel1=image:../img/wall.png
void mainImage(out vec4 c, in vec2 p) {}
`)
	assert.Equal(t, []Mapping{
		{Name: "iChannel0", Namespace: "builtin", Value: "RGBA Noise Small"},
		{Name: "iChannel1", Namespace: "image", Value: "../img/wall.png"},
	}, mappings)
}

func TestSourcesDeclareMappedSamplers(t *testing.T) {
	st, err := NewShaderToy([]renderer.Source{renderer.SourceBuf("// map iChannel0=builtin:RGBA Noise Medium\n")}, ".")
	require.NoError(t, err)
	sources, err := st.Sources()
	require.NoError(t, err)

	fragment := sources[renderer.StageFragment]
	require.Len(t, fragment, 3)
	header, _ := fragment[0].Contents()
	assert.Contains(t, string(header), "uniform sampler2D iChannel0;")
	footer, _ := fragment[2].Contents()
	assert.Contains(t, string(footer), "mainImage(gl_FragColor, gl_FragCoord.xy);")
}

func TestSetupTextures(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.White)
	f, err := os.Create(filepath.Join(dir, "tex.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	st, err := NewShaderToy([]renderer.Source{renderer.SourceBuf(`
// map iChannel0=builtin:RGBA Noise Small
// map iChannel1=image:tex.png
`)}, dir)
	require.NoError(t, err)

	gl := &glapitest.Recorder{}
	require.NoError(t, st.Setup(gl, renderer.RenderState{}))
	assert.Equal(t, 2, gl.Count("GenTextures"))

	gl.Reset()
	st.PreRender(gl, renderer.RenderState{
		Uniforms: map[string]renderer.Uniform{
			"iChannel1":             {Name: "iChannel1", Location: 4},
			"iChannelResolution[1]": {Name: "iChannelResolution[1]", Location: 5},
		},
	})
	assert.Equal(t, []glapitest.Call{
		{Name: "ActiveTexture", Args: []interface{}{glapi.TEXTURE0 + 1}},
		{Name: "BindTexture", Args: []interface{}{glapi.TEXTURE_2D, uint32(2)}},
		{Name: "Uniform1i", Args: []interface{}{int32(4), int32(1)}},
		{Name: "Uniform3f", Args: []interface{}{int32(5), float32(3), float32(2), float32(1)}},
	}, gl.Calls)

	gl.Reset()
	require.NoError(t, st.Close())
	assert.Equal(t, 2, gl.Count("DeleteTextures"))
}

func TestSetupUnknownMapping(t *testing.T) {
	st, err := NewShaderToy([]renderer.Source{renderer.SourceBuf("// map iChannel0=builtin:Lena\n")}, ".")
	require.NoError(t, err)
	err = st.Setup(&glapitest.Recorder{}, renderer.RenderState{})
	assert.EqualError(t, err, `mapping iChannel0: unknown builtin mapping "Lena"`)
}

func TestPreRenderUniforms(t *testing.T) {
	st, err := NewShaderToy(nil, ".")
	require.NoError(t, err)
	st.now = func() time.Time { return time.Date(2020, time.March, 4, 1, 0, 30, 0, time.UTC) }

	gl := &glapitest.Recorder{}
	st.PreRender(gl, renderer.RenderState{
		Time:            2 * time.Second,
		Interval:        time.Second / 4,
		FramesProcessed: 8,
		CanvasWidth:     16,
		CanvasHeight:    9,
		Uniforms: map[string]renderer.Uniform{
			"iResolution": {Location: 0},
			"iTime":       {Location: 1},
			"iTimeDelta":  {Location: 2},
			"iDate":       {Location: 3},
			"iFrame":      {Location: 4},
		},
	})
	assert.Equal(t, []glapitest.Call{
		{Name: "Uniform3f", Args: []interface{}{int32(0), float32(16), float32(9), float32(1)}},
		{Name: "Uniform1f", Args: []interface{}{int32(1), float32(2)}},
		{Name: "Uniform1f", Args: []interface{}{int32(2), float32(0.25)}},
		{Name: "Uniform4f", Args: []interface{}{int32(3), float32(2020), float32(2), float32(4), float32(3630)}},
		{Name: "Uniform1f", Args: []interface{}{int32(4), float32(8)}},
	}, gl.Calls)
}

func TestBackBuffer(t *testing.T) {
	st, err := NewShaderToy([]renderer.Source{renderer.SourceBuf("// map iChannel2=builtin:Back Buffer\n")}, ".")
	require.NoError(t, err)
	sources, err := st.Sources()
	require.NoError(t, err)
	header, _ := sources[renderer.StageFragment][0].Contents()
	assert.Contains(t, string(header), "uniform sampler2D iChannel2;")

	gl := &glapitest.Recorder{}
	require.NoError(t, st.Setup(gl, renderer.RenderState{}))
	assert.Equal(t, 0, gl.Count("GenTextures"))

	gl.Reset()
	st.PreRender(gl, renderer.RenderState{
		CanvasWidth:        32,
		CanvasHeight:       16,
		PreviousFrameTexID: func() uint32 { return 42 },
		Uniforms: map[string]renderer.Uniform{
			"iChannel2":             {Name: "iChannel2", Location: 7},
			"iChannelResolution[2]": {Name: "iChannelResolution[2]", Location: 8},
		},
	})
	assert.Equal(t, []glapitest.Call{
		{Name: "ActiveTexture", Args: []interface{}{glapi.TEXTURE0}},
		{Name: "BindTexture", Args: []interface{}{glapi.TEXTURE_2D, uint32(42)}},
		{Name: "Uniform1i", Args: []interface{}{int32(7), int32(0)}},
		{Name: "Uniform3f", Args: []interface{}{int32(8), float32(32), float32(16), float32(1)}},
	}, gl.Calls)

	gl.Reset()
	require.NoError(t, st.Close())
	assert.Empty(t, gl.Calls)
}

func writePCM(t *testing.T, dir string, frames, channels int, sample int16) {
	pcm := make([]byte, frames*channels*2)
	for i := 0; i < frames; i++ {
		pcm[i*channels*2] = byte(uint16(sample))
		pcm[i*channels*2+1] = byte(uint16(sample) >> 8)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tone.raw"), pcm, 0644))
}

func TestAudioTexture(t *testing.T) {
	dir := t.TempDir()
	writePCM(t, dir, 100, 2, 0x7fff)

	st, err := NewShaderToy([]renderer.Source{renderer.SourceBuf("// map iChannel0=audio:tone.raw;1000:2:s16le\n")}, dir)
	require.NoError(t, err)
	gl := &glapitest.Recorder{}
	require.NoError(t, st.Setup(gl, renderer.RenderState{}))
	assert.Equal(t, 1, gl.Count("GenTextures"))
	assert.Equal(t, []interface{}{glapi.TEXTURE_2D, int32(0), int32(glapi.RGBA), int32(512), int32(2), int32(0), glapi.RGB, glapi.UNSIGNED_BYTE},
		gl.Calls[2].Args[:8])

	gl.Reset()
	st.PreRender(gl, renderer.RenderState{
		Interval: time.Second / 10,
		Uniforms: map[string]renderer.Uniform{
			"iChannel0":             {Name: "iChannel0", Location: 1},
			"iChannelResolution[0]": {Name: "iChannelResolution[0]", Location: 2},
			"iSampleRate":           {Name: "iSampleRate", Location: 3},
		},
	})
	assert.Equal(t, []string{"ActiveTexture", "BindTexture", "TexSubImage2D", "Uniform1i", "Uniform3f", "Uniform1f"}, gl.Names())
	assert.Equal(t, []interface{}{glapi.TEXTURE_2D, uint32(1)}, gl.Calls[1].Args)
	assert.Equal(t, []interface{}{int32(3), float32(1000)}, gl.Calls[5].Args)

	// The source is exhausted; the waveform still holds the tone.
	at := st.resources[0].(*audioTexture)
	data := audioTextureData(at.prevPeriod[len(at.prevPeriod)-audioTexWidth:])
	assert.Equal(t, uint8(127), data[audioTexWidth*3])
	assert.Equal(t, uint8(255), data[(2*audioTexWidth-1)*3])

	gl.Reset()
	require.NoError(t, st.Close())
	assert.Equal(t, []string{"DeleteTextures"}, gl.Names())
}

func TestRawAudioSource(t *testing.T) {
	dir := t.TempDir()
	writePCM(t, dir, 10, 1, -0x7fff)

	source, err := newAudioSource(dir, "tone.raw;100:1:s16le")
	require.NoError(t, err)
	defer source.Close()
	assert.Equal(t, float32(100), source.SampleRate())

	samples := source.ReadSamples(time.Second / 20)
	assert.Equal(t, []float64{-1, -1, -1, -1, -1}, samples)
	assert.Len(t, source.ReadSamples(time.Second), 5)
	assert.Equal(t, make([]float64, 10), source.ReadSamples(time.Second/10))
}

func TestAudioSourceErrors(t *testing.T) {
	dir := t.TempDir()
	writePCM(t, dir, 1, 1, 0)

	_, err := newAudioSource(dir, "tone.raw;100:1:u8le")
	assert.EqualError(t, err, `unsupported PCM format "u8le"`)
	_, err = newAudioSource(dir, "tone.raw;100:0:s16le")
	assert.EqualError(t, err, "invalid number of audio channels: 0")
	_, err = newAudioSource(dir, "tone.raw;100:1")
	assert.Error(t, err)
	_, err = newAudioSource(dir, "missing.raw;100:1:s16le")
	assert.Error(t, err)
	_, err = newAudioSource(dir, "missing.mp3")
	assert.Error(t, err)
}
