package scene

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/glapi/glapitest"
	"github.com/polyfloyd/gltrace/trace"
)

func TestSetupCompilesFloor(t *testing.T) {
	rec := &glapitest.Recorder{}
	var out bytes.Buffer
	gl, err := trace.New(rec, &out)
	require.NoError(t, err)

	sc, err := Setup(gl, 640, 480)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), sc.floor)
	assert.Equal(t, 0, gl.Indent())

	got := out.String()
	assert.Contains(t, got, ""+
		"glNewList(<uint> 1, <int> 0x1300)\n"+
		"  glColor3f(<float> 0.5, <float> 0.5, <float> 0.5)\n"+
		"  glBegin(<int> 0x1)\n"+
		"    glVertex3f(<float> -2, <float> 0, <float> -2)\n")
	assert.True(t, strings.HasSuffix(got, ""+
		"    glVertex3f(<float> 2, <float> 0, <float> 2)\n"+
		"  glEnd()\n"+
		"glEndList()\n"+
		"glGetError() = <int> 0x0\n"), got)
	assert.Equal(t, 20, rec.Count("Vertex3f"))
}

func TestSetupInvalidViewport(t *testing.T) {
	rec := &glapitest.Recorder{}
	_, err := Setup(rec, 0, 480)
	assert.EqualError(t, err, "invalid viewport 0x480")
	assert.Empty(t, rec.Calls)
}

func TestSetupGLError(t *testing.T) {
	rec := &glapitest.Recorder{}
	rec.On("GetError", func(args ...interface{}) interface{} {
		return glapi.INVALID_OPERATION
	})
	_, err := Setup(rec, 10, 10)
	assert.EqualError(t, err, "scene setup failed: GL error 0x502")

	names := rec.Names()
	last := rec.Calls[len(rec.Calls)-1]
	assert.Equal(t, "DeleteLists", names[len(names)-1])
	assert.Equal(t, []interface{}{uint32(1), int32(1)}, last.Args)
}

func TestDraw(t *testing.T) {
	rec := &glapitest.Recorder{}
	sc, err := Setup(rec, 10, 10)
	require.NoError(t, err)

	var out bytes.Buffer
	gl, err := trace.New(rec, &out)
	require.NoError(t, err)
	sc.Draw(gl, time.Second)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "glClear(<int> 0x4100)", lines[0])
	assert.Equal(t, "glCallList(<uint> 1)", lines[3])
	assert.Equal(t, "glBegin(<int> 0x4)", lines[5])
	for _, l := range lines[6:12] {
		assert.True(t, strings.HasPrefix(l, "  gl"), l)
	}
	assert.Equal(t, "glEnd()", lines[12])
}

func TestDrawRotation(t *testing.T) {
	rec := &glapitest.Recorder{}
	sc, err := Setup(rec, 10, 10)
	require.NoError(t, err)

	modelview := func(at time.Duration) []float32 {
		rec.Reset()
		sc.Draw(rec, at)
		var last []float32
		for _, c := range rec.Calls {
			if c.Name == "LoadMatrixf" {
				last = c.Args[0].([]float32)
			}
		}
		return last
	}
	assert.Equal(t, sc.camera[:], modelview(0))
	assert.InDeltaSlice(t, modelview(time.Second), modelview(time.Second+RevolutionTime), 1e-5)
	assert.NotEqual(t, modelview(0), modelview(time.Second))
}
