package renderer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glapi"
)

func TestSingleFileMarkerPosition(t *testing.T) {
	gl := newTestGL()
	failCompile(gl, "0:3(2): error: #error meh\n")

	source := SourceBuf(`
void main() {
	#error meh
}
	`)

	_, err := compileShader(gl, StageVertex, source)
	cerr, ok := err.(CompileError)
	require.True(t, ok, "expected a CompileError, got %#v", err)

	m := cerr.markers()
	require.Len(t, m, 1)
	assert.Equal(t, 0, m[0].fileno)
	assert.Equal(t, 3, m[0].lineno)
	assert.Equal(t, "error: #error meh", m[0].message)
}

func TestMultiFileMarkerPosition(t *testing.T) {
	gl := newTestGL()
	// The second source starts at line 5 of the concatenated shader.
	failCompile(gl, "0:7(2): error: #error meh\n")

	source1 := SourceBuf(`
// A bunch of text to offset the line number.
	`)
	source2 := SourceBuf(`
void main() {
	#error meh
}
	`)

	_, err := compileShader(gl, StageVertex, source1, source2)
	cerr, ok := err.(CompileError)
	require.True(t, ok, "expected a CompileError, got %#v", err)

	m := cerr.markers()
	require.Len(t, m, 1)
	assert.Equal(t, 1, m[0].fileno)
	assert.Equal(t, 3, m[0].lineno)
}

func TestMarkerLogDialects(t *testing.T) {
	tests := []struct {
		log     string
		lineno  int
		message string
	}{
		{"0:3(2): error: `a' undeclared", 3, "error: `a' undeclared"},
		{"0(3) : error C1008: undefined variable \"a\"", 3, "error C1008: undefined variable \"a\""},
		{"ERROR: 0:3: 'a' : undeclared identifier", 3, "'a' : undeclared identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.log, func(t *testing.T) {
			cerr := CompileError{sources: []Source{SourceBuf("\n\n\n")}, log: tt.log}
			m := cerr.markers()
			require.Len(t, m, 1)
			assert.Equal(t, tt.lineno, m[0].lineno)
			assert.Equal(t, tt.message, m[0].message)
		})
	}
}

func TestUnknownVar(t *testing.T) {
	gl := newTestGL()
	failCompile(gl, "0:3(2): error: `a' undeclared\n")

	sources := SourceBuf(`
void main() {
	a = 12;
}
	`)

	_, err := compileShader(gl, StageVertex, sources)
	compileError, ok := err.(CompileError)
	require.True(t, ok, "expected a CompileError, got %#v", err)
	assert.Equal(t, "Error compiling vertex shader:\n0:3(2): error: `a' undeclared\n", compileError.Error())

	assert.Equal(t, []string{
		"CreateShader",
		"ShaderSource",
		"CompileShader",
		"GetShaderiv",
		"GetShaderInfoLog",
		"DeleteShader",
	}, gl.Names())
	assert.Equal(t, glapi.VERTEX_SHADER, gl.Calls[0].Args[0])
	assert.Equal(t, string(sources)+sourceSeparator, gl.Calls[1].Args[1])
}

func TestCompileErrorPrettyPrint(t *testing.T) {
	cerr := CompileError{
		sources: []Source{
			SourceFile{Filename: "lib.glsl"},
			SourceBuf("\nvoid main() {\n\tx;\n}\n"),
		},
		stage: StageFragment,
		log:   "0:3(2): error: `x' undeclared\n",
	}
	// lib.glsl does not exist, so it counts as empty and the buffer starts at
	// line 3.
	var buf bytes.Buffer
	cerr.PrettyPrint(&buf)
	assert.Equal(t, "<source 1>:1: error: `x' undeclared\n", buf.String())

	buf.Reset()
	CompileError{stage: StageFragment, log: "garbage"}.PrettyPrint(&buf)
	assert.Equal(t, "Error compiling fragment shader:\ngarbage\n", buf.String())
}

func TestLinkProgram(t *testing.T) {
	gl := newTestGL()

	program, err := linkProgram(gl, map[Stage][]Source{
		StageFragment: {SourceBuf("void main() {}")},
		StageVertex:   {SourceBuf("void main() {}")},
	})
	require.NoError(t, err)
	assert.NotZero(t, program)

	// The vertex stage is always compiled first.
	assert.Equal(t, glapi.VERTEX_SHADER, gl.Calls[0].Args[0])
	assert.Equal(t, 2, gl.Count("CreateShader"))
	assert.Equal(t, 2, gl.Count("AttachShader"))
	assert.Equal(t, 2, gl.Count("DetachShader"))
	assert.Equal(t, 2, gl.Count("DeleteShader"))
	assert.Equal(t, 0, gl.Count("DeleteProgram"))
}

func TestLinkError(t *testing.T) {
	gl := newTestGL()
	gl.On("GetProgramiv", func(args ...interface{}) interface{} {
		return nil
	})
	gl.On("GetProgramInfoLog", func(args ...interface{}) interface{} {
		return "error: no main"
	})

	_, err := linkProgram(gl, map[Stage][]Source{
		StageVertex:   {SourceBuf("")},
		StageFragment: {SourceBuf("")},
	})
	linkErr, ok := err.(LinkError)
	require.True(t, ok, "expected a LinkError, got %#v", err)
	assert.Equal(t, "error: no main", linkErr.Error())
	assert.Equal(t, 2, gl.Count("DeleteShader"))
	assert.Equal(t, 1, gl.Count("DeleteProgram"))
}

func TestLinkInvalidStage(t *testing.T) {
	gl := newTestGL()
	_, err := linkProgram(gl, map[Stage][]Source{
		Stage("geom"): {SourceBuf("")},
	})
	assert.EqualError(t, err, `invalid pipeline stage: "geom"`)
	assert.Empty(t, gl.Calls)
}
