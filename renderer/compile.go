package renderer

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/polyfloyd/gltrace/glapi"
)

const sourceSeparator = "\n\n"

// Matches the location prefix of the info log lines emitted by Mesa
// ("0:3(2): error"), NVIDIA ("0(3) : error") and AMD/Intel ("ERROR: 0:3:").
var logMarkerRe = regexp.MustCompile(`(?m)^(?:ERROR: )?(\d+)[:(](\d+)\)?[^:]*:\s*(.*)$`)

func compileShader(gl glapi.GL, stage Stage, sources ...Source) (uint32, error) {
	glStage, err := stage.glEnum()
	if err != nil {
		return 0, err
	}

	var src string
	for _, s := range sources {
		c, err := s.Contents()
		if err != nil {
			return 0, err
		}
		src += string(c)
		src += sourceSeparator
	}

	shader := gl.CreateShader(glStage)
	gl.ShaderSource(shader, src)
	gl.CompileShader(shader)

	var status [1]int32
	gl.GetShaderiv(shader, glapi.COMPILE_STATUS, status[:])
	if status[0] == glapi.FALSE {
		log := gl.GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, CompileError{
			sources: sources,
			stage:   stage,
			log:     log,
		}
	}
	return shader, nil
}

func linkProgram(gl glapi.GL, sources map[Stage][]Source) (uint32, error) {
	shaders := map[glapi.Enum]uint32{}
	freeShaders := func() {
		for _, sh := range shaders {
			gl.DeleteShader(sh)
		}
	}

	// Compile in a fixed order so the command stream is reproducible.
	stages := make([]Stage, 0, len(sources))
	for stage := range sources {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i] > stages[j] })

	for _, stage := range stages {
		glStage, err := stage.glEnum()
		if err != nil {
			freeShaders()
			return 0, err
		}
		sh, err := compileShader(gl, stage, sources[stage]...)
		if err != nil {
			freeShaders()
			return 0, err
		}
		shaders[glStage] = sh
	}

	program := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)

	var linkErr error
	var status [1]int32
	gl.GetProgramiv(program, glapi.LINK_STATUS, status[:])
	if status[0] == glapi.FALSE {
		linkErr = LinkError{sources: sources, log: gl.GetProgramInfoLog(program)}
	}

	for _, sh := range shaders {
		gl.DetachShader(program, sh)
	}
	freeShaders()
	if linkErr != nil {
		gl.DeleteProgram(program)
		return 0, linkErr
	}
	return program, nil
}

type CompileError struct {
	sources []Source

	stage Stage
	log   string
}

func (err CompileError) Error() (str string) {
	if err.stage == StageVertex {
		str += "Error compiling vertex shader:\n"
	} else if err.stage == StageFragment {
		str += "Error compiling fragment shader:\n"
	}
	str += err.log
	return
}

// marker points to a line in one of the sources that were concatenated
// into a single shader.
type marker struct {
	fileno  int
	lineno  int
	message string
}

func (err CompileError) markers() []marker {
	// The line at which each source starts in the concatenated shader.
	starts := make([]int, len(err.sources))
	line := 1
	for i, s := range err.sources {
		starts[i] = line
		c, _ := s.Contents()
		line += strings.Count(string(c), "\n") + strings.Count(sourceSeparator, "\n")
	}

	var markers []marker
	for _, m := range logMarkerRe.FindAllStringSubmatch(err.log, -1) {
		global, _ := strconv.Atoi(m[2])
		fileno := 0
		for i, start := range starts {
			if start <= global {
				fileno = i
			}
		}
		lineno := global
		if len(starts) > 0 {
			lineno = global - starts[fileno] + 1
		}
		markers = append(markers, marker{
			fileno:  fileno,
			lineno:  lineno,
			message: strings.TrimSpace(m[3]),
		})
	}
	return markers
}

// PrettyPrint writes the compile log with every message attributed to the
// source file and line it originates from.
func (err CompileError) PrettyPrint(out io.Writer) {
	markers := err.markers()
	if len(markers) == 0 {
		fmt.Fprintln(out, err.Error())
		return
	}
	for _, m := range markers {
		name := fmt.Sprintf("<source %d>", m.fileno)
		if m.fileno < len(err.sources) {
			if f, ok := err.sources[m.fileno].(SourceFile); ok {
				name = f.Filename
			}
		}
		fmt.Fprintf(out, "%s:%d: %s\n", name, m.lineno, m.message)
	}
}

type LinkError struct {
	sources map[Stage][]Source

	log string
}

func (err LinkError) Error() (str string) {
	return err.log
}
