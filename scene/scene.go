// Package scene draws a small fixed-function scene: a floor grid compiled
// into a display list and a spinning triangle in immediate mode.
package scene

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
)

const gridSize = 2

// RevolutionTime is how long the triangle takes to spin around once.
const RevolutionTime = 4 * time.Second

type Scene struct {
	floor  uint32
	camera mgl32.Mat4
}

// Setup loads the projection for a viewport of the given size and compiles
// the floor.
func Setup(gl glapi.GL, width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid viewport %dx%d", width, height)
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.1, 0.1, 0.1, 1)
	gl.Enable(glapi.DEPTH_TEST)
	gl.DepthFunc(glapi.LEQUAL)
	gl.ShadeModel(glapi.SMOOTH)

	projection := mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100)
	gl.MatrixMode(glapi.PROJECTION)
	gl.LoadMatrixf(projection[:])

	sc := &Scene{
		camera: mgl32.LookAtV(mgl32.Vec3{3, 3, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
	}
	sc.floor = gl.GenLists(1)
	if sc.floor == 0 {
		return nil, errors.New("could not allocate a display list")
	}
	gl.NewList(sc.floor, glapi.COMPILE)
	gl.Color3f(0.5, 0.5, 0.5)
	gl.Begin(glapi.LINES)
	for i := -gridSize; i <= gridSize; i++ {
		f := float32(i)
		gl.Vertex3f(f, 0, -gridSize)
		gl.Vertex3f(f, 0, gridSize)
		gl.Vertex3f(-gridSize, 0, f)
		gl.Vertex3f(gridSize, 0, f)
	}
	gl.End()
	gl.EndList()

	if e := gl.GetError(); e != glapi.NO_ERROR {
		gl.DeleteLists(sc.floor, 1)
		return nil, errors.Errorf("scene setup failed: GL error 0x%X", uint32(e))
	}
	return sc, nil
}

// Draw renders the scene as it looks at time t.
func (sc *Scene) Draw(gl glapi.GL, t time.Duration) {
	angle := float32(2*math.Pi) * float32(t%RevolutionTime) / float32(RevolutionTime)
	modelview := sc.camera.Mul4(mgl32.HomogRotate3DY(angle))

	gl.Clear(glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT)
	gl.MatrixMode(glapi.MODELVIEW)
	gl.LoadMatrixf(sc.camera[:])
	gl.CallList(sc.floor)

	gl.LoadMatrixf(modelview[:])
	gl.Begin(glapi.TRIANGLES)
	gl.Color3f(1, 0, 0)
	gl.Vertex3f(-1, 0, 0)
	gl.Color3f(0, 1, 0)
	gl.Vertex3f(1, 0, 0)
	gl.Color3f(0, 0, 1)
	gl.Vertex3f(0, 1.5, 0)
	gl.End()
}

func (sc *Scene) Close(gl glapi.GL) {
	gl.DeleteLists(sc.floor, 1)
}
