package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glslsandbox"
	"github.com/polyfloyd/gltrace/shadertoy"
)

func TestLoadEnvironment(t *testing.T) {
	env, files, err := loadEnvironment([]string{"../../testdata/shaders/plasma.glsl"})
	require.NoError(t, err)
	assert.IsType(t, glslsandbox.GLSLSandbox{}, env)
	assert.Len(t, files, 1)

	env, _, err = loadEnvironment([]string{"../../testdata/shaders/rings.glsl"})
	require.NoError(t, err)
	assert.IsType(t, &shadertoy.ShaderToy{}, env)
}

func TestLoadEnvironmentMissing(t *testing.T) {
	input := []string{"../../testdata/shaders/missing.glsl"}
	_, files, err := loadEnvironment(input)
	assert.Error(t, err)
	assert.Equal(t, input, files)
}

func TestLimitNumFrames(t *testing.T) {
	in := make(chan image.Image)
	out := limitNumFrames(in, 2)
	go func() {
		for i := 0; i < 5; i++ {
			in <- image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		close(in)
	}()

	n := 0
	for range out {
		n++
	}
	assert.Equal(t, 2, n)
}
