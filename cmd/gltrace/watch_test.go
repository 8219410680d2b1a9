package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/polyfloyd/gltrace/glslsandbox"
	"github.com/polyfloyd/gltrace/renderer"
)

type envRecorder chan renderer.Environment

func (r envRecorder) SetEnvironment(env renderer.Environment) {
	r <- env
}

func (r envRecorder) next(t *testing.T) renderer.Environment {
	t.Helper()
	select {
	case env := <-r:
		return env
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for an environment")
		return nil
	}
}

func startWatch(t *testing.T, newFn func() (renderer.Environment, []string, error)) (envRecorder, func()) {
	envs := make(envRecorder, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchEnvironment(ctx, log.NewNopLogger(), envs, newFn)
		close(done)
	}()
	return envs, func() {
		cancel()
		<-done
	}
}

func TestWatchEnvironmentReloads(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	file := filepath.Join(t.TempDir(), "shader.glsl")
	require.NoError(t, os.WriteFile(file, []byte("void main() {}\n"), 0o644))

	envs, stop := startWatch(t, func() (renderer.Environment, []string, error) {
		return loadEnvironment([]string{file})
	})
	defer stop()

	first := envs.next(t)
	require.IsType(t, glslsandbox.GLSLSandbox{}, first)

	require.NoError(t, os.WriteFile(file, []byte("void main() { }\n"), 0o644))
	second := envs.next(t)
	require.IsType(t, glslsandbox.GLSLSandbox{}, second)
}

func TestWatchEnvironmentRecovers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	file := filepath.Join(t.TempDir(), "shader.glsl")
	require.NoError(t, os.WriteFile(file, []byte("broken"), 0o644))

	attempts := make(chan int, 4)
	n := 0
	envs, stop := startWatch(t, func() (renderer.Environment, []string, error) {
		n++
		attempts <- n
		if n == 1 {
			return nil, []string{file}, errors.New("broken")
		}
		return glslsandbox.GLSLSandbox{}, []string{file}, nil
	})
	defer stop()

	select {
	case <-attempts:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for the first load")
	}
	require.NoError(t, os.WriteFile(file, []byte("fixed"), 0o644))
	envs.next(t)
}

func TestWatchEnvironmentStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	_, stop := startWatch(t, func() (renderer.Environment, []string, error) {
		return nil, nil, errors.New("nothing to watch")
	})
	stop()
}
