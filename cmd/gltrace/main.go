package main

import (
	"runtime"
)

func init() {
	// Lock the main goroutine to the current thread. This is required because
	// OpenGL contexts are bound to threads.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
