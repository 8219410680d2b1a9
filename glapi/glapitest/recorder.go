// Package glapitest provides a glapi.GL that records calls instead of
// executing them, for tests and for running without a GPU.
package glapitest

import (
	"github.com/polyfloyd/gltrace/glapi"
)

var _ glapi.GL = &Recorder{}

// Call is a single command received by a Recorder.
type Call struct {
	Name string
	Args []interface{}
}

// A Hook replaces the default behaviour of a recorded method. It receives
// the arguments of the call and returns the result of the method, if any.
// Hooks may also write to slice arguments or panic.
type Hook func(args ...interface{}) interface{}

// Recorder implements glapi.GL by appending every call to Calls.
//
// Unless a hook says otherwise, methods with a result return the zero
// value, except for the object allocating ones: Gen* fill their slice and
// Create*/GenLists return names from a counter that starts at 1, like a
// fresh context would. GenLists reserves xrange consecutive names.
type Recorder struct {
	Calls []Call

	hooks map[string]Hook
	names uint32
}

// On installs fn as the hook for the method with the given name, e.g.
// "GetShaderiv". It replaces any earlier hook for that method.
func (r *Recorder) On(name string, fn Hook) {
	if r.hooks == nil {
		r.hooks = map[string]Hook{}
	}
	r.hooks[name] = fn
}

// Names returns the method names of the recorded calls in order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		names = append(names, c.Name)
	}
	return names
}

// Count returns the number of times the named method was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets all recorded calls. Hooks are kept.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) call(name string, args ...interface{}) interface{} {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
	if fn, ok := r.hooks[name]; ok {
		return fn(args...)
	}
	return nil
}

func (r *Recorder) gen(name string, names []uint32) {
	_, hooked := r.hooks[name]
	r.call(name, names)
	if hooked {
		return
	}
	for i := range names {
		r.names++
		names[i] = r.names
	}
}

func (r *Recorder) create(name string, args ...interface{}) uint32 {
	_, hooked := r.hooks[name]
	v, _ := r.call(name, args...).(uint32)
	if hooked {
		return v
	}
	r.names++
	return r.names
}
