package trace

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/glapi/glapitest"
)

var sentinel int

// sampleValue returns a non-zero value of type t, slices being longer than
// the dump limit.
func sampleValue(t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.Uint32:
		return reflect.ValueOf(uint32(0x8B31)).Convert(t)
	case reflect.Int32:
		return reflect.ValueOf(int32(-3)).Convert(t)
	case reflect.Uint8:
		return reflect.ValueOf(uint8(200)).Convert(t)
	case reflect.Int:
		return reflect.ValueOf(4096).Convert(t)
	case reflect.Uint64:
		return reflect.ValueOf(uint64(1) << 33).Convert(t)
	case reflect.Uintptr:
		return reflect.ValueOf(uintptr(0x40)).Convert(t)
	case reflect.Float32:
		return reflect.ValueOf(float32(1.5)).Convert(t)
	case reflect.Float64:
		return reflect.ValueOf(2.25).Convert(t)
	case reflect.Bool:
		return reflect.ValueOf(true)
	case reflect.String:
		return reflect.ValueOf("uTime")
	case reflect.UnsafePointer:
		return reflect.ValueOf(unsafe.Pointer(&sentinel))
	case reflect.Slice:
		s := reflect.MakeSlice(t, 20, 20)
		for i := 0; i < s.Len(); i++ {
			s.Index(i).Set(sampleValue(t.Elem()))
		}
		return s
	case reflect.Struct:
		return reflect.ValueOf(glapi.ActiveInfo{Name: "resolution", Size: 1, Type: glapi.FLOAT_VEC2})
	}
	panic("no sample for " + t.String())
}

func glMethods() []reflect.Method {
	typ := reflect.TypeOf((*glapi.GL)(nil)).Elem()
	methods := make([]reflect.Method, typ.NumMethod())
	for i := range methods {
		methods[i] = typ.Method(i)
	}
	return methods
}

func TestEveryCallIsTraced(t *testing.T) {
	c, rec, out := newTestContext(t)
	value := reflect.ValueOf(c)

	for _, m := range glMethods() {
		m := m
		t.Run(m.Name, func(t *testing.T) {
			rec.Reset()
			out.Reset()

			args := make([]reflect.Value, m.Type.NumIn())
			for i := range args {
				args[i] = reflect.Zero(m.Type.In(i))
			}
			value.MethodByName(m.Name).Call(args)

			require.Len(t, rec.Calls, 1)
			assert.Equal(t, m.Name, rec.Calls[0].Name)

			line := out.String()
			assert.Equal(t, 1, strings.Count(line, "\n"), "exactly one trace line")
			assert.True(t, strings.HasSuffix(line, "\n"))
			assert.True(t, strings.HasPrefix(strings.TrimLeft(line, " "), "gl"+m.Name+"("), line)
			if m.Type.NumOut() > 0 {
				assert.Contains(t, line, ") = ")
			} else {
				assert.True(t, strings.HasSuffix(line, ")\n"), line)
			}
			if m.Type.NumIn() > 0 {
				assert.Equal(t, m.Type.NumIn()-1, strings.Count(strings.SplitN(line, "(", 2)[1], ", <"))
			}
		})
	}
}

func TestEveryCallIsTransparent(t *testing.T) {
	rec := &glapitest.Recorder{}
	var out bytes.Buffer
	c, err := New(rec, &out)
	require.NoError(t, err)
	value := reflect.ValueOf(c)

	for _, m := range glMethods() {
		m := m
		t.Run(m.Name, func(t *testing.T) {
			rec.Reset()
			out.Reset()

			var want reflect.Value
			if m.Type.NumOut() > 0 {
				want = sampleValue(m.Type.Out(0))
				rec.On(m.Name, func(args ...interface{}) interface{} {
					return want.Interface()
				})
			}

			args := make([]reflect.Value, m.Type.NumIn())
			argValues := make([]interface{}, len(args))
			for i := range args {
				args[i] = sampleValue(m.Type.In(i))
				argValues[i] = args[i].Interface()
			}
			results := value.MethodByName(m.Name).Call(args)

			require.Len(t, rec.Calls, 1)
			if len(argValues) > 0 {
				assert.Equal(t, argValues, rec.Calls[0].Args)
			} else {
				assert.Empty(t, rec.Calls[0].Args)
			}
			if m.Type.NumOut() > 0 {
				require.Len(t, results, 1)
				assert.Equal(t, want.Interface(), results[0].Interface())
			}
			for i := range args {
				if args[i].Kind() == reflect.Slice {
					assert.Contains(t, out.String(), "...20]")
				}
			}
		})
	}
}
