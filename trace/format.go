package trace

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/polyfloyd/gltrace/glapi"
)

// maxDumpElements is the number of leading elements of a slice argument
// that make it into a trace line.
const maxDumpElements = 16

func enum(v glapi.Enum) string {
	return "<int> " + hex(uint64(v))
}

func bitfield(v glapi.Bitfield) string {
	return "<int> " + hex(uint64(v))
}

func hex(v uint64) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(v, 16))
}

func i32(v int32) string {
	return "<int> " + strconv.FormatInt(int64(v), 10)
}

func u32(v uint32) string {
	return "<uint> " + strconv.FormatUint(uint64(v), 10)
}

func ubyte(v uint8) string {
	return "<ubyte> " + strconv.FormatUint(uint64(v), 10)
}

func long(v int) string {
	return "<long> " + strconv.Itoa(v)
}

func ulong(v uint64) string {
	return "<ulong> " + strconv.FormatUint(v, 10)
}

func offset(v uintptr) string {
	return "<uintptr> " + hex(uint64(v))
}

func f32(v float32) string {
	return "<float> " + strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func f64(v float64) string {
	return "<double> " + strconv.FormatFloat(v, 'g', -1, 64)
}

func boolean(v bool) string {
	return "<boolean> " + strconv.FormatBool(v)
}

func str(v string) string {
	return "<string> " + strconv.Quote(v)
}

func pointer(p unsafe.Pointer) string {
	if p == nil {
		return "<pointer> nil"
	}
	return "<pointer> " + hex(uint64(uintptr(p)))
}

func activeInfo(v glapi.ActiveInfo) string {
	return "<ActiveInfo> " + v.String()
}

func floats(v []float32) string   { return "<[]float32> " + dump(v) }
func doubles(v []float64) string  { return "<[]float64> " + dump(v) }
func ints(v []int32) string       { return "<[]int32> " + dump(v) }
func uints(v []uint32) string     { return "<[]uint32> " + dump(v) }
func ulongs(v []uint64) string    { return "<[]uint64> " + dump(v) }
func booleans(v []bool) string    { return "<[]bool> " + dump(v) }
func enums(v []glapi.Enum) string { return "<[]Enum> " + dumpEnums(v) }

// dump renders at most maxDumpElements elements of s. A longer slice ends
// with "..." and its full length: [0,1,...,15...40].
func dump[T any](s []T) string {
	return dumpFunc(s, func(v T) string { return fmt.Sprint(v) })
}

func dumpEnums(s []glapi.Enum) string {
	return dumpFunc(s, func(v glapi.Enum) string { return hex(uint64(v)) })
}

func dumpFunc[T any](s []T, elem func(T) string) string {
	if s == nil {
		return "nil"
	}
	n := len(s)
	if n > maxDumpElements {
		n = maxDumpElements
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(elem(s[i]))
	}
	if len(s) > maxDumpElements {
		b.WriteString("...")
		b.WriteString(strconv.Itoa(len(s)))
	}
	b.WriteByte(']')
	return b.String()
}
