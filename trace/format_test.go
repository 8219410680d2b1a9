package trace

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/polyfloyd/gltrace/glapi"
)

func seq(n int) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = int32(i)
	}
	return s
}

func TestFormat(t *testing.T) {
	var x int
	p := unsafe.Pointer(&x)

	tests := []struct {
		name   string
		render func() string
		expect string
	}{
		{"enum", func() string { return enum(glapi.VENDOR) }, "<int> 0x1F00"},
		{"enum zero", func() string { return enum(glapi.POINTS) }, "<int> 0x0"},
		{"bitfield", func() string { return bitfield(glapi.COLOR_BUFFER_BIT | glapi.STENCIL_BUFFER_BIT) }, "<int> 0x4400"},
		{"bitfield all", func() string { return bitfield(glapi.ALL_ATTRIB_BITS) }, "<int> 0xFFFFFFFF"},
		{"int", func() string { return i32(-7) }, "<int> -7"},
		{"uint", func() string { return u32(42) }, "<uint> 42"},
		{"ubyte", func() string { return ubyte(255) }, "<ubyte> 255"},
		{"long", func() string { return long(1 << 20) }, "<long> 1048576"},
		{"ulong", func() string { return ulong(1 << 40) }, "<ulong> 1099511627776"},
		{"offset", func() string { return offset(256) }, "<uintptr> 0x100"},
		{"float", func() string { return f32(0.1) }, "<float> 0.1"},
		{"float integral", func() string { return f32(2) }, "<float> 2"},
		{"double", func() string { return f64(-1.25) }, "<double> -1.25"},
		{"boolean", func() string { return boolean(true) }, "<boolean> true"},
		{"string", func() string { return str("vert\"\n") }, `<string> "vert\"\n"`},
		{"nil pointer", func() string { return pointer(nil) }, "<pointer> nil"},
		{"pointer", func() string { return pointer(p) }, "<pointer> " + hex(uint64(uintptr(p)))},
		{"active info", func() string {
			return activeInfo(glapi.ActiveInfo{Name: "iChannel", Size: 4, Type: glapi.SAMPLER_2D})
		}, "<ActiveInfo> iChannel[4] type=0x8B5E"},
		{"nil slice", func() string { return floats(nil) }, "<[]float32> nil"},
		{"empty slice", func() string { return uints([]uint32{}) }, "<[]uint32> []"},
		{"short slice", func() string { return floats([]float32{1, 0.5, -2}) }, "<[]float32> [1,0.5,-2]"},
		{"doubles", func() string { return doubles([]float64{0.25}) }, "<[]float64> [0.25]"},
		{"booleans", func() string { return booleans([]bool{true, false}) }, "<[]bool> [true,false]"},
		{"ulongs", func() string { return ulongs([]uint64{9}) }, "<[]uint64> [9]"},
		{"enums", func() string { return enums([]glapi.Enum{glapi.COLOR_ATTACHMENT0, glapi.BACK}) }, "<[]Enum> [0x8CE0,0x405]"},
		{"exactly 16", func() string { return ints(seq(16)) }, "<[]int32> [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15]"},
		{"17 elements", func() string { return ints(seq(17)) }, "<[]int32> [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15...17]"},
		{"1000 elements", func() string { return ints(seq(1000)) }, "<[]int32> [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15...1000]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.render()
			assert.Equal(t, tt.expect, first)
			assert.Equal(t, first, tt.render())
		})
	}
}
