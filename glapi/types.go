package glapi

import "fmt"

// Enum is a GLenum: a symbolic constant such as TRIANGLES or TEXTURE_2D.
type Enum uint32

// Bitfield is a GLbitfield, the OR of a set of *_BIT constants.
type Bitfield uint32

// ActiveInfo describes an active attribute or uniform of a linked program.
type ActiveInfo struct {
	Name string
	Size int32
	Type Enum
}

func (ai ActiveInfo) String() string {
	return fmt.Sprintf("%s[%d] type=0x%X", ai.Name, ai.Size, uint32(ai.Type))
}
