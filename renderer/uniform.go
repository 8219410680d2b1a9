package renderer

import (
	"fmt"
	"strings"

	"github.com/polyfloyd/gltrace/glapi"
)

type Uniform struct {
	Name     string
	Type     glapi.Enum
	Location int32
}

func ListUniforms(gl glapi.GL, program uint32) map[string]Uniform {
	var numUniforms [1]int32
	gl.GetProgramiv(program, glapi.ACTIVE_UNIFORMS, numUniforms[:])

	uniforms := map[string]Uniform{}
	for i := uint32(0); i < uint32(numUniforms[0]); i++ {
		info := gl.GetActiveUniform(program, i)

		if strings.HasSuffix(info.Name, "[0]") {
			// A [0] suffix indicates that the uniform as an array. Load the
			// locations of all elements.
			baseName := strings.TrimSuffix(info.Name, "[0]")
			for i := 0; ; i++ {
				elemName := fmt.Sprintf("%s[%d]", baseName, i)
				loc := gl.GetUniformLocation(program, elemName)
				if loc == -1 {
					break
				}
				uniforms[elemName] = Uniform{
					Name:     elemName,
					Type:     info.Type,
					Location: loc,
				}
			}
		} else {
			uniforms[info.Name] = Uniform{
				Name:     info.Name,
				Type:     info.Type,
				Location: gl.GetUniformLocation(program, info.Name),
			}
		}
	}
	return uniforms
}

func (u Uniform) TypeLiteral() string {
	switch u.Type {
	case glapi.FLOAT:
		return "float"
	case glapi.FLOAT_VEC2:
		return "vec2"
	case glapi.FLOAT_VEC3:
		return "vec3"
	case glapi.FLOAT_VEC4:
		return "vec4"
	case glapi.DOUBLE:
		return "double"
	case glapi.INT:
		return "int"
	case glapi.INT_VEC2:
		return "ivec2"
	case glapi.INT_VEC3:
		return "ivec3"
	case glapi.INT_VEC4:
		return "ivec4"
	case glapi.UNSIGNED_INT:
		return "unsigned int"
	case glapi.UNSIGNED_INT_VEC2:
		return "uvec2"
	case glapi.UNSIGNED_INT_VEC3:
		return "uvec3"
	case glapi.UNSIGNED_INT_VEC4:
		return "uvec4"
	case glapi.BOOL:
		return "bool"
	case glapi.BOOL_VEC2:
		return "bvec2"
	case glapi.BOOL_VEC3:
		return "bvec3"
	case glapi.BOOL_VEC4:
		return "bvec4"
	case glapi.FLOAT_MAT2:
		return "mat2"
	case glapi.FLOAT_MAT3:
		return "mat3"
	case glapi.FLOAT_MAT4:
		return "mat4"
	case glapi.SAMPLER_1D:
		return "sampler1D"
	case glapi.SAMPLER_2D:
		return "sampler2D"
	case glapi.SAMPLER_3D:
		return "sampler3D"
	case glapi.SAMPLER_CUBE:
		return "samplerCube"
	case glapi.SAMPLER_2D_SHADOW:
		return "sampler2DShadow"
	case glapi.SAMPLER_2D_RECT:
		return "sampler2DRect"
	case glapi.SAMPLER_2D_ARRAY:
		return "sampler2DArray"
	case glapi.SAMPLER_BUFFER:
		return "samplerBuffer"
	case glapi.INT_SAMPLER_2D:
		return "isampler2D"
	case glapi.UNSIGNED_INT_SAMPLER_2D:
		return "usampler2D"
	}
	return "invalid"
}

func (u Uniform) String() string {
	return fmt.Sprintf("uniform %s %s (%x)", u.TypeLiteral(), u.Name, u.Location)
}
