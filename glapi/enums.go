package glapi

// Boolean values as returned by the *iv queries.
const (
	FALSE = 0
	TRUE  = 1
)

const (
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	STACK_OVERFLOW                Enum = 0x0503
	STACK_UNDERFLOW               Enum = 0x0504
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
)

const (
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006
	QUADS          Enum = 0x0007
	QUAD_STRIP     Enum = 0x0008
	POLYGON        Enum = 0x0009
)

const (
	COMPILE             Enum = 0x1300
	COMPILE_AND_EXECUTE Enum = 0x1301

	MODELVIEW  Enum = 0x1700
	PROJECTION Enum = 0x1701
	TEXTURE    Enum = 0x1702

	FLAT   Enum = 0x1D00
	SMOOTH Enum = 0x1D01

	LIGHTING            Enum = 0x0B50
	LIGHT0              Enum = 0x4000
	AMBIENT             Enum = 0x1200
	DIFFUSE             Enum = 0x1201
	SPECULAR            Enum = 0x1202
	POSITION            Enum = 0x1203
	SHININESS           Enum = 0x1601
	AMBIENT_AND_DIFFUSE Enum = 0x1602
	COLOR_MATERIAL      Enum = 0x0B57
	NORMALIZE           Enum = 0x0BA1

	TEXTURE_ENV      Enum = 0x2300
	TEXTURE_ENV_MODE Enum = 0x2200
	MODULATE         Enum = 0x2100

	VERTEX_ARRAY        Enum = 0x8074
	NORMAL_ARRAY        Enum = 0x8075
	COLOR_ARRAY         Enum = 0x8076
	TEXTURE_COORD_ARRAY Enum = 0x8078

	PERSPECTIVE_CORRECTION_HINT Enum = 0x0C50
	DONT_CARE                   Enum = 0x1100
	FASTEST                     Enum = 0x1101
	NICEST                      Enum = 0x1102

	POINT Enum = 0x1B00
	LINE  Enum = 0x1B01
	FILL  Enum = 0x1B02
)

const (
	CURRENT_BIT             Bitfield = 0x00000001
	CLIENT_VERTEX_ARRAY_BIT Bitfield = 0x00000002
	DEPTH_BUFFER_BIT        Bitfield = 0x00000100
	STENCIL_BUFFER_BIT      Bitfield = 0x00000400
	ENABLE_BIT              Bitfield = 0x00002000
	COLOR_BUFFER_BIT        Bitfield = 0x00004000
	ALL_ATTRIB_BITS         Bitfield = 0xFFFFFFFF
	SYNC_FLUSH_COMMANDS_BIT Bitfield = 0x00000001
)

const (
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	CULL_FACE         Enum = 0x0B44
	FOG               Enum = 0x0B60
	DEPTH_TEST        Enum = 0x0B71
	STENCIL_TEST      Enum = 0x0B90
	BLEND             Enum = 0x0BE2
	SCISSOR_TEST      Enum = 0x0C11
	TEXTURE_2D        Enum = 0x0DE1
	MULTISAMPLE       Enum = 0x809D
	PRIMITIVE_RESTART Enum = 0x8F9D

	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	ZERO                Enum = 0
	ONE                 Enum = 1
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	FUNC_ADD            Enum = 0x8006
)

const (
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	DOUBLE         Enum = 0x140A

	DEPTH_COMPONENT  Enum = 0x1902
	RED              Enum = 0x1903
	RGB              Enum = 0x1907
	RGBA             Enum = 0x1908
	RGBA8            Enum = 0x8058
	DEPTH24_STENCIL8 Enum = 0x88F0
)

const (
	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	EXTENSIONS               Enum = 0x1F03
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
	NUM_EXTENSIONS           Enum = 0x821D
	MAX_TEXTURE_SIZE         Enum = 0x0D33
	VIEWPORT                 Enum = 0x0BA2
	UNPACK_ALIGNMENT         Enum = 0x0CF5
	PACK_ALIGNMENT           Enum = 0x0D05
)

const (
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	PIXEL_PACK_BUFFER    Enum = 0x88EB
	PIXEL_UNPACK_BUFFER  Enum = 0x88EC
	UNIFORM_BUFFER       Enum = 0x8A11

	STREAM_DRAW  Enum = 0x88E0
	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8
	DYNAMIC_READ Enum = 0x88E9

	READ_ONLY  Enum = 0x88B8
	WRITE_ONLY Enum = 0x88B9
	READ_WRITE Enum = 0x88BA
)

const (
	TEXTURE0           Enum = 0x84C0
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	LINEAR             Enum = 0x2601
	REPEAT             Enum = 0x2901
	CLAMP_TO_EDGE      Enum = 0x812F
)

const (
	FRAMEBUFFER                       Enum = 0x8D40
	READ_FRAMEBUFFER                  Enum = 0x8CA8
	DRAW_FRAMEBUFFER                  Enum = 0x8CA9
	RENDERBUFFER                      Enum = 0x8D41
	COLOR_ATTACHMENT0                 Enum = 0x8CE0
	DEPTH_ATTACHMENT                  Enum = 0x8D00
	DEPTH_STENCIL_ATTACHMENT          Enum = 0x821A
	FRAMEBUFFER_COMPLETE              Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT Enum = 0x8CD6
	FRAMEBUFFER_UNSUPPORTED           Enum = 0x8CDD
)

const (
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	GEOMETRY_SHADER Enum = 0x8DD9

	COMPILE_STATUS              Enum = 0x8B81
	LINK_STATUS                 Enum = 0x8B82
	VALIDATE_STATUS             Enum = 0x8B83
	INFO_LOG_LENGTH             Enum = 0x8B84
	ACTIVE_UNIFORMS             Enum = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH   Enum = 0x8B87
	ACTIVE_ATTRIBUTES           Enum = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH Enum = 0x8B8A
)

// Uniform and attribute types.
const (
	FLOAT_VEC2              Enum = 0x8B50
	FLOAT_VEC3              Enum = 0x8B51
	FLOAT_VEC4              Enum = 0x8B52
	INT_VEC2                Enum = 0x8B53
	INT_VEC3                Enum = 0x8B54
	INT_VEC4                Enum = 0x8B55
	BOOL                    Enum = 0x8B56
	BOOL_VEC2               Enum = 0x8B57
	BOOL_VEC3               Enum = 0x8B58
	BOOL_VEC4               Enum = 0x8B59
	FLOAT_MAT2              Enum = 0x8B5A
	FLOAT_MAT3              Enum = 0x8B5B
	FLOAT_MAT4              Enum = 0x8B5C
	SAMPLER_1D              Enum = 0x8B5D
	SAMPLER_2D              Enum = 0x8B5E
	SAMPLER_3D              Enum = 0x8B5F
	SAMPLER_CUBE            Enum = 0x8B60
	SAMPLER_2D_SHADOW       Enum = 0x8B62
	SAMPLER_2D_RECT         Enum = 0x8B63
	SAMPLER_2D_ARRAY        Enum = 0x8DC1
	SAMPLER_BUFFER          Enum = 0x8DC2
	UNSIGNED_INT_VEC2       Enum = 0x8DC6
	UNSIGNED_INT_VEC3       Enum = 0x8DC7
	UNSIGNED_INT_VEC4       Enum = 0x8DC8
	INT_SAMPLER_2D          Enum = 0x8DCA
	UNSIGNED_INT_SAMPLER_2D Enum = 0x8DD2
)

const (
	SAMPLES_PASSED         Enum = 0x8914
	ANY_SAMPLES_PASSED     Enum = 0x8C2F
	TIME_ELAPSED           Enum = 0x88BF
	TIMESTAMP              Enum = 0x8E28
	QUERY_RESULT           Enum = 0x8866
	QUERY_RESULT_AVAILABLE Enum = 0x8867
	QUERY_WAIT             Enum = 0x8E13

	SYNC_GPU_COMMANDS_COMPLETE Enum = 0x9117
	ALREADY_SIGNALED           Enum = 0x911A
	TIMEOUT_EXPIRED            Enum = 0x911B
	CONDITION_SATISFIED        Enum = 0x911C
	WAIT_FAILED                Enum = 0x911D
)
