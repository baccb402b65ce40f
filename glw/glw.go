// Package glw wraps the handful of GL objects a program needs so that each
// one is created, bound and released through a single owner.
package glw

// Enum mirrors the GLenum values used by this package.
type Enum uint32

const (
	TRIANGLES            Enum = 0x0004
	UNSIGNED_INT         Enum = 0x1405
	FLOAT                Enum = 0x1406
	RENDERER             Enum = 0x1F01
	VERSION              Enum = 0x1F02
	COLOR_BUFFER_BIT     Enum = 0x4000
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8
	FRAGMENT_SHADER      Enum = 0x8B30
	VERTEX_SHADER        Enum = 0x8B31
	COMPILE_STATUS       Enum = 0x8B81
	LINK_STATUS          Enum = 0x8B82
)

// Context is the subset of an OpenGL 3.3 core context used by glw.
// Object names are returned as uint32 and zero is never a valid name.
type Context interface {
	GetString(name Enum) string

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	CreateShader(typ Enum) uint32
	ShaderSource(shd uint32, src string)
	CompileShader(shd uint32)
	GetShaderi(shd uint32, pname Enum) int
	GetShaderInfoLog(shd uint32) string
	DeleteShader(shd uint32)

	CreateProgram() uint32
	AttachShader(prg, shd uint32)
	LinkProgram(prg uint32)
	GetProgrami(prg uint32, pname Enum) int
	GetProgramInfoLog(prg uint32) string
	UseProgram(prg uint32)
	DeleteProgram(prg uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buf uint32)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(buf uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	EnableVertexAttribArray(a uint32)
	VertexAttribPointer(a uint32, size int, typ Enum, normalized bool, stride, offset int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
}

// Loader loads GL function pointers for the current context.
type Loader func() (Context, error)

var ctx Context

// With sets the context used by glw and returns it.
//
// TODO allow package to be used by multiple contexts in parallel.
func With(glctx Context) Context { ctx = glctx; return glctx }
