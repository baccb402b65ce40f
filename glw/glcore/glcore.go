// Package glcore implements glw.Context on an OpenGL 3.3 core profile
// context through go-gl.
package glcore

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"dasa.cc/physsim/glw"
)

// Context calls straight through to the current GL context.
type Context struct{}

// Init loads GL function pointers for the current context.
// A context must be current on the calling thread.
func Init() (glw.Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return Context{}, nil
}

func (Context) GetString(name glw.Enum) string { return gl.GoStr(gl.GetString(uint32(name))) }

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Context) Clear(mask glw.Enum)           { gl.Clear(uint32(mask)) }

func (Context) CreateShader(typ glw.Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (Context) ShaderSource(shd uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shd, 1, csrc, nil)
	free()
}

func (Context) CompileShader(shd uint32) { gl.CompileShader(shd) }

func (Context) GetShaderi(shd uint32, pname glw.Enum) int {
	var v int32
	gl.GetShaderiv(shd, uint32(pname), &v)
	return int(v)
}

func (Context) GetShaderInfoLog(shd uint32) string {
	var n int32
	gl.GetShaderiv(shd, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := make([]uint8, n+1)
	gl.GetShaderInfoLog(shd, n, nil, &msg[0])
	return gl.GoStr(&msg[0])
}

func (Context) DeleteShader(shd uint32) { gl.DeleteShader(shd) }

func (Context) CreateProgram() uint32        { return gl.CreateProgram() }
func (Context) AttachShader(prg, shd uint32) { gl.AttachShader(prg, shd) }
func (Context) LinkProgram(prg uint32)       { gl.LinkProgram(prg) }

func (Context) GetProgrami(prg uint32, pname glw.Enum) int {
	var v int32
	gl.GetProgramiv(prg, uint32(pname), &v)
	return int(v)
}

func (Context) GetProgramInfoLog(prg uint32) string {
	var n int32
	gl.GetProgramiv(prg, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := make([]uint8, n+1)
	gl.GetProgramInfoLog(prg, n, nil, &msg[0])
	return gl.GoStr(&msg[0])
}

func (Context) UseProgram(prg uint32)    { gl.UseProgram(prg) }
func (Context) DeleteProgram(prg uint32) { gl.DeleteProgram(prg) }

func (Context) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Context) BindBuffer(target glw.Enum, buf uint32) { gl.BindBuffer(uint32(target), buf) }

func (Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	if len(src) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (Context) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (Context) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Context) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }
func (Context) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Context) EnableVertexAttribArray(a uint32) { gl.EnableVertexAttribArray(a) }

func (Context) VertexAttribPointer(a uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(a, int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Context) DrawElements(mode glw.Enum, count int, typ glw.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}
