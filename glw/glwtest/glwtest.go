// Package glwtest provides a glw.Context that records calls instead of
// talking to a driver.
package glwtest

import (
	"fmt"
	"sort"

	"dasa.cc/physsim/glw"
)

// Object kinds tracked by Context.
const (
	Shader      = "shader"
	Program     = "program"
	Buffer      = "buffer"
	VertexArray = "vertexarray"
)

// Draw records a single DrawElements call.
type Draw struct {
	Mode   glw.Enum
	Count  int
	Type   glw.Enum
	Offset int
}

// Context is a fake glw.Context. Entries in CompileFail make shaders of that
// type fail to compile with the given log; a non-empty LinkFail makes
// linking fail with that log.
type Context struct {
	CompileFail map[glw.Enum]string
	LinkFail    string

	Calls     []string
	Draws     []Draw
	Viewports [][4]int
	Uploads   map[glw.Enum][]byte

	next    uint32
	kinds   map[uint32]string
	types   map[uint32]glw.Enum
	live    map[uint32]bool
	deletes map[uint32]int
}

// New returns an empty Context.
func New() *Context {
	return &Context{
		CompileFail: make(map[glw.Enum]string),
		Uploads:     make(map[glw.Enum][]byte),
		kinds:       make(map[uint32]string),
		types:       make(map[uint32]glw.Enum),
		live:        make(map[uint32]bool),
		deletes:     make(map[uint32]int),
	}
}

func (c *Context) call(format string, args ...interface{}) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) create(kind string) uint32 {
	c.next++
	c.kinds[c.next] = kind
	c.live[c.next] = true
	return c.next
}

func (c *Context) delete(kind string, name uint32) {
	if name == 0 {
		return
	}
	if c.kinds[name] != kind {
		panic(fmt.Sprintf("glwtest: delete %s %v names a %q", kind, name, c.kinds[name]))
	}
	c.deletes[name]++
	delete(c.live, name)
}

func (c *Context) use(kind string, name uint32) {
	if name == 0 {
		return
	}
	if !c.live[name] || c.kinds[name] != kind {
		panic(fmt.Sprintf("glwtest: use of %s %v that is not live", kind, name))
	}
}

// Created returns the number of objects of kind ever created.
func (c *Context) Created(kind string) int {
	n := 0
	for _, k := range c.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// Names returns every name ever created, in creation order.
func (c *Context) Names() []uint32 {
	var names []uint32
	for name := range c.kinds {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Live returns names of objects not yet deleted, in creation order.
func (c *Context) Live() []uint32 {
	var names []uint32
	for _, name := range c.Names() {
		if c.live[name] {
			names = append(names, name)
		}
	}
	return names
}

// Kind returns the kind name was created as.
func (c *Context) Kind(name uint32) string { return c.kinds[name] }

// Deletes returns how many times name was deleted.
func (c *Context) Deletes(name uint32) int { return c.deletes[name] }

// Index returns position of first call equal to s in Calls or -1.
func (c *Context) Index(s string) int {
	for i, call := range c.Calls {
		if call == s {
			return i
		}
	}
	return -1
}

// Last returns position of last call equal to s in Calls or -1.
func (c *Context) Last(s string) int {
	for i := len(c.Calls) - 1; i >= 0; i-- {
		if c.Calls[i] == s {
			return i
		}
	}
	return -1
}

func (c *Context) GetString(name glw.Enum) string {
	switch name {
	case glw.VERSION:
		return "3.3.0 glwtest"
	case glw.RENDERER:
		return "glwtest"
	default:
		return ""
	}
}

func (c *Context) Viewport(x, y, width, height int) {
	c.call("Viewport(%v, %v, %v, %v)", x, y, width, height)
	c.Viewports = append(c.Viewports, [4]int{x, y, width, height})
}

func (c *Context) ClearColor(r, g, b, a float32) { c.call("ClearColor(%v, %v, %v, %v)", r, g, b, a) }
func (c *Context) Clear(mask glw.Enum)           { c.call("Clear(0x%X)", uint32(mask)) }

func (c *Context) CreateShader(typ glw.Enum) uint32 {
	shd := c.create(Shader)
	c.types[shd] = typ
	c.call("CreateShader(0x%X) = %v", uint32(typ), shd)
	return shd
}

func (c *Context) ShaderSource(shd uint32, src string) {
	c.use(Shader, shd)
	c.call("ShaderSource(%v)", shd)
}

func (c *Context) CompileShader(shd uint32) {
	c.use(Shader, shd)
	c.call("CompileShader(%v)", shd)
}

func (c *Context) GetShaderi(shd uint32, pname glw.Enum) int {
	c.use(Shader, shd)
	if pname != glw.COMPILE_STATUS {
		return 0
	}
	if _, ok := c.CompileFail[c.types[shd]]; ok {
		return 0
	}
	return 1
}

func (c *Context) GetShaderInfoLog(shd uint32) string {
	c.use(Shader, shd)
	return c.CompileFail[c.types[shd]]
}

func (c *Context) DeleteShader(shd uint32) {
	c.delete(Shader, shd)
	c.call("DeleteShader(%v)", shd)
}

func (c *Context) CreateProgram() uint32 {
	prg := c.create(Program)
	c.call("CreateProgram() = %v", prg)
	return prg
}

func (c *Context) AttachShader(prg, shd uint32) {
	c.use(Program, prg)
	c.use(Shader, shd)
	c.call("AttachShader(%v, %v)", prg, shd)
}

func (c *Context) LinkProgram(prg uint32) {
	c.use(Program, prg)
	c.call("LinkProgram(%v)", prg)
}

func (c *Context) GetProgrami(prg uint32, pname glw.Enum) int {
	c.use(Program, prg)
	if pname != glw.LINK_STATUS || c.LinkFail != "" {
		return 0
	}
	return 1
}

func (c *Context) GetProgramInfoLog(prg uint32) string {
	c.use(Program, prg)
	return c.LinkFail
}

func (c *Context) UseProgram(prg uint32) {
	c.use(Program, prg)
	c.call("UseProgram(%v)", prg)
}

func (c *Context) DeleteProgram(prg uint32) {
	c.delete(Program, prg)
	c.call("DeleteProgram(%v)", prg)
}

func (c *Context) CreateBuffer() uint32 {
	buf := c.create(Buffer)
	c.call("CreateBuffer() = %v", buf)
	return buf
}

func (c *Context) BindBuffer(target glw.Enum, buf uint32) {
	c.use(Buffer, buf)
	c.call("BindBuffer(0x%X, %v)", uint32(target), buf)
}

func (c *Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	c.Uploads[target] = append([]byte(nil), src...)
	c.call("BufferData(0x%X, %v bytes, 0x%X)", uint32(target), len(src), uint32(usage))
}

func (c *Context) DeleteBuffer(buf uint32) {
	c.delete(Buffer, buf)
	c.call("DeleteBuffer(%v)", buf)
}

func (c *Context) CreateVertexArray() uint32 {
	vao := c.create(VertexArray)
	c.call("CreateVertexArray() = %v", vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) {
	c.use(VertexArray, vao)
	c.call("BindVertexArray(%v)", vao)
}

func (c *Context) DeleteVertexArray(vao uint32) {
	c.delete(VertexArray, vao)
	c.call("DeleteVertexArray(%v)", vao)
}

func (c *Context) EnableVertexAttribArray(a uint32) { c.call("EnableVertexAttribArray(%v)", a) }

func (c *Context) VertexAttribPointer(a uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	c.call("VertexAttribPointer(%v, %v, 0x%X, %v, %v, %v)", a, size, uint32(typ), normalized, stride, offset)
}

func (c *Context) DrawElements(mode glw.Enum, count int, typ glw.Enum, offset int) {
	c.Draws = append(c.Draws, Draw{mode, count, typ, offset})
	c.call("DrawElements(0x%X, %v, 0x%X, %v)", uint32(mode), count, uint32(typ), offset)
}
