package glw

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// FloatBuffer is an ARRAY_BUFFER of float32 values.
type FloatBuffer struct {
	Buffer uint32
	count  int
	usage  Enum
}

// Create generates the buffer, binds it and uploads data.
func (buf *FloatBuffer) Create(usage Enum, data []float32) {
	buf.usage = usage
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

// Delete frees the buffer. Subsequent calls do nothing.
func (buf *FloatBuffer) Delete() {
	if buf.Buffer == 0 {
		return
	}
	ctx.DeleteBuffer(buf.Buffer)
	buf.Buffer = 0
}

func (buf FloatBuffer) Bind()   { ctx.BindBuffer(ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Unbind() { ctx.BindBuffer(ARRAY_BUFFER, 0) }

// Len returns number of float32 values last uploaded.
func (buf FloatBuffer) Len() int { return buf.count }

// Update uploads data to the bound buffer.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	ctx.BufferData(ARRAY_BUFFER, f32.Bytes(binary.LittleEndian, data...), buf.usage)
}

// UintBuffer is an ELEMENT_ARRAY_BUFFER of uint32 indices.
type UintBuffer struct {
	Buffer uint32
	bin    []byte
	count  int
	usage  Enum
}

// Create generates the buffer, binds it and uploads data.
func (buf *UintBuffer) Create(usage Enum, data []uint32) {
	buf.usage = usage
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

// Delete frees the buffer. Subsequent calls do nothing.
func (buf *UintBuffer) Delete() {
	if buf.Buffer == 0 {
		return
	}
	ctx.DeleteBuffer(buf.Buffer)
	buf.Buffer = 0
}

func (buf UintBuffer) Bind()   { ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, buf.Buffer) }
func (buf UintBuffer) Unbind() { ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, 0) }

// Len returns number of indices last uploaded.
func (buf UintBuffer) Len() int { return buf.count }

// Draw issues one indexed draw of every uploaded index.
func (buf UintBuffer) Draw(mode Enum) { ctx.DrawElements(mode, buf.count, UNSIGNED_INT, 0) }

// Update uploads data to the bound buffer.
func (buf *UintBuffer) Update(data []uint32) {
	buf.count = len(data)
	if cap(buf.bin) < len(data)*4 {
		buf.bin = make([]byte, len(data)*4)
	}
	buf.bin = buf.bin[:len(data)*4]
	for i, u := range data {
		binary.LittleEndian.PutUint32(buf.bin[4*i:], u)
	}
	ctx.BufferData(ELEMENT_ARRAY_BUFFER, buf.bin, buf.usage)
}

// VertexElement is a vertex array object that owns a vertex buffer and an
// index buffer. Attribute state set while the array is bound is stored by
// the array itself.
type VertexElement struct {
	Attrib AttribLocation
	Array  uint32

	Floats FloatBuffer
	Uints  UintBuffer
}

// Create generates the vertex array and uploads vertices and indices into it.
// The vertex array is left bound for StepSize.
func (v *VertexElement) Create(usage Enum, vertices []float32, indices []uint32) {
	v.Array = ctx.CreateVertexArray()
	ctx.BindVertexArray(v.Array)
	v.Floats.Create(usage, vertices)
	v.Uints.Create(usage, indices)
}

// StepSize configures the attribute as size floats per vertex and enables it.
// Must be called between Create and Unbind.
func (v *VertexElement) StepSize(size, stride, offset int) {
	v.Attrib.Pointer(size, stride, offset)
}

// Unbind releases the array and buffer bindings. The element buffer binding
// is recorded by the vertex array and is only cleared once the array is unbound.
func (v VertexElement) Unbind() {
	v.Floats.Unbind()
	ctx.BindVertexArray(0)
	v.Uints.Unbind()
}

func (v VertexElement) Bind() { ctx.BindVertexArray(v.Array) }

// Draw issues one indexed draw of the bound array.
func (v VertexElement) Draw(mode Enum) { v.Uints.Draw(mode) }

// Delete frees the vertex array and both buffers. Subsequent calls do nothing.
func (v *VertexElement) Delete() {
	if v.Array != 0 {
		ctx.DeleteVertexArray(v.Array)
		v.Array = 0
	}
	v.Floats.Delete()
	v.Uints.Delete()
}
