package glw

// AttribLocation is a vertex attribute index as declared by a shader's
// layout qualifier.
type AttribLocation struct{ Value uint32 }

func (a AttribLocation) Enable() { ctx.EnableVertexAttribArray(a.Value) }

// Pointer enables the attribute and points it at the bound ARRAY_BUFFER as
// size floats per vertex.
func (a AttribLocation) Pointer(size, stride, offset int) {
	a.Enable()
	ctx.VertexAttribPointer(a.Value, size, FLOAT, false, stride, offset)
}
