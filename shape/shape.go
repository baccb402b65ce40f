// Package shape holds indexed triangle geometry.
package shape

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/image/math/f32"
)

// ErrTriangles is returned by Validate when the index count is not a
// multiple of three.
var ErrTriangles = errors.New("shape: index count is not a multiple of 3")

// Shape is a list of vertex positions and the triangles that index them.
type Shape struct {
	Vertices []f32.Vec3
	Indices  []uint32
}

// IndexError reports an index that refers past the last vertex.
type IndexError struct {
	Pos, Index, Vertices int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("shape: index %v at position %v out of range for %v vertices", e.Index, e.Pos, e.Vertices)
}

// Validate returns an error if any index does not name a vertex or the
// indices do not describe whole triangles.
func (s Shape) Validate() error {
	if len(s.Indices)%3 != 0 {
		return ErrTriangles
	}
	n := len(s.Vertices)
	if i := slices.IndexFunc(s.Indices, func(x uint32) bool { return int(x) >= n }); i != -1 {
		return &IndexError{Pos: i, Index: int(s.Indices[i]), Vertices: n}
	}
	return nil
}

// Triangles returns the number of triangles drawn.
func (s Shape) Triangles() int { return len(s.Indices) / 3 }

// Floats returns vertex positions tightly packed as x, y, z.
func (s Shape) Floats() []float32 {
	fs := make([]float32, 0, 3*len(s.Vertices))
	for _, v := range s.Vertices {
		fs = append(fs, v[0], v[1], v[2])
	}
	return fs
}

// FromFloats groups packed x, y, z values into positions. It fails if len(fs)
// is not a multiple of three.
func FromFloats(fs []float32) ([]f32.Vec3, error) {
	if len(fs)%3 != 0 {
		return nil, fmt.Errorf("shape: %v floats do not form whole positions", len(fs))
	}
	vs := make([]f32.Vec3, len(fs)/3)
	for i := range vs {
		vs[i] = f32.Vec3{fs[3*i], fs[3*i+1], fs[3*i+2]}
	}
	return vs, nil
}

func midpoint(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

// Triforce returns an equilateral triangle of side length side, centred on
// the origin, with its middle left hollow. The outer corners are vertices
// 0 lower-left, 1 lower-right and 2 top; the edge midpoints are 3 left,
// 4 right and 5 bottom. The three corner triangles are drawn.
func Triforce(side float32) Shape {
	h := side * float32(math.Sqrt(3)) / 2
	ll := f32.Vec3{-side / 2, -h / 3, 0}
	lr := f32.Vec3{side / 2, -h / 3, 0}
	top := f32.Vec3{0, 2 * h / 3, 0}
	return Shape{
		Vertices: []f32.Vec3{
			ll, lr, top,
			midpoint(ll, top),
			midpoint(lr, top),
			midpoint(ll, lr),
		},
		Indices: []uint32{
			0, 3, 5,
			3, 2, 4,
			5, 4, 1,
		},
	}
}
