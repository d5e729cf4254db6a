package curvedit

import (
	"fmt"
)

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming points.
type AT []float64 // a 4x4 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 16)
	return m
}

func (m AT) get(row, col int) float64 {
	return m[row*4+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*4+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*4 : (row+1)*4]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 4)
	for row := 0; row < 4; row++ {
		c[row] = m[row*4+col]
	}
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	for i := 0; i < 4; i++ {
		m.set(i, i, 1.0)
	}
	return m
}

// Translation transform. Translate a point by (dx,dy,dz).
func Translation(p Point) AT {
	m := Identity()
	m.set(0, 3, p.X)
	m.set(1, 3, p.Y)
	m.set(2, 3, p.Z)
	return m
}

// SwapXZ exchanges the x- and z-coordinates of a point, i.e., looks at the
// scene from the side.
func SwapXZ() AT {
	m := newAT()
	m.set(0, 2, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 0, 1.0)
	m.set(3, 3, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := "["
	for row := 0; row < 4; row++ {
		if row > 0 {
			s += "|"
		}
		r := m.row(row)
		s += fmt.Sprintf("%g,%g,%g,%g", r[0], r[1], r[2], r[3])
	}
	return s + "]"
}

// v1 × v2, v.n = [a,b,c,d]
func dotProd(vec1, vec2 []float64) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		sum += vec1[i] * vec2[i]
	}
	return sum
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 4)
	for row := 0; row < 4; row++ {
		c[row] = dotProd(m.row(row), v)
	}
	return c
}

// Transform a point. The argument is unchanged and a new point is returned.
func (m AT) Transform(p Point) Point {
	c := m.multiplyVector([]float64{p.X, p.Y, p.Z, 1.0})
	if !Is1(c[3]) && !Is0(c[3]) {
		return P(c[0]/c[3], c[1]/c[3], c[2]/c[3])
	}
	return P(c[0], c[1], c[2])
}

// TransformAll transforms a slice of points into a new slice.
func (m AT) TransformAll(pts []Point) []Point {
	r := make([]Point, len(pts))
	for i, p := range pts {
		r[i] = m.Transform(p)
	}
	return r
}
