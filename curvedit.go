/*
Package curvedit implements points, colors and affine transformations for an
interactive editor of closed control polygons. Sub-packages derive curves
from a control polygon (subdivision, Bézier and Catmull-Rom splines), compute
Frenet frames, and implement picking and display state.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvedit

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'curvedit'
func tracer() tracing.Trace {
	return tracing.Select("curvedit")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Point Data Type =======================================================

// Point is a point in 3D space with an implicit homogeneous coordinate w=1.
// Points are values; all operations return new points.
type Point struct {
	X, Y, Z float64
}

// Origin represents the frequently used constant (0,0,0).
var Origin = P(0, 0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return Point{p.X * a, p.Y * a, p.Z * a}
}

// Div returns a new point with all coordinates divided by a.
// Dividing by zero is a programmer error.
func (p Point) Div(a float64) Point {
	if a == 0 {
		panic("curvedit: point divided by zero")
	}
	return Point{p.X / a, p.Y / a, p.Z / a}
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return p.Add(q).Div(2)
}

// Zap rounds all coordinates to Epsilon.
func (p Point) Zap() Point {
	return Point{Zap(p.X), Zap(p.Y), Zap(p.Z)}
}

// IsOrigin is a predicate: is this point the origin?
func (p Point) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two points within Epsilon.
func (p Point) Equal(q Point) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// IsFinite is a predicate: are all coordinates neither NaN nor ±Inf?
func (p Point) IsFinite() bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vec returns p as a go3d vector.
func (p Point) Vec() vec3.T {
	return vec3.T{p.X, p.Y, p.Z}
}

// FromVec converts a go3d vector to a point.
func FromVec(v vec3.T) Point {
	return Point{v[0], v[1], v[2]}
}

// Length is the euclidian length of p, interpreted as a vector.
func (p Point) Length() float64 {
	v := p.Vec()
	return v.Length()
}

// Distance returns the euclidian distance between p and q.
func (p Point) Distance(q Point) float64 {
	a, b := p.Vec(), q.Vec()
	return vec3.Distance(&a, &b)
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	a, b := p.Vec(), q.Vec()
	return vec3.Dot(&a, &b)
}

// Cross returns the cross product p × q.
func (p Point) Cross(q Point) Point {
	a, b := p.Vec(), q.Vec()
	return FromVec(vec3.Cross(&a, &b))
}

// Normalized returns p scaled to unit length. For vectors of (nearly) zero
// length, ok is false and p is returned unchanged.
func (p Point) Normalized() (Point, bool) {
	if Is0(p.Length()) {
		tracer().Debugf("cannot normalize zero-length vector %s", p)
		return p, false
	}
	v := p.Vec()
	return FromVec(v.Normalized()), true
}

// Lerp returns (1-t)·p + t·q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Scaled(1 - t).Add(q.Scaled(t))
}
