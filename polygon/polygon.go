/*
Package polygon implements closed control polygons.

A control polygon is an ordered, closed loop of knots. Index arithmetic is
modulo N, i.e. the knot after the last one is the first one. Knots may be
moved, but once a polygon is closed, they are never inserted or removed.

	pg := polygon.NullPolygon().Knot(curvedit.P(0, 0, 0)).Knot(curvedit.P(1, 3, 0)).
		Knot(curvedit.P(3, 0, 0)).Cycle()

The editor starts with a regular decagon, see Decagon.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.polygon'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.polygon")
}

// DefaultSize is the number of knots of an editor's control polygon.
const DefaultSize = 10

var (
	// ErrNilPolygon indicates a nil polygon pointer.
	ErrNilPolygon = errors.New("polygon must not be nil")
	// ErrTooFewKnots indicates a polygon with less than 3 knots.
	ErrTooFewKnots = errors.New("polygon has too few knots")
	// ErrNotCyclic indicates a polygon which has not been closed by Cycle().
	ErrNotCyclic = errors.New("polygon is not cyclic")
	// ErrInvalidKnot indicates a knot coordinate containing NaN/Inf.
	ErrInvalidKnot = errors.New("polygon has invalid knot coordinate")
	// ErrKnotCount indicates a polygon with an unexpected number of knots.
	ErrKnotCount = errors.New("polygon has wrong number of knots")
)

// Polygon is a closed loop of knots. To construct a polygon, start with
// NullPolygon() and extend it, or use Regular.
type Polygon struct {
	points []curvedit.Point // knot i
	cycle  bool             // has Cycle() been called ?
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{points: make([]curvedit.Point, 0, DefaultSize)}
}

// Knot adds a knot to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p curvedit.Point) *Polygon {
	if pg.cycle {
		panic("cannot add knot to a closed polygon")
	}
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: has this polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the knot count.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Z returns the knot at position (i mod N). Negative i count backwards from
// the end.
func (pg *Polygon) Z(i int) curvedit.Point {
	n := pg.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return pg.points[i]
}

// SetZ moves knot i to p. i has to be in [0,N).
func (pg *Polygon) SetZ(i int, p curvedit.Point) {
	if i < 0 || i >= pg.N() {
		panic(fmt.Sprintf("knot index %d out of range [0,%d)", i, pg.N()))
	}
	tracer().Debugf("knot %d moved %s -> %s", i, pg.points[i], p)
	pg.points[i] = p
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []curvedit.Point {
	pts := make([]curvedit.Point, len(pg.points))
	copy(pts, pg.points)
	return pts
}

// Clone returns a deep copy of pg.
func (pg *Polygon) Clone() *Polygon {
	return &Polygon{points: pg.Points(), cycle: pg.cycle}
}

// Validate checks if a polygon may serve as a control polygon.
func (pg *Polygon) Validate() error {
	if pg == nil {
		return ErrNilPolygon
	}
	if n := pg.N(); n < 3 {
		return fmt.Errorf("%w: need at least 3 knots, got %d", ErrTooFewKnots, n)
	}
	if !pg.cycle {
		return ErrNotCyclic
	}
	for i, p := range pg.points {
		if !p.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	return nil
}

// Regular creates a closed regular n-gon of radius r around the origin,
// in the z=0 plane. Knot i is located at angle i·360°/n.
func Regular(n int, r float64) *Polygon {
	pg := NullPolygon()
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pg.Knot(curvedit.P(r*math.Cos(phi), r*math.Sin(phi), 0).Zap())
	}
	return pg.Cycle()
}

// Decagon is the start-up control polygon of the editor: a regular polygon
// of DefaultSize knots with radius 1.
func Decagon() *Polygon {
	return Regular(DefaultSize, 1)
}

// Box creates a rectangular polygon from two diagonal corners, in the z=0
// plane.
func Box(a, b curvedit.Point) *Polygon {
	return NullPolygon().Knot(curvedit.P(a.X, a.Y, 0)).Knot(curvedit.P(b.X, a.Y, 0)).
		Knot(curvedit.P(b.X, b.Y, 0)).Knot(curvedit.P(a.X, b.Y, 0)).Cycle()
}

// AsString returns a polygon as a (debugging) string, in MetaFont-like
// notation.
//
//	(0,0,0) -- (1,3,0) -- (3,0,0) -- cycle
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	var s string
	for i, p := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += p.String()
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}
