/*
Package subdiv refines closed control polygons by Lane–Riesenfeld
subdivision of uniform cubic B-splines.

Every refinement step doubles the number of knots. For knot Pᵢ of the
current level it emits the split point of the incoming edge and the
smoothed knot:

	(Pᵢ₋₁ + Pᵢ) / 2
	(Pᵢ₋₁ + 6Pᵢ + Pᵢ₊₁) / 8

Repeated refinement converges to the uniform cubic B-spline defined by the
control polygon (see package bezier for its exact cubic segments).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package subdiv

import (
	"errors"
	"fmt"

	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.subdiv'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.subdiv")
}

// DefaultLevels is the number of refinement levels an editor shows.
const DefaultLevels = 5

// ErrNegativeLevel is returned for a negative number of refinement levels.
var ErrNegativeLevel = errors.New("subdivision level must not be negative")

// Refine performs one subdivision step on a closed polygon and returns a new
// polygon with twice the number of knots. pg is unchanged.
func Refine(pg *polygon.Polygon) *polygon.Polygon {
	n := pg.N()
	r := polygon.NullPolygon()
	for i := 0; i < n; i++ {
		prev, p, next := pg.Z(i-1), pg.Z(i), pg.Z(i+1)
		r.Knot(prev.Mid(p))
		r.Knot(prev.Add(p.Scaled(6)).Add(next).Div(8))
	}
	return r.Cycle()
}

// Levels returns the subdivision levels 0…n of pg. Level 0 is a copy of pg,
// level L has N·2ᴸ knots.
func Levels(pg *polygon.Polygon, n int) ([]*polygon.Polygon, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLevel, n)
	}
	if err := pg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot subdivide: %w", err)
	}
	levels := make([]*polygon.Polygon, n+1)
	levels[0] = pg.Clone()
	for l := 1; l <= n; l++ {
		levels[l] = Refine(levels[l-1])
	}
	tracer().Debugf("subdivided %d knots into %d levels", pg.N(), n)
	return levels, nil
}
