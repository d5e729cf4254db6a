/*
Package catmull computes closed Catmull-Rom splines interpolating the knots
of a control polygon.

The tangent at knot Pᵢ is parallel to the chord Pᵢ₋₁ → Pᵢ₊₁. Each knot gets
a pre- and a post-control point:

	preᵢ  = Pᵢ − (Pᵢ₊₁ − Pᵢ₋₁) / 6
	postᵢ = Pᵢ + (Pᵢ₊₁ − Pᵢ₋₁) / 6

Segment i is the cubic Bézier curve [Pᵢ, postᵢ, preᵢ₊₁, Pᵢ₊₁], i.e.

	P(t) = Pᵢ(1−t)³ + postᵢ·3(t³−2t²+t) + preᵢ₊₁·3(t²−t³) + Pᵢ₊₁·t³

Sampling evaluates every segment at t = k/(m−1), k = 0…m−1, for m samples
per segment. End point of segment i and start point of segment i+1 are
both contained in the samples.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmull

import (
	"errors"
	"fmt"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/bezier"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.catmull'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.catmull")
}

// DefaultSamples is the number of samples per segment an editor uses.
const DefaultSamples = 17

// ErrTooFewSamples indicates less than 2 samples per segment.
var ErrTooFewSamples = errors.New("need at least 2 samples per segment")

// Spline is a closed Catmull-Rom spline, together with its helper points
// and samples.
type Spline struct {
	knots      []curvedit.Point // Pᵢ
	Pre        []curvedit.Point // control point i-
	Post       []curvedit.Point // control point i+
	Samples    []curvedit.Point // N·PerSegment sample points
	PerSegment int              // samples per segment
}

// Build computes the Catmull-Rom spline of a closed polygon, sampled with
// perSegment points per segment.
func Build(pg *polygon.Polygon, perSegment int) (*Spline, error) {
	if perSegment < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewSamples, perSegment)
	}
	if err := pg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build spline: %w", err)
	}
	n := pg.N()
	sp := &Spline{
		knots:      pg.Points(),
		Pre:        make([]curvedit.Point, n),
		Post:       make([]curvedit.Point, n),
		Samples:    make([]curvedit.Point, 0, n*perSegment),
		PerSegment: perSegment,
	}
	for i := 0; i < n; i++ {
		tangent := pg.Z(i + 1).Sub(pg.Z(i - 1)).Div(6)
		sp.Pre[i] = pg.Z(i).Sub(tangent)
		sp.Post[i] = pg.Z(i).Add(tangent)
	}
	for i := 0; i < n; i++ {
		seg := sp.Segment(i)
		for k := 0; k < perSegment; k++ {
			sp.Samples = append(sp.Samples, seg.Eval(float64(k)/float64(perSegment-1)))
		}
	}
	tracer().Debugf("Catmull-Rom spline with %d segments, %d samples", n, len(sp.Samples))
	return sp, nil
}

// N returns the number of segments (= knots).
func (sp *Spline) N() int {
	return len(sp.knots)
}

// Z returns knot i (mod N).
func (sp *Spline) Z(i int) curvedit.Point {
	n := sp.N()
	return sp.knots[((i%n)+n)%n]
}

// Segment returns segment i (mod N) as a Bézier cubic.
func (sp *Spline) Segment(i int) bezier.Cubic {
	n := sp.N()
	i = ((i % n) + n) % n
	j := (i + 1) % n
	return bezier.Cubic{sp.knots[i], sp.Post[i], sp.Pre[j], sp.knots[j]}
}

// Eval evaluates segment i at t ∈ [0,1].
func (sp *Spline) Eval(i int, t float64) curvedit.Point {
	return sp.Segment(i).Eval(t)
}

// Ring returns knots and helpers in curve order, closed by repeating the
// first knot:
//
//	P₀, post₀, pre₁, P₁, post₁, …, P₉, post₉, pre₀, P₀
func (sp *Spline) Ring() []curvedit.Point {
	n := sp.N()
	ring := make([]curvedit.Point, 0, 3*n+1)
	for i := 0; i < n; i++ {
		ring = append(ring, sp.knots[i], sp.Post[i], sp.Pre[(i+1)%n])
	}
	return append(ring, sp.knots[0])
}

// HelperStrip returns the helper points connecting consecutive knots,
// to be drawn as a closed strip:
//
//	post₀, pre₁, post₁, pre₂, …, post₉, pre₀
func (sp *Spline) HelperStrip() []curvedit.Point {
	n := sp.N()
	strip := make([]curvedit.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		strip = append(strip, sp.Post[i], sp.Pre[(i+1)%n])
	}
	return strip
}

// Helpers returns all pre- and post-control points, pre-points first.
func (sp *Spline) Helpers() []curvedit.Point {
	h := make([]curvedit.Point, 0, 2*sp.N())
	h = append(h, sp.Pre...)
	return append(h, sp.Post...)
}

// AsString returns a spline as a (debugging) string, in MetaFont-like
// notation:
//
//	(1,0,0) .. controls (1,0.1,0) and (0.8,0.5,0)
//	  .. (0.81,0.59,0) .. controls …
//	  .. cycle
func AsString(sp *Spline) string {
	if sp == nil {
		return "<nil>"
	}
	var s string
	for i := 0; i < sp.N(); i++ {
		if i > 0 {
			s += fmt.Sprintf(" and %s\n  .. ", sp.Pre[i])
		}
		s += fmt.Sprintf("%s .. controls %s", sp.knots[i], sp.Post[i])
	}
	return s + fmt.Sprintf(" and %s\n  .. cycle", sp.Pre[0])
}
