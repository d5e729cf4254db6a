/*
Package bezier reconstructs the uniform cubic B-spline of a closed control
polygon as a ring of cubic Bézier segments.

For every edge Pᵢ → Pᵢ₊₁ the edge is split into thirds,

	Aᵢ = (2Pᵢ + Pᵢ₊₁) / 3
	Bᵢ = (Pᵢ + 2Pᵢ₊₁) / 3

and neighbouring thirds are joined at their midpoint,

	Joinᵢ = (Bᵢ₋₁ + Aᵢ) / 2

Segment i is the cubic Bézier curve [Joinᵢ, Aᵢ, Bᵢ, Joinᵢ₊₁]. It is the
exact B-spline segment between knots i and i+1, which makes the ribbon the
limit curve of subdivision (package subdiv).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.bezier'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.bezier")
}

// Cubic is a cubic Bézier segment, given by its start point, two control
// points and its end point.
type Cubic [4]curvedit.Point

// Start is the point at t=0.
func (c Cubic) Start() curvedit.Point {
	return c[0]
}

// End is the point at t=1.
func (c Cubic) End() curvedit.Point {
	return c[3]
}

// Eval evaluates the segment at t ∈ [0,1] in Bernstein form.
func (c Cubic) Eval(t float64) curvedit.Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return c[0].Scaled(b0).Add(c[1].Scaled(b1)).Add(c[2].Scaled(b2)).Add(c[3].Scaled(b3))
}

// Nearest finds the parameter t of the point on c closest to p, and the
// distance of p to it.
func (c Cubic) Nearest(p curvedit.Point) (float64, float64) {
	const coarse = 32
	best, bestd := 0.0, math.Inf(1)
	for k := 0; k <= coarse; k++ {
		t := float64(k) / coarse
		if d := c.Eval(t).Distance(p); d < bestd {
			best, bestd = t, d
		}
	}
	// golden section search around the best coarse sample
	lo := math.Max(0, best-1.0/coarse)
	hi := math.Min(1, best+1.0/coarse)
	const phi = 0.6180339887498949
	for hi-lo > 1e-12 {
		m1 := hi - phi*(hi-lo)
		m2 := lo + phi*(hi-lo)
		if c.Eval(m1).Distance(p) < c.Eval(m2).Distance(p) {
			hi = m2
		} else {
			lo = m1
		}
	}
	t := (lo + hi) / 2
	if d := c.Eval(t).Distance(p); d < bestd {
		best, bestd = t, d
	}
	return best, bestd
}

func (c Cubic) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s", c[0], c[1], c[2], c[3])
}

// Ribbon is the ring of Bézier segments reconstructing the B-spline of a
// closed control polygon. All slices have one entry per knot.
type Ribbon struct {
	A     []curvedit.Point // first third point of edge i
	B     []curvedit.Point // second third point of edge i
	Joins []curvedit.Point // join point near knot i
}

// Reconstruct computes the Bézier ribbon of a closed polygon.
func Reconstruct(pg *polygon.Polygon) *Ribbon {
	n := pg.N()
	r := &Ribbon{
		A:     make([]curvedit.Point, n),
		B:     make([]curvedit.Point, n),
		Joins: make([]curvedit.Point, n),
	}
	for i := 0; i < n; i++ {
		p, next := pg.Z(i), pg.Z(i+1)
		r.A[i] = p.Scaled(2).Add(next).Div(3)
		r.B[i] = p.Add(next.Scaled(2)).Div(3)
	}
	for i := 0; i < n; i++ {
		r.Joins[i] = r.B[(i+n-1)%n].Mid(r.A[i])
	}
	tracer().Debugf("reconstructed %d Bézier segments", n)
	return r
}

// N returns the number of segments.
func (r *Ribbon) N() int {
	return len(r.Joins)
}

// Segment returns segment i (mod N).
func (r *Ribbon) Segment(i int) Cubic {
	n := r.N()
	i = ((i % n) + n) % n
	return Cubic{r.Joins[i], r.A[i], r.B[i], r.Joins[(i+1)%n]}
}

// Points returns the ribbon as a closed strip of points, interleaved as
// Join₀, A₀, B₀, Join₁, A₁, B₁, … for display.
func (r *Ribbon) Points() []curvedit.Point {
	pts := make([]curvedit.Point, 0, 3*r.N())
	for i := 0; i < r.N(); i++ {
		pts = append(pts, r.Joins[i], r.A[i], r.B[i])
	}
	return pts
}

// Sample evaluates every segment at k equidistant parameters t ∈ [0,1),
// returning N·k points along the closed curve.
func (r *Ribbon) Sample(k int) []curvedit.Point {
	if k < 1 {
		return nil
	}
	pts := make([]curvedit.Point, 0, r.N()*k)
	for i := 0; i < r.N(); i++ {
		seg := r.Segment(i)
		for j := 0; j < k; j++ {
			pts = append(pts, seg.Eval(float64(j)/float64(k)))
		}
	}
	return pts
}

// Distance returns the distance of p to the curve.
func (r *Ribbon) Distance(p curvedit.Point) float64 {
	d := math.Inf(1)
	for i := 0; i < r.N(); i++ {
		if _, di := r.Segment(i).Nearest(p); di < d {
			d = di
		}
	}
	return d
}
