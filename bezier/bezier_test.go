package bezier

import (
	"testing"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func testpolygon() *polygon.Polygon {
	pg := polygon.Decagon()
	pg.SetZ(0, curvedit.P(1, 1, 0))
	pg.SetZ(3, curvedit.P(0.1, 0.4, 0.5))
	return pg
}

func TestCubicEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Cubic{curvedit.P(0, 0, 0), curvedit.P(0, 1, 0), curvedit.P(1, 1, 0), curvedit.P(1, 0, 0)}
	assert.True(t, c.Eval(0).Equal(c.Start()))
	assert.True(t, c.Eval(1).Equal(c.End()))
	assert.True(t, c.Eval(0.5).Equal(curvedit.P(0.5, 0.75, 0)), "got %v", c.Eval(0.5))
	tm, d := c.Nearest(curvedit.P(0.5, 2, 0))
	assert.InDelta(t, 0.5, tm, 1e-6)
	assert.InDelta(t, 1.25, d, 1e-9)
	t.Logf("c = %s", c)
}

func TestJoinsAreMidpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Reconstruct(testpolygon())
	assert.Equal(t, 10, r.N())
	assert.Len(t, r.Joins, 10)
	for i := 0; i < r.N(); i++ {
		prevB := r.B[(i+9)%10]
		assert.True(t, r.Joins[i].Equal(prevB.Mid(r.A[i])), "join %d", i)
	}
}

func TestThirds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := testpolygon()
	r := Reconstruct(pg)
	for i := 0; i < pg.N(); i++ {
		edge := pg.Z(i + 1).Sub(pg.Z(i))
		assert.True(t, r.A[i].Equal(pg.Z(i).Add(edge.Scaled(1.0/3))), "A %d", i)
		assert.True(t, r.B[i].Equal(pg.Z(i).Add(edge.Scaled(2.0/3))), "B %d", i)
	}
}

func TestSegmentsMatchBSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := testpolygon()
	r := Reconstruct(pg)
	for i := 0; i < r.N(); i++ {
		seg := r.Segment(i)
		// limit point of a uniform cubic B-spline at knot i
		lp := pg.Z(i - 1).Add(pg.Z(i).Scaled(4)).Add(pg.Z(i + 1)).Div(6)
		assert.True(t, seg.Start().Equal(lp), "segment %d start", i)
		assert.True(t, seg.End().Equal(r.Segment(i+1).Start()), "segment %d not continuous", i)
		// C1 continuity at the join
		out := r.Segment(i + 1)[1].Sub(seg.End())
		in := seg.End().Sub(seg[2])
		assert.True(t, out.Equal(in), "segment %d not C1", i)
	}
	assert.Equal(t, r.Segment(-1), r.Segment(9))
}

func TestPointsAndSamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Reconstruct(polygon.Decagon())
	pts := r.Points()
	assert.Len(t, pts, 30)
	assert.Equal(t, r.Joins[1], pts[3])
	assert.Equal(t, r.A[9], pts[28])
	samples := r.Sample(8)
	assert.Len(t, samples, 80)
	assert.Nil(t, r.Sample(0))
	for _, p := range samples {
		assert.InDelta(t, 0.0, r.Distance(p), 1e-9)
	}
}
