package catmull

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testspline(t *testing.T) (*polygon.Polygon, *Spline) {
	t.Helper()
	pg := polygon.Decagon()
	pg.SetZ(0, curvedit.P(1, 1, 0))
	pg.SetZ(6, curvedit.P(-0.5, -0.5, 0.7))
	sp, err := Build(pg, DefaultSamples)
	require.NoError(t, err)
	return pg, sp
}

func TestSampleCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, sp := testspline(t)
	assert.Equal(t, 10, sp.N())
	assert.Len(t, sp.Samples, 170)
	assert.Len(t, sp.Pre, 10)
	assert.Len(t, sp.Post, 10)
	assert.Len(t, sp.Helpers(), 20)
}

func TestInterpolatesKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg, sp := testspline(t)
	for i := 0; i < pg.N(); i++ {
		assert.True(t, sp.Eval(i, 0).Equal(pg.Z(i)), "segment %d at t=0", i)
		assert.True(t, sp.Eval(i, 1).Equal(pg.Z(i+1)), "segment %d at t=1", i)
		// junction samples are duplicated
		first := sp.Samples[i*DefaultSamples]
		last := sp.Samples[i*DefaultSamples+DefaultSamples-1]
		assert.True(t, first.Equal(pg.Z(i)))
		assert.True(t, last.Equal(pg.Z(i+1)))
	}
}

func TestEvalPolynomial(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, sp := testspline(t)
	p0, p1, p2, p3 := sp.Z(2), sp.Post[2], sp.Pre[3], sp.Z(3)
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
		t2, t3 := tt*tt, tt*tt*tt
		mt := 1 - tt
		expected := p0.Scaled(mt * mt * mt).
			Add(p1.Scaled(3 * (t3 - 2*t2 + tt))).
			Add(p2.Scaled(3 * (t2 - t3))).
			Add(p3.Scaled(t3))
		assert.True(t, sp.Eval(2, tt).Equal(expected), "t=%g", tt)
	}
}

func TestHelpers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg, sp := testspline(t)
	for i := 0; i < pg.N(); i++ {
		// knot is the midpoint of its helpers, tangent parallel to the chord
		assert.True(t, sp.Pre[i].Mid(sp.Post[i]).Equal(pg.Z(i)))
		chord := pg.Z(i + 1).Sub(pg.Z(i - 1))
		assert.True(t, sp.Post[i].Sub(sp.Pre[i]).Equal(chord.Scaled(1.0/3)))
	}
	ring := sp.Ring()
	require.Len(t, ring, 31)
	assert.Equal(t, ring[0], ring[30])
	assert.Equal(t, sp.Post[0], ring[1])
	assert.Equal(t, sp.Pre[1], ring[2])
	assert.Equal(t, pg.Z(1), ring[3])
	assert.Equal(t, sp.Pre[0], ring[29])
	strip := sp.HelperStrip()
	require.Len(t, strip, 20)
	assert.Equal(t, sp.Post[9], strip[18])
	assert.Equal(t, sp.Pre[0], strip[19])
}

func TestBuildErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Build(polygon.Decagon(), 1)
	assert.True(t, errors.Is(err, ErrTooFewSamples))
	_, err = Build(polygon.NullPolygon(), DefaultSamples)
	assert.True(t, errors.Is(err, polygon.ErrTooFewKnots))
	sp, err := Build(polygon.Decagon(), 2)
	require.NoError(t, err)
	assert.Len(t, sp.Samples, 20)
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, sp := testspline(t)
	s := AsString(sp)
	tracer().Infof("spline = %s", s)
	assert.True(t, strings.HasPrefix(s, "(1,1,0) .. controls"))
	assert.True(t, strings.HasSuffix(s, ".. cycle"))
	assert.Equal(t, 10, strings.Count(s, "\n"))
	assert.Equal(t, "<nil>", AsString(nil))
}
