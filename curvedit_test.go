package curvedit

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(-a) != 0 {
		t.Errorf("Expected -a to be zapped to 0, is %g", Zap(-a))
	}
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2, 1)
	q := P(-3, -2, -1)
	r := p.Add(q)
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0,0), is %v", r)
	}
	assert.Equal(t, P(1.5, 1, 0.5), p.Mid(Origin))
	assert.Equal(t, P(6, 4, 2), p.Sub(q))
	assert.Equal(t, "(3,2,1)", p.String())
}

func TestPointVectorOps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, y := P(1, 0, 0), P(0, 1, 0)
	assert.True(t, x.Cross(y).Equal(P(0, 0, 1)))
	assert.InDelta(t, 0.0, x.Dot(y), Epsilon)
	assert.InDelta(t, 5.0, P(3, 4, 0).Length(), Epsilon)
	assert.InDelta(t, math.Sqrt(2), x.Distance(y), Epsilon)
	n, ok := P(0, 0, 7).Normalized()
	assert.True(t, ok)
	assert.True(t, n.Equal(P(0, 0, 1)))
	_, ok = Origin.Normalized()
	assert.False(t, ok, "zero vector must not normalize")
	assert.True(t, x.Lerp(y, 0.5).Equal(P(0.5, 0.5, 0)))
}

func TestPointDivByZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Panics(t, func() { P(1, 1, 1).Div(0) })
}

func TestPointFinite(t *testing.T) {
	assert.True(t, P(1, 2, 3).IsFinite())
	assert.False(t, P(math.NaN(), 0, 0).IsFinite())
	assert.False(t, P(0, math.Inf(-1), 0).IsFinite())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1, -1)).Transform(P(1, 1, 1)).IsOrigin() {
		t.Errorf("Expected (1,1,1) shifted (-1,-1,-1) to be origin, is not")
	}
	if !Identity().Transform(P(4, 5, 6)).Equal(P(4, 5, 6)) {
		t.Errorf("Expected identity to leave point unchanged")
	}
}

func TestCombineMirror(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// swap x and z, then move left by 2
	m := SwapXZ().Combine(Translation(P(-2, 0, 0)))
	p := m.Transform(P(1, 2, 3))
	assert.True(t, p.Equal(P(1, 2, 1)), "got %v", p)
	pts := m.TransformAll([]Point{P(0, 0, 0), P(1, 0, 0)})
	assert.Len(t, pts, 2)
	assert.True(t, pts[1].Equal(P(-2, 0, 1)))
	t.Logf("m = %s", m)
}

func TestColorNRGBA(t *testing.T) {
	c := Highlight.NRGBA()
	assert.Equal(t, uint8(204), c.R)
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, uint8(0), RGB(-1, 2, 0).NRGBA().R)
	assert.Equal(t, uint8(255), RGB(-1, 2, 0).NRGBA().G)
	assert.Equal(t, uint8(102), Background.NRGBA().B)
}
