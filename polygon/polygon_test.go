package polygon

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(curvedit.P(0, 0, 0)).Knot(curvedit.P(1, 3, 0)).Knot(curvedit.P(3, 0, 0)).Cycle()
	tracer().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0,0) -- (1,3,0) -- (3,0,0) -- cycle", AsString(pg))
	assert.Panics(t, func() { pg.Knot(curvedit.Origin) })
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(curvedit.P(0, 5, 0), curvedit.P(4, 1, 0))
	tracer().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	r := box.BoundingBox()
	assert.Equal(t, 0.0, r.Min.X)
	assert.Equal(t, 1.0, r.Min.Y)
	assert.Equal(t, 4.0, r.Max.X)
	assert.Equal(t, 5.0, r.Max.Y)
}

func TestModuloAccess(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := Decagon()
	assert.Equal(t, DefaultSize, pg.N())
	assert.Equal(t, pg.Z(0), pg.Z(10))
	assert.Equal(t, pg.Z(9), pg.Z(-1))
	assert.Equal(t, pg.Z(3), pg.Z(-17))
	assert.True(t, pg.Z(0).Equal(curvedit.P(1, 0, 0)))
	assert.True(t, pg.Z(5).Equal(curvedit.P(-1, 0, 0)))
	for i := 0; i < pg.N(); i++ {
		assert.InDelta(t, 1.0, pg.Z(i).Length(), curvedit.Epsilon)
	}
}

func TestSetZ(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := Decagon()
	orig := pg.Clone()
	pg.SetZ(0, curvedit.P(1, 1, 0))
	assert.Equal(t, curvedit.P(1, 1, 0), pg.Z(0))
	assert.NotEqual(t, orig.Z(0), pg.Z(0), "clone must not share knots")
	for i := 1; i < pg.N(); i++ {
		assert.Equal(t, orig.Z(i), pg.Z(i))
	}
	assert.Panics(t, func() { pg.SetZ(10, curvedit.Origin) })
	assert.Panics(t, func() { pg.SetZ(-1, curvedit.Origin) })
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var nilpg *Polygon
	assert.True(t, errors.Is(nilpg.Validate(), ErrNilPolygon))
	open := NullPolygon().Knot(curvedit.P(0, 0, 0)).Knot(curvedit.P(1, 0, 0)).Knot(curvedit.P(0, 1, 0))
	assert.True(t, errors.Is(open.Validate(), ErrNotCyclic))
	short := NullPolygon().Knot(curvedit.P(0, 0, 0)).Knot(curvedit.P(1, 0, 0)).Cycle()
	assert.True(t, errors.Is(short.Validate(), ErrTooFewKnots))
	bad := Decagon()
	bad.SetZ(4, curvedit.P(math.NaN(), 0, 0))
	err := bad.Validate()
	assert.True(t, errors.Is(err, ErrInvalidKnot))
	t.Logf("err = %v", err)
	assert.NoError(t, Decagon().Validate())
}

func TestHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(curvedit.P(0, 0, 0)).Knot(curvedit.P(1, 1, 0)).
		Knot(curvedit.P(2, 0, 0)).Knot(curvedit.P(2, 2, 0)).Knot(curvedit.P(0, 2, 0)).Cycle()
	hull := pg.Hull()
	assert.Len(t, hull, 4, "inner knot must not be on hull")
	assert.True(t, pg.HullContains(curvedit.P(1, 1, 5)))
	assert.True(t, pg.HullContains(curvedit.P(0, 1, 0)), "boundary counts as inside")
	assert.True(t, pg.HullContains(curvedit.P(2, 2, 0)), "corner counts as inside")
	assert.False(t, pg.HullContains(curvedit.P(3, 1, 0)))
	assert.True(t, pg.HullContainsAll(pg.Points()))
	assert.False(t, pg.HullContainsAll([]curvedit.Point{curvedit.P(1, 1, 0), curvedit.P(-1, 0, 0)}))
}
