package display

import (
	"testing"

	"github.com/npillmayer/curvedit/picking"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func press(c *Controller, k Key) bool {
	changed := c.KeyDown(k)
	c.KeyUp(k)
	return changed
}

func TestLevelCycle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewController()
	assert.Equal(t, 0, c.Mode().Level)
	for i := 1; i <= 5; i++ {
		press(c, Key1)
		assert.Equal(t, i, c.Mode().Level)
	}
	press(c, Key1)
	assert.Equal(t, 0, c.Mode().Level, "sixth press must return to level 0")
}

func TestToggles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewController()
	press(c, Key2)
	press(c, Key3)
	press(c, Key4)
	press(c, Key5)
	press(c, Modifier)
	m := c.Mode()
	assert.True(t, m.Bezier)
	assert.True(t, m.Catmull)
	assert.True(t, m.SecondView)
	assert.True(t, m.Marker)
	assert.Equal(t, picking.Depth, m.Drag)
	for _, k := range []Key{Key2, Key3, Key4, Key5, Modifier} {
		press(c, k)
	}
	assert.Equal(t, Mode{}, c.Mode())
}

func TestLatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewController()
	assert.True(t, c.KeyDown(Key2))
	assert.False(t, c.KeyDown(Key2), "held key must not fire again")
	assert.False(t, c.KeyDown(Key2))
	assert.True(t, c.Mode().Bezier)
	// other keys are independent
	assert.True(t, c.KeyDown(Key3))
	c.KeyUp(Key2)
	assert.True(t, c.KeyDown(Key2))
	assert.False(t, c.Mode().Bezier)
	assert.False(t, c.KeyDown(Key(42)))
}

func TestCommandsFollowMode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewController()
	assert.Equal(t, []Command{{Pool: Control, Primitive: Points}}, c.Commands())
	press(c, Key1)
	press(c, Key1)
	press(c, Key5)
	press(c, Key2)
	cmds := c.Commands()
	pools := make([]PoolID, len(cmds))
	for i, cmd := range cmds {
		pools[i] = cmd.Pool
	}
	assert.Equal(t, []PoolID{Control, Level2, Bezier, Bezier, Marker, AxisN, AxisB, AxisT}, pools)
	assert.Equal(t, "linestrip(bezier,closed)", cmds[2].String())
}

func TestPoolNames(t *testing.T) {
	assert.Len(t, Pools(), len(poolNames))
	assert.Equal(t, "catmull.samples", CatmullSamples.String())
	assert.Equal(t, Level3, LevelPool(3))
	assert.Panics(t, func() { LevelPool(0) })
	k, err := ParseKey("key4")
	assert.NoError(t, err)
	assert.Equal(t, Key4, k)
	_, err = ParseKey("key9")
	assert.Error(t, err)
}
