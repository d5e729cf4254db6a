package display

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// PoolID names a pool of derived points.
type PoolID int

// Pools. Level pools are Level1 … Level1+MaxLevel-1, see LevelPool.
const (
	Control PoolID = iota
	Level1
	Level2
	Level3
	Level4
	Level5
	Bezier
	CatmullHelpers
	CatmullStrip
	CatmullSamples
	SecondPrimary
	SecondMirror
	Marker
	AxisN
	AxisB
	AxisT
	poolCount
)

// Pools returns all pool IDs in ascending order.
func Pools() []PoolID {
	ids := make([]PoolID, poolCount)
	for i := range ids {
		ids[i] = PoolID(i)
	}
	return ids
}

var poolNames = [...]string{
	"control", "level1", "level2", "level3", "level4", "level5", "bezier",
	"catmull.helpers", "catmull.strip", "catmull.samples",
	"second.primary", "second.mirror", "marker", "frame.n", "frame.b", "frame.t",
}

func (id PoolID) String() string {
	if id >= 0 && id < poolCount {
		return poolNames[id]
	}
	return fmt.Sprintf("Pool(%d)", int(id))
}

// LevelPool returns the pool of subdivision level l ∈ [1,MaxLevel].
func LevelPool(l int) PoolID {
	if l < 1 || l > MaxLevel {
		panic(fmt.Sprintf("subdivision level %d has no pool", l))
	}
	return Level1 + PoolID(l-1)
}

// Primitive is the way a pool is drawn.
type Primitive int

// Primitives.
const (
	Points Primitive = iota
	LineStrip
)

func (p Primitive) String() string {
	if p == LineStrip {
		return "linestrip"
	}
	return "points"
}

// Command draws a pool. Closed line strips connect the last point to the
// first.
type Command struct {
	Pool      PoolID
	Primitive Primitive
	Closed    bool
}

func (cmd Command) String() string {
	if cmd.Closed {
		return fmt.Sprintf("%s(%s,closed)", cmd.Primitive, cmd.Pool)
	}
	return fmt.Sprintf("%s(%s)", cmd.Primitive, cmd.Pool)
}

type drawEntry struct {
	visible func(Mode) bool
	cmds    []Command
}

// Drawing layers, back to front.
const (
	layerControl = 0
	layerLevels  = 10
	layerBezier  = 20
	layerCatmull = 30
	layerSecond  = 40
	layerMarker  = 50
)

func drawList() *treemap.Map {
	draws := treemap.NewWithIntComparator()
	draws.Put(layerControl, drawEntry{
		visible: func(Mode) bool { return true },
		cmds:    []Command{{Pool: Control, Primitive: Points}},
	})
	for l := 1; l <= MaxLevel; l++ {
		level := l
		draws.Put(layerLevels+l, drawEntry{
			visible: func(m Mode) bool { return m.Level == level },
			cmds:    []Command{{Pool: LevelPool(level), Primitive: Points}},
		})
	}
	draws.Put(layerBezier, drawEntry{
		visible: func(m Mode) bool { return m.Bezier },
		cmds: []Command{
			{Pool: Bezier, Primitive: LineStrip, Closed: true},
			{Pool: Bezier, Primitive: Points},
		},
	})
	draws.Put(layerCatmull, drawEntry{
		visible: func(m Mode) bool { return m.Catmull },
		cmds: []Command{
			{Pool: CatmullHelpers, Primitive: Points},
			{Pool: CatmullStrip, Primitive: LineStrip, Closed: true},
			{Pool: CatmullSamples, Primitive: LineStrip, Closed: true},
			{Pool: Control, Primitive: LineStrip, Closed: true},
		},
	})
	draws.Put(layerSecond, drawEntry{
		visible: func(m Mode) bool { return m.SecondView },
		cmds: []Command{
			{Pool: SecondPrimary, Primitive: LineStrip, Closed: true},
			{Pool: SecondMirror, Primitive: LineStrip, Closed: true},
		},
	})
	draws.Put(layerMarker, drawEntry{
		visible: func(m Mode) bool { return m.Marker },
		cmds: []Command{
			{Pool: Marker, Primitive: Points},
			{Pool: AxisN, Primitive: LineStrip},
			{Pool: AxisB, Primitive: LineStrip},
			{Pool: AxisT, Primitive: LineStrip},
		},
	})
	return draws
}

// Commands returns the draw commands for the current mode, back to front.
func (c *Controller) Commands() []Command {
	var cmds []Command
	it := c.draws.Iterator()
	for it.Next() {
		entry := it.Value().(drawEntry)
		if entry.visible(c.mode) {
			cmds = append(cmds, entry.cmds...)
		}
	}
	return cmds
}
