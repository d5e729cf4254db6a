/*
Package display keeps track of which derived curves are visible.

Keys 1 to 5 toggle curves, the modifier key toggles the drag mode. Keys
are edge-triggered: holding a key down toggles once, the key has to be
released before it toggles again.

	Key1      B-spline subdivision level 0 (none) → 1 → … → 5 → 0
	Key2      Bézier ribbon
	Key3      Catmull-Rom spline, its helpers and the control polygon
	Key4      second view (offset primary view and mirrored polygon)
	Key5      traveling marker with its Frenet frame
	Modifier  planar ⇄ depth dragging

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package display

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/curvedit/picking"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.display'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.display")
}

// MaxLevel is the highest subdivision level Key1 cycles through.
const MaxLevel = 5

// Key is a key the controller reacts to.
type Key int

// Keys.
const (
	Key1 Key = iota + 1
	Key2
	Key3
	Key4
	Key5
	Modifier
)

func (k Key) String() string {
	switch {
	case k >= Key1 && k <= Key5:
		return fmt.Sprintf("key%d", int(k))
	case k == Modifier:
		return "modifier"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey finds a key by name, as returned by String.
func ParseKey(s string) (Key, error) {
	for k := Key1; k <= Modifier; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// Mode is the set of visibility flags, plus the drag mode.
type Mode struct {
	Level      int  // subdivision level shown, 0 = none
	Bezier     bool // Bézier ribbon shown
	Catmull    bool // Catmull-Rom spline shown
	SecondView bool // second view shown
	Marker     bool // traveling marker on
	Drag       picking.DragMode
}

func (m Mode) String() string {
	return fmt.Sprintf("mode[level=%d,bezier=%v,catmull=%v,second=%v,marker=%v,drag=%s]",
		m.Level, m.Bezier, m.Catmull, m.SecondView, m.Marker, m.Drag)
}

// Controller maps key events to display mode changes.
type Controller struct {
	mode  Mode
	held  map[Key]bool
	draws *treemap.Map // layer → drawEntry
}

// NewController creates a controller with all curves hidden.
func NewController() *Controller {
	return &Controller{
		held:  make(map[Key]bool),
		draws: drawList(),
	}
}

// Mode returns the current display mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// KeyDown handles a key press. It returns true if the display mode changed,
// i.e. if the key was not already held down.
func (c *Controller) KeyDown(k Key) bool {
	if c.held[k] {
		return false
	}
	c.held[k] = true
	switch k {
	case Key1:
		c.mode.Level = (c.mode.Level + 1) % (MaxLevel + 1)
	case Key2:
		c.mode.Bezier = !c.mode.Bezier
	case Key3:
		c.mode.Catmull = !c.mode.Catmull
	case Key4:
		c.mode.SecondView = !c.mode.SecondView
	case Key5:
		c.mode.Marker = !c.mode.Marker
	case Modifier:
		if c.mode.Drag == picking.Planar {
			c.mode.Drag = picking.Depth
		} else {
			c.mode.Drag = picking.Planar
		}
	default:
		tracer().Errorf("ignoring unknown key %s", k)
		delete(c.held, k)
		return false
	}
	tracer().Infof("%s pressed: %s", k, c.mode)
	return true
}

// KeyUp handles a key release and re-arms the key.
func (c *Controller) KeyUp(k Key) {
	delete(c.held, k)
}
