/*
Package editor owns the state of an interactive control polygon editor.

An Editor holds the control polygon, the per-point colors, the pools of
derived points, the picking session and the display mode. Every edit of a
control point rebuilds all derived pools:

	control polygon
	  ├─ subdivision levels 1…5
	  ├─ Bézier ribbon
	  ├─ Catmull-Rom helpers, helper strip and samples
	  └─ second view (offset and mirrored polygon)

The traveling marker runs along the Catmull-Rom samples, one sample per
Tick. Frame flattens the visible pools into a vertex list with draw
commands, for a renderer to consume.

Editors are not safe for concurrent use; they are meant to be driven by a
single frame loop.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package editor

import (
	"errors"
	"fmt"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/bezier"
	"github.com/npillmayer/curvedit/catmull"
	"github.com/npillmayer/curvedit/display"
	"github.com/npillmayer/curvedit/frenet"
	"github.com/npillmayer/curvedit/picking"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/curvedit/subdiv"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.editor'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.editor")
}

// ErrLevels indicates a number of subdivision levels without display pools.
var ErrLevels = errors.New("unsupported number of subdivision levels")

// Second view transforms: the primary view moves right, the mirrored
// polygon (z−2, y, x) appears on the left.
var (
	primaryOffset = curvedit.Translation(curvedit.P(2, 0, 0))
	mirror        = curvedit.SwapXZ().Combine(curvedit.Translation(curvedit.P(-2, 0, 0)))
)

// Vertex is a point with its display color.
type Vertex struct {
	Pos   curvedit.Point
	Color curvedit.Color
}

// Pools maps pool IDs to their vertices.
type Pools map[display.PoolID][]Vertex

// Selection is the currently dragged control point, together with the
// color it had before it was highlighted.
type Selection struct {
	ID       int
	Selected bool
	Saved    curvedit.Color
}

// Editor is the state of an editing session.
type Editor struct {
	pg      *polygon.Polygon
	colors  []curvedit.Color
	pools   [][]Vertex // indexed by display.PoolID
	spline  *catmull.Spline
	marker  frenet.Marker
	ctrl    *display.Controller
	session *picking.Session
	cam     *picking.Camera
	levels  int
	samples int
}

// New creates an editor and computes all derived pools.
func New(opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.polygon == nil {
		o.polygon = polygon.Decagon()
	}
	if err := o.polygon.Validate(); err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	if n := o.polygon.N(); n != polygon.DefaultSize {
		return nil, fmt.Errorf("editor: %w: need %d, got %d", polygon.ErrKnotCount, polygon.DefaultSize, n)
	}
	if o.levels < 0 || o.levels > display.MaxLevel {
		return nil, fmt.Errorf("editor: %w: %d", ErrLevels, o.levels)
	}
	if o.camera == nil {
		o.camera = picking.NewCamera(picking.DefaultWidth, picking.DefaultHeight)
	}
	if o.pass == nil {
		o.pass = picking.NewSoftwarePass(picking.DefaultPointSize)
	}
	e := &Editor{
		pg:      o.polygon.Clone(),
		colors:  make([]curvedit.Color, o.polygon.N()),
		pools:   make([][]Vertex, len(display.Pools())),
		ctrl:    display.NewController(),
		cam:     o.camera,
		levels:  o.levels,
		samples: o.samples,
	}
	for i := range e.colors {
		e.colors[i] = curvedit.White
	}
	session, err := picking.NewSession(e, o.pass, o.camera, o.encoding)
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	e.session = session
	if err := e.Recompute(); err != nil {
		return nil, err
	}
	tracer().Infof("editor created for %s", polygon.AsString(e.pg))
	return e, nil
}

// Polygon returns a copy of the control polygon.
func (e *Editor) Polygon() *polygon.Polygon {
	return e.pg.Clone()
}

// Camera returns the editor's camera.
func (e *Editor) Camera() *picking.Camera {
	return e.cam
}

// Mode returns the current display mode.
func (e *Editor) Mode() display.Mode {
	return e.ctrl.Mode()
}

// Selection returns the current selection state.
func (e *Editor) Selection() Selection {
	id, ok := e.session.Selected()
	if !ok {
		return Selection{ID: -1}
	}
	return Selection{ID: id, Selected: true, Saved: e.session.SavedColor()}
}

// --- Recompute cascade -----------------------------------------------------

// Recompute rebuilds every derived pool from the control polygon.
func (e *Editor) Recompute() error {
	levels, err := subdiv.Levels(e.pg, e.levels)
	if err != nil {
		tracer().Errorf("recompute: %v", err)
		return fmt.Errorf("editor: %w", err)
	}
	spline, err := catmull.Build(e.pg, e.samples)
	if err != nil {
		tracer().Errorf("recompute: %v", err)
		return fmt.Errorf("editor: %w", err)
	}
	e.spline = spline
	for id := range e.pools {
		e.pools[id] = e.pools[id][:0]
	}
	e.rebuildControl()
	for l := 1; l <= display.MaxLevel; l++ {
		if l < len(levels) {
			e.fill(display.LevelPool(l), levels[l].Points(), curvedit.Cyan)
		}
	}
	e.fill(display.Bezier, bezier.Reconstruct(e.pg).Points(), curvedit.Yellow)
	e.fill(display.CatmullHelpers, spline.Helpers(), curvedit.Red)
	e.fill(display.CatmullStrip, spline.HelperStrip(), curvedit.Red)
	e.fill(display.CatmullSamples, spline.Samples, curvedit.Green)
	pts := e.pg.Points()
	e.fill(display.SecondPrimary, primaryOffset.TransformAll(pts), curvedit.White)
	e.fill(display.SecondMirror, mirror.TransformAll(pts), curvedit.White)
	e.rebuildMarker()
	tracer().Debugf("recomputed pools for %d knots", e.pg.N())
	return nil
}

func (e *Editor) fill(id display.PoolID, pts []curvedit.Point, c curvedit.Color) {
	pool := e.pools[id][:0]
	for _, p := range pts {
		pool = append(pool, Vertex{Pos: p, Color: c})
	}
	e.pools[id] = pool
}

func (e *Editor) rebuildControl() {
	pool := e.pools[display.Control][:0]
	for i := 0; i < e.pg.N(); i++ {
		pool = append(pool, Vertex{Pos: e.pg.Z(i), Color: e.colors[i]})
	}
	e.pools[display.Control] = pool
}

func (e *Editor) rebuildMarker() {
	for _, id := range []display.PoolID{display.Marker, display.AxisN, display.AxisB, display.AxisT} {
		e.pools[id] = e.pools[id][:0]
	}
	f, ok := e.marker.Frame()
	if !ok {
		return
	}
	e.pools[display.Marker] = append(e.pools[display.Marker], Vertex{Pos: f.Origin, Color: curvedit.Yellow})
	axes := f.Axes(1)
	for i, id := range []display.PoolID{display.AxisN, display.AxisB, display.AxisT} {
		e.pools[id] = append(e.pools[id],
			Vertex{Pos: axes[i].From, Color: axes[i].Color},
			Vertex{Pos: axes[i].To, Color: axes[i].Color})
	}
}

// Pool returns a copy of a single pool. Asking for an unknown pool is a
// programmer error.
func (e *Editor) Pool(id display.PoolID) []Vertex {
	if id < 0 || int(id) >= len(e.pools) {
		panic(fmt.Sprintf("unknown pool %s", id))
	}
	pool := make([]Vertex, len(e.pools[id]))
	copy(pool, e.pools[id])
	return pool
}

// Pools returns a copy of all pools.
func (e *Editor) Pools() Pools {
	pools := make(Pools, len(e.pools))
	for _, id := range display.Pools() {
		pools[id] = e.Pool(id)
	}
	return pools
}

// --- Marker ----------------------------------------------------------------

// Tick advances the traveling marker by one sample, if the marker is on.
func (e *Editor) Tick() {
	if !e.ctrl.Mode().Marker {
		return
	}
	e.marker.Tick(e.spline.Samples)
	e.rebuildMarker()
}

// --- Input events ----------------------------------------------------------

// MouseDown starts picking at cursor position (x,y), top-left origin.
func (e *Editor) MouseDown(x, y float64) error {
	_, _, err := e.session.Press(x, y)
	return err
}

// MouseMove drags the selected control point, if any.
func (e *Editor) MouseMove(x, y float64) error {
	return e.session.Move(x, y, e.ctrl.Mode().Drag)
}

// MouseUp ends dragging.
func (e *Editor) MouseUp() {
	e.session.Release()
}

// KeyDown forwards a key press to the display controller. It returns true
// if the display mode changed.
func (e *Editor) KeyDown(k display.Key) bool {
	return e.ctrl.KeyDown(k)
}

// KeyUp forwards a key release to the display controller.
func (e *Editor) KeyUp(k display.Key) {
	e.ctrl.KeyUp(k)
}

// --- picking.Target --------------------------------------------------------

// Tracked returns the number of pickable points, i.e. the control points.
func (e *Editor) Tracked() int {
	return e.pg.N()
}

// Position returns control point id.
func (e *Editor) Position(id int) curvedit.Point {
	return e.pg.Z(id)
}

// Color returns the display color of control point id.
func (e *Editor) Color(id int) curvedit.Color {
	return e.colors[id]
}

// SetColor changes the display color of control point id.
func (e *Editor) SetColor(id int, c curvedit.Color) {
	e.colors[id] = c
	e.pools[display.Control][id].Color = c
}

// Move moves control point id to p and recomputes all derived pools.
func (e *Editor) Move(id int, p curvedit.Point) {
	e.pg.SetZ(id, p)
	if err := e.Recompute(); err != nil {
		tracer().Errorf("moving point %d: %v", id, err)
	}
}

var _ picking.Target = (*Editor)(nil)
