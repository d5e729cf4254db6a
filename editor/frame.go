package editor

import (
	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/display"
)

// Range locates a pool within a frame's vertex list.
type Range struct {
	Pool  display.PoolID
	Start int
	Count int
}

// Draw is a draw command resolved to vertex indices. For closed line strips
// the first index is repeated at the end.
type Draw struct {
	display.Command
	Indices []int
}

// Frame is everything a renderer needs to draw the current state: all
// vertices in one list, the pools' ranges in it, and the visible draw
// commands, back to front.
type Frame struct {
	Vertices   []Vertex
	Ranges     []Range
	Draws      []Draw
	Background curvedit.Color
}

// Frame flattens the pools and resolves the draw list of the current
// display mode.
func (e *Editor) Frame() *Frame {
	f := &Frame{Background: curvedit.Background}
	ranges := make(map[display.PoolID]Range, len(e.pools))
	for _, id := range display.Pools() {
		r := Range{Pool: id, Start: len(f.Vertices), Count: len(e.pools[id])}
		f.Vertices = append(f.Vertices, e.pools[id]...)
		f.Ranges = append(f.Ranges, r)
		ranges[id] = r
	}
	for _, cmd := range e.ctrl.Commands() {
		r := ranges[cmd.Pool]
		if r.Count == 0 {
			continue
		}
		indices := make([]int, 0, r.Count+1)
		for i := 0; i < r.Count; i++ {
			indices = append(indices, r.Start+i)
		}
		if cmd.Primitive == display.LineStrip && cmd.Closed {
			indices = append(indices, r.Start)
		}
		f.Draws = append(f.Draws, Draw{Command: cmd, Indices: indices})
	}
	return f
}

// Range returns the range of a pool.
func (f *Frame) Range(id display.PoolID) (Range, bool) {
	for _, r := range f.Ranges {
		if r.Pool == id {
			return r, true
		}
	}
	return Range{}, false
}
