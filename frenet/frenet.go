/*
Package frenet computes moving frames along sampled curves.

For a curve sample c and its successor n, the frame is

	T = normalize(n − c)
	B = normalize(T × (n + c))
	N = normalize(B × T)

A Marker travels along the samples of a closed curve, one sample per tick,
and keeps the frame at its current position.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package frenet

import (
	"errors"
	"fmt"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.frenet'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.frenet")
}

// ErrDegenerateFrame indicates that no frame could be computed, either
// because two samples coincide or because the binormal vanishes.
var ErrDegenerateFrame = errors.New("degenerate frame")

// Frame is an orthonormal frame anchored at a curve sample.
type Frame struct {
	Origin curvedit.Point
	T      curvedit.Point // tangent
	N      curvedit.Point // normal
	B      curvedit.Point // binormal
}

// Compute returns the frame at sample c with successor n.
func Compute(c, n curvedit.Point) (Frame, error) {
	T, ok := n.Sub(c).Normalized()
	if !ok {
		return Frame{}, fmt.Errorf("%w: zero tangent at %s", ErrDegenerateFrame, c)
	}
	B, ok := T.Cross(n.Add(c)).Normalized()
	if !ok {
		return Frame{}, fmt.Errorf("%w: zero binormal at %s", ErrDegenerateFrame, c)
	}
	N, _ := B.Cross(T).Normalized()
	return Frame{Origin: c, T: T, N: N, B: B}, nil
}

func (f Frame) String() string {
	return fmt.Sprintf("frame@%s[T=%s,N=%s,B=%s]", f.Origin, f.T, f.N, f.B)
}

// Axis is a line segment from a frame's origin along one of its axes.
type Axis struct {
	From, To curvedit.Point
	Color    curvedit.Color
}

// Axes returns the three axes of f, scaled to length l, in the order
// N (red), B (green), T (blue).
func (f Frame) Axes(l float64) [3]Axis {
	return [3]Axis{
		{From: f.Origin, To: f.Origin.Add(f.N.Scaled(l)), Color: curvedit.Red},
		{From: f.Origin, To: f.Origin.Add(f.B.Scaled(l)), Color: curvedit.Green},
		{From: f.Origin, To: f.Origin.Add(f.T.Scaled(l)), Color: curvedit.Blue},
	}
}

// --- Marker ----------------------------------------------------------------

// Marker travels along the samples of a closed curve.
type Marker struct {
	index int
	frame Frame
	valid bool
}

// Index returns the sample index of the marker's next tick.
func (m *Marker) Index() int {
	return m.index
}

// Frame returns the most recent non-degenerate frame. ok is false if no frame
// has been computed yet.
func (m *Marker) Frame() (Frame, bool) {
	return m.frame, m.valid
}

// Reset moves the marker back to sample 0 and forgets its frame.
func (m *Marker) Reset() {
	*m = Marker{}
}

// Tick computes the frame at the marker's index, then advances the marker
// by one sample, wrapping around at the end. For a degenerate frame, the
// previous frame is kept. Tick returns the sample index the frame has been
// computed for.
func (m *Marker) Tick(samples []curvedit.Point) int {
	n := len(samples)
	if n == 0 {
		return -1
	}
	if m.index >= n {
		m.index = 0
	}
	at := m.index
	f, err := Compute(samples[at], samples[(at+1)%n])
	if err != nil {
		tracer().Debugf("marker at %d keeps previous frame: %v", at, err)
	} else {
		m.frame, m.valid = f, true
	}
	m.index = (at + 1) % n
	return at
}
