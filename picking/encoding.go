/*
Package picking selects and drags control points with the mouse.

Selection works by ID colors: every tracked point is drawn in a color
encoding its ID into an offscreen buffer, and the pixel under the cursor is
read back and decoded. The background is cleared to white, which decodes to
an ID ≥ the number of tracked points.

A Session walks through the states Idle → Picking → Dragging → Idle.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package picking

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.picking'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.picking")
}

// ErrCapacityExceeded is returned if an encoding cannot represent an ID for
// every tracked point.
var ErrCapacityExceeded = errors.New("too many points for picking encoding")

// Encoding selects how IDs are mapped to colors.
type Encoding int

const (
	// SingleChannel encodes an ID as gray value id/255.
	SingleChannel Encoding = iota
	// DualChannel encodes the low byte of an ID in red and the high byte
	// in green.
	DualChannel
)

// Capacity is the number of IDs an encoding is able to represent besides
// the background.
func (enc Encoding) Capacity() int {
	switch enc {
	case SingleChannel:
		return 255
	case DualChannel:
		return 65535
	}
	panic(fmt.Sprintf("unknown picking encoding %d", enc))
}

func (enc Encoding) String() string {
	switch enc {
	case SingleChannel:
		return "single"
	case DualChannel:
		return "dual"
	}
	return fmt.Sprintf("Encoding(%d)", int(enc))
}

// ParseEncoding finds an encoding by name, as returned by String.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "single", "":
		return SingleChannel, nil
	case "dual":
		return DualChannel, nil
	}
	return SingleChannel, fmt.Errorf("unknown picking encoding %q", s)
}

// Encoder maps IDs in [0,total) to colors and back.
type Encoder struct {
	enc   Encoding
	total int
}

// NewEncoder creates an encoder for total tracked points.
func NewEncoder(enc Encoding, total int) (*Encoder, error) {
	if total < 0 || total > enc.Capacity() {
		return nil, fmt.Errorf("%w: %d points, %s encoding holds %d",
			ErrCapacityExceeded, total, enc, enc.Capacity())
	}
	return &Encoder{enc: enc, total: total}, nil
}

// Total returns the number of tracked points.
func (e *Encoder) Total() int {
	return e.total
}

// Encode returns the ID color for id. id has to be in [0,Total).
func (e *Encoder) Encode(id int) curvedit.Color {
	if id < 0 || id >= e.total {
		panic(fmt.Sprintf("picking id %d out of range [0,%d)", id, e.total))
	}
	switch e.enc {
	case DualChannel:
		return curvedit.RGB(float64(id&0xff)/255, float64(id>>8)/255, 0)
	default:
		return curvedit.Gray(float64(id) / 255)
	}
}

// Codes returns the ID colors for all tracked points.
func (e *Encoder) Codes() []curvedit.Color {
	codes := make([]curvedit.Color, e.total)
	for id := range codes {
		codes[id] = e.Encode(id)
	}
	return codes
}

// Decode converts a pixel read back from the picking buffer to an ID. ok is
// false for background pixels, i.e. any value ≥ Total.
func (e *Encoder) Decode(c color.NRGBA) (id int, ok bool) {
	switch e.enc {
	case DualChannel:
		id = int(c.R) | int(c.G)<<8
	default:
		id = int(c.R)
	}
	return id, id < e.total
}
