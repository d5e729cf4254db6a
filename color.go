package curvedit

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with components in [0,1], the way vertex colors
// are handed to a renderer.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Gray creates an opaque gray of intensity v.
func Gray(v float64) Color {
	return RGB(v, v, v)
}

// Palette of the editor.
var (
	White      = RGB(1, 1, 1)   // control points
	Cyan       = RGB(0, 1, 1)   // subdivision levels
	Yellow     = RGB(1, 1, 0)   // Bézier ribbon, traveling marker
	Red        = RGB(1, 0, 0)   // Catmull-Rom helpers, normal axis
	Green      = RGB(0, 1, 0)   // Catmull-Rom samples, binormal axis
	Blue       = RGB(0, 0, 1)   // tangent axis
	Highlight  = Gray(0.8)      // selected control point
	Background = RGB(0, 0, 0.4) // dark blue clear color
)

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3g,%.3g,%.3g,%.3g)", c.R, c.G, c.B, c.A)
}

// NRGBA converts c to an 8-bit color, rounding to nearest.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unorm8(c.R),
		G: unorm8(c.G),
		B: unorm8(c.B),
		A: unorm8(c.A),
	}
}

// unorm8 converts a channel value in [0,1] to a byte the way a GPU stores
// into an 8-bit normalized render target.
func unorm8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
