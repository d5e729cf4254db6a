package picking

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/npillmayer/curvedit"
)

// ErrNoPass indicates reading from a pass which has not been rendered.
var ErrNoPass = errors.New("picking pass has not been rendered")

// Pass is an offscreen rendering pass for ID colors. Render draws every
// point in its code color over a white background; ReadPixel reads back a
// single pixel at window coordinates (top-left origin). Implementations
// for GPU contexts live outside this module.
type Pass interface {
	Render(points []curvedit.Point, codes []curvedit.Color, cam *Camera) error
	ReadPixel(x, y int) (color.NRGBA, error)
}

// SoftwarePass renders ID colors into a gg pixmap. Points are drawn as
// squares without anti-aliasing, so every covered pixel holds an exact
// code.
type SoftwarePass struct {
	PointSize int
	pixmap    *gg.Pixmap
}

// DefaultPointSize is the side length of a point sprite in pixels.
const DefaultPointSize = 10

// NewSoftwarePass creates a software picking pass with sprites of
// pointSize pixels.
func NewSoftwarePass(pointSize int) *SoftwarePass {
	if pointSize < 1 {
		pointSize = 1
	}
	return &SoftwarePass{PointSize: pointSize}
}

// Render draws the points into a fresh pixmap of the camera's viewport
// size. Later points overdraw earlier ones.
func (sp *SoftwarePass) Render(points []curvedit.Point, codes []curvedit.Color, cam *Camera) error {
	if len(points) != len(codes) {
		return fmt.Errorf("picking pass: %d points but %d codes", len(points), len(codes))
	}
	if sp.pixmap == nil || sp.pixmap.Width() != cam.Width || sp.pixmap.Height() != cam.Height {
		sp.pixmap = gg.NewPixmap(cam.Width, cam.Height)
	}
	sp.pixmap.Clear(gg.White)
	half := sp.PointSize / 2
	for i, p := range points {
		x, y := cam.Project(p)
		px, py := int(math.Floor(x)), int(math.Floor(y))
		c := storable(codes[i])
		for dy := -half; dy < sp.PointSize-half; dy++ {
			for dx := -half; dx < sp.PointSize-half; dx++ {
				sp.pixmap.SetPixel(px+dx, py+dy, c) // clips
			}
		}
	}
	tracer().Debugf("picking pass rendered %d points", len(points))
	return nil
}

// ReadPixel returns the pixel at (x,y). Pixels outside the viewport read as
// background.
func (sp *SoftwarePass) ReadPixel(x, y int) (color.NRGBA, error) {
	if sp.pixmap == nil {
		return color.NRGBA{}, ErrNoPass
	}
	if x < 0 || y < 0 || x >= sp.pixmap.Width() || y >= sp.pixmap.Height() {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	i := (y*sp.pixmap.Width() + x) * 4
	data := sp.pixmap.Data()
	return color.NRGBA{R: data[i], G: data[i+1], B: data[i+2], A: data[i+3]}, nil
}

// storable converts a code color so that the pixmap, which truncates to
// bytes, stores the same bytes an 8-bit render target would store after
// rounding.
func storable(c curvedit.Color) gg.RGBA {
	n := c.NRGBA()
	return gg.RGBA{
		R: (float64(n.R) + 0.5) / 255,
		G: (float64(n.G) + 0.5) / 255,
		B: (float64(n.B) + 0.5) / 255,
		A: 1,
	}
}
