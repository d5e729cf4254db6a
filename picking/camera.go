package picking

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/curvedit"
)

// Default viewport size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Camera holds the projection and view transforms and the viewport.
// Window coordinates have their origin in the top-left corner.
type Camera struct {
	Projection mgl64.Mat4
	View       mgl64.Mat4
	Width      int
	Height     int
}

// NewCamera creates the editor's camera: an orthographic projection of
// [-4,4]×[-3,3]×[0,100], looking from (0,0,-5) at the origin, with +y up.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Projection: mgl64.Ortho(-4, 4, -3, 3, 0, 100),
		View: mgl64.LookAtV(
			mgl64.Vec3{0, 0, -5},
			mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{0, 1, 0},
		),
		Width:  width,
		Height: height,
	}
}

// Project maps a world point to window coordinates (top-left origin).
func (cam *Camera) Project(p curvedit.Point) (float64, float64) {
	win := mgl64.Project(mgl64.Vec3{p.X, p.Y, p.Z}, cam.View, cam.Projection,
		0, 0, cam.Width, cam.Height)
	return win.X(), float64(cam.Height) - win.Y()
}

// Unproject maps cursor coordinates back through the projection only, with
// an identity model-view and the raw cursor y. Dragging compensates for
// the flipped axes of the view (see Session).
func (cam *Camera) Unproject(x, y float64) (curvedit.Point, error) {
	obj, err := mgl64.UnProject(mgl64.Vec3{x, y, 0}, mgl64.Ident4(), cam.Projection,
		0, 0, cam.Width, cam.Height)
	if err != nil {
		return curvedit.Origin, err
	}
	return curvedit.P(obj.X(), obj.Y(), obj.Z()), nil
}
