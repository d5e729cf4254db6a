/*
Package render draws editor frames with a software rasterizer.

It stands in for a GPU shell: vertices are projected with the editor's
camera, point primitives become filled squares, line strips are stroked
segment by segment in the color of their first vertex.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/display"
	"github.com/npillmayer/curvedit/editor"
	"github.com/npillmayer/curvedit/picking"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvedit.render'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.render")
}

// Renderer draws frames into an image.
type Renderer struct {
	cam       *picking.Camera
	dc        *gg.Context
	PointSize float64
	LineWidth float64
}

// New creates a renderer with the viewport size of cam.
func New(cam *picking.Camera) *Renderer {
	return &Renderer{
		cam:       cam,
		dc:        gg.NewContext(cam.Width, cam.Height),
		PointSize: picking.DefaultPointSize,
		LineWidth: 1,
	}
}

func rgba(c curvedit.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Render clears the image and draws all commands of f.
func (r *Renderer) Render(f *editor.Frame) error {
	r.dc.ClearWithColor(rgba(f.Background))
	r.dc.SetLineWidth(r.LineWidth)
	for _, d := range f.Draws {
		var err error
		switch d.Primitive {
		case display.Points:
			err = r.points(f.Vertices, d.Indices)
		case display.LineStrip:
			err = r.strip(f.Vertices, d.Indices)
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", d.Command, err)
		}
	}
	tracer().Debugf("rendered %d draw commands", len(f.Draws))
	return nil
}

func (r *Renderer) points(vertices []editor.Vertex, indices []int) error {
	half := r.PointSize / 2
	for _, i := range indices {
		v := vertices[i]
		x, y := r.cam.Project(v.Pos)
		c := rgba(v.Color)
		r.dc.SetRGBA(c.R, c.G, c.B, c.A)
		r.dc.DrawRectangle(x-half, y-half, r.PointSize, r.PointSize)
		if err := r.dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) strip(vertices []editor.Vertex, indices []int) error {
	for k := 1; k < len(indices); k++ {
		from, to := vertices[indices[k-1]], vertices[indices[k]]
		x0, y0 := r.cam.Project(from.Pos)
		x1, y1 := r.cam.Project(to.Pos)
		c := rgba(from.Color)
		r.dc.SetRGBA(c.R, c.G, c.B, c.A)
		r.dc.MoveTo(x0, y0)
		r.dc.LineTo(x1, y1)
		if err := r.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving frame: %w", err)
	}
	tracer().Infof("frame written to %s", path)
	return nil
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}
