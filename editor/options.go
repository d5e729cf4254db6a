package editor

import (
	"github.com/npillmayer/curvedit/catmull"
	"github.com/npillmayer/curvedit/picking"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/curvedit/subdiv"
)

// Option configures an Editor.
type Option func(*options)

type options struct {
	polygon  *polygon.Polygon
	camera   *picking.Camera
	pass     picking.Pass
	encoding picking.Encoding
	levels   int
	samples  int
}

func defaultOptions() options {
	return options{
		encoding: picking.SingleChannel,
		levels:   subdiv.DefaultLevels,
		samples:  catmull.DefaultSamples,
	}
}

// WithPolygon sets the start-up control polygon. The editor works on a
// copy. Default is polygon.Decagon().
func WithPolygon(pg *polygon.Polygon) Option {
	return func(o *options) {
		o.polygon = pg
	}
}

// WithCamera sets the camera used for picking and dragging.
func WithCamera(cam *picking.Camera) Option {
	return func(o *options) {
		o.camera = cam
	}
}

// WithPass sets the picking pass. Default is a software pass.
func WithPass(pass picking.Pass) Option {
	return func(o *options) {
		o.pass = pass
	}
}

// WithEncoding sets the ID color encoding for picking.
func WithEncoding(enc picking.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithLevels sets the number of subdivision levels to compute.
func WithLevels(n int) Option {
	return func(o *options) {
		o.levels = n
	}
}

// WithSamples sets the number of Catmull-Rom samples per segment.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}
