package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/curvedit/display"
	"github.com/npillmayer/curvedit/editor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, err := editor.New()
	require.NoError(t, err)
	r := New(e.Camera())
	defer r.Close()
	require.NoError(t, r.Render(e.Frame()))
	img := r.Image()
	assert.Equal(t, e.Camera().Width, img.Bounds().Dx())
	bg := color.NRGBAModel.Convert(img.At(2, 2)).(color.NRGBA)
	assert.Equal(t, uint8(0), bg.R)
	assert.Equal(t, uint8(102), bg.B)
	// control point 0 is drawn as a white square around (384,384)
	x, y := e.Camera().Project(e.Polygon().Z(0))
	pt := color.NRGBAModel.Convert(img.At(int(x), int(y))).(color.NRGBA)
	assert.Greater(t, pt.R, uint8(200))
	assert.Greater(t, pt.G, uint8(200))
	// all curves on
	for _, k := range []display.Key{display.Key1, display.Key2, display.Key3, display.Key4, display.Key5} {
		e.KeyDown(k)
	}
	e.Tick()
	assert.NoError(t, r.Render(e.Frame()))
}

func TestSavePNG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, err := editor.New()
	require.NoError(t, err)
	r := New(e.Camera())
	defer r.Close()
	require.NoError(t, r.Render(e.Frame()))
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, r.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
