package main

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/curvedit/catmull"
	"github.com/npillmayer/curvedit/editor"
	"github.com/npillmayer/curvedit/picking"
	"github.com/npillmayer/curvedit/subdiv"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
)

var defaults = map[string]interface{}{
	"tracelevel.root": "Error",
	"window.width":    picking.DefaultWidth,
	"window.height":   picking.DefaultHeight,
	"pointsize":       picking.DefaultPointSize,
	"samples":         catmull.DefaultSamples,
	"levels":          subdiv.DefaultLevels,
	"encoding":        "single",
	"output.dir":      ".",
	"output.frames":   true,
}

// loadConfig creates the driver configuration from defaults, overlaid by
// a YAML file if path is non-empty.
func loadConfig(path string) (*koanfadapter.KConf, error) {
	conf := koanfadapter.New(nil, "", nil)
	conf.InitDefaults()
	k := conf.Koanf()
	if err := k.Load(confmap.Provider(defaults, k.Delim()), nil); err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading configuration %s: %w", path, err)
		}
	}
	return conf, nil
}

// settings are the driver parameters read from a configuration.
type settings struct {
	width, height int
	pointSize     int
	samples       int
	levels        int
	encoding      picking.Encoding
	outDir        string
	frames        bool
}

func settingsFrom(conf schuko.Configuration) (settings, error) {
	s := settings{
		width:     conf.GetInt("window.width"),
		height:    conf.GetInt("window.height"),
		pointSize: conf.GetInt("pointsize"),
		samples:   conf.GetInt("samples"),
		levels:    conf.GetInt("levels"),
		outDir:    conf.GetString("output.dir"),
		frames:    conf.GetBool("output.frames"),
	}
	if s.width <= 0 || s.height <= 0 {
		return s, fmt.Errorf("invalid window size %dx%d", s.width, s.height)
	}
	if s.pointSize <= 0 {
		s.pointSize = picking.DefaultPointSize
	}
	if s.outDir == "" {
		s.outDir = "."
	}
	enc, err := picking.ParseEncoding(conf.GetString("encoding"))
	if err != nil {
		return s, err
	}
	s.encoding = enc
	return s, nil
}

func (s settings) camera() *picking.Camera {
	return picking.NewCamera(s.width, s.height)
}

func (s settings) editorOptions(cam *picking.Camera) []editor.Option {
	return []editor.Option{
		editor.WithCamera(cam),
		editor.WithPass(picking.NewSoftwarePass(s.pointSize)),
		editor.WithEncoding(s.encoding),
		editor.WithLevels(s.levels),
		editor.WithSamples(s.samples),
	}
}
