/*
Command curvedit runs a headless curve editing session.

It builds the editor with its start-up decagon, replays an input event
script and writes PNG frames for every snapshot event of the script and
for the final state:

	curvedit -config curvedit.yaml -script drag.yaml -out frames

Configuration is read from an optional YAML file. Keys and defaults:

	tracing.adapter: go
	tracelevel.root: Error
	window.width:    1024
	window.height:   768
	pointsize:       10
	samples:         17
	levels:          5
	encoding:        single   # or dual
	output.dir:      .
	output.frames:   true

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/curvedit/editor"
	"github.com/npillmayer/curvedit/polygon"
	"github.com/npillmayer/curvedit/render"
	"github.com/npillmayer/curvedit/script"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer writes to trace with key 'curvedit'
func tracer() tracing.Trace {
	return tracing.Select("curvedit")
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	scriptPath := flag.String("script", "", "input event script")
	outDir := flag.String("out", "", "output directory for frames")
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *outDir != "" {
		conf.Set("output.dir", *outDir)
	}
	if err := initTracing(conf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(conf, *scriptPath); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
}

func initTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// run replays the script at scriptPath, if any, and writes frames.
func run(conf schuko.Configuration, scriptPath string) error {
	s, err := settingsFrom(conf)
	if err != nil {
		return err
	}
	var events []script.Event
	if scriptPath != "" {
		if events, err = script.Load(scriptPath); err != nil {
			return err
		}
	}
	cam := s.camera()
	e, err := editor.New(s.editorOptions(cam)...)
	if err != nil {
		return err
	}
	r := render.New(cam)
	r.PointSize = float64(s.pointSize)
	defer r.Close()
	snapshot := func(name string) error {
		if !s.frames {
			return nil
		}
		if err := r.Render(e.Frame()); err != nil {
			return err
		}
		return r.SavePNG(filepath.Join(s.outDir, name+".png"))
	}
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return err
	}
	if err := script.Replay(e, events, snapshot); err != nil {
		return err
	}
	tracer().Infof("replayed %d events, polygon is %s", len(events), polygon.AsString(e.Polygon()))
	return snapshot("final")
}
