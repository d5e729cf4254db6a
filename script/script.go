/*
Package script reads input event scripts for headless editing sessions.

Scripts are YAML documents holding a list of events:

	events:
	  - mouse: down
	    x: 384
	    y: 384
	  - mouse: move
	    x: 384
	    y: 256
	  - mouse: up
	  - key: key1          # action defaults to press, i.e. down + up
	  - key: modifier
	    action: down
	  - tick: 34
	  - snapshot: dragged  # hand the current frame to the caller

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/curvedit/display"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'curvedit.script'
func tracer() tracing.Trace {
	return tracing.Select("curvedit.script")
}

// ErrInvalidEvent indicates a script entry which is not a valid event.
var ErrInvalidEvent = errors.New("invalid script event")

// Kind is the type of an event.
type Kind int

// Event kinds.
const (
	MouseDown Kind = iota
	MouseMove
	MouseUp
	KeyDown
	KeyUp
	Tick
	Snapshot
)

var kindNames = [...]string{"mouse-down", "mouse-move", "mouse-up", "key-down", "key-up", "tick", "snapshot"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a single input event.
type Event struct {
	Kind Kind
	X, Y float64     // cursor position, for mouse events
	Key  display.Key // for key events
	Name string      // for snapshots
}

func (ev Event) String() string {
	switch ev.Kind {
	case MouseDown, MouseMove:
		return fmt.Sprintf("%s(%g,%g)", ev.Kind, ev.X, ev.Y)
	case KeyDown, KeyUp:
		return fmt.Sprintf("%s(%s)", ev.Kind, ev.Key)
	case Snapshot:
		return fmt.Sprintf("%s(%s)", ev.Kind, ev.Name)
	}
	return ev.Kind.String()
}

// entry is the YAML form of one or more events.
type entry struct {
	Mouse    string   `yaml:"mouse"`
	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
	Key      string   `yaml:"key"`
	Action   string   `yaml:"action"`
	Tick     int      `yaml:"tick"`
	Snapshot string   `yaml:"snapshot"`
}

type document struct {
	Events []entry `yaml:"events"`
}

// Parse reads a script.
func Parse(r io.Reader) ([]Event, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading script: %w", err)
	}
	var events []Event
	for i, en := range doc.Events {
		evs, err := en.events()
		if err != nil {
			return nil, fmt.Errorf("script event #%d: %w", i+1, err)
		}
		events = append(events, evs...)
	}
	tracer().Debugf("script with %d events", len(events))
	return events, nil
}

// Load reads a script from a file.
func Load(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func (en entry) events() ([]Event, error) {
	set := 0
	for _, s := range []string{en.Mouse, en.Key, en.Snapshot} {
		if s != "" {
			set++
		}
	}
	if en.Tick != 0 {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: need exactly one of mouse, key, tick, snapshot", ErrInvalidEvent)
	}
	switch {
	case en.Mouse != "":
		return en.mouse()
	case en.Key != "":
		return en.key()
	case en.Snapshot != "":
		return []Event{{Kind: Snapshot, Name: en.Snapshot}}, nil
	}
	if en.Tick < 0 {
		return nil, fmt.Errorf("%w: negative tick count %d", ErrInvalidEvent, en.Tick)
	}
	events := make([]Event, en.Tick)
	for i := range events {
		events[i] = Event{Kind: Tick}
	}
	return events, nil
}

func (en entry) mouse() ([]Event, error) {
	if en.Mouse == "up" {
		return []Event{{Kind: MouseUp}}, nil
	}
	if en.X == nil || en.Y == nil {
		return nil, fmt.Errorf("%w: mouse %s needs x and y", ErrInvalidEvent, en.Mouse)
	}
	switch en.Mouse {
	case "down":
		return []Event{{Kind: MouseDown, X: *en.X, Y: *en.Y}}, nil
	case "move":
		return []Event{{Kind: MouseMove, X: *en.X, Y: *en.Y}}, nil
	}
	return nil, fmt.Errorf("%w: unknown mouse action %q", ErrInvalidEvent, en.Mouse)
}

func (en entry) key() ([]Event, error) {
	k, err := display.ParseKey(en.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	switch en.Action {
	case "", "press":
		return []Event{{Kind: KeyDown, Key: k}, {Kind: KeyUp, Key: k}}, nil
	case "down":
		return []Event{{Kind: KeyDown, Key: k}}, nil
	case "up":
		return []Event{{Kind: KeyUp, Key: k}}, nil
	}
	return nil, fmt.Errorf("%w: unknown key action %q", ErrInvalidEvent, en.Action)
}
