package script

import (
	"fmt"

	"github.com/npillmayer/curvedit/display"
)

// Target receives replayed events. *editor.Editor is a Target.
type Target interface {
	MouseDown(x, y float64) error
	MouseMove(x, y float64) error
	MouseUp()
	KeyDown(k display.Key) bool
	KeyUp(k display.Key)
	Tick()
}

// Replay sends events to t, in order. Snapshot events call snapshot, if
// it is non-nil. Replay stops at the first error.
func Replay(t Target, events []Event, snapshot func(name string) error) error {
	for i, ev := range events {
		var err error
		switch ev.Kind {
		case MouseDown:
			err = t.MouseDown(ev.X, ev.Y)
		case MouseMove:
			err = t.MouseMove(ev.X, ev.Y)
		case MouseUp:
			t.MouseUp()
		case KeyDown:
			t.KeyDown(ev.Key)
		case KeyUp:
			t.KeyUp(ev.Key)
		case Tick:
			t.Tick()
		case Snapshot:
			if snapshot != nil {
				err = snapshot(ev.Name)
			}
		default:
			err = fmt.Errorf("%w: %s", ErrInvalidEvent, ev.Kind)
		}
		if err != nil {
			return fmt.Errorf("replaying event %d %s: %w", i, ev, err)
		}
		tracer().Debugf("replayed %s", ev)
	}
	return nil
}
