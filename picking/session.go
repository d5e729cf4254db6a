package picking

import (
	"fmt"

	"github.com/npillmayer/curvedit"
)

// Target is the set of points a session is able to pick and drag. IDs are
// in [0,Tracked()) and must be stable over the lifetime of a session.
type Target interface {
	Tracked() int
	Position(id int) curvedit.Point
	Color(id int) curvedit.Color
	SetColor(id int, c curvedit.Color)
	Move(id int, p curvedit.Point) // expected to recompute dependent data
}

// State of a picking session.
type State int

// Session states.
const (
	Idle State = iota
	Picking
	Dragging
)

func (st State) String() string {
	switch st {
	case Idle:
		return "idle"
	case Picking:
		return "picking"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// DragMode selects how cursor movement maps to point movement.
type DragMode int

const (
	// Planar moves a point within its xy-plane.
	Planar DragMode = iota
	// Depth moves a point along z, driven by the cursor's y.
	Depth
)

func (m DragMode) String() string {
	if m == Depth {
		return "depth"
	}
	return "planar"
}

// Session is a picking and dragging interaction on a target.
type Session struct {
	target   Target
	pass     Pass
	cam      *Camera
	enc      *Encoder
	state    State
	selected int
	saved    curvedit.Color
}

// NewSession creates a session in state Idle. It fails if the encoding's
// capacity is insufficient for the target's tracked points.
func NewSession(target Target, pass Pass, cam *Camera, enc Encoding) (*Session, error) {
	e, err := NewEncoder(enc, target.Tracked())
	if err != nil {
		return nil, err
	}
	return &Session{
		target:   target,
		pass:     pass,
		cam:      cam,
		enc:      e,
		selected: -1,
	}, nil
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Selected returns the ID of the point being dragged, if any.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// SavedColor returns the color the selected point will get back on
// release.
func (s *Session) SavedColor() curvedit.Color {
	return s.saved
}

// Press runs the picking pass for the cursor position (x,y). If a point is
// hit, it is highlighted and the session starts dragging it. Hitting the
// background is not an error; ok is false then.
func (s *Session) Press(x, y float64) (id int, ok bool, err error) {
	if s.state == Dragging {
		s.Release()
	}
	s.state = Picking
	n := s.enc.Total()
	points := make([]curvedit.Point, n)
	for i := range points {
		points[i] = s.target.Position(i)
	}
	if err = s.pass.Render(points, s.enc.Codes(), s.cam); err != nil {
		s.state = Idle
		return -1, false, fmt.Errorf("picking at (%g,%g): %w", x, y, err)
	}
	px, err := s.pass.ReadPixel(int(x), int(y))
	if err != nil {
		s.state = Idle
		return -1, false, fmt.Errorf("picking at (%g,%g): %w", x, y, err)
	}
	id, ok = s.enc.Decode(px)
	if !ok {
		tracer().Debugf("pick at (%g,%g): background", x, y)
		s.state = Idle
		return -1, false, nil
	}
	s.selected = id
	s.saved = s.target.Color(id)
	s.target.SetColor(id, curvedit.Highlight)
	s.state = Dragging
	tracer().Infof("picked point %d at (%g,%g)", id, x, y)
	return id, true, nil
}

// Move drags the selected point to follow the cursor. Outside of state
// Dragging, Move does nothing.
//
// The cursor is unprojected without the view transform, whose x-axis
// is flipped, and with y growing downwards. In planar mode the point is
// therefore placed at (−u.x, −u.y), which is exactly below the cursor.
// In depth mode, z is set to P.y + u.y.
func (s *Session) Move(x, y float64, mode DragMode) error {
	if s.state != Dragging {
		return nil
	}
	u, err := s.cam.Unproject(x, y)
	if err != nil {
		return fmt.Errorf("dragging point %d: %w", s.selected, err)
	}
	p := s.target.Position(s.selected)
	switch mode {
	case Depth:
		p.Z = p.Y + u.Y
	default:
		p.X, p.Y = -u.X, -u.Y
	}
	tracer().Debugf("drag %s point %d to %s", mode, s.selected, p)
	s.target.Move(s.selected, p)
	return nil
}

// Release ends dragging and restores the selected point's color.
func (s *Session) Release() {
	if s.state == Dragging && s.selected >= 0 {
		s.target.SetColor(s.selected, s.saved)
		tracer().Infof("released point %d", s.selected)
	}
	s.selected = -1
	s.state = Idle
}
