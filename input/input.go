package input

import (
	"infinite-canvas/geom"
)

// Mode is the interaction currently in progress. Exactly one mode is active
// at a time.
type Mode int

const (
	Idle Mode = iota
	Drawing
	Panning
	Selecting
	Resizing
	Moving
	Editing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Panning:
		return "panning"
	case Selecting:
		return "selecting"
	case Resizing:
		return "resizing"
	case Moving:
		return "moving"
	case Editing:
		return "editing"
	}
	return "unknown"
}

// Tool decides what a plain left-button press does.
type Tool int

const (
	ToolSelect Tool = iota
	ToolDraw
	ToolPan
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolDraw:
		return "draw"
	case ToolPan:
		return "pan"
	}
	return "unknown"
}

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	Wheel
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSpace // space bar held: left drag pans
)

func (m Modifiers) Has(f Modifiers) bool {
	return m&f != 0
}

// Event is a pointer event in screen coordinates.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button Button
	Mods   Modifiers

	// Clicks counts presses in quick succession at the same spot: 2 on the
	// second press of a double click. Zero is treated as 1.
	Clicks int

	// Wheel deltas, in notches.
	WheelX, WheelY float64
}

func (e Event) Point() geom.Point {
	return geom.Pt(e.X, e.Y)
}

// Store is the shape collection the session edits. Paint order is the order
// of IDs: later shapes are on top.
type Store interface {
	IDs() []string
	Bounds(id string) (geom.Rect, bool)
	Add(r geom.Rect) string
	SetBounds(id string, r geom.Rect) error
	Remove(id string) error
	Duplicate(id string, dx, dy float64) (string, error)
	Label(id string) (string, bool)
	SetLabel(id, label string) error
}

type Options struct {
	HandleTolerance float64 // screen pixels
	SnapGrid        float64 // world units, 0 disables snapping
	MinShapeSize    float64 // world units
	ZoomStep        float64 // zoom factor per wheel notch is 1+ZoomStep
	ScrollSpeed     float64 // screen pixels per wheel notch when scroll-panning
	DuplicateOffset float64 // world units
}

func DefaultOptions() Options {
	return Options{
		HandleTolerance: 6,
		MinShapeSize:    1,
		ZoomStep:        0.1,
		ScrollSpeed:     20,
		DuplicateOffset: 20,
	}
}
