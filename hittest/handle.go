package hittest

import "infinite-canvas/geom"

// Handle identifies one of the eight resize handles of a rect. The numeric
// order is also the priority order used when handles overlap.
type Handle int

const (
	TopLeft Handle = iota
	TopRight
	BottomLeft
	BottomRight
	Top
	Right
	Bottom
	Left
)

// NoHandle is returned when no handle is under the pointer.
const NoHandle Handle = -1

// HandleCount is the number of resize handles per rect.
const HandleCount = 8

var handleOffsets = [HandleCount]geom.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 0.5, Y: 0},
	{X: 1, Y: 0.5},
	{X: 0.5, Y: 1},
	{X: 0, Y: 0.5},
}

var handleNames = [HandleCount]string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top", "right", "bottom", "left",
}

func (h Handle) Valid() bool {
	return h >= 0 && h < HandleCount
}

// IsCorner reports whether dragging h moves two edges.
func (h Handle) IsCorner() bool {
	return h >= TopLeft && h <= BottomRight
}

// Offset is the handle position relative to the rect, in units of its width
// and height.
func (h Handle) Offset() geom.Point {
	if !h.Valid() {
		return geom.Point{}
	}
	return handleOffsets[h]
}

// Cursor returns the CSS cursor name shown while hovering or dragging h.
func (h Handle) Cursor() string {
	switch h {
	case TopLeft, BottomRight:
		return "nwse-resize"
	case TopRight, BottomLeft:
		return "nesw-resize"
	case Top, Bottom:
		return "ns-resize"
	case Right, Left:
		return "ew-resize"
	}
	return "default"
}

func (h Handle) String() string {
	if !h.Valid() {
		return "none"
	}
	return handleNames[h]
}

// ParseHandle looks a handle up by its String name.
func ParseHandle(name string) (Handle, bool) {
	for i, n := range handleNames {
		if n == name {
			return Handle(i), true
		}
	}
	return NoHandle, false
}

// Position returns the absolute position of handle h on r.
func Position(r geom.Rect, h Handle) geom.Point {
	o := h.Offset()
	return geom.Point{X: r.X + o.X*r.Width, Y: r.Y + o.Y*r.Height}
}

// Positions returns all eight handle positions of r in priority order.
func Positions(r geom.Rect) [HandleCount]geom.Point {
	var out [HandleCount]geom.Point
	for i := range out {
		out[i] = Position(r, Handle(i))
	}
	return out
}

// movedEdges reports which edges of a rect follow the pointer when h is
// dragged.
func (h Handle) movedEdges() (left, top, right, bottom bool) {
	switch h {
	case TopLeft:
		return true, true, false, false
	case TopRight:
		return false, true, true, false
	case BottomLeft:
		return true, false, false, true
	case BottomRight:
		return false, false, true, true
	case Top:
		return false, true, false, false
	case Right:
		return false, false, true, false
	case Bottom:
		return false, false, false, true
	case Left:
		return true, false, false, false
	}
	return false, false, false, false
}
