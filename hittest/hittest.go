// Package hittest answers "what is under the pointer" questions for a set of
// axis-aligned rects: the topmost rect, the resize handle of a rect, and the
// rects inside a selection area. It also implements the resize arithmetic
// for dragging a handle.
package hittest

import (
	"math"

	"infinite-canvas/canvas"
	"infinite-canvas/geom"
)

// TopmostAt returns the index of the last rect containing p. Later rects are
// painted on top of earlier ones.
func TopmostAt(p geom.Point, rects []geom.Rect) (int, bool) {
	for i := len(rects) - 1; i >= 0; i-- {
		if rects[i].Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// HandleAt returns the first handle of r, in priority order, whose position is
// within tolerance of p on both axes.
func HandleAt(r geom.Rect, p geom.Point, tolerance float64) Handle {
	if !(tolerance >= 0) || !p.IsFinite() {
		return NoHandle
	}
	for i := Handle(0); i < HandleCount; i++ {
		hp := Position(r, i)
		if math.Max(math.Abs(p.X-hp.X), math.Abs(p.Y-hp.Y)) <= tolerance {
			return i
		}
	}
	return NoHandle
}

// InArea returns the indices of all rects overlapping area, in slice order.
func InArea(rects []geom.Rect, area geom.Rect) []int {
	area = area.Normalize()
	var out []int
	for i, r := range rects {
		if r.Intersects(area) {
			out = append(out, i)
		}
	}
	return out
}

// ApplyResize returns r with the edges belonging to h moved to p. The opposite
// edges stay put. The result is not normalized: dragging past the opposite
// edge yields a negative width or height.
func ApplyResize(r geom.Rect, h Handle, p geom.Point) geom.Rect {
	if !h.Valid() || !p.IsFinite() {
		return r
	}
	left, top := r.X, r.Y
	right, bottom := r.X+r.Width, r.Y+r.Height

	ml, mt, mr, mb := h.movedEdges()
	if ml {
		left = p.X
	}
	if mt {
		top = p.Y
	}
	if mr {
		right = p.X
	}
	if mb {
		bottom = p.Y
	}
	return geom.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Tester runs hit tests from screen coordinates. Tolerance is in screen
// pixels so handles are equally easy to grab at every zoom level.
type Tester struct {
	Viewport  *canvas.Viewport
	Tolerance float64
}

// NewTester returns a Tester bound to v.
func NewTester(v *canvas.Viewport, tolerance float64) *Tester {
	return &Tester{Viewport: v, Tolerance: tolerance}
}

// WorldTolerance converts the pixel tolerance into world units.
func (t *Tester) WorldTolerance() float64 {
	return t.Tolerance / t.Viewport.Scale()
}

func (t *Tester) TopmostAt(screen geom.Point, rects []geom.Rect) (int, bool) {
	return TopmostAt(t.Viewport.ScreenToWorld(screen), rects)
}

func (t *Tester) HandleAt(r geom.Rect, screen geom.Point) Handle {
	return HandleAt(r, t.Viewport.ScreenToWorld(screen), t.WorldTolerance())
}

// InArea takes the selection area as two screen-space corners.
func (t *Tester) InArea(rects []geom.Rect, a, b geom.Point) []int {
	area := geom.RectFromCorners(t.Viewport.ScreenToWorld(a), t.Viewport.ScreenToWorld(b))
	return InArea(rects, area)
}
