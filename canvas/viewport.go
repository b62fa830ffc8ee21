package canvas

import (
	"errors"
	"fmt"
	"math"

	"infinite-canvas/geom"
)

const (
	DefaultMinScale = 0.1
	DefaultMaxScale = 10.0
)

var (
	ErrInvalidLimits    = errors.New("invalid scale limits")
	ErrInvalidTransform = errors.New("invalid transform")
)

// Transform is the snapshot a renderer needs: screen = (world + translate) * scale.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity is the transform of a freshly created viewport.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Viewport controls the view onto the infinite canvas. It owns the transform
// and is the only thing allowed to change it.
type Viewport struct {
	t        Transform
	minScale float64
	maxScale float64
}

// NewViewport returns a viewport with the identity transform and the default
// scale limits.
func NewViewport() *Viewport {
	return &Viewport{t: Identity(), minScale: DefaultMinScale, maxScale: DefaultMaxScale}
}

// NewViewportWithLimits returns a viewport whose scale is bounded to
// [minScale, maxScale]. The identity scale is clamped into those bounds.
func NewViewportWithLimits(minScale, maxScale float64) (*Viewport, error) {
	if !finite(minScale) || !finite(maxScale) || minScale <= 0 || minScale > maxScale {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidLimits, minScale, maxScale)
	}
	v := &Viewport{t: Identity(), minScale: minScale, maxScale: maxScale}
	v.t.Scale = v.clamp(1)
	return v, nil
}

func (v *Viewport) Transform() Transform { return v.t }

func (v *Viewport) Scale() float64 { return v.t.Scale }

func (v *Viewport) Limits() (minScale, maxScale float64) {
	return v.minScale, v.maxScale
}

// Reset returns to the identity transform (clamped to the limits).
func (v *Viewport) Reset() {
	v.t = Identity()
	v.t.Scale = v.clamp(1)
}

// Restore replaces the transform, typically with one loaded from disk. The
// scale is clamped to the viewport's limits.
func (v *Viewport) Restore(t Transform) error {
	if !finite(t.Scale) || !finite(t.TranslateX) || !finite(t.TranslateY) || t.Scale <= 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidTransform, t)
	}
	t.Scale = v.clamp(t.Scale)
	v.t = t
	return nil
}

// PanBy moves the view by a delta measured in screen pixels. The delta is
// accumulated in world units so panning follows the pointer at any zoom.
// Non-finite input leaves the transform unchanged.
func (v *Viewport) PanBy(dx, dy float64) bool {
	if !finite(dx) || !finite(dy) || (dx == 0 && dy == 0) {
		return false
	}
	tx := v.t.TranslateX + dx/v.t.Scale
	ty := v.t.TranslateY + dy/v.t.Scale
	if !finite(tx) || !finite(ty) {
		return false
	}
	v.t.TranslateX, v.t.TranslateY = tx, ty
	return true
}

// ZoomAt multiplies the scale by factor while keeping the world point under
// the screen point p where it is. The new scale is clamped before the
// translation is adjusted. Reports whether anything changed.
func (v *Viewport) ZoomAt(p geom.Point, factor float64) bool {
	if !finite(factor) || factor <= 0 || !p.IsFinite() {
		return false
	}
	oldScale := v.t.Scale
	newScale := v.clamp(oldScale * factor)
	if newScale == oldScale {
		return false
	}

	// ScreenToWorld(p) must be identical before and after.
	tx := v.t.TranslateX - (p.X/oldScale)*(1-oldScale/newScale)
	ty := v.t.TranslateY - (p.Y/oldScale)*(1-oldScale/newScale)
	if !finite(tx) || !finite(ty) {
		return false
	}
	v.t = Transform{Scale: newScale, TranslateX: tx, TranslateY: ty}
	return true
}

func (v *Viewport) ScreenToWorld(p geom.Point) geom.Point {
	return geom.Point{
		X: p.X/v.t.Scale - v.t.TranslateX,
		Y: p.Y/v.t.Scale - v.t.TranslateY,
	}
}

func (v *Viewport) WorldToScreen(p geom.Point) geom.Point {
	return geom.Point{
		X: (p.X + v.t.TranslateX) * v.t.Scale,
		Y: (p.Y + v.t.TranslateY) * v.t.Scale,
	}
}

func (v *Viewport) RectToWorld(r geom.Rect) geom.Rect {
	o := v.ScreenToWorld(geom.Pt(r.X, r.Y))
	return geom.Rect{X: o.X, Y: o.Y, Width: r.Width / v.t.Scale, Height: r.Height / v.t.Scale}
}

func (v *Viewport) RectToScreen(r geom.Rect) geom.Rect {
	o := v.WorldToScreen(geom.Pt(r.X, r.Y))
	return geom.Rect{X: o.X, Y: o.Y, Width: r.Width * v.t.Scale, Height: r.Height * v.t.Scale}
}

// VisibleWorld returns the world-space area covered by a screen of the given
// size.
func (v *Viewport) VisibleWorld(width, height float64) geom.Rect {
	return v.RectToWorld(geom.Rect{Width: width, Height: height})
}

// Fit centers area on a width x height screen at the largest scale that
// leaves padding pixels around it, within the scale limits. A degenerate area
// is only centered. Reports whether the transform changed.
func (v *Viewport) Fit(area geom.Rect, width, height, padding float64) bool {
	area = area.Normalize()
	if !area.IsFinite() || !(width > 0) || !(height > 0) {
		return false
	}
	aw, ah := width-2*padding, height-2*padding
	if aw <= 0 || ah <= 0 {
		aw, ah = width, height
	}

	s := v.t.Scale
	if !area.IsEmpty() {
		s = v.clamp(math.Min(aw/area.Width, ah/area.Height))
	}
	c := area.Center()
	t := Transform{Scale: s, TranslateX: width/2/s - c.X, TranslateY: height/2/s - c.Y}
	if t == v.t {
		return false
	}
	v.t = t
	return true
}

func (v *Viewport) clamp(s float64) float64 {
	return math.Max(v.minScale, math.Min(v.maxScale, s))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
