// Package board is the shape store of the editor: an ordered list of
// rectangles where later shapes are painted on top of earlier ones.
package board

import (
	"errors"
	"fmt"
	"image/color"

	"infinite-canvas/geom"
	"infinite-canvas/hittest"
)

var (
	ErrShapeNotFound = errors.New("shape not found")
	ErrDuplicateID   = errors.New("duplicate shape id")
	ErrInvalidBounds = errors.New("invalid bounds")
)

// Palette is cycled through when shapes are added without an explicit color.
var Palette = []color.RGBA{
	{100, 149, 237, 255},
	{255, 105, 180, 255},
	{60, 179, 113, 255},
	{100, 100, 250, 255},
}

// Shape is a rectangle on the board. Bounds are always normalized.
type Shape struct {
	ID     string
	Bounds geom.Rect
	Color  color.RGBA
	Label  string // markdown
	Image  string // asset path, empty for plain rects
}

type Board struct {
	shapes    []*Shape
	nextColor int
	fill      color.RGBA
}

func New() *Board {
	return &Board{}
}

func (b *Board) Len() int { return len(b.shapes) }

// Shapes returns the shapes in paint order. The slice is a copy; the shapes
// are not.
func (b *Board) Shapes() []*Shape {
	out := make([]*Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

func (b *Board) IDs() []string {
	ids := make([]string, len(b.shapes))
	for i, s := range b.shapes {
		ids[i] = s.ID
	}
	return ids
}

func (b *Board) Rects() []geom.Rect {
	rects := make([]geom.Rect, len(b.shapes))
	for i, s := range b.shapes {
		rects[i] = s.Bounds
	}
	return rects
}

func (b *Board) Get(id string) (*Shape, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return b.shapes[i], true
}

func (b *Board) Bounds(id string) (geom.Rect, bool) {
	s, ok := b.Get(id)
	if !ok {
		return geom.Rect{}, false
	}
	return s.Bounds, true
}

// Add stores r as a new shape on top of the others and returns its ID.
func (b *Board) Add(r geom.Rect) string {
	s := &Shape{
		ID:     NewShapeID(),
		Bounds: r.Normalize(),
		Color:  b.takeColor(),
	}
	b.shapes = append(b.shapes, s)
	return s.ID
}

// AddShape stores a copy of s. An empty ID is filled in and a zero color is
// replaced by the next palette color.
func (b *Board) AddShape(s Shape) (*Shape, error) {
	if !s.Bounds.IsFinite() {
		return nil, fmt.Errorf("add shape %q: %w", s.ID, ErrInvalidBounds)
	}
	if s.ID == "" {
		s.ID = NewShapeID()
	} else if b.indexOf(s.ID) >= 0 {
		return nil, fmt.Errorf("add shape %q: %w", s.ID, ErrDuplicateID)
	}
	if s.Color == (color.RGBA{}) {
		s.Color = b.takeColor()
	}
	s.Bounds = s.Bounds.Normalize()
	stored := &s
	b.shapes = append(b.shapes, stored)
	return stored, nil
}

func (b *Board) SetBounds(id string, r geom.Rect) error {
	if !r.IsFinite() {
		return fmt.Errorf("set bounds %q: %w", id, ErrInvalidBounds)
	}
	s, ok := b.Get(id)
	if !ok {
		return fmt.Errorf("set bounds %q: %w", id, ErrShapeNotFound)
	}
	s.Bounds = r.Normalize()
	return nil
}

func (b *Board) Label(id string) (string, bool) {
	s, ok := b.Get(id)
	if !ok {
		return "", false
	}
	return s.Label, true
}

func (b *Board) SetLabel(id, label string) error {
	s, ok := b.Get(id)
	if !ok {
		return fmt.Errorf("set label %q: %w", id, ErrShapeNotFound)
	}
	s.Label = label
	return nil
}

func (b *Board) SetColor(id string, c color.RGBA) error {
	s, ok := b.Get(id)
	if !ok {
		return fmt.Errorf("set color %q: %w", id, ErrShapeNotFound)
	}
	s.Color = c
	return nil
}

// SetFill fixes the color of shapes added from now on. The zero color goes
// back to cycling through the palette.
func (b *Board) SetFill(c color.RGBA) {
	b.fill = c
}

func (b *Board) Fill() color.RGBA { return b.fill }

func (b *Board) Remove(id string) error {
	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrShapeNotFound)
	}
	b.shapes = append(b.shapes[:i], b.shapes[i+1:]...)
	return nil
}

// BringToFront moves the shape to the end of the paint order.
func (b *Board) BringToFront(id string) error {
	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("bring to front %q: %w", id, ErrShapeNotFound)
	}
	s := b.shapes[i]
	b.shapes = append(b.shapes[:i], b.shapes[i+1:]...)
	b.shapes = append(b.shapes, s)
	return nil
}

// Duplicate copies a shape, offset by (dx, dy), on top of the others.
func (b *Board) Duplicate(id string, dx, dy float64) (string, error) {
	s, ok := b.Get(id)
	if !ok {
		return "", fmt.Errorf("duplicate %q: %w", id, ErrShapeNotFound)
	}
	dup := *s
	dup.ID = NewShapeID()
	dup.Bounds = s.Bounds.Translate(dx, dy)
	b.shapes = append(b.shapes, &dup)
	return dup.ID, nil
}

func (b *Board) Clear() {
	b.shapes = nil
	b.nextColor = 0
}

// TopmostAt returns the topmost shape containing the world point p.
func (b *Board) TopmostAt(p geom.Point) (*Shape, bool) {
	i, ok := hittest.TopmostAt(p, b.Rects())
	if !ok {
		return nil, false
	}
	return b.shapes[i], true
}

// InArea returns the IDs of the shapes overlapping the world-space area.
func (b *Board) InArea(area geom.Rect) []string {
	idx := hittest.InArea(b.Rects(), area)
	ids := make([]string, len(idx))
	for i, j := range idx {
		ids[i] = b.shapes[j].ID
	}
	return ids
}

// Extent is the union of all shape bounds.
func (b *Board) Extent() geom.Rect {
	var r geom.Rect
	for _, s := range b.shapes {
		r = r.Union(s.Bounds)
	}
	return r
}

func (b *Board) indexOf(id string) int {
	for i, s := range b.shapes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) takeColor() color.RGBA {
	if b.fill != (color.RGBA{}) {
		return b.fill
	}
	c := Palette[b.nextColor%len(Palette)]
	b.nextColor++
	return c
}
