package board

import (
	"errors"
	"image/color"
	"math"
	"reflect"
	"strings"
	"testing"

	"infinite-canvas/geom"
)

func TestAddNormalizesAndAssignsID(t *testing.T) {
	b := New()
	id := b.Add(geom.Rect{X: 100, Y: 100, Width: -40, Height: -20})

	if err := ValidateShapeID(id); err != nil {
		t.Fatalf("expected a valid shape id, got %v", err)
	}
	if !strings.HasPrefix(id, ShapePrefix+"_") {
		t.Errorf("expected %q prefix, got %s", ShapePrefix, id)
	}
	r, ok := b.Bounds(id)
	if !ok {
		t.Fatalf("expected shape %s to exist", id)
	}
	if want := (geom.Rect{X: 60, Y: 80, Width: 40, Height: 20}); r != want {
		t.Errorf("expected %v, got %v", want, r)
	}
}

func TestAddCyclesPalette(t *testing.T) {
	b := New()
	for i := 0; i < len(Palette)+1; i++ {
		b.Add(geom.Rect{Width: 1, Height: 1})
	}
	shapes := b.Shapes()
	if shapes[0].Color != Palette[0] || shapes[len(Palette)].Color != Palette[0] {
		t.Errorf("expected palette to wrap around")
	}
	if shapes[1].Color != Palette[1] {
		t.Errorf("expected second shape to use the second palette color")
	}
}

func TestFillAndSetColor(t *testing.T) {
	b := New()
	b.SetFill(Palette[2])
	a := b.Add(geom.Rect{Width: 1, Height: 1})
	c := b.Add(geom.Rect{Width: 1, Height: 1})
	for _, id := range []string{a, c} {
		if s, _ := b.Get(id); s.Color != Palette[2] {
			t.Errorf("expected fill %v, got %v", Palette[2], s.Color)
		}
	}

	if err := b.SetColor(a, Palette[3]); err != nil {
		t.Fatalf("set color: %v", err)
	}
	if s, _ := b.Get(a); s.Color != Palette[3] {
		t.Errorf("expected %v, got %v", Palette[3], s.Color)
	}

	b.SetFill(color.RGBA{})
	d := b.Add(geom.Rect{Width: 1, Height: 1})
	if s, _ := b.Get(d); s.Color != Palette[0] {
		t.Errorf("expected palette to resume at %v, got %v", Palette[0], s.Color)
	}
}

func TestLabel(t *testing.T) {
	b := New()
	id := b.Add(geom.Rect{Width: 10, Height: 10})
	if err := b.SetLabel(id, "**hi**"); err != nil {
		t.Fatalf("set label: %v", err)
	}
	if got, ok := b.Label(id); !ok || got != "**hi**" {
		t.Errorf("expected **hi**, got %q", got)
	}
	if _, ok := b.Label(NewShapeID()); ok {
		t.Errorf("expected missing shape to have no label")
	}
}

func TestDuplicateIDs(t *testing.T) {
	b := New()
	id := b.Add(geom.Rect{X: 10, Y: 10, Width: 50, Height: 50})

	dupID, err := b.Duplicate(id, 20, 20)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dupID == id {
		t.Errorf("duplicated shape shares ID: %s", id)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 shapes, got %d", b.Len())
	}
	r, _ := b.Bounds(dupID)
	if want := (geom.Rect{X: 30, Y: 30, Width: 50, Height: 50}); r != want {
		t.Errorf("expected %v, got %v", want, r)
	}
	if _, err := b.AddShape(Shape{ID: id}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestNotFound(t *testing.T) {
	b := New()
	missing := NewShapeID()
	checks := map[string]error{
		"set bounds":     b.SetBounds(missing, geom.Rect{}),
		"set label":      b.SetLabel(missing, "x"),
		"set color":      b.SetColor(missing, Palette[0]),
		"remove":         b.Remove(missing),
		"bring to front": b.BringToFront(missing),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrShapeNotFound) {
			t.Errorf("%s: expected ErrShapeNotFound, got %v", name, err)
		}
	}
	if _, err := b.Duplicate(missing, 0, 0); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("duplicate: expected ErrShapeNotFound, got %v", err)
	}
}

func TestOrderAndBringToFront(t *testing.T) {
	b := New()
	a := b.Add(geom.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	c := b.Add(geom.Rect{X: 50, Y: 50, Width: 100, Height: 100})

	top, ok := b.TopmostAt(geom.Pt(75, 75))
	if !ok || top.ID != c {
		t.Fatalf("expected later shape on top")
	}
	if err := b.BringToFront(a); err != nil {
		t.Fatalf("bring to front: %v", err)
	}
	if !reflect.DeepEqual(b.IDs(), []string{c, a}) {
		t.Errorf("unexpected order %v", b.IDs())
	}
	top, _ = b.TopmostAt(geom.Pt(75, 75))
	if top.ID != a {
		t.Errorf("expected %s on top after BringToFront, got %s", a, top.ID)
	}
}

func TestRemoveAndInArea(t *testing.T) {
	b := New()
	a := b.Add(geom.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	c := b.Add(geom.Rect{X: 100, Y: 100, Width: 10, Height: 10})

	if got := b.InArea(geom.Rect{X: -1, Y: -1, Width: 200, Height: 200}); !reflect.DeepEqual(got, []string{a, c}) {
		t.Errorf("expected both shapes, got %v", got)
	}
	if err := b.Remove(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := b.InArea(geom.Rect{X: -1, Y: -1, Width: 200, Height: 200}); !reflect.DeepEqual(got, []string{c}) {
		t.Errorf("expected only %s, got %v", c, got)
	}
	if ext := b.Extent(); ext != (geom.Rect{X: 100, Y: 100, Width: 10, Height: 10}) {
		t.Errorf("unexpected extent %v", ext)
	}
}

func TestSetBoundsRejectsNonFinite(t *testing.T) {
	b := New()
	id := b.Add(geom.Rect{Width: 10, Height: 10})
	if err := b.SetBounds(id, geom.Rect{Width: 10, Height: math.NaN()}); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}
