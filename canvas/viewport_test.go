package canvas

import (
	"errors"
	"math"
	"testing"

	"infinite-canvas/geom"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearPoint(a, b geom.Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestRoundTrip(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(320, 200), 2.5)
	v.PanBy(-73, 41)

	for _, p := range []geom.Point{{0, 0}, {100, 100}, {-250.5, 1e4}, {1280, 800}} {
		got := v.WorldToScreen(v.ScreenToWorld(p))
		if !nearPoint(got, p) {
			t.Errorf("round trip of %v: got %v", p, got)
		}
		back := v.ScreenToWorld(v.WorldToScreen(p))
		if !nearPoint(back, p) {
			t.Errorf("inverse round trip of %v: got %v", p, back)
		}
	}
}

func TestZoomAtKeepsCursorFixed(t *testing.T) {
	factors := []float64{1.1, 0.9, 3, 0.2, 50, 0.001}
	cursors := []geom.Point{{100, 100}, {0, 0}, {640, 400}, {-20, 999}}

	for _, f := range factors {
		for _, c := range cursors {
			v := NewViewport()
			v.PanBy(37, -12)
			before := v.ScreenToWorld(c)
			v.ZoomAt(c, f)
			after := v.ScreenToWorld(c)
			if !nearPoint(before, after) {
				t.Errorf("zoom %g at %v: world point moved from %v to %v", f, c, before, after)
			}
		}
	}
}

func TestZoomAtExample(t *testing.T) {
	v := NewViewport()
	c := geom.Pt(100, 100)
	before := v.ScreenToWorld(c)

	if !v.ZoomAt(c, 1.1) {
		t.Fatalf("expected zoom to change the transform")
	}
	if !near(v.Scale(), 1.1) {
		t.Errorf("expected scale 1.1, got %g", v.Scale())
	}
	if after := v.ScreenToWorld(c); !nearPoint(before, after) {
		t.Errorf("expected world point %v, got %v", before, after)
	}
}

func TestPanByExample(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(0, 0), 2)
	tx := v.Transform().TranslateX

	v.PanBy(50, 0)
	if got := v.Transform().TranslateX - tx; !near(got, 25) {
		t.Errorf("expected TranslateX to grow by 25, got %g", got)
	}
}

func TestPanFollowsPointer(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(50, 50), 3)
	grab := geom.Pt(200, 150)
	world := v.ScreenToWorld(grab)

	v.PanBy(40, -25)
	if got := v.WorldToScreen(world); !nearPoint(got, grab.Add(geom.Pt(40, -25))) {
		t.Errorf("grabbed point should follow the pointer, got %v", got)
	}
}

func TestScaleStaysWithinLimits(t *testing.T) {
	v := NewViewport()
	seq := []float64{10, 10, 10, 0.5, 0.01, 0.01, 7, 1e9, 1e-9, 1.3, 0.77}
	for i, f := range seq {
		v.ZoomAt(geom.Pt(float64(i*13), float64(i*7)), f)
		if s := v.Scale(); s < DefaultMinScale || s > DefaultMaxScale {
			t.Fatalf("step %d: scale %g out of [%g, %g]", i, s, DefaultMinScale, DefaultMaxScale)
		}
	}
}

func TestZoomAtClampedIsNoop(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(10, 10), 1e6)
	if v.Scale() != DefaultMaxScale {
		t.Fatalf("expected scale clamped to %g, got %g", DefaultMaxScale, v.Scale())
	}
	before := v.Transform()
	if v.ZoomAt(geom.Pt(300, 300), 2) {
		t.Errorf("zooming past the limit should report no change")
	}
	if v.Transform() != before {
		t.Errorf("transform changed at the limit: %+v -> %+v", before, v.Transform())
	}
}

func TestNonFiniteInputIgnored(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(5, 5), 2)
	v.PanBy(10, 10)
	before := v.Transform()

	nan, inf := math.NaN(), math.Inf(1)
	if v.PanBy(nan, 0) || v.PanBy(0, inf) {
		t.Errorf("non-finite pan should be rejected")
	}
	if v.ZoomAt(geom.Pt(nan, 0), 2) || v.ZoomAt(geom.Pt(0, 0), inf) ||
		v.ZoomAt(geom.Pt(0, 0), nan) || v.ZoomAt(geom.Pt(0, 0), -1) || v.ZoomAt(geom.Pt(0, 0), 0) {
		t.Errorf("invalid zoom should be rejected")
	}
	if v.Transform() != before {
		t.Errorf("transform changed: %+v -> %+v", before, v.Transform())
	}
}

func TestPanOverflowIgnored(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(0, 0), 0.5)
	before := v.Transform()
	if v.PanBy(math.MaxFloat64, 0) {
		t.Errorf("pan overflowing to infinity should be rejected")
	}
	if v.Transform() != before {
		t.Errorf("transform changed: %+v -> %+v", before, v.Transform())
	}
}

func TestNewViewportWithLimits(t *testing.T) {
	v, err := NewViewportWithLimits(2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Scale() != 2 {
		t.Errorf("expected initial scale clamped to 2, got %g", v.Scale())
	}

	for _, lim := range [][2]float64{{0, 1}, {-1, 1}, {3, 2}, {math.NaN(), 1}, {1, math.Inf(1)}} {
		if _, err := NewViewportWithLimits(lim[0], lim[1]); !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("limits %v: expected ErrInvalidLimits, got %v", lim, err)
		}
	}
}

func TestRestore(t *testing.T) {
	v := NewViewport()
	if err := v.Restore(Transform{Scale: 50, TranslateX: 3, TranslateY: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Transform(); got != (Transform{Scale: DefaultMaxScale, TranslateX: 3, TranslateY: 4}) {
		t.Errorf("expected clamped transform, got %+v", got)
	}
	if err := v.Restore(Transform{Scale: math.NaN()}); !errors.Is(err, ErrInvalidTransform) {
		t.Errorf("expected ErrInvalidTransform, got %v", err)
	}
	if err := v.Restore(Transform{Scale: 0}); !errors.Is(err, ErrInvalidTransform) {
		t.Errorf("expected ErrInvalidTransform for zero scale, got %v", err)
	}
}

func TestRectConversion(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(geom.Pt(0, 0), 2)
	v.PanBy(20, 10)

	w := geom.Rect{X: 10, Y: 20, Width: 30, Height: 40}
	s := v.RectToScreen(w)
	if !near(s.Width, 60) || !near(s.Height, 80) {
		t.Errorf("expected screen size 60x80, got %gx%g", s.Width, s.Height)
	}
	back := v.RectToWorld(s)
	if !near(back.X, w.X) || !near(back.Y, w.Y) || !near(back.Width, w.Width) || !near(back.Height, w.Height) {
		t.Errorf("expected %v, got %v", w, back)
	}

	vis := v.VisibleWorld(200, 100)
	if !near(vis.Width, 100) || !near(vis.Height, 50) {
		t.Errorf("expected visible world 100x50, got %gx%g", vis.Width, vis.Height)
	}
}

func TestFit(t *testing.T) {
	v := NewViewport()
	area := geom.Rect{X: 100, Y: 100, Width: 200, Height: 100}

	if !v.Fit(area, 800, 600, 0) {
		t.Fatalf("expected Fit to change the transform")
	}
	if !near(v.Scale(), 4) {
		t.Errorf("expected scale 4, got %v", v.Scale())
	}
	if c := v.WorldToScreen(area.Center()); !nearPoint(c, geom.Pt(400, 300)) {
		t.Errorf("expected area centered, got %v", c)
	}
	if v.Fit(area, 800, 600, 0) {
		t.Errorf("expected second Fit to be a no-op")
	}
}

func TestFitRespectsLimits(t *testing.T) {
	v := NewViewport()
	v.Fit(geom.Rect{Width: 1, Height: 1}, 800, 600, 40)
	if v.Scale() != DefaultMaxScale {
		t.Errorf("expected scale clamped to %v, got %v", DefaultMaxScale, v.Scale())
	}

	v.Reset()
	v.Fit(geom.Rect{X: 50, Y: 50}, 800, 600, 40)
	if v.Scale() != 1 {
		t.Errorf("expected degenerate area to keep the scale, got %v", v.Scale())
	}
	if c := v.WorldToScreen(geom.Pt(50, 50)); !nearPoint(c, geom.Pt(400, 300)) {
		t.Errorf("expected point centered, got %v", c)
	}
}
