package input

import (
	"log/slog"
	"math"
	"slices"

	"infinite-canvas/canvas"
	"infinite-canvas/geom"
	"infinite-canvas/hittest"
)

// Session turns pointer events into viewport changes and shape edits.
//
// Previews (the rectangle being drawn, the marquee, a shape being resized or
// moved) live in the session until the pointer is released. Only then is the
// store changed, so leaving or cancelling never touches committed shapes.
type Session struct {
	store    Store
	viewport *canvas.Viewport
	tester   *hittest.Tester
	opts     Options
	logger   *slog.Logger

	tool      Tool
	selection []string
	st        state

	hoverID     string
	hoverHandle hittest.Handle
}

type state struct {
	mode       Mode
	button     Button // only its release ends the interaction
	startWorld geom.Point
	lastScreen geom.Point
	additive   bool

	// Drawing and Selecting.
	current geom.Point

	// Resizing.
	target   string
	handle   hittest.Handle
	original geom.Rect
	resized  geom.Rect

	// Moving.
	originals map[string]geom.Rect
	delta     geom.Point

	// Editing. target is the shape whose label is being typed.
	draft []rune
}

func NewSession(store Store, v *canvas.Viewport, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:       store,
		viewport:    v,
		tester:      hittest.NewTester(v, opts.HandleTolerance),
		opts:        opts,
		logger:      logger,
		hoverHandle: hittest.NoHandle,
	}
}

func (s *Session) Mode() Mode { return s.st.mode }

func (s *Session) Tool() Tool { return s.tool }

// SetTool switches the active tool. A label being edited is kept; any other
// interaction in progress is abandoned.
func (s *Session) SetTool(t Tool) {
	s.CommitEdit()
	s.Cancel()
	s.tool = t
}

func (s *Session) Viewport() *canvas.Viewport { return s.viewport }

func (s *Session) Options() Options { return s.opts }

// Selection returns the selected shape IDs in paint order. Shapes removed
// from the store behind the session's back are dropped.
func (s *Session) Selection() []string {
	s.pruneSelection()
	return slices.Clone(s.selection)
}

func (s *Session) IsSelected(id string) bool {
	return slices.Contains(s.selection, id)
}

func (s *Session) SetSelection(ids []string) {
	s.selection = s.selection[:0]
	for _, id := range ids {
		if _, ok := s.store.Bounds(id); ok && !slices.Contains(s.selection, id) {
			s.selection = append(s.selection, id)
		}
	}
}

// Handle feeds one event through the state machine. It reports whether the
// event changed anything visible.
func (s *Session) Handle(ev Event) bool {
	p := ev.Point()
	if !p.IsFinite() {
		return false
	}

	switch ev.Kind {
	case PointerDown:
		if s.st.mode == Editing {
			if s.insideEdited(p) {
				return false
			}
			s.CommitEdit()
		}
		if s.st.mode != Idle {
			return false
		}
		return s.begin(p, ev)
	case PointerMove:
		if s.st.mode == Idle || s.st.mode == Editing {
			return s.hover(p)
		}
		return s.drag(p)
	case PointerUp:
		if s.st.mode == Idle || s.st.mode == Editing || ev.Button != s.st.button {
			return false
		}
		s.drag(p)
		s.commit()
		return true
	case PointerLeave:
		s.clearHover()
		if s.st.mode == Editing {
			return false
		}
		return s.Cancel()
	case Wheel:
		return s.wheel(p, ev)
	}
	return false
}

// Cancel drops the interaction in progress and its preview.
func (s *Session) Cancel() bool {
	if s.st.mode == Idle {
		return false
	}
	s.logger.Debug("interaction cancelled", "mode", s.st.mode)
	s.st = state{}
	return true
}

func (s *Session) begin(p geom.Point, ev Event) bool {
	world := s.viewport.ScreenToWorld(p)

	if ev.Button == ButtonMiddle || ev.Button == ButtonLeft && (ev.Mods.Has(ModSpace) || s.tool == ToolPan) {
		s.st = state{mode: Panning, button: ev.Button, lastScreen: p}
		return true
	}
	if ev.Button != ButtonLeft {
		return false
	}

	if s.tool == ToolDraw {
		s.st = state{mode: Drawing, startWorld: world, current: world}
		return true
	}

	if id, h := s.selectedHandleAt(p); h != hittest.NoHandle {
		r, _ := s.store.Bounds(id)
		s.st = state{mode: Resizing, target: id, handle: h, original: r, resized: r}
		return true
	}

	ids, rects := s.snapshot()
	if i, ok := hittest.TopmostAt(world, rects); ok {
		id := ids[i]
		shift := ev.Mods.Has(ModShift)
		if ev.Clicks >= 2 && !shift {
			return s.BeginEdit(id)
		}
		switch {
		case shift && s.IsSelected(id):
			s.selection = slices.DeleteFunc(s.selection, func(x string) bool { return x == id })
			return true
		case shift:
			s.selection = append(s.selection, id)
		case !s.IsSelected(id):
			s.selection = []string{id}
		}

		originals := make(map[string]geom.Rect, len(s.selection))
		for _, sel := range s.selection {
			if r, ok := s.store.Bounds(sel); ok {
				originals[sel] = r
			}
		}
		s.st = state{mode: Moving, startWorld: world, originals: originals}
		return true
	}

	s.st = state{mode: Selecting, startWorld: world, current: world, additive: ev.Mods.Has(ModShift)}
	return true
}

func (s *Session) drag(p geom.Point) bool {
	world := s.viewport.ScreenToWorld(p)

	switch s.st.mode {
	case Panning:
		dx := p.X - s.st.lastScreen.X
		dy := p.Y - s.st.lastScreen.Y
		s.st.lastScreen = p
		return s.viewport.PanBy(dx, dy)
	case Drawing, Selecting:
		s.st.current = world
	case Resizing:
		s.st.resized = hittest.ApplyResize(s.st.original, s.st.handle, world)
	case Moving:
		s.st.delta = world.Sub(s.st.startWorld)
	default:
		return false
	}
	return true
}

func (s *Session) commit() {
	st := s.st
	s.st = state{}

	switch st.mode {
	case Drawing:
		r := geom.RectFromCorners(st.startWorld, st.current).Snap(s.opts.SnapGrid)
		if r.Width < s.opts.MinShapeSize || r.Height < s.opts.MinShapeSize || r.IsEmpty() {
			s.logger.Debug("discarding small shape", "bounds", r)
			return
		}
		id := s.store.Add(r)
		s.selection = []string{id}
		s.logger.Debug("shape added", "id", id, "bounds", r)

	case Selecting:
		if !st.additive {
			s.selection = nil
		}
		area := geom.RectFromCorners(st.startWorld, st.current)
		ids, rects := s.snapshot()
		for _, i := range hittest.InArea(rects, area) {
			if !s.IsSelected(ids[i]) {
				s.selection = append(s.selection, ids[i])
			}
		}

	case Resizing:
		r := st.resized.Normalize().Snap(s.opts.SnapGrid)
		if r.IsEmpty() {
			s.logger.Debug("discarding degenerate resize", "id", st.target)
			return
		}
		if err := s.store.SetBounds(st.target, r); err != nil {
			s.logger.Warn("resize failed", "id", st.target, "error", err)
			return
		}
		s.logger.Debug("shape resized", "id", st.target, "handle", st.handle, "bounds", r)

	case Moving:
		if st.delta == (geom.Point{}) {
			return
		}
		for id, r := range st.originals {
			moved := snapOrigin(r.Translate(st.delta.X, st.delta.Y), s.opts.SnapGrid)
			if err := s.store.SetBounds(id, moved); err != nil {
				s.logger.Warn("move failed", "id", id, "error", err)
			}
		}
		s.logger.Debug("shapes moved", "count", len(st.originals), "dx", st.delta.X, "dy", st.delta.Y)
	}
}

func (s *Session) wheel(p geom.Point, ev Event) bool {
	if math.IsNaN(ev.WheelX) || math.IsNaN(ev.WheelY) {
		return false
	}
	if ev.Mods.Has(ModShift) {
		return s.viewport.PanBy(ev.WheelX*s.opts.ScrollSpeed, ev.WheelY*s.opts.ScrollSpeed)
	}
	if ev.WheelY == 0 {
		return false
	}
	return s.viewport.ZoomAt(p, math.Pow(1+s.opts.ZoomStep, ev.WheelY))
}

func (s *Session) hover(p geom.Point) bool {
	prevID, prevHandle := s.hoverID, s.hoverHandle
	s.hoverID, s.hoverHandle = "", hittest.NoHandle

	if id, h := s.selectedHandleAt(p); h != hittest.NoHandle {
		s.hoverID, s.hoverHandle = id, h
	} else {
		ids, rects := s.snapshot()
		if i, ok := s.tester.TopmostAt(p, rects); ok {
			s.hoverID = ids[i]
		}
	}
	return prevID != s.hoverID || prevHandle != s.hoverHandle
}

func (s *Session) clearHover() {
	s.hoverID, s.hoverHandle = "", hittest.NoHandle
}

// Hover returns the shape under the pointer while idle, and the handle of it
// if the pointer is over one.
func (s *Session) Hover() (string, hittest.Handle) {
	return s.hoverID, s.hoverHandle
}

// selectedHandleAt finds the topmost selected shape with a handle under p.
func (s *Session) selectedHandleAt(p geom.Point) (string, hittest.Handle) {
	if s.tool != ToolSelect {
		return "", hittest.NoHandle
	}
	ids := s.store.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if !s.IsSelected(ids[i]) {
			continue
		}
		r, _ := s.store.Bounds(ids[i])
		if h := s.tester.HandleAt(r, p); h != hittest.NoHandle {
			return ids[i], h
		}
	}
	return "", hittest.NoHandle
}

func (s *Session) snapshot() ([]string, []geom.Rect) {
	ids := s.store.IDs()
	rects := make([]geom.Rect, len(ids))
	for i, id := range ids {
		rects[i], _ = s.store.Bounds(id)
	}
	return ids, rects
}

func (s *Session) pruneSelection() {
	s.selection = slices.DeleteFunc(s.selection, func(id string) bool {
		_, ok := s.store.Bounds(id)
		return !ok
	})
}

func snapOrigin(r geom.Rect, grid float64) geom.Rect {
	if grid <= 0 {
		return r
	}
	r.X = math.Round(r.X/grid) * grid
	r.Y = math.Round(r.Y/grid) * grid
	return r
}
