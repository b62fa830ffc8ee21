package input

import (
	"infinite-canvas/geom"
	"infinite-canvas/hittest"
)

// Preview is an uncommitted rectangle in world coordinates: the shape being
// drawn or the marquee.
type Preview struct {
	Mode Mode
	Rect geom.Rect
}

func (s *Session) Preview() (Preview, bool) {
	switch s.st.mode {
	case Drawing:
		return Preview{Mode: Drawing, Rect: geom.RectFromCorners(s.st.startWorld, s.st.current)}, true
	case Selecting:
		return Preview{Mode: Selecting, Rect: geom.RectFromCorners(s.st.startWorld, s.st.current)}, true
	}
	return Preview{}, false
}

// LiveBounds returns the bounds of id as they should be drawn right now,
// including an in-progress resize or move.
func (s *Session) LiveBounds(id string) (geom.Rect, bool) {
	switch s.st.mode {
	case Resizing:
		if id == s.st.target {
			return s.st.resized.Normalize(), true
		}
	case Moving:
		if r, ok := s.st.originals[id]; ok {
			return r.Translate(s.st.delta.X, s.st.delta.Y), true
		}
	}
	return s.store.Bounds(id)
}

// DeleteSelection removes every selected shape and returns how many went.
func (s *Session) DeleteSelection() int {
	s.Cancel()
	n := 0
	for _, id := range s.Selection() {
		if err := s.store.Remove(id); err != nil {
			s.logger.Warn("delete failed", "id", id, "error", err)
			continue
		}
		n++
	}
	s.selection = nil
	s.clearHover()
	if n > 0 {
		s.logger.Info("shapes deleted", "count", n)
	}
	return n
}

func (s *Session) SelectAll() {
	s.Cancel()
	s.selection = s.store.IDs()
}

func (s *Session) ClearSelection() {
	s.selection = nil
}

// DuplicateSelection copies the selected shapes, offset by
// Options.DuplicateOffset, and selects the copies.
func (s *Session) DuplicateSelection() []string {
	s.Cancel()
	off := s.opts.DuplicateOffset
	var dups []string
	for _, id := range s.Selection() {
		dup, err := s.store.Duplicate(id, off, off)
		if err != nil {
			s.logger.Warn("duplicate failed", "id", id, "error", err)
			continue
		}
		dups = append(dups, dup)
	}
	if len(dups) > 0 {
		s.selection = dups
	}
	return dups
}

// Cursor names the CSS-style pointer shape for the current state.
func (s *Session) Cursor() string {
	if s.st.mode == Editing && s.hoverID == s.st.target && s.hoverHandle == hittest.NoHandle {
		return "text"
	}
	switch s.st.mode {
	case Panning:
		return "grabbing"
	case Resizing:
		return s.st.handle.Cursor()
	case Moving:
		return "move"
	case Drawing, Selecting:
		return "crosshair"
	}

	switch s.tool {
	case ToolPan:
		return "grab"
	case ToolDraw:
		return "crosshair"
	}
	if s.hoverHandle != hittest.NoHandle {
		return s.hoverHandle.Cursor()
	}
	if s.hoverID != "" {
		return "move"
	}
	return "default"
}
