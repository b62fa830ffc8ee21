package input

import (
	"infinite-canvas/geom"
	"infinite-canvas/hittest"
)

// BeginEdit starts typing into the label of shape id, which becomes the
// only selected shape. The label in the store is untouched until
// CommitEdit.
func (s *Session) BeginEdit(id string) bool {
	label, ok := s.store.Label(id)
	if !ok {
		return false
	}
	s.CommitEdit()
	s.Cancel()
	s.selection = []string{id}
	s.st = state{mode: Editing, target: id, draft: []rune(label)}
	s.logger.Debug("editing label", "id", id)
	return true
}

// EditSelection edits the label of the selected shape when exactly one is
// selected.
func (s *Session) EditSelection() bool {
	sel := s.Selection()
	if len(sel) != 1 {
		return false
	}
	return s.BeginEdit(sel[0])
}

// Draft returns the label being typed into shape id.
func (s *Session) Draft(id string) (string, bool) {
	if s.st.mode != Editing || s.st.target != id {
		return "", false
	}
	return string(s.st.draft), true
}

func (s *Session) InsertText(text string) bool {
	if s.st.mode != Editing || text == "" {
		return false
	}
	s.st.draft = append(s.st.draft, []rune(text)...)
	return true
}

// DeleteBackward removes the last character of the draft.
func (s *Session) DeleteBackward() bool {
	if s.st.mode != Editing || len(s.st.draft) == 0 {
		return false
	}
	s.st.draft = s.st.draft[:len(s.st.draft)-1]
	return true
}

// CommitEdit writes the draft to the store and returns to Idle. Cancel
// throws the draft away instead.
func (s *Session) CommitEdit() bool {
	if s.st.mode != Editing {
		return false
	}
	st := s.st
	s.st = state{}
	if err := s.store.SetLabel(st.target, string(st.draft)); err != nil {
		s.logger.Warn("label edit failed", "id", st.target, "error", err)
		return false
	}
	s.logger.Debug("label edited", "id", st.target, "length", len(st.draft))
	return true
}

// insideEdited reports whether a press at screen point p lands on the
// edited shape away from its handles.
func (s *Session) insideEdited(p geom.Point) bool {
	r, ok := s.store.Bounds(s.st.target)
	return ok && r.Contains(s.viewport.ScreenToWorld(p)) && s.tester.HandleAt(r, p) == hittest.NoHandle
}
