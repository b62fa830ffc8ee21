package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"infinite-canvas/geom"
	"infinite-canvas/input"
)

var trackedButtons = [...]struct {
	mouse  ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// pointerSnapshot is the mouse state polled in one frame.
type pointerSnapshot struct {
	X, Y           int
	Inside         bool
	Pressed        [len(trackedButtons)]bool
	WheelX, WheelY float64
	Mods           input.Modifiers
	At             time.Time
}

// pointerTracker turns successive snapshots into pointer events.
type pointerTracker struct {
	prev pointerSnapshot

	// last press, for counting double clicks
	pressAt     time.Time
	pressX      int
	pressY      int
	pressButton input.Button
	clicks      int
}

// countClick numbers a press: 1 for a fresh click, 2 for the second press
// of a double click and so on.
func (t *pointerTracker) countClick(cur pointerSnapshot, b input.Button) int {
	dx, dy := cur.X-t.pressX, cur.Y-t.pressY
	if t.clicks > 0 && b == t.pressButton &&
		cur.At.Sub(t.pressAt) <= DoubleClickTime &&
		dx*dx+dy*dy <= DoubleClickSlop*DoubleClickSlop {
		t.clicks++
	} else {
		t.clicks = 1
	}
	t.pressAt, t.pressX, t.pressY, t.pressButton = cur.At, cur.X, cur.Y, b
	return t.clicks
}

func (t *pointerTracker) events(cur pointerSnapshot) []input.Event {
	prev := t.prev
	t.prev = cur

	var evs []input.Event
	at := func(kind input.EventKind) input.Event {
		return input.Event{Kind: kind, X: float64(cur.X), Y: float64(cur.Y), Mods: cur.Mods}
	}

	if !cur.Inside {
		if prev.Inside {
			evs = append(evs, at(input.PointerLeave))
		}
		return evs
	}

	if !prev.Inside || cur.X != prev.X || cur.Y != prev.Y {
		evs = append(evs, at(input.PointerMove))
	}
	for i, b := range trackedButtons {
		switch {
		case cur.Pressed[i] && !prev.Pressed[i]:
			ev := at(input.PointerDown)
			ev.Button = b.button
			ev.Clicks = t.countClick(cur, b.button)
			evs = append(evs, ev)
		case !cur.Pressed[i] && prev.Pressed[i]:
			ev := at(input.PointerUp)
			ev.Button = b.button
			evs = append(evs, ev)
		}
	}
	if cur.WheelX != 0 || cur.WheelY != 0 {
		ev := at(input.Wheel)
		ev.WheelX, ev.WheelY = cur.WheelX, cur.WheelY
		evs = append(evs, ev)
	}
	return evs
}

func pollPointer(screenWidth, screenHeight int) pointerSnapshot {
	mx, my := ebiten.CursorPosition()
	s := pointerSnapshot{
		X:      mx,
		Y:      my,
		Inside: ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < screenWidth && my < screenHeight,
		Mods:   pollModifiers(),
		At:     time.Now(),
	}
	for i, b := range trackedButtons {
		s.Pressed[i] = ebiten.IsMouseButtonPressed(b.mouse)
	}
	s.WheelX, s.WheelY = ebiten.Wheel()
	return s
}

func pollModifiers() input.Modifiers {
	var m input.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		m |= input.ModSpace
	}
	return m
}

// cursorShape maps the session's cursor hint onto what ebiten can show.
func cursorShape(name string) ebiten.CursorShapeType {
	switch name {
	case "crosshair":
		return ebiten.CursorShapeCrosshair
	case "move", "grab", "grabbing":
		return ebiten.CursorShapeMove
	case "nwse-resize":
		return ebiten.CursorShapeNWSEResize
	case "nesw-resize":
		return ebiten.CursorShapeNESWResize
	case "ns-resize":
		return ebiten.CursorShapeNSResize
	case "ew-resize":
		return ebiten.CursorShapeEWResize
	case "text":
		return ebiten.CursorShapeText
	}
	return ebiten.CursorShapeDefault
}

// updatePointer feeds this frame's pointer events to the session. A press
// that landed on a toolbar button is swallowed together with its release.
func (g *Game) updatePointer(uiClicked bool) {
	snap := pollPointer(g.screenWidth, g.screenHeight)
	for _, ev := range g.pointer.events(snap) {
		if ev.Kind == input.PointerDown && ev.Button == input.ButtonLeft && uiClicked {
			g.swallowRelease = true
			continue
		}
		if ev.Kind == input.PointerUp && ev.Button == input.ButtonLeft && g.swallowRelease {
			g.swallowRelease = false
			continue
		}
		g.session.Handle(ev)
	}
	ebiten.SetCursorShape(cursorShape(g.session.Cursor()))
}

func (g *Game) handleControlKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	s := g.session

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.screenshotRequested = true
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.SelectAll()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.DuplicateSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		s.EditSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.cycleFill()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		s.DeleteSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !s.Cancel() {
			s.ClearSelection()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		s.SetTool(input.ToolSelect)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.SetTool(input.ToolDraw)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.SetTool(input.ToolPan)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.zoomCentered(KeyboardZoomFactor)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.zoomCentered(1 / KeyboardZoomFactor)
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		g.viewport.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.fitView()
	}
}

// handleEditKeys routes the keyboard into the label being edited. It
// reports false when no label is being edited.
func (g *Game) handleEditKeys() bool {
	s := g.session
	if s.Mode() != input.Editing {
		return false
	}
	g.typed = ebiten.AppendInputChars(g.typed[:0])
	s.InsertText(string(g.typed))

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.CommitEdit()
		g.save()
	case enter && ebiten.IsKeyPressed(ebiten.KeyShift):
		s.InsertText("\n")
	case enter, inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.CommitEdit()
	case repeatingKeyPressed(ebiten.KeyBackspace):
		s.DeleteBackward()
	}
	return true
}

// repeatingKeyPressed is true on the first frame of a press and then at
// the key-repeat rate while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= KeyRepeatDelay && (d-KeyRepeatDelay)%KeyRepeatInterval == 0
}

func (g *Game) zoomCentered(factor float64) {
	g.viewport.ZoomAt(geom.Pt(float64(g.screenWidth)/2, float64(g.screenHeight)/2), factor)
}
