package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"infinite-canvas/board"
	"infinite-canvas/geom"
	"infinite-canvas/hittest"
	"infinite-canvas/input"
)

func (g *Game) drawShapes(screen *ebiten.Image) {
	hoverID, hoverHandle := g.session.Hover()
	showHandles := g.session.Tool() == input.ToolSelect

	for _, s := range g.board.Shapes() {
		r, ok := g.session.LiveBounds(s.ID)
		if !ok {
			continue
		}
		sr := g.viewport.RectToScreen(r)
		selected := g.session.IsSelected(s.ID)

		g.drawBody(screen, s, sr)
		g.drawLabel(screen, s, sr)

		switch {
		case selected:
			strokeRect(screen, sr, BorderThickness, ColorShapeSelected)
		case s.ID == hoverID && g.session.Mode() == input.Idle:
			strokeRect(screen, sr, BorderThickness, ColorShapeHover)
		}

		if selected && showHandles {
			active := hittest.NoHandle
			if s.ID == hoverID {
				active = hoverHandle
			}
			g.drawHandles(screen, r, active)
		}
	}
}

func (g *Game) drawBody(screen *ebiten.Image, s *board.Shape, sr geom.Rect) {
	zoom := g.viewport.Scale()
	vector.DrawFilledRect(screen, float32(sr.X+ShadowOffset*zoom), float32(sr.Y+ShadowOffset*zoom), float32(sr.Width), float32(sr.Height), ColorShadow, false)
	vector.DrawFilledRect(screen, float32(sr.X), float32(sr.Y), float32(sr.Width), float32(sr.Height), s.Color, false)

	if s.Image == "" {
		return
	}
	img := g.images.get(s.Image)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sr.Width/float64(b.Dx()), sr.Height/float64(b.Dy()))
	op.GeoM.Translate(sr.X, sr.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Game) drawLabel(screen *ebiten.Image, s *board.Shape, sr geom.Rect) {
	if sr.Width < LabelMinWidth {
		return
	}
	maxHeight := int(sr.Height - 2*LabelPaddingY)

	// The label being edited is shown as typed, with a caret, keeping the
	// last lines in view.
	if draft, ok := g.session.Draft(s.ID); ok {
		strokeRect(screen, sr, BorderThickness, ColorEditing)
		txt := fitLastLines(g.face, draft+"_", maxHeight)
		DrawTextLines(screen, g.face, txt, int(sr.X+LabelPaddingX), int(sr.Y+LabelPaddingY), ColorLabel)
		return
	}

	if s.Label == "" {
		return
	}
	txt := fitLines(g.face, board.PlainLabel(s.Label), maxHeight)
	if txt == "" {
		return
	}
	DrawTextLines(screen, g.face, txt, int(sr.X+LabelPaddingX), int(sr.Y+LabelPaddingY), ColorLabel)
}

// drawHandles draws the eight resize handles of world rect r at a constant
// screen size.
func (g *Game) drawHandles(screen *ebiten.Image, r geom.Rect, active hittest.Handle) {
	resizing := g.session.Mode() == input.Resizing
	for i, p := range hittest.Positions(r) {
		sp := g.viewport.WorldToScreen(p)
		clr := ColorHandle
		if hittest.Handle(i) == active && !resizing {
			clr = ColorHandleActive
		}
		x := float32(sp.X - HandleSize/2)
		y := float32(sp.Y - HandleSize/2)
		vector.DrawFilledRect(screen, x, y, HandleSize, HandleSize, clr, false)
		vector.StrokeRect(screen, x, y, HandleSize, HandleSize, 1, ColorShapeSelected, false)
	}
}

// drawPreview shows the rectangle being drawn or the selection marquee.
func (g *Game) drawPreview(screen *ebiten.Image) {
	p, ok := g.session.Preview()
	if !ok {
		return
	}
	sr := g.viewport.RectToScreen(p.Rect)
	fill, stroke := ColorDrawPreview, ColorDrawStroke
	if p.Mode == input.Selecting {
		fill, stroke = ColorMarquee, ColorMarqueeStroke
	}
	vector.DrawFilledRect(screen, float32(sr.X), float32(sr.Y), float32(sr.Width), float32(sr.Height), fill, false)
	strokeRect(screen, sr, PreviewStrokeSize, stroke)
}

func strokeRect(screen *ebiten.Image, sr geom.Rect, thickness float32, clr color.Color) {
	vector.StrokeRect(screen,
		float32(sr.X)-thickness/2,
		float32(sr.Y)-thickness/2,
		float32(sr.Width)+thickness,
		float32(sr.Height)+thickness,
		thickness, clr, false)
}
