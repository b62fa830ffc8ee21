package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"infinite-canvas/geom"
)

// fitView zooms to show every shape, or resets the view on an empty board.
func (g *Game) fitView() {
	if g.board.Len() == 0 {
		g.viewport.Reset()
		return
	}
	g.viewport.Fit(g.board.Extent(), float64(g.screenWidth), float64(g.screenHeight), FitPadding)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	t := g.viewport.Transform()
	mx, my := ebiten.CursorPosition()
	w := g.viewport.ScreenToWorld(geom.Pt(float64(mx), float64(my)))

	hover := "none"
	if id, h := g.session.Hover(); id != "" {
		hover = id
		if h.Valid() {
			hover += " (" + h.String() + ")"
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Scale: %.2f  Translate: (%.1f, %.1f)\n"+
			"Mouse World: (%.1f, %.1f)\n"+
			"Tool: %s  Mode: %s\n"+
			"Shapes: %d  Selected: %d\n"+
			"Hovering: %s\n"+
			"V/R/H: tools  Wheel: zoom  Shift+Wheel: scroll\n"+
			"Ctrl+S: save  Del: delete  Ctrl+D: duplicate  F: fit\n"+
			"Enter/double click: edit label  C: fill color",
		t.Scale, t.TranslateX, t.TranslateY,
		w.X, w.Y,
		g.session.Tool(), g.session.Mode(),
		g.board.Len(), len(g.session.Selection()),
		hover,
	), 10, 10)
}
