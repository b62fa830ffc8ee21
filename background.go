package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"infinite-canvas/geom"
)

// drawBackgroundGrid renders the infinite coordinate grid. Line spacing
// follows the zoom level so the grid never gets denser than GridSize pixels.
func (g *Game) drawBackgroundGrid(screen *ebiten.Image) {
	sw, sh := float64(g.screenWidth), float64(g.screenHeight)
	grid := g.viewport.Grid(sw, sh, GridSize)

	for _, wx := range grid.XS {
		sx := g.viewport.WorldToScreen(geom.Pt(wx, 0)).X
		clr := ColorGrid
		if grid.IsMajor(wx) {
			clr = ColorGridMajor
		}
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(sh), 1, clr, false)
	}
	for _, wy := range grid.YS {
		sy := g.viewport.WorldToScreen(geom.Pt(0, wy)).Y
		clr := ColorGrid
		if grid.IsMajor(wy) {
			clr = ColorGridMajor
		}
		vector.StrokeLine(screen, 0, float32(sy), float32(sw), float32(sy), 1, clr, false)
	}

	o := g.viewport.WorldToScreen(geom.Point{})
	ox, oy := float32(o.X), float32(o.Y)
	vector.StrokeLine(screen, ox-OriginCrossSize, oy, ox+OriginCrossSize, oy, 2, ColorOriginCross, false)
	vector.StrokeLine(screen, ox, oy-OriginCrossSize, ox, oy+OriginCrossSize, 2, ColorOriginCross, false)
}
