package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// UISystem is a row of buttons anchored to the top-right corner plus the
// error panel.
type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      TextDrawer
	Margin        float32
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText TextDrawer, buttons ...*Button) *UISystem {
	ui := &UISystem{
		buttons:       buttons,
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Margin:        10,
		Debug:         &DebugPanel{},
	}
	ui.updateButtonPositions()
	return ui
}

// updateButtonPositions lays the buttons out right to left, keeping the
// order they were given in.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w)
	for i := len(ui.buttons) - 1; i >= 0; i-- {
		b := ui.buttons[i]
		x -= b.W + ui.Margin
		b.X = x
		b.Y = ui.Margin
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Update fires the button under a fresh left click and reports whether the
// click was consumed.
func (ui *UISystem) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return ui.Click(mx, my)
}

// Click fires the button at (mx, my), if any.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
