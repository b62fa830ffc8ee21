package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const swatchInset = 7

var (
	buttonColor       = color.RGBA{60, 60, 70, 200}
	buttonActiveColor = color.RGBA{0, 120, 255, 220}
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()

	// Active, when set, highlights the button while it returns true.
	Active func() bool

	// Swatch, when set and non-nil, is shown as a color chip at the right.
	Swatch func() color.Color
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

func (b *Button) isActive() bool {
	return b.Active != nil && b.Active()
}

// Draw renders the button. It uses the provided font.Face via getter.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText TextDrawer) {
	bg := buttonColor
	if b.isActive() {
		bg = buttonActiveColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if b.Swatch != nil {
		if c := b.Swatch(); c != nil {
			side := b.H - 2*swatchInset
			vector.DrawFilledRect(screen, b.X+b.W-swatchInset-side, b.Y+swatchInset, side, side, c, false)
		}
	}
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+8, int(b.Y)+8, color.White)
}
