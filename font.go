package main

import (
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads the TrueType font at path. If that fails it falls back to
// basicfont.Face7x13.
func LoadUIFont(path string, logger *slog.Logger) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("font not found, using basic font", "path", path, "error", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		logger.Warn("font parse error, using basic font", "path", path, "error", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 16, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Warn("font face error, using basic font", "path", path, "error", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// y is the top of the first line; text.Draw wants the baseline.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}

// fitLines keeps the lines of s that fit into maxHeight pixels.
func fitLines(face font.Face, s string, maxHeight int) string {
	lines, n := splitFit(face, s, maxHeight)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// fitLastLines is fitLines keeping the end of s instead of the start.
func fitLastLines(face font.Face, s string, maxHeight int) string {
	lines, n := splitFit(face, s, maxHeight)
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// splitFit splits s into lines and reports how many fit into maxHeight.
func splitFit(face font.Face, s string, maxHeight int) ([]string, int) {
	lines := strings.Split(s, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	if lineHeight <= 0 {
		return lines, len(lines)
	}
	return lines, max(maxHeight/lineHeight, 0)
}
