package main

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"infinite-canvas/board"
	"infinite-canvas/canvas"
	"infinite-canvas/config"
	"infinite-canvas/geom"
	"infinite-canvas/input"
	"infinite-canvas/ui"
)

type Game struct {
	cfg      *config.Config
	logger   *slog.Logger
	board    *board.Board
	viewport *canvas.Viewport
	session  *input.Session
	ui       *ui.UISystem
	face     font.Face
	images   *imageCache

	screenWidth  int
	screenHeight int

	pointer        pointerTracker
	swallowRelease bool
	typed          []rune
	fillIndex      int // into board.Palette, -1 while colors cycle

	screenshotRequested bool
}

func NewGame(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	v, err := cfg.Viewport()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:          cfg,
		logger:       logger,
		board:        board.New(),
		viewport:     v,
		face:         LoadUIFont(cfg.Font, logger),
		images:       newImageCache(logger),
		fillIndex:    -1,
		screenWidth:  cfg.Width,
		screenHeight: cfg.Height,
	}
	g.session = input.NewSession(g.board, g.viewport, cfg.InputOptions(), logger)

	err = board.LoadFile(cfg.StateFile, g.board, g.viewport, logger)
	switch {
	case err == nil:
		logger.Info("board loaded", "file", cfg.StateFile, "shapes", g.board.Len())
	case errors.Is(err, fs.ErrNotExist):
		g.seed()
	default:
		return nil, err
	}

	g.ui = ui.NewUISystem(
		func() font.Face { return g.face },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		DrawTextLines,
		g.toolButton("Sel", input.ToolSelect),
		g.toolButton("Rect", input.ToolDraw),
		g.toolButton("Pan", input.ToolPan),
		&ui.Button{Label: "-", W: ZoomButtonWidth, H: ButtonHeight, OnClick: func() { g.zoomCentered(1 / KeyboardZoomFactor) }},
		&ui.Button{Label: "+", W: ZoomButtonWidth, H: ButtonHeight, OnClick: func() { g.zoomCentered(KeyboardZoomFactor) }},
		&ui.Button{Label: "Fit", W: ToolButtonWidth, H: ButtonHeight, OnClick: g.fitView},
		&ui.Button{Label: "Fill", W: FillButtonWidth, H: ButtonHeight, OnClick: g.cycleFill, Swatch: g.fillSwatch},
	)
	return g, nil
}

func (g *Game) toolButton(label string, t input.Tool) *ui.Button {
	return &ui.Button{
		Label:   label,
		W:       ToolButtonWidth,
		H:       ButtonHeight,
		OnClick: func() { g.session.SetTool(t) },
		Active:  func() bool { return g.session.Tool() == t },
	}
}

// seed fills an empty board with a few shapes to play with.
func (g *Game) seed() {
	for _, s := range []struct {
		r     geom.Rect
		label string
	}{
		{geom.Rect{X: 50, Y: 50, Width: 200, Height: 120}, "# Welcome\nDrag with **R** to draw"},
		{geom.Rect{X: 300, Y: 200, Width: 180, Height: 100}, "Select with **V**, then drag a handle"},
		{geom.Rect{X: 100, Y: 400, Width: 220, Height: 140}, "Pan with the middle button or **Space**"},
	} {
		if _, err := g.board.AddShape(board.Shape{Bounds: s.r, Label: s.label}); err != nil {
			g.logger.Error("seed shape", "bounds", s.r, "error", err)
		}
	}
}

// cycleFill picks the next palette color for new shapes and repaints the
// selected ones with it.
func (g *Game) cycleFill() {
	g.fillIndex = (g.fillIndex + 1) % len(board.Palette)
	c := board.Palette[g.fillIndex]
	g.board.SetFill(c)
	for _, id := range g.session.Selection() {
		if err := g.board.SetColor(id, c); err != nil {
			g.reportError("recolor failed", err)
		}
	}
}

func (g *Game) fillSwatch() color.Color {
	if g.fillIndex < 0 {
		return nil
	}
	return board.Palette[g.fillIndex]
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.session.CommitEdit()
		g.save()
		return ebiten.Termination
	}

	uiClicked := g.ui.Update()
	if !g.handleEditKeys() {
		g.handleControlKeys()
	}
	g.updatePointer(uiClicked)
	g.handleDrops()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.drawBackgroundGrid(screen)
	g.drawShapes(screen)
	g.drawPreview(screen)
	g.drawHUD(screen)
	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen, "screenshot.png")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) save() {
	if err := board.SaveFile(g.cfg.StateFile, g.board, g.viewport); err != nil {
		g.reportError("save failed", err)
		return
	}
	g.ui.Debug.Clear()
	g.logger.Info("board saved", "file", g.cfg.StateFile, "shapes", g.board.Len())
}

// reportError logs err and shows it in the error panel.
func (g *Game) reportError(msg string, err error) {
	g.logger.Error(msg, "error", err)
	g.ui.Debug.SetError(fmt.Sprintf("%s:\n%v", msg, err))
}

func (g *Game) saveScreenshot(screen *ebiten.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		g.reportError("screenshot failed", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		g.reportError("screenshot failed", err)
		return
	}
	g.logger.Info("screenshot saved", "file", filename)
}

func runGame(cfg *config.Config, logger *slog.Logger) error {
	g, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Infinite Canvas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
