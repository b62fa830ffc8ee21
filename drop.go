package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"infinite-canvas/board"
	"infinite-canvas/geom"
)

var ErrAssetTooLarge = errors.New("asset too large")

// asset is an image file copied into the asset directory.
type asset struct {
	Path          string
	Width, Height int
}

// importAsset checks that data is a decodable image of at most maxBytes and
// copies it into dir under a fresh name.
func importAsset(dir, name string, data []byte, maxBytes int64) (asset, error) {
	if int64(len(data)) > maxBytes {
		return asset{}, fmt.Errorf("import %s: %d bytes: %w", name, len(data), ErrAssetTooLarge)
	}
	if !filetype.IsImage(data) {
		return asset{}, fmt.Errorf("import %s: not an image", name)
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return asset{}, fmt.Errorf("import %s: %w", name, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return asset{}, fmt.Errorf("import %s: unsupported %s image: %w", name, kind.Extension, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return asset{}, fmt.Errorf("import %s: %w", name, err)
	}
	path := filepath.Join(dir, board.NewAssetID()+"."+kind.Extension)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return asset{}, fmt.Errorf("import %s: %w", name, err)
	}
	return asset{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}

// imageBounds places an image of w x h pixels with its top-left corner at
// p, scaled down so its longer side is at most maxSide.
func imageBounds(p geom.Point, w, h int, maxSide float64) geom.Rect {
	fw, fh := float64(w), float64(h)
	if longest := math.Max(fw, fh); longest > maxSide {
		k := maxSide / longest
		fw, fh = fw*k, fh*k
	}
	return geom.Rect{X: p.X, Y: p.Y, Width: fw, Height: fh}
}

// handleDrops turns image files dropped on the window into image shapes
// under the cursor.
func (g *Game) handleDrops() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		g.reportError("drop failed", err)
		return
	}

	mx, my := ebiten.CursorPosition()
	at := g.viewport.ScreenToWorld(geom.Pt(float64(mx), float64(my)))
	var added []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if info, err := e.Info(); err == nil && info.Size() > g.cfg.MaxAssetBytes {
			g.reportError("drop failed", fmt.Errorf("import %s: %d bytes: %w", e.Name(), info.Size(), ErrAssetTooLarge))
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			g.reportError("drop failed", err)
			continue
		}
		a, err := importAsset(g.cfg.AssetDir, e.Name(), data, g.cfg.MaxAssetBytes)
		if err != nil {
			g.reportError("drop failed", err)
			continue
		}
		s, err := g.board.AddShape(board.Shape{
			Bounds: imageBounds(at, a.Width, a.Height, MaxImportedSide),
			Color:  board.Palette[0],
			Label:  e.Name(),
			Image:  a.Path,
		})
		if err != nil {
			g.reportError("drop failed", err)
			continue
		}
		g.logger.Info("image imported", "file", e.Name(), "asset", a.Path, "id", s.ID)
		added = append(added, s.ID)
		at = at.Add(geom.Pt(20, 20))
	}
	if len(added) > 0 {
		g.session.SetSelection(added)
	}
}

// imageCache holds decoded asset images, keyed by path. Failed loads are
// remembered so a missing file is only reported once.
type imageCache struct {
	logger *slog.Logger
	images map[string]*ebiten.Image
}

func newImageCache(logger *slog.Logger) *imageCache {
	return &imageCache{logger: logger, images: make(map[string]*ebiten.Image)}
}

func (c *imageCache) get(path string) *ebiten.Image {
	if img, ok := c.images[path]; ok {
		return img
	}
	img, err := loadImage(path)
	if err != nil {
		c.logger.Warn("cannot load image", "path", path, "error", err)
	}
	c.images[path] = img
	return img
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(src), nil
}
