package board

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"infinite-canvas/canvas"
	"infinite-canvas/geom"
)

type ColorState struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type ShapeState struct {
	ID     string     `yaml:"id"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  ColorState `yaml:"color"`
	Label  string     `yaml:"label,omitempty"`
	Image  string     `yaml:"image,omitempty"`
}

type CameraState struct {
	Scale      float64 `yaml:"scale"`
	TranslateX float64 `yaml:"translate_x"`
	TranslateY float64 `yaml:"translate_y"`
}

// State is the on-disk form of a board and the view onto it.
type State struct {
	Camera CameraState  `yaml:"camera"`
	Shapes []ShapeState `yaml:"shapes"`
}

// Snapshot captures b and t as a State.
func Snapshot(b *Board, t canvas.Transform) State {
	st := State{
		Camera: CameraState{
			Scale:      t.Scale,
			TranslateX: t.TranslateX,
			TranslateY: t.TranslateY,
		},
	}
	for _, s := range b.shapes {
		st.Shapes = append(st.Shapes, ShapeState{
			ID:     s.ID,
			X:      s.Bounds.X,
			Y:      s.Bounds.Y,
			Width:  s.Bounds.Width,
			Height: s.Bounds.Height,
			Color:  ColorState{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A},
			Label:  s.Label,
			Image:  s.Image,
		})
	}
	return st
}

func Encode(w io.Writer, st State) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&st); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return enc.Close()
}

func Decode(r io.Reader) (State, error) {
	var st State
	if err := yaml.NewDecoder(r).Decode(&st); err != nil && err != io.EOF {
		return State{}, fmt.Errorf("decode board: %w", err)
	}
	return st, nil
}

// Apply replaces the contents of b and the transform of v with st. Shapes
// with a missing or malformed ID get a new one; shapes with unusable bounds
// are dropped. A state without a camera resets the viewport.
func (st State) Apply(b *Board, v *canvas.Viewport, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if st.Camera.Scale == 0 {
		v.Reset()
	} else if err := v.Restore(canvas.Transform{
		Scale:      st.Camera.Scale,
		TranslateX: st.Camera.TranslateX,
		TranslateY: st.Camera.TranslateY,
	}); err != nil {
		return fmt.Errorf("restore camera: %w", err)
	}

	b.Clear()
	for _, ss := range st.Shapes {
		id := ss.ID
		if err := ValidateShapeID(id); err != nil {
			logger.Warn("replacing shape id", "id", id, "error", err)
			id = ""
		} else if _, dup := b.Get(id); dup {
			logger.Warn("replacing duplicate shape id", "id", id)
			id = ""
		}

		_, err := b.AddShape(Shape{
			ID:     id,
			Bounds: geom.Rect{X: ss.X, Y: ss.Y, Width: ss.Width, Height: ss.Height},
			Color:  color.RGBA{ss.Color.R, ss.Color.G, ss.Color.B, ss.Color.A},
			Label:  ss.Label,
			Image:  ss.Image,
		})
		if err != nil {
			logger.Warn("dropping shape", "id", ss.ID, "error", err)
		}
	}
	return nil
}

// SaveFile writes b and the transform of v to filename.
func SaveFile(filename string, b *Board, v *canvas.Viewport) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	defer f.Close()

	if err := Encode(f, Snapshot(b, v.Transform())); err != nil {
		return err
	}
	return f.Close()
}

// LoadFile reads filename into b and v.
func LoadFile(filename string, b *Board, v *canvas.Viewport, logger *slog.Logger) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	defer f.Close()

	st, err := Decode(f)
	if err != nil {
		return err
	}
	return st.Apply(b, v, logger)
}
