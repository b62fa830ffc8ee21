package script

import (
	"fmt"

	"go.starlark.net/starlark"

	"infinite-canvas/geom"
	"infinite-canvas/hittest"
)

type builtinFunc func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtins(h Host) starlark.StringDict {
	tester := hittest.NewTester(h.Viewport, h.HandleTolerance)

	fns := map[string]builtinFunc{
		"rect": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x, y, w, ht starlark.Value
			var label string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "w", &w, "h", &ht, "label?", &label); err != nil {
				return nil, err
			}
			f, err := floats(b.Name(), []string{"x", "y", "w", "h"}, x, y, w, ht)
			if err != nil {
				return nil, err
			}
			r := geom.Rect{X: f[0], Y: f[1], Width: f[2], Height: f[3]}
			if !r.IsFinite() {
				return nil, fmt.Errorf("%s: bounds must be finite", b.Name())
			}
			id := h.Board.Add(r)
			if label != "" {
				if err := h.Board.SetLabel(id, label); err != nil {
					return nil, err
				}
			}
			return starlark.String(id), nil
		},

		"bounds": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var id string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &id); err != nil {
				return nil, err
			}
			r, ok := h.Board.Bounds(id)
			if !ok {
				return starlark.None, nil
			}
			return rectTuple(r), nil
		},

		"remove": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var id string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &id); err != nil {
				return nil, err
			}
			if err := h.Board.Remove(id); err != nil {
				return nil, err
			}
			return starlark.None, nil
		},

		"count": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(h.Board.Len()), nil
		},

		"shapes": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return stringList(h.Board.IDs()), nil
		},

		"pan": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var dx, dy starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "dx", &dx, "dy", &dy); err != nil {
				return nil, err
			}
			f, err := floats(b.Name(), []string{"dx", "dy"}, dx, dy)
			if err != nil {
				return nil, err
			}
			return starlark.Bool(h.Viewport.PanBy(f[0], f[1])), nil
		},

		"zoom": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x, y, factor starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "factor", &factor); err != nil {
				return nil, err
			}
			f, err := floats(b.Name(), []string{"x", "y", "factor"}, x, y, factor)
			if err != nil {
				return nil, err
			}
			return starlark.Bool(h.Viewport.ZoomAt(geom.Pt(f[0], f[1]), f[2])), nil
		},

		"transform": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			t := h.Viewport.Transform()
			return floatTuple(t.Scale, t.TranslateX, t.TranslateY), nil
		},

		"to_world": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			p, err := pointArgs(b, args, kwargs)
			if err != nil {
				return nil, err
			}
			w := h.Viewport.ScreenToWorld(p)
			return floatTuple(w.X, w.Y), nil
		},

		"to_screen": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			p, err := pointArgs(b, args, kwargs)
			if err != nil {
				return nil, err
			}
			s := h.Viewport.WorldToScreen(p)
			return floatTuple(s.X, s.Y), nil
		},

		"hit": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			p, err := pointArgs(b, args, kwargs)
			if err != nil {
				return nil, err
			}
			s, ok := h.Board.TopmostAt(p)
			if !ok {
				return starlark.None, nil
			}
			return starlark.String(s.ID), nil
		},

		"area": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x0, y0, x1, y1 starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x0", &x0, "y0", &y0, "x1", &x1, "y1", &y1); err != nil {
				return nil, err
			}
			f, err := floats(b.Name(), []string{"x0", "y0", "x1", "y1"}, x0, y0, x1, y1)
			if err != nil {
				return nil, err
			}
			area := geom.RectFromCorners(geom.Pt(f[0], f[1]), geom.Pt(f[2], f[3]))
			return stringList(h.Board.InArea(area)), nil
		},

		"handle": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var id string
			var x, y starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id, "x", &x, "y", &y); err != nil {
				return nil, err
			}
			f, err := floats(b.Name(), []string{"x", "y"}, x, y)
			if err != nil {
				return nil, err
			}
			r, ok := h.Board.Bounds(id)
			if !ok {
				return nil, fmt.Errorf("%s: no shape %q", b.Name(), id)
			}
			hd := hittest.HandleAt(r, geom.Pt(f[0], f[1]), tester.WorldTolerance())
			if hd == hittest.NoHandle {
				return starlark.None, nil
			}
			return starlark.String(hd.String()), nil
		},

		"resize": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var id, name string
			var x, y starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id, "handle", &name, "x", &x, "y", &y); err != nil {
				return nil, err
			}
			f, err := floats(b.Name(), []string{"x", "y"}, x, y)
			if err != nil {
				return nil, err
			}
			hd, ok := hittest.ParseHandle(name)
			if !ok {
				return nil, fmt.Errorf("%s: unknown handle %q", b.Name(), name)
			}
			r, ok := h.Board.Bounds(id)
			if !ok {
				return nil, fmt.Errorf("%s: no shape %q", b.Name(), id)
			}
			if err := h.Board.SetBounds(id, hittest.ApplyResize(r, hd, geom.Pt(f[0], f[1]))); err != nil {
				return nil, err
			}
			r, _ = h.Board.Bounds(id)
			return rectTuple(r), nil
		},
	}

	out := make(starlark.StringDict, len(fns))
	for name, fn := range fns {
		out[name] = starlark.NewBuiltin(name, fn)
	}
	return out
}

func pointArgs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (geom.Point, error) {
	var x, y starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y); err != nil {
		return geom.Point{}, err
	}
	f, err := floats(b.Name(), []string{"x", "y"}, x, y)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(f[0], f[1]), nil
}
