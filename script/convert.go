package script

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"

	"infinite-canvas/geom"
)

// toStarlarkValue converts a host variable into a Starlark value.
func toStarlarkValue(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	case []string:
		return stringList(val), nil
	case []float64:
		elems := make([]starlark.Value, len(val))
		for i, f := range val {
			elems[i] = starlark.Float(f)
		}
		return starlark.NewList(elems), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

// FromStarlarkValue converts a Starlark result into a plain Go value. Values
// with no Go counterpart, such as functions, become nil.
func FromStarlarkValue(v starlark.Value) any {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		if i, ok := val.Int64(); ok && i == int64(int(i)) {
			return int(i)
		}
		if f := float64(val.Float()); !math.IsInf(f, 0) {
			return f
		}
		return val.String()
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		out := make([]any, val.Len())
		for i := range out {
			out[i] = FromStarlarkValue(val.Index(i))
		}
		return out
	case starlark.Tuple:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = FromStarlarkValue(e)
		}
		return out
	}
	return nil
}

func stringList(ss []string) *starlark.List {
	elems := make([]starlark.Value, len(ss))
	for i, s := range ss {
		elems[i] = starlark.String(s)
	}
	return starlark.NewList(elems)
}

func floatTuple(fs ...float64) starlark.Tuple {
	t := make(starlark.Tuple, len(fs))
	for i, f := range fs {
		t[i] = starlark.Float(f)
	}
	return t
}

func rectTuple(r geom.Rect) starlark.Tuple {
	return floatTuple(r.X, r.Y, r.Width, r.Height)
}

// floats converts numeric builtin arguments, accepting ints and floats.
func floats(fn string, names []string, vals ...starlark.Value) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, ok := starlark.AsFloat(v)
		if !ok {
			return nil, fmt.Errorf("%s: %s must be a number, got %s", fn, names[i], v.Type())
		}
		out[i] = f
	}
	return out, nil
}
