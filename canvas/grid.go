package canvas

import "math"

// MajorEvery is how many grid steps apart the emphasized lines are.
const MajorEvery = 4

// MaxGridLines caps the lines returned per axis.
const MaxGridLines = 1024

// Grid is the part of the background lattice that is on screen, in world
// coordinates.
type Grid struct {
	Step float64
	XS   []float64
	YS   []float64
}

// GridStep picks the world spacing for a lattice whose screen spacing should
// never drop below base pixels. The spacing doubles as the view zooms out so
// the number of lines on screen stays bounded.
func GridStep(base, scale float64) float64 {
	if !(base > 0) || !(scale > 0) || !finite(base) || !finite(scale) {
		return 0
	}
	step := base
	for step*scale < base {
		step *= 2
	}
	return step
}

// Grid returns the lattice covering a width x height screen.
func (v *Viewport) Grid(width, height, base float64) Grid {
	step := GridStep(base, v.t.Scale)
	if step == 0 {
		return Grid{}
	}
	vis := v.VisibleWorld(width, height)
	return Grid{
		Step: step,
		XS:   gridLines(vis.X, vis.X+vis.Width, step),
		YS:   gridLines(vis.Y, vis.Y+vis.Height, step),
	}
}

// IsMajor reports whether the line at world coordinate c is emphasized.
func (g Grid) IsMajor(c float64) bool {
	if g.Step == 0 {
		return false
	}
	n := int64(math.Round(c / g.Step))
	return n%MajorEvery == 0
}

// gridLines lists the multiples of step in [lo, hi]. Far from the origin a
// float64 step may no longer change the coordinate; the walk stops there.
func gridLines(lo, hi, step float64) []float64 {
	first := math.Floor(lo / step)
	var out []float64
	for i := 0; i < MaxGridLines; i++ {
		c := (first + float64(i)) * step
		if c > hi {
			break
		}
		if n := len(out); n > 0 && c <= out[n-1] {
			break
		}
		out = append(out, c)
	}
	return out
}
