package geom

import "math"

// Point is a 2D position. Whether it is in screen or world space depends on
// who is holding it.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Rect is an axis-aligned rectangle. Width and Height may be negative while a
// rectangle is being drawn or resized; call Normalize before storing it.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromCorners returns the normalized rect spanning a and b.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Normalize returns the rect covering the same area with non-negative width
// and height.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Min returns the top-left corner of the normalized rect.
func (r Rect) Min() Point {
	n := r.Normalize()
	return Point{n.X, n.Y}
}

// Max returns the bottom-right corner of the normalized rect.
func (r Rect) Max() Point {
	n := r.Normalize()
	return Point{n.X + n.Width, n.Y + n.Height}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X <= n.X+n.Width &&
		p.Y >= n.Y && p.Y <= n.Y+n.Height
}

// Intersects reports whether the two rects overlap. Rects that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	a, b := r.Normalize(), o.Normalize()
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// IsEmpty checks if the rect has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(o Rect) Rect {
	a, b := r.Normalize(), o.Normalize()
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return RectFromCorners(
		Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Point{math.Max(a.X+a.Width, b.X+b.Width), math.Max(a.Y+a.Height, b.Y+b.Height)},
	)
}

func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

// Snap rounds the rect's edges to the nearest multiple of grid. A grid of zero
// or less returns r unchanged.
func (r Rect) Snap(grid float64) Rect {
	if grid <= 0 {
		return r
	}
	n := r.Normalize()
	x0 := math.Round(n.X/grid) * grid
	y0 := math.Round(n.Y/grid) * grid
	x1 := math.Round((n.X+n.Width)/grid) * grid
	y1 := math.Round((n.Y+n.Height)/grid) * grid
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
