package viewport

// Rect is an axis-aligned world-space rectangle positioned by its center.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X - r.Width/2 }
func (r Rect) Right() float64  { return r.X + r.Width/2 }
func (r Rect) Top() float64    { return r.Y - r.Height/2 }
func (r Rect) Bottom() float64 { return r.Y + r.Height/2 }

// Intersects reports whether the two rectangles overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Contains reports whether (x, y) lies inside r. Left and top edges are
// inclusive, right and bottom exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	left := max(r.Left(), o.Left())
	right := min(r.Right(), o.Right())
	top := max(r.Top(), o.Top())
	bottom := min(r.Bottom(), o.Bottom())
	return Rect{
		X:      (left + right) / 2,
		Y:      (top + bottom) / 2,
		Width:  right - left,
		Height: bottom - top,
	}, true
}
