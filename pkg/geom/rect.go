package geom

// Rect2 is a 2D axis-aligned rectangle given by its min and max corners.
type Rect2 struct {
	Min, Max Vec2
}

// NewRect2 returns a degenerate rectangle covering the single point p.
func NewRect2(p Vec2) Rect2 {
	return Rect2{Min: p, Max: p}
}

// Expand returns the smallest rectangle covering both r and p.
func (r Rect2) Expand(p Vec2) Rect2 {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Contains reports whether p lies inside r. Boundary points are inside.
func (r Rect2) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Size returns the rectangle's extent along each axis.
func (r Rect2) Size() Vec2 {
	return r.Max.Sub(r.Min)
}
