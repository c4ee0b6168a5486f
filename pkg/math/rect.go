package math

// Rect is an axis-aligned rectangle in a Y-up space given by its edges.
type Rect struct {
	Left, Top     float32
	Right, Bottom float32
}

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Bottom && p.Y <= r.Top
}
