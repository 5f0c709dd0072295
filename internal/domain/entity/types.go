// Package entity holds the world-space game objects and their geometry.
//
// World coordinates are in world units with the origin at the bottom-left
// corner and Y pointing up.
package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Rect is an axis-aligned rectangle. X, Y is the bottom-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Right returns the X coordinate of the right edge
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Top returns the Y coordinate of the top edge
func (r Rect) Top() float32 {
	return r.Y + r.Height
}

// Overlaps reports whether r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Top() && r.Top() > o.Y
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
