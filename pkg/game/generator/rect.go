package generator

import "encounters/pkg/engine/world"

// Rect is an axis-aligned room. X2/Y2 are exclusive for carving but
// count as touching for intersection, so adjacent rooms never share a wall.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Width returns the number of columns the rect carves
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the number of rows the rect carves
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Intersect returns true if r and o overlap or touch
func (r Rect) Intersect(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Center returns the middle point of the rect
func (r Rect) Center() world.Point {
	return world.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains returns true if p lies in the carved area
func (r Rect) Contains(p world.Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// ForEach calls fn for every carved point
func (r Rect) ForEach(fn func(p world.Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(world.Point{X: x, Y: y})
		}
	}
}
