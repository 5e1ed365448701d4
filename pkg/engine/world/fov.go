package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FieldOfViewSet calculates which tiles are visible from origin within a
// Euclidean radius in tiles. A tile is visible when a Bresenham line from the
// origin to it, or from it back to the origin, passes only through
// transparent tiles; the endpoints themselves may be opaque so wall faces are
// seen. Testing both directions makes the result symmetric: B is in A's set
// exactly when A is in B's set. The origin is always visible.
func FieldOfViewSet(m *Map, origin Point, radius int) mapset.Set[Point] {
	visible := mapset.New[Point]()
	if m == nil || !m.InBounds(origin) {
		return visible
	}
	visible.Put(origin)

	if radius <= 0 {
		return visible
	}
	radiusSq := radius * radius

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radiusSq {
				continue
			}

			target := Point{X: origin.X + dx, Y: origin.Y + dy}
			if target == origin || !m.InBounds(target) {
				continue
			}

			if HasLineOfSight(m, origin, target) || HasLineOfSight(m, target, origin) {
				visible.Put(target)
			}
		}
	}

	return visible
}

// HasLineOfSight returns true if there's a clear path from a to b.
// Uses Bresenham's line algorithm; tiles strictly between the endpoints must
// be transparent.
func HasLineOfSight(m *Map, a, b Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return true
	}

	absDx := abs(dx)
	absDy := abs(dy)

	var stepX, stepY int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}

	x, y := a.X, a.Y

	if absDx >= absDy {
		// Step along columns
		err := 2*absDy - absDx
		for {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if x == b.X {
				return true
			}
			if blocksSight(m, x, y) {
				return false
			}
		}
	}

	// Step along rows
	err := 2*absDx - absDy
	for {
		y += stepY
		if err > 0 {
			x += stepX
			err -= 2 * absDy
		}
		err += 2 * absDx

		if y == b.Y {
			return true
		}
		if blocksSight(m, x, y) {
			return false
		}
	}
}

// blocksSight treats anything outside the map as opaque
func blocksSight(m *Map, x, y int) bool {
	t := m.Tile(Point{X: x, Y: y})
	return t == nil || t.Opaque
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
