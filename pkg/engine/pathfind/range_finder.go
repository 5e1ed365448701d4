package pathfind

import (
	"sort"

	"github.com/zyedidia/generic/heap"

	"encounters/pkg/engine/world"
)

// GridPoint is one reached tile of a range query. Via names the predecessor
// on the cheapest path; the anchor has HasVia == false.
type GridPoint struct {
	Point  world.Point
	Cost   uint32 // cost of entering this tile
	G      uint32 // accumulated cost from the anchor
	Via    world.Point
	HasVia bool
}

// RangeFinder answers "which tiles can be reached from Anchor for at most
// N movement cost" with a uniform-cost search over orthogonal neighbours.
// Entering a tile costs its TerrainCost; opaque or zero-cost tiles are barriers.
type RangeFinder struct {
	Anchor  world.Point
	MaxCost uint32

	m    *world.Map
	grid map[world.Point]GridPoint
}

type rangeEntry struct {
	point world.Point
	g     uint32
}

// NewRangeFinder creates a finder for anchor over m. Call Compute before querying.
func NewRangeFinder(anchor world.Point, m *world.Map) *RangeFinder {
	return &RangeFinder{
		Anchor: anchor,
		m:      m,
		grid:   make(map[world.Point]GridPoint),
	}
}

// ComputeRange builds and runs a finder in one call
func ComputeRange(anchor world.Point, maxCost uint32, m *world.Map) *RangeFinder {
	r := NewRangeFinder(anchor, m)
	r.Compute(maxCost)
	return r
}

// Compute runs the search, replacing any previous result. An out of bounds
// anchor reaches nothing.
func (r *RangeFinder) Compute(maxCost uint32) {
	r.MaxCost = maxCost
	r.grid = make(map[world.Point]GridPoint)

	start := r.m.Tile(r.Anchor)
	if start == nil {
		return
	}
	r.grid[r.Anchor] = GridPoint{Point: r.Anchor, Cost: uint32(start.TerrainCost)}

	closed := make(map[world.Point]bool)
	open := heap.New[rangeEntry](func(a, b rangeEntry) bool {
		if a.g != b.g {
			return a.g < b.g
		}
		if a.point.Y != b.point.Y {
			return a.point.Y < b.point.Y
		}
		return a.point.X < b.point.X
	})
	open.Push(rangeEntry{point: r.Anchor, g: 0})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed[current.point] {
			continue // Stale entry
		}
		closed[current.point] = true

		for _, dir := range world.AllDirections() {
			next := current.point.Neighbor(dir)
			if closed[next] {
				continue
			}

			tile := r.m.Tile(next)
			if tile == nil || tile.Opaque || tile.TerrainCost == 0 {
				continue
			}

			// The cost of coming here is the total so far plus the cost of entering
			possible := current.g + uint32(tile.TerrainCost)
			if possible > maxCost {
				continue
			}

			if known, ok := r.grid[next]; ok && possible >= known.G {
				continue
			}

			r.grid[next] = GridPoint{
				Point:  next,
				Cost:   uint32(tile.TerrainCost),
				G:      possible,
				Via:    current.point,
				HasVia: true,
			}
			open.Push(rangeEntry{point: next, g: possible})
		}
	}
}

// Points returns every reached tile except the anchor, cheapest first
func (r *RangeFinder) Points() []world.Point {
	points := make([]world.Point, 0, len(r.grid))
	for p, gp := range r.grid {
		if gp.HasVia {
			points = append(points, p)
		}
	}
	sort.Slice(points, func(i, j int) bool {
		a, b := r.grid[points[i]], r.grid[points[j]]
		if a.G != b.G {
			return a.G < b.G
		}
		if a.Point.Y != b.Point.Y {
			return a.Point.Y < b.Point.Y
		}
		return a.Point.X < b.Point.X
	})
	return points
}

// Lookup returns the grid entry for p
func (r *RangeFinder) Lookup(p world.Point) (GridPoint, bool) {
	gp, ok := r.grid[p]
	return gp, ok
}

// CostTo returns the accumulated cost to reach p
func (r *RangeFinder) CostTo(p world.Point) (uint32, bool) {
	gp, ok := r.grid[p]
	return gp.G, ok
}

// Contains returns true if p was reached (the anchor counts)
func (r *RangeFinder) Contains(p world.Point) bool {
	_, ok := r.grid[p]
	return ok
}

// PathTo walks the predecessor chain from p back to the anchor and returns
// the path in walking order, anchor first. Returns false if p was never reached.
func (r *RangeFinder) PathTo(p world.Point) ([]world.Point, bool) {
	gp, ok := r.grid[p]
	if !ok {
		return nil, false
	}

	path := []world.Point{gp.Point}
	for gp.HasVia {
		gp = r.grid[gp.Via]
		path = append(path, gp.Point)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
