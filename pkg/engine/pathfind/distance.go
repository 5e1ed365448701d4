// Package pathfind provides shortest-path searches over a world.Map:
// multi-source distance fields and cost-weighted range queries.
package pathfind

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"encounters/pkg/engine/world"
)

// Unreachable is the distance reported for tiles no source can reach within the cap
const Unreachable = float32(math.MaxFloat32)

// DefaultMaxDistance is the cap used by map generation
const DefaultMaxDistance = float32(1024)

// DistanceField holds the minimum distance from a set of source tiles to
// every tile of a map. Each orthogonal step onto an enterable tile costs 1.
type DistanceField struct {
	Width     int
	Height    int
	MaxDepth  float32
	Distances []float32
}

type fieldEntry struct {
	idx  int
	dist float32
}

// NewDistanceField runs a multi-source Dijkstra from sources over m. Tiles
// farther than maxDepth, or not reachable at all, report Unreachable.
// Out of range sources are ignored.
func NewDistanceField(m *world.Map, sources []int, maxDepth float32) *DistanceField {
	f := &DistanceField{
		Width:     m.Width(),
		Height:    m.Height(),
		MaxDepth:  maxDepth,
		Distances: make([]float32, m.Len()),
	}
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	open := heap.New[fieldEntry](func(a, b fieldEntry) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.idx < b.idx
	})

	for _, src := range sources {
		if src < 0 || src >= len(f.Distances) {
			continue
		}
		if f.Distances[src] == 0 {
			continue
		}
		f.Distances[src] = 0
		open.Push(fieldEntry{idx: src, dist: 0})
	}

	for open.Size() > 0 {
		entry, _ := open.Pop()
		if entry.dist > f.Distances[entry.idx] {
			continue // Stale entry
		}

		for _, next := range m.Exits(entry.idx) {
			dist := entry.dist + 1
			if dist > maxDepth {
				continue
			}
			if dist < f.Distances[next] {
				f.Distances[next] = dist
				open.Push(fieldEntry{idx: next, dist: dist})
			}
		}
	}

	return f
}

// NewDistanceFieldFrom is a convenience for a single source point
func NewDistanceFieldFrom(m *world.Map, source world.Point, maxDepth float32) *DistanceField {
	var sources []int
	if idx, ok := m.TryIdx(source); ok {
		sources = append(sources, idx)
	}
	return NewDistanceField(m, sources, maxDepth)
}

// At returns the distance at a tile index, Unreachable if out of range
func (f *DistanceField) At(idx int) float32 {
	if idx < 0 || idx >= len(f.Distances) {
		return Unreachable
	}
	return f.Distances[idx]
}

// AtPoint returns the distance at p, Unreachable if out of bounds
func (f *DistanceField) AtPoint(p world.Point) float32 {
	if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return Unreachable
	}
	return f.Distances[p.Y*f.Width+p.X]
}

// Reachable returns true if the tile at idx has a finite distance
func (f *DistanceField) Reachable(idx int) bool {
	return f.At(idx) < Unreachable
}

// MostDistant returns the reachable tile with the largest distance. Ties go
// to the lowest index. ok is false when nothing is reachable.
func (f *DistanceField) MostDistant() (idx int, dist float32, ok bool) {
	idx = -1
	for i, d := range f.Distances {
		if d >= Unreachable {
			continue
		}
		if idx < 0 || d > dist {
			idx, dist = i, d
		}
	}
	return idx, dist, idx >= 0
}

// Max returns the largest finite distance in the field, or -1 if nothing is reachable
func (f *DistanceField) Max() float32 {
	_, dist, ok := f.MostDistant()
	if !ok {
		return -1
	}
	return dist
}
