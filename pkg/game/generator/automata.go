package generator

import (
	"fmt"

	"encounters/pkg/engine/world"
)

// Constants for cellular automata generation
const (
	automataIterations = 10
	automataFloorRoll  = 55 // rolls of 0-99 above this seed a floor tile
)

// buildAutomata seeds random noise and smooths it into caves
func (g *Generator) buildAutomata(width, height int, theme world.Theme) (*MapBuilder, error) {
	mb := newMapBuilder(width, height, theme)

	g.randomNoise(mb)
	for i := 0; i < automataIterations; i++ {
		iterate(mb)
	}

	start, ok := findStart(mb)
	if !ok {
		return nil, fmt.Errorf("%w: no floor left after smoothing", ErrGenerationFailed)
	}

	mb.MonsterSpawns = mb.spawnMonsters(start, g.rng)
	mb.PlayerStart = start
	mb.AmuletStart = mb.findMostDistant()

	g.log.WithField("floor", mb.Map.CountRole(world.ThemeFloor)).Debug("Smoothed cave")
	return mb, nil
}

// randomNoise rolls every tile independently
func (g *Generator) randomNoise(mb *MapBuilder) {
	for idx := 0; idx < mb.Map.Len(); idx++ {
		if g.rng.Intn(100) > automataFloorRoll {
			mb.Map.CarveAt(idx, world.ThemeFloor)
		} else {
			mb.Map.CarveAt(idx, world.ThemeWall)
		}
	}
}

// countWallNeighbors counts walls among the 8 tiles around x/y. Out of bounds does not count.
func countWallNeighbors(mb *MapBuilder, x, y int) int {
	neighbors := 0
	for iy := -1; iy <= 1; iy++ {
		for ix := -1; ix <= 1; ix++ {
			if ix == 0 && iy == 0 {
				continue
			}
			idx, ok := mb.Map.TryIdx(world.Point{X: x + ix, Y: y + iy})
			if ok && mb.Map.IsRole(idx, world.ThemeWall) {
				neighbors++
			}
		}
	}
	return neighbors
}

// iterate applies one smoothing pass. Every decision reads the previous
// generation, and the outer ring keeps its seeded value.
func iterate(mb *MapBuilder) {
	width, height := mb.Map.Width(), mb.Map.Height()
	walls := make([]bool, mb.Map.Len())

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			n := countWallNeighbors(mb, x, y)
			// Isolated tiles become walls too
			walls[mb.Map.Idx(x, y)] = n > 4 || n == 0
		}
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := mb.Map.Idx(x, y)
			if walls[idx] {
				mb.Map.CarveAt(idx, world.ThemeWall)
			} else {
				mb.Map.CarveAt(idx, world.ThemeFloor)
			}
		}
	}
}

// findStart returns the floor tile closest to the map center
func findStart(mb *MapBuilder) (world.Point, bool) {
	center := mb.Map.Center()
	best := -1
	bestDist := 0

	mb.Map.ForEachTile(func(idx int, p world.Point, _ *world.Tile) {
		if !mb.Map.IsRole(idx, world.ThemeFloor) {
			return
		}
		d := world.DistanceSquared(center, p)
		if best < 0 || d < bestDist {
			best = idx
			bestDist = d
		}
	})

	if best < 0 {
		return world.Point{}, false
	}
	return mb.Map.PointAt(best), true
}
