package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"encounters/pkg/engine/pathfind"
	"encounters/pkg/engine/world"
)

// Constants for drunkard's walk generation
const (
	staggerDistance = 400  // steps before a drunkard passes out
	pruneDistance   = 2000 // floor further than this from the center is walled up again
	maxWalks        = 5000
)

// buildDrunkard digs caves with random walks until a third of the map is floor
func (g *Generator) buildDrunkard(width, height int, theme world.Theme) (*MapBuilder, error) {
	mb := newMapBuilder(width, height, theme)
	mb.fill(world.ThemeWall)

	center := mb.Map.Center()
	centerIdx := mb.Map.Idx(center.X, center.Y)
	desiredFloor := (width * height) / 3

	g.drunkard(mb, center)
	walks := 1
	pruned := 0

	for mb.Map.CountRole(world.ThemeFloor) < desiredFloor {
		if walks >= maxWalks {
			return nil, fmt.Errorf("%w: %d walks dug %d of %d floor tiles",
				ErrGenerationFailed, walks, mb.Map.CountRole(world.ThemeFloor), desiredFloor)
		}

		g.drunkard(mb, world.Point{X: g.rng.Intn(width), Y: g.rng.Intn(height)})
		walks++

		pruned += pruneDistant(mb, centerIdx)
	}

	g.log.WithFields(logrus.Fields{
		"walks":  walks,
		"pruned": pruned,
	}).Debug("Drunkards finished")

	mb.MonsterSpawns = mb.spawnMonsters(center, g.rng)
	mb.PlayerStart = center
	mb.AmuletStart = mb.findMostDistant()
	return mb, nil
}

// drunkard walks from start carving floor, stopping when it leaves the map
// or after staggerDistance steps
func (g *Generator) drunkard(mb *MapBuilder, start world.Point) {
	pos := start
	for step := 0; step < staggerDistance; step++ {
		if !mb.Map.Carve(pos, world.ThemeFloor) {
			return
		}
		pos = pos.Neighbor(world.Direction(g.rng.Intn(4)))
	}
}

// pruneDistant walls up every tile whose distance from centerIdx exceeds
// pruneDistance. Unreachable tiles report pathfind.Unreachable, which is
// above the threshold, so floor cut off from the center is removed.
func pruneDistant(mb *MapBuilder, centerIdx int) int {
	field := pathfind.NewDistanceField(mb.Map, []int{centerIdx}, pathfind.DefaultMaxDistance)
	pruned := 0
	for idx, dist := range field.Distances {
		if dist > pruneDistance {
			if mb.Map.IsRole(idx, world.ThemeFloor) {
				pruned++
			}
			mb.Map.CarveAt(idx, world.ThemeWall)
		}
	}
	return pruned
}
