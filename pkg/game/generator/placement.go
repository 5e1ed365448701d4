package generator

import (
	"math/rand"

	"encounters/pkg/engine/pathfind"
	"encounters/pkg/engine/world"
)

// Constants for spawn placement
const (
	numMonsters          = 50
	monsterMinDistance   = 10.0 // tiles from the player start
	placementMaxDistance = pathfind.DefaultMaxDistance
)

// findMostDistant returns the reachable tile furthest from the player start.
// Ties go to the lowest index. Returns the start itself if nothing else is reachable.
func (mb *MapBuilder) findMostDistant() world.Point {
	field := pathfind.NewDistanceFieldFrom(mb.Map, mb.PlayerStart, placementMaxDistance)
	idx, _, ok := field.MostDistant()
	if !ok {
		return mb.PlayerStart
	}
	return mb.Map.PointAt(idx)
}

// spawnMonsters picks up to numMonsters distinct floor tiles more than
// monsterMinDistance from start. Returns fewer if not enough tiles qualify.
func (mb *MapBuilder) spawnMonsters(start world.Point, rng *rand.Rand) []world.Point {
	var spawnable []world.Point
	mb.Map.ForEachTile(func(idx int, p world.Point, _ *world.Tile) {
		if mb.Map.IsRole(idx, world.ThemeFloor) && world.Distance(start, p) > monsterMinDistance {
			spawnable = append(spawnable, p)
		}
	})

	spawns := make([]world.Point, 0, numMonsters)
	for len(spawns) < numMonsters && len(spawnable) > 0 {
		i := rng.Intn(len(spawnable))
		spawns = append(spawns, spawnable[i])
		spawnable = append(spawnable[:i], spawnable[i+1:]...)
	}
	return spawns
}
