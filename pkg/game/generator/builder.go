package generator

import (
	"errors"
	"fmt"

	"encounters/pkg/engine/world"
)

// EntitySpawn is a template marker found at a grid position
type EntitySpawn struct {
	Point  world.Point
	Marker rune
}

// MapBuilder is the output of a generation run: the carved map plus
// everything needed to populate it
type MapBuilder struct {
	Architect     Architect
	Map           *world.Map
	Rooms         []Rect
	MonsterSpawns []world.Point
	EntitySpawns  []EntitySpawn
	PlayerStart   world.Point
	AmuletStart   world.Point
	Theme         world.Theme
}

func newMapBuilder(width, height int, theme world.Theme) *MapBuilder {
	return &MapBuilder{
		Map:   world.NewMap(width, height, theme),
		Theme: theme,
	}
}

// fill replaces every tile with the theme's tile for role
func (mb *MapBuilder) fill(role world.TileType) {
	mb.Map.Fill(role)
}

// Validate checks the structural invariants of a generated level: the tile
// count matches the dimensions and every spawn point is on an enterable tile.
func (mb *MapBuilder) Validate() error {
	if mb.Map == nil {
		return errors.New("no map")
	}
	if mb.Map.Len() != mb.Map.Width()*mb.Map.Height() {
		return fmt.Errorf("map has %d tiles, want %d", mb.Map.Len(), mb.Map.Width()*mb.Map.Height())
	}
	if !mb.Map.CanEnter(mb.PlayerStart) {
		return fmt.Errorf("player start %v is not enterable", mb.PlayerStart)
	}
	if !mb.Map.CanEnter(mb.AmuletStart) {
		return fmt.Errorf("amulet start %v is not enterable", mb.AmuletStart)
	}
	for _, p := range mb.MonsterSpawns {
		if !mb.Map.CanEnter(p) {
			return fmt.Errorf("monster spawn %v is not enterable", p)
		}
	}
	for _, s := range mb.EntitySpawns {
		if !mb.Map.InBounds(s.Point) {
			return fmt.Errorf("entity spawn %q at %v is out of bounds", s.Marker, s.Point)
		}
	}
	return nil
}
