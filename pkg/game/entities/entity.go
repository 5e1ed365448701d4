// Package entities contains the things that live on a level: the player,
// monsters, light sources and the amulet, plus their sight and light components.
package entities

import (
	"fmt"

	"encounters/pkg/engine/world"
)

// Kind identifies what an entity is
type Kind int

// Entity kinds
const (
	Player Kind = iota
	Monster
	Campfire
	Amulet
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Monster:
		return "monster"
	case Campfire:
		return "campfire"
	case Amulet:
		return "amulet"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Glyph returns the character used for the kind in text dumps
func (k Kind) Glyph() rune {
	switch k {
	case Player:
		return '@'
	case Monster:
		return 'M'
	case Campfire:
		return 'C'
	case Amulet:
		return '$'
	default:
		return '?'
	}
}

// Entity is one entry in a level's entity table. FOV and Light are optional.
type Entity struct {
	ID       world.EntityID
	Kind     Kind
	Position world.Point
	FOV      *FieldOfView
	Light    *ProvidesIllumination

	// Heading is the direction of the last wander step, valid when Wandered
	Heading  world.Direction
	Wandered bool
}

// MarkDirty flags the entity's sight and light for recomputation
func (e *Entity) MarkDirty() {
	if e.FOV != nil {
		e.FOV.Dirty = true
	}
	if e.Light != nil {
		e.Light.Dirty = true
	}
}
