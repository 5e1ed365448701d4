// Package state holds the level being played: the generated map and the
// table of entities living on it. A Level is passed explicitly to every
// system that reads or writes it.
package state

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/generator"
)

// Errors returned by entity table operations
var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrBlocked       = errors.New("position is not enterable")
)

// Default components for populated levels, in feet
const (
	PlayerVision     = 60
	PlayerDimVision  = 0
	PlayerDarkVision = 0
	CampfireBright   = 30
	CampfireShadowy  = 60
	maxLevelMessages = 5
)

// Level is one generated map plus everything on it
type Level struct {
	Builder  *generator.MapBuilder
	Map      *world.Map
	Minutes  uint64 // game time elapsed
	Messages []string

	entities []*entities.Entity // indexed by ID-1, nil once despawned
	playerID world.EntityID

	// Tiles held by despawned entities, released by the next engine pass
	releasedLights map[world.EntityID]mapset.Set[world.Point]
	releasedViews  map[world.EntityID]mapset.Set[world.Point]
}

// New creates an empty level for mb
func New(mb *generator.MapBuilder) *Level {
	return &Level{
		Builder:        mb,
		Map:            mb.Map,
		Messages:       make([]string, 0),
		releasedLights: make(map[world.EntityID]mapset.Set[world.Point]),
		releasedViews:  make(map[world.EntityID]mapset.Set[world.Point]),
	}
}

// NewLevel creates a level for mb and spawns its player, monsters,
// amulet and template entities
func NewLevel(mb *generator.MapBuilder) (*Level, error) {
	l := New(mb)

	player, err := l.Spawn(entities.Player, mb.PlayerStart,
		entities.NewFieldOfView(PlayerVision, entities.Feet(PlayerDimVision), entities.Feet(PlayerDarkVision)), nil)
	if err != nil {
		return nil, fmt.Errorf("spawning player: %w", err)
	}
	l.playerID = player.ID

	if _, err := l.Spawn(entities.Amulet, mb.AmuletStart, nil, nil); err != nil {
		return nil, fmt.Errorf("spawning amulet: %w", err)
	}

	for _, p := range mb.MonsterSpawns {
		if _, err := l.Spawn(entities.Monster, p, nil, nil); err != nil {
			return nil, fmt.Errorf("spawning monster: %w", err)
		}
	}

	for _, s := range mb.EntitySpawns {
		switch s.Marker {
		case generator.CampfireMarker:
			light := entities.NewProvidesIllumination(CampfireBright, CampfireShadowy, entities.InfiniteDuration)
			if _, err := l.Spawn(entities.Campfire, s.Point, nil, light); err != nil {
				return nil, fmt.Errorf("spawning campfire: %w", err)
			}
		}
	}

	return l, nil
}

// Spawn adds an entity at pos and returns it. fov and light may be nil.
func (l *Level) Spawn(kind entities.Kind, pos world.Point, fov *entities.FieldOfView, light *entities.ProvidesIllumination) (*entities.Entity, error) {
	if !l.Map.InBounds(pos) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}

	e := &entities.Entity{
		ID:       world.EntityID(len(l.entities) + 1),
		Kind:     kind,
		Position: pos,
		FOV:      fov,
		Light:    light,
	}
	e.MarkDirty()
	l.entities = append(l.entities, e)
	return e, nil
}

// Get returns the entity with id
func (l *Level) Get(id world.EntityID) (*entities.Entity, error) {
	if id == 0 || int(id) > len(l.entities) || l.entities[id-1] == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	return l.entities[id-1], nil
}

// Player returns the player entity, or nil for a level built with New
func (l *Level) Player() *entities.Entity {
	e, err := l.Get(l.playerID)
	if err != nil {
		return nil
	}
	return e
}

// Entities returns every live entity in spawn order
func (l *Level) Entities() []*entities.Entity {
	live := make([]*entities.Entity, 0, len(l.entities))
	for _, e := range l.entities {
		if e != nil {
			live = append(live, e)
		}
	}
	return live
}

// Move puts an entity on pos and marks its sight and light dirty
func (l *Level) Move(id world.EntityID, pos world.Point) error {
	e, err := l.Get(id)
	if err != nil {
		return err
	}
	if !l.Map.InBounds(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if !l.Map.CanEnter(pos) {
		return fmt.Errorf("%w: %v", ErrBlocked, pos)
	}
	e.Position = pos
	e.MarkDirty()
	return nil
}

// Step moves an entity one tile in dir
func (l *Level) Step(id world.EntityID, dir world.Direction) error {
	e, err := l.Get(id)
	if err != nil {
		return err
	}
	return l.Move(id, e.Position.Neighbor(dir))
}

// Despawn removes an entity. The tiles it lit or saw keep its entries until
// the next illumination and visibility passes release them.
func (l *Level) Despawn(id world.EntityID) error {
	e, err := l.Get(id)
	if err != nil {
		return err
	}

	if e.FOV != nil && e.FOV.VisibleTiles.Size() > 0 {
		l.releasedViews[id] = e.FOV.VisibleTiles
	}
	if e.Light != nil && e.Light.IlluminatedTiles.Size() > 0 {
		l.releasedLights[id] = e.Light.IlluminatedTiles
	}
	l.entities[id-1] = nil
	return nil
}

// TakeReleasedLights returns the tiles lit by despawned light sources since
// the last call, keyed by entity
func (l *Level) TakeReleasedLights() map[world.EntityID]mapset.Set[world.Point] {
	released := l.releasedLights
	l.releasedLights = make(map[world.EntityID]mapset.Set[world.Point])
	return released
}

// TakeReleasedViews returns the tiles seen by despawned observers since the
// last call, keyed by entity
func (l *Level) TakeReleasedViews() map[world.EntityID]mapset.Set[world.Point] {
	released := l.releasedViews
	l.releasedViews = make(map[world.EntityID]mapset.Set[world.Point])
	return released
}

// MarkObserversOf marks dirty every observer that currently sees one of the tiles
func (l *Level) MarkObserversOf(tiles mapset.Set[world.Point]) int {
	if tiles.Size() == 0 {
		return 0
	}
	marked := 0
	for _, e := range l.entities {
		if e == nil || e.FOV == nil || e.FOV.Dirty {
			continue
		}
		hit := false
		tiles.Each(func(p world.Point) {
			if !hit && e.FOV.VisibleTiles.Has(p) {
				hit = true
			}
		})
		if hit {
			e.FOV.Dirty = true
			marked++
		}
	}
	return marked
}

// AddMessage adds a message to the level's message log
func (l *Level) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)

	// Keep only the last maxLevelMessages
	if len(l.Messages) > maxLevelMessages {
		l.Messages = l.Messages[len(l.Messages)-maxLevelMessages:]
	}
}
