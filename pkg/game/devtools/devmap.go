package devtools

import (
	"fmt"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/generator"
	"encounters/pkg/game/state"
)

// Dev map layout: a wall splits the room, campfires sit on both sides and
// the player starts next to a torch that burns out after devTorchMinutes.
const (
	devWidth        = 30
	devHeight       = 12
	devTorchMinutes = 30
	devTiles        = `
		..............................
		..C...........................
		..............................
		..............................
		..............................
		..............................
		..............................
		..............................
		..............................
		.......................C......
		..............................
		..............................
	`
)

// DevLevel builds a small hand-made level that exercises every lighting
// case: bright and shadowy campfire light, two overlapping dim rings, a wall
// casting a shadow and a torch with a finite duration
func DevLevel() (*state.Level, error) {
	mb, err := generator.New(nil, nil).Generate(generator.Request{
		Architect: generator.CustomTemplate,
		Template: &generator.CustomMapDescription{
			Width:       devWidth,
			Height:      devHeight,
			Theme:       world.DungeonTheme,
			PlayerStart: world.Point{X: 1, Y: 6},
			AmuletStart: world.Point{X: 28, Y: 6},
			Tiles:       devTiles,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("building dev map: %w", err)
	}

	// Wall down the middle with a gap
	for y := 0; y < devHeight; y++ {
		if y != 6 {
			mb.Map.Carve(world.Point{X: 15, Y: y}, world.ThemeWall)
		}
	}

	l, err := state.NewLevel(mb)
	if err != nil {
		return nil, err
	}

	torch := entities.NewProvidesIllumination(10, 10, devTorchMinutes)
	if _, err := l.Spawn(entities.Campfire, world.Point{X: 2, Y: 6}, nil, torch); err != nil {
		return nil, err
	}
	return l, nil
}
