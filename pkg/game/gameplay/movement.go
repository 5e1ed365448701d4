package gameplay

import (
	"errors"
	"math/rand"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/state"
)

// MovePlayer steps the player one tile. Returns false if the way is blocked.
func MovePlayer(l *state.Level, dir world.Direction) (bool, error) {
	player := l.Player()
	if player == nil {
		return false, state.ErrUnknownEntity
	}
	if err := l.Step(player.ID, dir); err != nil {
		if errors.Is(err, state.ErrBlocked) || errors.Is(err, state.ErrOutOfBounds) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Wander moves every entity of kind one tile in a random enterable direction.
// An entity only turns back the way it came at a dead end. Entities with no
// way out stay put. Returns how many moved.
func Wander(l *state.Level, kind entities.Kind, rng *rand.Rand) int {
	moved := 0
	for _, e := range l.Entities() {
		if e.Kind != kind {
			continue
		}

		var options []world.Direction
		back := false
		for _, dir := range world.AllDirections() {
			if !l.Map.CanEnter(e.Position.Neighbor(dir)) {
				continue
			}
			if e.Wandered && dir == e.Heading.Reverse() {
				back = true
				continue
			}
			options = append(options, dir)
		}
		if len(options) == 0 {
			if !back {
				continue
			}
			options = append(options, e.Heading.Reverse())
		}

		dir := options[rng.Intn(len(options))]
		if err := l.Step(e.ID, dir); err == nil {
			e.Heading, e.Wandered = dir, true
			moved++
		}
	}
	return moved
}
