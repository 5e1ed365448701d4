package generator

import (
	"fmt"
	"sort"

	"encounters/pkg/engine/world"
)

// Constants for rooms and corridors generation
const (
	numRooms        = 20
	minRoomSize     = 2
	maxRoomSize     = 9
	roomMargin      = 10 // rooms start this far from the right and bottom edges
	maxRoomAttempts = 10000
)

// buildRooms places rectangular rooms and joins them with L-shaped corridors
func (g *Generator) buildRooms(width, height int, theme world.Theme) (*MapBuilder, error) {
	if width <= roomMargin+1 || height <= roomMargin+1 {
		return nil, fmt.Errorf("%w: %dx%d is too small for rooms", ErrGenerationFailed, width, height)
	}

	mb := newMapBuilder(width, height, theme)
	mb.fill(world.ThemeWall)

	if err := g.buildRandomRooms(mb); err != nil {
		return nil, err
	}
	g.buildCorridors(mb)

	mb.PlayerStart = mb.Rooms[0].Center()
	mb.AmuletStart = mb.findMostDistant()
	for _, room := range mb.Rooms[1:] {
		mb.MonsterSpawns = append(mb.MonsterSpawns, room.Center())
	}
	return mb, nil
}

// buildRandomRooms rejection-samples numRooms non-overlapping rooms
func (g *Generator) buildRandomRooms(mb *MapBuilder) error {
	width, height := mb.Map.Width(), mb.Map.Height()
	rejected := 0

	for attempt := 0; len(mb.Rooms) < numRooms; attempt++ {
		if attempt >= maxRoomAttempts {
			return fmt.Errorf("%w: placed %d of %d rooms after %d attempts",
				ErrGenerationFailed, len(mb.Rooms), numRooms, attempt)
		}

		room := NewRect(
			1+g.rng.Intn(width-roomMargin-1),
			1+g.rng.Intn(height-roomMargin-1),
			minRoomSize+g.rng.Intn(maxRoomSize-minRoomSize+1),
			minRoomSize+g.rng.Intn(maxRoomSize-minRoomSize+1),
		)

		overlap := false
		for _, r := range mb.Rooms {
			if r.Intersect(room) {
				overlap = true
				break
			}
		}
		if overlap {
			rejected++
			continue
		}

		room.ForEach(func(p world.Point) {
			if p.X > 0 && p.X < width && p.Y > 0 && p.Y < height {
				mb.Map.Carve(p, world.ThemeFloor)
			}
		})
		mb.Rooms = append(mb.Rooms, room)
	}

	g.log.WithField("rejected", rejected).Debug("Placed rooms")
	return nil
}

// buildCorridors connects each room to its neighbour in x order.
// mb.Rooms keeps insertion order; only a copy is sorted.
func (g *Generator) buildCorridors(mb *MapBuilder) {
	rooms := make([]Rect, len(mb.Rooms))
	copy(rooms, mb.Rooms)
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Center().X < rooms[j].Center().X
	})

	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		next := rooms[i].Center()

		if g.rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveHorizontal(mb.Map, prev.X, next.X, prev.Y)
			carveVertical(mb.Map, prev.Y, next.Y, next.X)
		} else {
			// Vertical first, then horizontal
			carveVertical(mb.Map, prev.Y, next.Y, prev.X)
			carveHorizontal(mb.Map, prev.X, next.X, next.Y)
		}
	}
}

// carveHorizontal carves floor along row y from x1 to x2 inclusive
func carveHorizontal(m *world.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.Carve(world.Point{X: x, Y: y}, world.ThemeFloor)
	}
}

// carveVertical carves floor along column x from y1 to y2 inclusive
func carveVertical(m *world.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.Carve(world.Point{X: x, Y: y}, world.ThemeFloor)
	}
}
