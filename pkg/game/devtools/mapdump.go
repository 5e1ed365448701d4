// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/generator"
	"encounters/pkg/game/state"
)

// MapDumpFilename is the default file DumpToFile writes
const MapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile (no entity overlay)
func tileSymbol(m *world.Map, idx int) rune {
	switch {
	case m.IsRole(idx, world.ThemeFloor):
		return '.'
	case m.IsRole(idx, world.ThemeExit):
		return '>'
	default:
		return '#'
	}
}

// seenSymbol returns the fog-of-war symbol for a tile
func seenSymbol(t *world.Tile) rune {
	switch t.Seen() {
	case world.SeenBright:
		return 'B'
	case world.SeenShadowy:
		return 's'
	case world.SeenDarkness:
		return 'd'
	default:
		return ' '
	}
}

// overlay maps points to the glyph drawn over the terrain
type overlay map[world.Point]rune

func builderOverlay(mb *generator.MapBuilder) overlay {
	o := make(overlay)
	for _, p := range mb.MonsterSpawns {
		o[p] = entities.Monster.Glyph()
	}
	for _, s := range mb.EntitySpawns {
		o[s.Point] = s.Marker
	}
	o[mb.AmuletStart] = entities.Amulet.Glyph()
	o[mb.PlayerStart] = entities.Player.Glyph()
	return o
}

func levelOverlay(l *state.Level) overlay {
	o := make(overlay)
	live := l.Entities()
	for _, e := range live {
		if e.Kind != entities.Player {
			o[e.Position] = e.Kind.Glyph()
		}
	}
	// Players last so they are never hidden
	for _, e := range live {
		if e.Kind == entities.Player {
			o[e.Position] = e.Kind.Glyph()
		}
	}
	return o
}

func writeGrid(w io.Writer, m *world.Map, o overlay, symbol func(idx int, t *world.Tile) rune) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := world.Point{X: x, Y: y}
			if g, ok := o[p]; ok {
				fmt.Fprintf(w, "%c", g)
				continue
			}
			idx := m.Idx(x, y)
			fmt.Fprintf(w, "%c", symbol(idx, m.TileAt(idx)))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a generated level: metadata, legend, the map with spawn
// overlays and the spawn lists
func DumpMap(w io.Writer, mb *generator.MapBuilder) error {
	if mb == nil || mb.Map == nil {
		return fmt.Errorf("no map")
	}
	m := mb.Map

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "theme: %s\n", mb.Theme)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "player_start: %s\n", mb.PlayerStart)
	fmt.Fprintf(w, "amulet_start: %s\n", mb.AmuletStart)
	fmt.Fprintf(w, "rooms: %d\n", len(mb.Rooms))
	fmt.Fprintf(w, "monster_spawns: %d\n", len(mb.MonsterSpawns))
	fmt.Fprintf(w, "entity_spawns: %d\n", len(mb.EntitySpawns))
	fmt.Fprintf(w, "floor_tiles: %d\n", m.CountRole(world.ThemeFloor))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = floor  # = wall  > = exit  @ = player  $ = amulet  M = monster  C = campfire")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeGrid(w, m, builderOverlay(mb), func(idx int, _ *world.Tile) rune { return tileSymbol(m, idx) })
	fmt.Fprintln(w, "")

	// --- Rooms ---
	if len(mb.Rooms) > 0 {
		fmt.Fprintln(w, "Rooms:")
		for i, r := range mb.Rooms {
			fmt.Fprintf(w, "  index: %d x1: %d y1: %d x2: %d y2: %d center: %s\n", i, r.X1, r.Y1, r.X2, r.Y2, r.Center())
		}
		fmt.Fprintln(w, "")
	}

	// --- Spawns ---
	fmt.Fprintln(w, "Monster spawns:")
	for _, p := range mb.MonsterSpawns {
		fmt.Fprintf(w, "  %s\n", p)
	}
	if len(mb.EntitySpawns) > 0 {
		fmt.Fprintln(w, "Entity spawns:")
		for _, s := range mb.EntitySpawns {
			fmt.Fprintf(w, "  %s marker: %q\n", s.Point, s.Marker)
		}
	}
	return nil
}

// DumpSeen writes the fog-of-war layer of a level: B = bright, s = shadowy,
// d = darkness, blank = never seen. Entities are drawn over the fog.
func DumpSeen(w io.Writer, l *state.Level) error {
	if l == nil || l.Map == nil {
		return fmt.Errorf("no level")
	}

	fmt.Fprintln(w, "--- Seen ---")
	fmt.Fprintf(w, "minutes: %d\n", l.Minutes)
	writeGrid(w, l.Map, levelOverlay(l), func(_ int, t *world.Tile) rune { return seenSymbol(t) })
	return nil
}

// DumpToFile creates path (MapDumpFilename if empty), runs dump on it and
// returns the absolute path written
func DumpToFile(path string, dump func(w io.Writer) error) (string, error) {
	if path == "" {
		path = MapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := dump(f); err != nil {
		return "", err
	}
	return absPath, nil
}
