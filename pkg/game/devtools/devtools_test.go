package devtools

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/gameplay"
	"encounters/pkg/game/generator"
	"encounters/pkg/game/state"
)

func smallBuilder() *generator.MapBuilder {
	m := world.NewMap(4, 3, world.DungeonTheme)
	m.Carve(world.Point{X: 3, Y: 0}, world.ThemeWall)
	return &generator.MapBuilder{
		Map:           m,
		Theme:         world.DungeonTheme,
		PlayerStart:   world.Point{X: 0, Y: 0},
		AmuletStart:   world.Point{X: 3, Y: 2},
		MonsterSpawns: []world.Point{{X: 1, Y: 1}},
	}
}

func TestDumpMap(t *testing.T) {
	var buf bytes.Buffer
	if err := DumpMap(&buf, smallBuilder()); err != nil {
		t.Fatalf("DumpMap() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"width: 4", "theme: dungeon", "player_start: 0,0", "@..#\n.M..\n...$\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if err := DumpMap(&buf, nil); err == nil {
		t.Error("DumpMap(nil) error = nil")
	}
}

func TestDumpSeen(t *testing.T) {
	l := state.New(smallBuilder())
	if _, err := l.Spawn(entities.Player, world.Point{X: 0, Y: 0}, entities.NewFieldOfView(5, nil, nil), nil); err != nil {
		t.Fatal(err)
	}
	gameplay.Tick(l, nil)

	var buf bytes.Buffer
	if err := DumpSeen(&buf, l); err != nil {
		t.Fatalf("DumpSeen() error = %v", err)
	}
	// Radius one tile, no light: neighbours are seen in darkness
	if !strings.Contains(buf.String(), "@d  \nd   \n") {
		t.Errorf("unexpected fog layer:\n%s", buf.String())
	}
}

func TestPreview_PlainText(t *testing.T) {
	l := state.New(smallBuilder())
	if _, err := l.Spawn(entities.Player, world.Point{X: 0, Y: 0}, entities.NewFieldOfView(100, nil, nil), nil); err != nil {
		t.Fatal(err)
	}
	gameplay.Tick(l, nil)

	var buf bytes.Buffer
	if err := Preview(&buf, l, PreviewOptions{Width: 2, Height: 2}); err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if got := buf.String(); got != "@.\n..\n" {
		t.Errorf("Preview() = %q, want %q", got, "@.\n..\n")
	}
}

func TestViewport_CentresOnPlayer(t *testing.T) {
	l := state.New(&generator.MapBuilder{Map: world.NewMap(50, 50, world.ForestTheme)})
	if _, err := l.Spawn(entities.Player, world.Point{X: 48, Y: 25}, nil, nil); err != nil {
		t.Fatal(err)
	}
	// Clamped against the east edge
	x0, y0, x1, y1 := viewport(l, 10, 10)
	if x0 != 40 || y0 != 20 || x1 != 50 || y1 != 30 {
		t.Errorf("viewport = %d,%d-%d,%d, want 40,20-50,30", x0, y0, x1, y1)
	}
	x0, _, x1, _ = viewport(l, 80, 10)
	if x0 != 0 || x1 != 50 {
		t.Errorf("wide viewport = %d-%d, want 0-50", x0, x1)
	}
}

func TestDevLevel(t *testing.T) {
	l, err := DevLevel()
	if err != nil {
		t.Fatalf("DevLevel() error = %v", err)
	}
	lights := 0
	for _, e := range l.Entities() {
		if e.Light != nil {
			lights++
		}
	}
	if lights != 3 {
		t.Errorf("lights = %d, want 3", lights)
	}
	gameplay.Tick(l, nil)
	if l.Map.Tile(l.Player().Position).Seen() != world.SeenBright {
		t.Error("player tile next to the torch should be seen bright")
	}
}

func TestDumpToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpToFile(path, func(w io.Writer) error {
		return DumpMap(w, smallBuilder())
	})
	if err != nil {
		t.Fatalf("DumpToFile() error = %v", err)
	}
	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "=== MAP DUMP ===") {
		t.Errorf("file content = %q", data)
	}
}
