package generator

import (
	"errors"
	"math/rand"
	"testing"

	"encounters/pkg/engine/pathfind"
	"encounters/pkg/engine/world"
)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), nil)
}

func TestGenerate_BoundsInvariant(t *testing.T) {
	for _, a := range RandomArchitects {
		for _, theme := range world.AllThemes() {
			for seed := int64(1); seed <= 3; seed++ {
				mb, err := newTestGenerator(seed).Generate(Request{Architect: a, Width: 80, Height: 50, Theme: theme})
				if err != nil {
					t.Fatalf("%s/%s seed %d: Generate() error = %v", a, theme, seed, err)
				}
				if mb.Map.Len() != 80*50 {
					t.Errorf("%s: Len() = %d, want %d", a, mb.Map.Len(), 80*50)
				}
				if mb.Theme != theme || mb.Map.Theme() != theme {
					t.Errorf("%s: theme = %v, want %v", a, mb.Theme, theme)
				}
				points := append([]world.Point{mb.PlayerStart, mb.AmuletStart}, mb.MonsterSpawns...)
				for _, p := range points {
					if !mb.Map.CanEnter(p) {
						t.Errorf("%s/%s seed %d: spawn %v is not enterable", a, theme, seed, p)
					}
				}
			}
		}
	}
}

func TestGenerate_RoomsAreConnected(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		mb, err := newTestGenerator(seed).Generate(Request{Architect: RoomsAndCorridors, Width: 80, Height: 50})
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}
		if len(mb.Rooms) != numRooms {
			t.Fatalf("len(Rooms) = %d, want %d", len(mb.Rooms), numRooms)
		}
		if mb.PlayerStart != mb.Rooms[0].Center() {
			t.Errorf("PlayerStart = %v, want first room center %v", mb.PlayerStart, mb.Rooms[0].Center())
		}
		if len(mb.MonsterSpawns) != numRooms-1 {
			t.Errorf("len(MonsterSpawns) = %d, want %d", len(mb.MonsterSpawns), numRooms-1)
		}

		field := pathfind.NewDistanceFieldFrom(mb.Map, mb.PlayerStart, pathfind.DefaultMaxDistance)
		for i, room := range mb.Rooms {
			if !field.Reachable(mustIdx(t, mb.Map, room.Center())) {
				t.Errorf("seed %d: room %d center %v unreachable from start", seed, i, room.Center())
			}
		}
	}
}

func TestGenerate_RoomsDoNotOverlap(t *testing.T) {
	mb, err := newTestGenerator(7).Generate(Request{Architect: RoomsAndCorridors, Width: 80, Height: 50})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := range mb.Rooms {
		for j := i + 1; j < len(mb.Rooms); j++ {
			if mb.Rooms[i].Intersect(mb.Rooms[j]) {
				t.Errorf("rooms %d and %d intersect: %v %v", i, j, mb.Rooms[i], mb.Rooms[j])
			}
		}
	}
}

func TestGenerate_AmuletIsMostDistant(t *testing.T) {
	for _, a := range RandomArchitects {
		mb, err := newTestGenerator(3).Generate(Request{Architect: a, Width: 80, Height: 50})
		if err != nil {
			t.Fatalf("%s: Generate() error = %v", a, err)
		}
		field := pathfind.NewDistanceFieldFrom(mb.Map, mb.PlayerStart, pathfind.DefaultMaxDistance)
		got := field.AtPoint(mb.AmuletStart)
		if got != field.Max() {
			t.Errorf("%s: amulet distance = %v, want field max %v", a, got, field.Max())
		}
	}
}

func TestGenerate_AutomataDeterministic(t *testing.T) {
	req := Request{Architect: CellularAutomata, Width: 60, Height: 40, Theme: world.ForestTheme}
	a, err := newTestGenerator(42).Generate(req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := newTestGenerator(42).Generate(req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for idx := 0; idx < a.Map.Len(); idx++ {
		if a.Map.TileAt(idx).Type != b.Map.TileAt(idx).Type {
			t.Fatalf("tile %d differs: %v vs %v", idx, a.Map.TileAt(idx).Type, b.Map.TileAt(idx).Type)
		}
	}
	if a.PlayerStart != b.PlayerStart || a.AmuletStart != b.AmuletStart {
		t.Errorf("spawn points differ between runs")
	}
}

func TestGenerate_DrunkardCoversThird(t *testing.T) {
	mb, err := newTestGenerator(5).Generate(Request{Architect: DrunkardsWalk, Width: 80, Height: 50})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := mb.Map.CountRole(world.ThemeFloor); got < 80*50/3 {
		t.Errorf("floor tiles = %d, want at least %d", got, 80*50/3)
	}
	if mb.PlayerStart != mb.Map.Center() {
		t.Errorf("PlayerStart = %v, want center %v", mb.PlayerStart, mb.Map.Center())
	}
}

func TestGenerate_Errors(t *testing.T) {
	g := newTestGenerator(1)

	if _, err := g.Generate(Request{Architect: RoomsAndCorridors, Width: 0, Height: 10}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := g.Generate(Request{Architect: Architect(99), Width: 10, Height: 10}); !errors.Is(err, ErrUnknownArchitect) {
		t.Errorf("bad architect: error = %v, want ErrUnknownArchitect", err)
	}
	if _, err := g.Generate(Request{Architect: CustomTemplate}); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("missing template: error = %v, want ErrGenerationFailed", err)
	}
	if _, err := g.Generate(Request{Architect: RoomsAndCorridors, Width: 11, Height: 11}); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("tiny rooms map: error = %v, want ErrGenerationFailed", err)
	}
	// Room for a few rooms but never twenty
	if _, err := g.Generate(Request{Architect: RoomsAndCorridors, Width: 14, Height: 14}); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("crowded rooms map: error = %v, want ErrGenerationFailed", err)
	}
}

func TestGenerateRandom(t *testing.T) {
	g := newTestGenerator(9)
	for i := 0; i < 6; i++ {
		mb, err := g.GenerateRandom(80, 50)
		if err != nil {
			t.Fatalf("GenerateRandom() error = %v", err)
		}
		if err := mb.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	}
}

func TestParseArchitect(t *testing.T) {
	for _, a := range AllArchitects() {
		got, err := ParseArchitect(a.String())
		if err != nil || got != a {
			t.Errorf("ParseArchitect(%q) = %v, %v, want %v", a.String(), got, err, a)
		}
	}
	if _, err := ParseArchitect("maze"); !errors.Is(err, ErrUnknownArchitect) {
		t.Errorf("ParseArchitect(maze) error = %v, want ErrUnknownArchitect", err)
	}
}

func TestValidate_RejectsWalledSpawn(t *testing.T) {
	mb := newMapBuilder(5, 5, world.DungeonTheme)
	mb.Map.Carve(world.Point{X: 2, Y: 2}, world.ThemeWall)
	mb.PlayerStart = world.Point{X: 2, Y: 2}
	if err := mb.Validate(); err == nil {
		t.Error("Validate() = nil for player on a wall")
	}
	mb.PlayerStart = world.Point{X: 1, Y: 1}
	mb.MonsterSpawns = []world.Point{{X: 9, Y: 9}}
	if err := mb.Validate(); err == nil {
		t.Error("Validate() = nil for out of bounds monster")
	}
}

func mustIdx(t *testing.T, m *world.Map, p world.Point) int {
	t.Helper()
	idx, ok := m.TryIdx(p)
	if !ok {
		t.Fatalf("%v is out of bounds", p)
	}
	return idx
}

func TestGenerate_RecordsArchitect(t *testing.T) {
	g := newTestGenerator(11)
	for _, a := range RandomArchitects {
		mb, err := g.Generate(Request{Architect: a, Width: 80, Height: 50, Theme: world.ForestTheme})
		if err != nil {
			t.Fatalf("Generate(%v) error = %v", a, err)
		}
		if mb.Architect != a {
			t.Errorf("Architect = %v, want %v", mb.Architect, a)
		}
	}
}
