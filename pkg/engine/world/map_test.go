package world

import "testing"

func TestNewMap_TileCount(t *testing.T) {
	m := NewMap(7, 3, DungeonTheme)
	if m.Len() != 21 {
		t.Fatalf("Len() = %d, want 21", m.Len())
	}
	if got := m.CountRole(ThemeFloor); got != 21 {
		t.Errorf("CountRole(ThemeFloor) = %d, want 21", got)
	}
}

func TestNewMap_PanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMap(0, 5) did not panic")
		}
	}()
	NewMap(0, 5, DungeonTheme)
}

func TestMap_IndexRoundTrip(t *testing.T) {
	m := NewMap(5, 4, ForestTheme)
	for idx := 0; idx < m.Len(); idx++ {
		p := m.PointAt(idx)
		if got := m.Idx(p.X, p.Y); got != idx {
			t.Errorf("Idx(PointAt(%d)) = %d", idx, got)
		}
	}
}

func TestMap_BoundsChecks(t *testing.T) {
	m := NewMap(3, 3, DungeonTheme)
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if m.InBounds(p) {
			t.Errorf("InBounds(%v) = true, want false", p)
		}
		if m.Tile(p) != nil {
			t.Errorf("Tile(%v) != nil for out of bounds point", p)
		}
		if m.CanEnter(p) {
			t.Errorf("CanEnter(%v) = true, want false", p)
		}
		if m.Carve(p, ThemeWall) {
			t.Errorf("Carve(%v) = true, want false", p)
		}
	}
	if m.TileAt(-1) != nil || m.TileAt(9) != nil {
		t.Error("TileAt out of range should be nil")
	}
}

func TestMap_CarveAndExits(t *testing.T) {
	m := NewMap(3, 3, DungeonTheme)
	m.Carve(Point{1, 0}, ThemeWall)
	m.Carve(Point{0, 1}, ThemeWall)

	if m.CanEnter(Point{1, 0}) {
		t.Error("wall tile should not be enterable")
	}
	if m.Tile(Point{1, 0}).TerrainCost != 0 {
		t.Error("wall tile should have zero terrain cost")
	}

	exits := m.Exits(m.Idx(1, 1))
	if len(exits) != 2 {
		t.Fatalf("len(Exits(1,1)) = %d, want 2", len(exits))
	}
	for _, idx := range exits {
		if !m.CanEnter(m.PointAt(idx)) {
			t.Errorf("exit %v is not enterable", m.PointAt(idx))
		}
	}
}

func TestTheme_TileToRender(t *testing.T) {
	cases := []struct {
		theme Theme
		role  TileType
		want  TileType
	}{
		{DungeonTheme, ThemeFloor, FloorSandStone0},
		{DungeonTheme, ThemeWall, WallShoals2},
		{DungeonTheme, ThemeExit, GatewaysLairEnter},
		{ForestTheme, ThemeFloor, FloorDirt0},
		{ForestTheme, ThemeWall, WallTreesMangrove1},
		{ForestTheme, ThemeExit, GatewaysDepthsEnter},
	}
	for _, c := range cases {
		if got := c.theme.TileToRender(c.role); got != c.want {
			t.Errorf("%v.TileToRender(%v) = %v, want %v", c.theme, c.role, got, c.want)
		}
	}
}

func TestTheme_TileToRenderPanicsOnConcreteType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TileToRender(FloorDirt0) did not panic")
		}
	}()
	DungeonTheme.TileToRender(FloorDirt0)
}

func TestTileType_TextureIndexPanicsOnRole(t *testing.T) {
	if FloorDirt0.TextureIndex() != 35 {
		t.Errorf("FloorDirt0.TextureIndex() = %d, want 35", FloorDirt0.TextureIndex())
	}
	defer func() {
		if recover() == nil {
			t.Error("ThemeWall.TextureIndex() did not panic")
		}
	}()
	ThemeWall.TextureIndex()
}

func TestParseTheme(t *testing.T) {
	for _, theme := range AllThemes() {
		got, err := ParseTheme(theme.String())
		if err != nil || got != theme {
			t.Errorf("ParseTheme(%q) = %v, %v", theme.String(), got, err)
		}
	}
	if _, err := ParseTheme("swamp"); err == nil {
		t.Error("ParseTheme(\"swamp\") returned nil error")
	}
}

func TestDistanceIn_Units(t *testing.T) {
	a, b := Point{X: 0, Y: 0}, Point{X: 3, Y: 4}

	if got := DistanceIn(a, b, Tiles); got != 5 {
		t.Errorf("DistanceIn(Tiles) = %v, want 5", got)
	}
	if got := DistanceBetweenPoints(a, b); got != 25 {
		t.Errorf("DistanceBetweenPoints = %v, want 25", got)
	}
	if got := DistanceIn(a, b, Miles); got != 25.0/FeetPerMile {
		t.Errorf("DistanceIn(Miles) = %v, want %v", got, 25.0/FeetPerMile)
	}
	if got := FeetToTiles(60); got != 12 {
		t.Errorf("FeetToTiles(60) = %d, want 12", got)
	}
}

func TestDirection_Reverse(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Reverse().Reverse() != d {
			t.Errorf("%v.Reverse().Reverse() = %v", d, d.Reverse().Reverse())
		}
		if got := (Point{}).Neighbor(d).Add(d.Reverse().Delta()); got != (Point{}) {
			t.Errorf("%v then %v ends at %v, want 0,0", d, d.Reverse(), got)
		}
	}
	if North.Reverse() != South || East.Reverse() != West {
		t.Errorf("North/East reverse = %v/%v, want South/West", North.Reverse(), East.Reverse())
	}
}
