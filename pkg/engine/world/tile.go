package world

import "fmt"

// TileType is a terrain variant. The Theme* values are abstract roles that a
// Theme resolves to concrete variants; only concrete variants are stored in a Map.
type TileType int

// Tile types
const (
	ThemeFloor TileType = iota
	ThemeWall
	ThemeExit
	FloorSandStone0
	WallShoals2
	GatewaysLairEnter
	FloorDirt0
	WallTreesMangrove1
	GatewaysDepthsEnter
)

// TextureIndex returns the sprite sheet index for a concrete tile type.
// Panics for abstract roles.
func (t TileType) TextureIndex() uint8 {
	switch t {
	case FloorSandStone0:
		return 51
	case WallShoals2:
		return 233
	case GatewaysLairEnter:
		return 144
	case FloorDirt0:
		return 35
	case WallTreesMangrove1:
		return 176
	case GatewaysDepthsEnter:
		return 137
	default:
		panic(fmt.Sprintf("tile type %v has no texture", t))
	}
}

// String returns the name of the tile type
func (t TileType) String() string {
	switch t {
	case ThemeFloor:
		return "ThemeFloor"
	case ThemeWall:
		return "ThemeWall"
	case ThemeExit:
		return "ThemeExit"
	case FloorSandStone0:
		return "FloorSandStone0"
	case WallShoals2:
		return "WallShoals2"
	case GatewaysLairEnter:
		return "GatewaysLairEnter"
	case FloorDirt0:
		return "FloorDirt0"
	case WallTreesMangrove1:
		return "WallTreesMangrove1"
	case GatewaysDepthsEnter:
		return "GatewaysDepthsEnter"
	default:
		return fmt.Sprintf("TileType(%d)", int(t))
	}
}

// EntityID is a stable handle into an entity table. Tiles key their
// illumination and visibility mappings by it.
type EntityID uint32

// IlluminationLevel is how well a tile is lit
type IlluminationLevel int

// Illumination levels, ordered darkest first
const (
	IlluminationNone IlluminationLevel = iota
	IlluminationDim
	IlluminationNormal
)

// String returns the name of the level
func (l IlluminationLevel) String() string {
	switch l {
	case IlluminationNone:
		return "None"
	case IlluminationDim:
		return "Dim"
	case IlluminationNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// SeenLevel is how clearly a tile is seen. SeenNone means it was never evaluated.
type SeenLevel int

// Seen levels, ordered darkest first
const (
	SeenNone SeenLevel = iota
	SeenDarkness
	SeenShadowy
	SeenBright
)

// String returns the name of the level
func (l SeenLevel) String() string {
	switch l {
	case SeenNone:
		return "None"
	case SeenDarkness:
		return "Darkness"
	case SeenShadowy:
		return "Shadowy"
	case SeenBright:
		return "Bright"
	default:
		return "Unknown"
	}
}

// Tile is a single grid cell. Terrain fields are fixed at generation time;
// the *By mappings are written by the illumination and visibility systems only,
// and Illumination/Seen are always derived from them.
type Tile struct {
	Type        TileType
	Opaque      bool
	TerrainCost uint8

	illuminatedBy map[EntityID]IlluminationLevel
	illumination  IlluminationLevel

	seenBy map[EntityID]SeenLevel
	seen   SeenLevel
}

// NewTile creates a tile for a concrete type. Panics for abstract roles.
func NewTile(t TileType) Tile {
	switch t {
	case FloorSandStone0, FloorDirt0:
		return Tile{Type: t, Opaque: false, TerrainCost: 5}
	case WallShoals2, WallTreesMangrove1:
		return Tile{Type: t, Opaque: true, TerrainCost: 0}
	case GatewaysLairEnter, GatewaysDepthsEnter:
		return Tile{Type: t, Opaque: true, TerrainCost: 0}
	default:
		panic(fmt.Sprintf("cannot create tile for %v", t))
	}
}

// Illumination returns the aggregate light level
func (t *Tile) Illumination() IlluminationLevel {
	return t.illumination
}

// Seen returns the aggregate seen level
func (t *Tile) Seen() SeenLevel {
	return t.seen
}

// IlluminatedBy returns the level a light source gives this tile
func (t *Tile) IlluminatedBy(id EntityID) (IlluminationLevel, bool) {
	lvl, ok := t.illuminatedBy[id]
	return lvl, ok
}

// SeenBy returns the level an observer sees this tile at
func (t *Tile) SeenBy(id EntityID) (SeenLevel, bool) {
	lvl, ok := t.seenBy[id]
	return lvl, ok
}

// LightSources returns the number of light sources reaching this tile
func (t *Tile) LightSources() int {
	return len(t.illuminatedBy)
}

// Observers returns the number of observers currently seeing this tile
func (t *Tile) Observers() int {
	return len(t.seenBy)
}

// SetIlluminatedBy records the level a light source gives this tile
func (t *Tile) SetIlluminatedBy(id EntityID, lvl IlluminationLevel) {
	if t.illuminatedBy == nil {
		t.illuminatedBy = make(map[EntityID]IlluminationLevel)
	}
	t.illuminatedBy[id] = lvl
}

// ClearIlluminatedBy removes a light source from this tile
func (t *Tile) ClearIlluminatedBy(id EntityID) {
	delete(t.illuminatedBy, id)
}

// SetSeenBy records the level an observer sees this tile at
func (t *Tile) SetSeenBy(id EntityID, lvl SeenLevel) {
	if t.seenBy == nil {
		t.seenBy = make(map[EntityID]SeenLevel)
	}
	t.seenBy[id] = lvl
}

// ClearSeenBy removes an observer from this tile
func (t *Tile) ClearSeenBy(id EntityID) {
	delete(t.seenBy, id)
}

// RecomputeIllumination rebuilds the aggregate light level from the current
// sources: Normal if any source is Normal or two or more are Dim, Dim if one
// source is Dim, otherwise None. Returns true if the aggregate changed.
func (t *Tile) RecomputeIllumination() bool {
	normal, dim := 0, 0
	for _, lvl := range t.illuminatedBy {
		switch lvl {
		case IlluminationNormal:
			normal++
		case IlluminationDim:
			dim++
		}
	}

	next := IlluminationNone
	switch {
	case normal > 0 || dim >= 2:
		next = IlluminationNormal
	case dim > 0:
		next = IlluminationDim
	}

	changed := next != t.illumination
	t.illumination = next
	return changed
}

// RecomputeSeen promotes the aggregate seen level from the current observers.
// The aggregate never moves darker: once Bright it stays Bright, Shadowy only
// promotes to Bright, Darkness promotes to Shadowy or Bright, and an
// unevaluated tile takes the highest level any observer reports.
func (t *Tile) RecomputeSeen() {
	bright, shadowy, darkness := 0, 0, 0
	for _, lvl := range t.seenBy {
		switch lvl {
		case SeenBright:
			bright++
		case SeenShadowy:
			shadowy++
		case SeenDarkness:
			darkness++
		}
	}

	switch t.seen {
	case SeenBright:
	case SeenShadowy:
		if bright > 0 {
			t.seen = SeenBright
		}
	case SeenDarkness:
		if bright > 0 {
			t.seen = SeenBright
		} else if shadowy > 0 {
			t.seen = SeenShadowy
		}
	default:
		switch {
		case bright > 0:
			t.seen = SeenBright
		case shadowy > 0:
			t.seen = SeenShadowy
		case darkness > 0:
			t.seen = SeenDarkness
		}
	}
}
