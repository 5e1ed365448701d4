// Package world provides the tile map primitives shared by generation,
// pathfinding and the sight systems.
package world

// Map is a fixed-size row-major grid of tiles, indexed by y*width + x
type Map struct {
	width  int
	height int
	theme  Theme
	tiles  []Tile
}

// NewMap creates a map of the given size filled with the theme's floor
func NewMap(width, height int, theme Theme) *Map {
	if width <= 0 || height <= 0 {
		panic("Map dimensions must be positive")
	}

	m := &Map{
		width:  width,
		height: height,
		theme:  theme,
		tiles:  make([]Tile, width*height),
	}
	m.Fill(ThemeFloor)
	return m
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.height
}

// Theme returns the theme tiles are rendered with
func (m *Map) Theme() Theme {
	return m.theme
}

// Len returns the number of tiles
func (m *Map) Len() int {
	return len(m.tiles)
}

// Center returns the point at the middle of the map
func (m *Map) Center() Point {
	return Point{X: m.width / 2, Y: m.height / 2}
}

// InBounds checks if a point lies within the map
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Idx returns the tile index for x/y without a bounds check
func (m *Map) Idx(x, y int) int {
	return y*m.width + x
}

// TryIdx returns the tile index for p, or false if p is out of bounds
func (m *Map) TryIdx(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.Idx(p.X, p.Y), true
}

// PointAt returns the point for a tile index
func (m *Map) PointAt(idx int) Point {
	return Point{X: idx % m.width, Y: idx / m.width}
}

// Tile returns the tile at p, or nil if p is out of bounds
func (m *Map) Tile(p Point) *Tile {
	idx, ok := m.TryIdx(p)
	if !ok {
		return nil
	}
	return &m.tiles[idx]
}

// TileAt returns the tile at an index, or nil if the index is out of range
func (m *Map) TileAt(idx int) *Tile {
	if idx < 0 || idx >= len(m.tiles) {
		return nil
	}
	return &m.tiles[idx]
}

// IsOpaque returns true if the tile at idx blocks sight. Out of range is opaque.
func (m *Map) IsOpaque(idx int) bool {
	t := m.TileAt(idx)
	return t == nil || t.Opaque
}

// CanEnter checks if p is in bounds and not opaque
func (m *Map) CanEnter(p Point) bool {
	t := m.Tile(p)
	return t != nil && !t.Opaque
}

// Carve replaces the tile at p with the theme's tile for role. Returns false if out of bounds.
func (m *Map) Carve(p Point, role TileType) bool {
	idx, ok := m.TryIdx(p)
	if !ok {
		return false
	}
	m.tiles[idx] = NewTile(m.theme.TileToRender(role))
	return true
}

// CarveAt replaces the tile at idx with the theme's tile for role
func (m *Map) CarveAt(idx int, role TileType) {
	m.tiles[idx] = NewTile(m.theme.TileToRender(role))
}

// Fill replaces every tile with the theme's tile for role
func (m *Map) Fill(role TileType) {
	tile := NewTile(m.theme.TileToRender(role))
	for i := range m.tiles {
		m.tiles[i] = tile
	}
}

// IsRole checks whether the tile at idx was carved as role under this map's theme
func (m *Map) IsRole(idx int, role TileType) bool {
	t := m.TileAt(idx)
	return t != nil && t.Type == m.theme.TileToRender(role)
}

// CountRole returns how many tiles were carved as role
func (m *Map) CountRole(role TileType) int {
	want := m.theme.TileToRender(role)
	n := 0
	for i := range m.tiles {
		if m.tiles[i].Type == want {
			n++
		}
	}
	return n
}

// Exits returns the indices of enterable tiles orthogonally adjacent to idx
func (m *Map) Exits(idx int) []int {
	exits := make([]int, 0, 4)
	from := m.PointAt(idx)
	for _, dir := range AllDirections() {
		to := from.Neighbor(dir)
		if m.CanEnter(to) {
			exits = append(exits, m.Idx(to.X, to.Y))
		}
	}
	return exits
}

// ForEachTile iterates over all tiles in index order
func (m *Map) ForEachTile(fn func(idx int, p Point, t *Tile)) {
	for i := range m.tiles {
		fn(i, m.PointAt(i), &m.tiles[i])
	}
}
