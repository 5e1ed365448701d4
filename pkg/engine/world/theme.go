package world

import (
	"fmt"
	"strings"
)

// Theme maps abstract terrain roles to concrete tile variants
type Theme int

// Themes
const (
	DungeonTheme Theme = iota
	ForestTheme
)

// AllThemes returns every theme for iteration
func AllThemes() []Theme {
	return []Theme{DungeonTheme, ForestTheme}
}

// TileToRender resolves an abstract role to this theme's concrete tile type.
// Any other input is a programming error and panics.
func (t Theme) TileToRender(role TileType) TileType {
	switch t {
	case DungeonTheme:
		switch role {
		case ThemeFloor:
			return FloorSandStone0
		case ThemeWall:
			return WallShoals2
		case ThemeExit:
			return GatewaysLairEnter
		}
	case ForestTheme:
		switch role {
		case ThemeFloor:
			return FloorDirt0
		case ThemeWall:
			return WallTreesMangrove1
		case ThemeExit:
			return GatewaysDepthsEnter
		}
	}
	panic(fmt.Sprintf("theme %v has no tile for %v", t, role))
}

// String returns the name of the theme
func (t Theme) String() string {
	switch t {
	case DungeonTheme:
		return "dungeon"
	case ForestTheme:
		return "forest"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// ParseTheme parses a theme name as produced by String
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dungeon", "dungeontheme":
		return DungeonTheme, nil
	case "forest", "foresttheme":
		return ForestTheme, nil
	default:
		return 0, fmt.Errorf("unknown theme %q", s)
	}
}
