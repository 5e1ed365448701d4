// Package templates reads hand-made level templates into generator descriptions.
//
// A template is a toml, yaml or json document:
//
//	width = 12
//	height = 6
//	theme = "forest"
//	player_start = [1, 1]
//	amulet_start = [10, 4]
//	tiles = """
//	............
//	....C.......
//	"""
//
// Whitespace in tiles is ignored. The remaining characters map to grid cells
// in row-major order.
package templates

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/generator"
)

// ErrMalformedTemplate is returned for missing or structurally invalid templates
var ErrMalformedTemplate = errors.New("malformed template")

// Extensions are the file types LoadNamed looks for, in order
var Extensions = []string{"toml", "yaml", "yml", "json"}

// Load reads the template at path. The format follows the file extension.
func Load(path string) (*generator.CustomMapDescription, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMalformedTemplate, path, err)
	}
	return decode(v)
}

// LoadNamed finds the template called name in dir
func LoadNamed(dir, name string) (*generator.CustomMapDescription, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+"."+ext)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return nil, fmt.Errorf("%w: no template %q in %s", ErrMalformedTemplate, name, dir)
}

// Parse reads a template from r in the given format (toml, yaml or json)
func Parse(r io.Reader, format string) (*generator.CustomMapDescription, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTemplate, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*generator.CustomMapDescription, error) {
	for _, key := range []string{"width", "height", "theme", "player_start", "amulet_start", "tiles"} {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedTemplate, key)
		}
	}

	theme, err := world.ParseTheme(v.GetString("theme"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTemplate, err)
	}

	d := &generator.CustomMapDescription{
		Width:  v.GetInt("width"),
		Height: v.GetInt("height"),
		Theme:  theme,
		Tiles:  v.GetString("tiles"),
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrMalformedTemplate, d.Width, d.Height)
	}

	if d.PlayerStart, err = point(v, "player_start"); err != nil {
		return nil, err
	}
	if d.AmuletStart, err = point(v, "amulet_start"); err != nil {
		return nil, err
	}

	bounds := world.Point{X: d.Width, Y: d.Height}
	for name, p := range map[string]world.Point{"player_start": d.PlayerStart, "amulet_start": d.AmuletStart} {
		if p.X < 0 || p.Y < 0 || p.X >= bounds.X || p.Y >= bounds.Y {
			return nil, fmt.Errorf("%w: %s %v outside %dx%d", ErrMalformedTemplate, name, p, d.Width, d.Height)
		}
	}

	if n := len([]rune(d.FlattenTiles())); n != d.Width*d.Height {
		return nil, fmt.Errorf("%w: %d tiles for a %dx%d map", ErrMalformedTemplate, n, d.Width, d.Height)
	}

	return d, nil
}

func point(v *viper.Viper, key string) (world.Point, error) {
	xy := v.GetIntSlice(key)
	if len(xy) != 2 {
		return world.Point{}, fmt.Errorf("%w: %s must be [x, y], got %s", ErrMalformedTemplate, key,
			strings.TrimSpace(fmt.Sprint(v.Get(key))))
	}
	return world.Point{X: xy[0], Y: xy[1]}, nil
}
