package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"encounters/pkg/engine/world"
)

// CampfireMarker marks a campfire light in a template
const CampfireMarker = 'C'

// SpawnMarkers are the template characters that spawn an entity.
// Every other character is plain floor.
var SpawnMarkers = func() mapset.Set[rune] {
	s := mapset.New[rune]()
	s.Put(CampfireMarker)
	return s
}()

// CustomMapDescription is a hand-made level as read from a template file
type CustomMapDescription struct {
	Width       int
	Height      int
	Theme       world.Theme
	PlayerStart world.Point
	AmuletStart world.Point
	Tiles       string
}

// FlattenTiles returns the tile string with all whitespace removed
func (d *CustomMapDescription) FlattenTiles() string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, d.Tiles)
}

// buildCustom lays out a template: an all-floor map with entity spawns at its markers
func (g *Generator) buildCustom(d *CustomMapDescription) (*MapBuilder, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: template is %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}

	mb := newMapBuilder(d.Width, d.Height, d.Theme)
	mb.fill(world.ThemeFloor)
	mb.PlayerStart = d.PlayerStart
	mb.AmuletStart = d.AmuletStart

	i := 0
	for _, c := range d.FlattenTiles() {
		if i >= mb.Map.Len() {
			break
		}
		if SpawnMarkers.Has(c) {
			mb.EntitySpawns = append(mb.EntitySpawns, EntitySpawn{Point: mb.Map.PointAt(i), Marker: c})
		}
		i++
	}

	g.log.WithField("spawns", len(mb.EntitySpawns)).Debug("Laid out template")
	return mb, nil
}
