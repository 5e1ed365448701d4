package entities

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"encounters/pkg/engine/world"
)

// InfiniteDuration marks a light that never burns out
const InfiniteDuration = math.MaxUint32

// ProvidesIllumination is a light source. Tiles within Bright feet are lit
// normally, tiles up to Bright+Shadowy feet are dimly lit.
type ProvidesIllumination struct {
	IlluminatedTiles mapset.Set[world.Point]
	Bright           uint16
	Shadowy          uint16
	Duration         uint32 // minutes left
	Dirty            bool
}

// NewProvidesIllumination creates a dirty light source
func NewProvidesIllumination(bright, shadowy uint16, duration uint32) *ProvidesIllumination {
	return &ProvidesIllumination{
		IlluminatedTiles: mapset.New[world.Point](),
		Bright:           bright,
		Shadowy:          shadowy,
		Duration:         duration,
		Dirty:            true,
	}
}

// Radius returns the lit range in whole tiles
func (l *ProvidesIllumination) Radius() int {
	return world.FeetToTiles(int(l.Bright) + int(l.Shadowy))
}

// LevelAt classifies a tile feet away from the light
func (l *ProvidesIllumination) LevelAt(feet float64) world.IlluminationLevel {
	switch {
	case feet <= float64(l.Bright):
		return world.IlluminationNormal
	case feet <= float64(l.Bright)+float64(l.Shadowy):
		return world.IlluminationDim
	default:
		return world.IlluminationNone
	}
}

// Lit returns true while the light has time left
func (l *ProvidesIllumination) Lit() bool {
	return l.Duration > 0
}

// Burn spends minutes of the light's duration. Returns true if this put it out.
func (l *ProvidesIllumination) Burn(minutes uint32) bool {
	if l.Duration == InfiniteDuration || l.Duration == 0 {
		return false
	}
	if minutes >= l.Duration {
		l.Duration = 0
		l.Dirty = true
		return true
	}
	l.Duration -= minutes
	return false
}
