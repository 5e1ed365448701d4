// Package generator builds levels: it carves a Map with one of several
// architects and places the player, the amulet and monster spawns on it.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/logging"
)

// Errors returned by Generate
var (
	ErrGenerationFailed  = errors.New("map generation failed")
	ErrInvalidDimensions = errors.New("map dimensions must be positive")
	ErrUnknownArchitect  = errors.New("unknown architect")
)

// Architect selects the map generation algorithm
type Architect int

// Architects
const (
	CellularAutomata Architect = iota
	DrunkardsWalk
	RoomsAndCorridors
	CustomTemplate
)

// AllArchitects returns every architect for iteration
func AllArchitects() []Architect {
	return []Architect{CellularAutomata, DrunkardsWalk, RoomsAndCorridors, CustomTemplate}
}

// RandomArchitects are the architects GenerateRandom chooses between
var RandomArchitects = []Architect{DrunkardsWalk, RoomsAndCorridors, CellularAutomata}

// String returns the architect's config name
func (a Architect) String() string {
	switch a {
	case CellularAutomata:
		return "automata"
	case DrunkardsWalk:
		return "drunkard"
	case RoomsAndCorridors:
		return "rooms"
	case CustomTemplate:
		return "custom"
	default:
		return fmt.Sprintf("Architect(%d)", int(a))
	}
}

// DisplayName returns the translated architect name
func (a Architect) DisplayName() string {
	switch a {
	case CellularAutomata:
		return gotext.Get("ARCHITECT_AUTOMATA")
	case DrunkardsWalk:
		return gotext.Get("ARCHITECT_DRUNKARD")
	case RoomsAndCorridors:
		return gotext.Get("ARCHITECT_ROOMS")
	case CustomTemplate:
		return gotext.Get("ARCHITECT_CUSTOM")
	default:
		return a.String()
	}
}

// ParseArchitect parses an architect name as produced by String
func ParseArchitect(s string) (Architect, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range AllArchitects() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchitect, s)
}

// Request describes one level to generate. Template is required for
// CustomTemplate and supplies its own size and theme.
type Request struct {
	Architect Architect
	Width     int
	Height    int
	Theme     world.Theme
	Template  *CustomMapDescription
}

// Generator runs architects with a shared random source
type Generator struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// New creates a generator. A nil rng gets a random seed, a nil log discards.
func New(rng *rand.Rand, log logrus.FieldLogger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{rng: rng, log: logging.OrDiscard(log)}
}

// Generate builds a level with the requested architect and validates the result
func (g *Generator) Generate(req Request) (*MapBuilder, error) {
	var (
		mb  *MapBuilder
		err error
	)

	if req.Architect != CustomTemplate && (req.Width <= 0 || req.Height <= 0) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, req.Width, req.Height)
	}

	switch req.Architect {
	case CellularAutomata:
		mb, err = g.buildAutomata(req.Width, req.Height, req.Theme)
	case DrunkardsWalk:
		mb, err = g.buildDrunkard(req.Width, req.Height, req.Theme)
	case RoomsAndCorridors:
		mb, err = g.buildRooms(req.Width, req.Height, req.Theme)
	case CustomTemplate:
		if req.Template == nil {
			return nil, fmt.Errorf("%w: custom architect needs a template", ErrGenerationFailed)
		}
		mb, err = g.buildCustom(req.Template)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownArchitect, req.Architect)
	}
	if err != nil {
		return nil, fmt.Errorf("%s architect: %w", req.Architect, err)
	}

	mb.Architect = req.Architect
	if err := mb.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s architect: %v", ErrGenerationFailed, req.Architect, err)
	}

	g.log.WithFields(logrus.Fields{
		"architect": req.Architect.String(),
		"theme":     mb.Theme.String(),
		"width":     mb.Map.Width(),
		"height":    mb.Map.Height(),
		"monsters":  len(mb.MonsterSpawns),
	}).Info("Generated map")

	return mb, nil
}

// GenerateRandom picks an architect and a theme at random and generates a level
func (g *Generator) GenerateRandom(width, height int) (*MapBuilder, error) {
	architect := RandomArchitects[g.rng.Intn(len(RandomArchitects))]
	themes := world.AllThemes()
	theme := themes[g.rng.Intn(len(themes))]
	return g.Generate(Request{Architect: architect, Width: width, Height: height, Theme: theme})
}
