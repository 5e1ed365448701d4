package gameplay

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/logging"
	"encounters/pkg/game/state"
)

// UpdateVisibility recomputes every dirty observer, records how well it sees
// each visible tile and promotes the tiles' aggregate seen level.
// Returns the number of observers recomputed.
func UpdateVisibility(l *state.Level, log logrus.FieldLogger) int {
	log = logging.OrDiscard(log)
	touched := mapset.New[world.Point]()
	updated := 0

	for id, tiles := range l.TakeReleasedViews() {
		tiles.Each(func(p world.Point) {
			if t := l.Map.Tile(p); t != nil {
				t.ClearSeenBy(id)
				touched.Put(p)
			}
		})
	}

	for _, e := range l.Entities() {
		if e.FOV == nil || !e.FOV.Dirty {
			continue
		}
		updated++
		observe(l.Map, e, touched)
	}

	touched.Each(func(p world.Point) {
		if t := l.Map.Tile(p); t != nil {
			t.RecomputeSeen()
		}
	})

	if updated > 0 {
		log.WithFields(logrus.Fields{
			"observers": updated,
			"touched":   touched.Size(),
		}).Debug("Updated visibility")
	}
	return updated
}

// observe computes one observer's visible set and writes its per-tile levels
func observe(m *world.Map, e *entities.Entity, touched mapset.Set[world.Point]) {
	fov := e.FOV
	visible := world.FieldOfViewSet(m, e.Position, fov.Radius())

	fov.VisibleTiles.Each(func(p world.Point) {
		if visible.Has(p) {
			return
		}
		if t := m.Tile(p); t != nil {
			t.ClearSeenBy(e.ID)
			touched.Put(p)
		}
	})

	visible.Each(func(p world.Point) {
		t := m.Tile(p)
		if t == nil {
			return
		}
		feet := world.DistanceBetweenPoints(e.Position, p)
		t.SetSeenBy(e.ID, SeenLevelFor(fov, t.Illumination(), feet))
		touched.Put(p)
	})

	fov.VisibleTiles = visible
	fov.Dirty = false
}

// SeenLevelFor returns how well an observer sees a tile feet away that is lit at lvl.
// Normal light is always Bright. Dark vision improves unlit tiles to Shadowy
// and dim tiles to Bright.
func SeenLevelFor(fov *entities.FieldOfView, lvl world.IlluminationLevel, feet float64) world.SeenLevel {
	switch lvl {
	case world.IlluminationNormal:
		return world.SeenBright
	case world.IlluminationDim:
		if fov.WithinDarkVision(feet) {
			return world.SeenBright
		}
		return world.SeenShadowy
	default:
		if fov.WithinDarkVision(feet) {
			return world.SeenShadowy
		}
		return world.SeenDarkness
	}
}
