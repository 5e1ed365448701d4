// Package gameplay runs the per-tick systems of a level: illumination,
// visibility and entity movement.
package gameplay

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/logging"
	"encounters/pkg/game/state"
)

// UpdateIllumination recomputes every dirty light source and reconciles the
// tiles they reach. Returns the tiles whose aggregate illumination changed.
func UpdateIllumination(l *state.Level, log logrus.FieldLogger) mapset.Set[world.Point] {
	log = logging.OrDiscard(log)
	touched := mapset.New[world.Point]()
	changed := mapset.New[world.Point]()
	updated := 0

	for id, tiles := range l.TakeReleasedLights() {
		release(l.Map, id, tiles, touched)
	}

	for _, e := range l.Entities() {
		if e.Light == nil || !e.Light.Dirty {
			continue
		}
		updated++

		if !e.Light.Lit() {
			release(l.Map, e.ID, e.Light.IlluminatedTiles, touched)
			e.Light.IlluminatedTiles = mapset.New[world.Point]()
			e.Light.Dirty = false
			continue
		}

		illuminate(l.Map, e, touched)
	}

	// Every write is in place before any aggregate is read
	touched.Each(func(p world.Point) {
		if t := l.Map.Tile(p); t != nil && t.RecomputeIllumination() {
			changed.Put(p)
		}
	})

	if updated > 0 {
		log.WithFields(logrus.Fields{
			"lights":  updated,
			"touched": touched.Size(),
			"changed": changed.Size(),
		}).Debug("Updated illumination")
	}
	return changed
}

// release removes a light source from every tile it lit
func release(m *world.Map, id world.EntityID, tiles, touched mapset.Set[world.Point]) {
	tiles.Each(func(p world.Point) {
		if t := m.Tile(p); t != nil {
			t.ClearIlluminatedBy(id)
			touched.Put(p)
		}
	})
}

// illuminate computes one light's lit set and writes its per-tile levels
func illuminate(m *world.Map, e *entities.Entity, touched mapset.Set[world.Point]) {
	light := e.Light
	lit := world.FieldOfViewSet(m, e.Position, light.Radius())

	// Tiles no longer lit lose this source
	light.IlluminatedTiles.Each(func(p world.Point) {
		if lit.Has(p) {
			return
		}
		if t := m.Tile(p); t != nil {
			t.ClearIlluminatedBy(e.ID)
			touched.Put(p)
		}
	})

	lit.Each(func(p world.Point) {
		t := m.Tile(p)
		if t == nil {
			return
		}
		t.SetIlluminatedBy(e.ID, light.LevelAt(world.DistanceBetweenPoints(e.Position, p)))
		touched.Put(p)
	})

	light.IlluminatedTiles = lit
	light.Dirty = false
}
