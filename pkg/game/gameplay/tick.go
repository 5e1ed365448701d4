package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"encounters/pkg/game/logging"
	"encounters/pkg/game/state"
)

// TickStats summarises one tick
type TickStats struct {
	ChangedTiles int // tiles whose illumination changed
	Marked       int // observers made dirty by a lighting change
	Observers    int // observers recomputed
}

// Tick runs the sight systems once. Illumination reconciles first so that
// observers see light changes in the same tick.
func Tick(l *state.Level, log logrus.FieldLogger) TickStats {
	log = logging.OrDiscard(log)

	changed := UpdateIllumination(l, log)
	stats := TickStats{
		ChangedTiles: changed.Size(),
		Marked:       l.MarkObserversOf(changed),
	}
	stats.Observers = UpdateVisibility(l, log)
	return stats
}

// AdvanceTime moves the level clock forward and burns down finite lights.
// Lights that go out are released on the next Tick.
func AdvanceTime(l *state.Level, minutes uint32, log logrus.FieldLogger) int {
	log = logging.OrDiscard(log)
	l.Minutes += uint64(minutes)

	out := 0
	for _, e := range l.Entities() {
		if e.Light == nil || !e.Light.Burn(minutes) {
			continue
		}
		out++
		l.AddMessage(gotext.Get("LIGHT_BURNT_OUT", e.Kind.String(), e.Position.String()))
		log.WithFields(logrus.Fields{
			"entity":   e.ID,
			"kind":     e.Kind.String(),
			"position": e.Position.String(),
		}).Info("Light burnt out")
	}
	return out
}
