package main

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/devtools"
	"encounters/pkg/game/entities"
	"encounters/pkg/game/gameplay"
	"encounters/pkg/game/state"
)

// Torches scattered by --lights burn for this many minutes
const torchMinutes = 120

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Walk the player around a level and show what it has seen",
	RunE:  runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Int("ticks", 20, "number of ticks to run")
	f.Int("lights", 5, "extra torches to scatter")
	f.Uint16("vision", state.PlayerVision, "player vision in feet")
	f.Uint32("minutes", 10, "game minutes per tick")
	f.Bool("dev", false, "use the hand-made developer level")
	f.Bool("seen", false, "also dump the fog of war layer")

	for _, name := range []string{"ticks", "lights", "vision", "minutes", "dev", "seen"} {
		if err := cfg.BindPFlag("simulate."+name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	rng := newRand()

	var (
		l   *state.Level
		err error
	)
	if cfg.GetBool("simulate.dev") {
		l, err = devtools.DevLevel()
	} else {
		mb, buildErr := buildMap(rng, log)
		if buildErr != nil {
			return buildErr
		}
		l, err = state.NewLevel(mb)
	}
	if err != nil {
		return err
	}

	player := l.Player()
	player.FOV.SetNormalVision(uint16(cfg.GetUint("simulate.vision")))

	// Scatter torches on random floor tiles
	for placed, tries := 0, 0; placed < cfg.GetInt("simulate.lights") && tries < 1000; tries++ {
		p := world.Point{X: rng.Intn(l.Map.Width()), Y: rng.Intn(l.Map.Height())}
		if !l.Map.CanEnter(p) {
			continue
		}
		torch := entities.NewProvidesIllumination(15, 15, torchMinutes)
		if _, err := l.Spawn(entities.Campfire, p, nil, torch); err != nil {
			return err
		}
		placed++
	}

	minutes := cfg.GetUint32("simulate.minutes")
	ticks := cfg.GetInt("simulate.ticks")
	for i := 0; i < ticks; i++ {
		gameplay.Wander(l, entities.Player, rng)
		gameplay.Wander(l, entities.Monster, rng)
		stats := gameplay.Tick(l, log)
		gameplay.AdvanceTime(l, minutes, log)

		log.WithFields(logrus.Fields{
			"tick":      i,
			"observers": stats.Observers,
			"changed":   stats.ChangedTiles,
			"marked":    stats.Marked,
		}).Debug("Tick")
	}
	// Show the final positions
	gameplay.Tick(l, log)

	fmt.Println(gotext.Get("SIMULATION_SUMMARY", ticks, l.Minutes, countSeen(l)))
	for _, msg := range l.Messages {
		fmt.Println("  " + msg)
	}
	if err := devtools.Preview(os.Stdout, l, devtools.PreviewOptions{Color: useColor()}); err != nil {
		return err
	}
	if cfg.GetBool("simulate.seen") {
		return devtools.DumpSeen(os.Stdout, l)
	}
	return nil
}

func countSeen(l *state.Level) int {
	n := 0
	l.Map.ForEachTile(func(_ int, _ world.Point, t *world.Tile) {
		if t.Seen() != world.SeenNone {
			n++
		}
	})
	return n
}
