package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"encounters/pkg/engine/pathfind"
	"encounters/pkg/engine/world"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Show the tiles reachable from a point within a movement budget",
	RunE:  runRange,
}

func init() {
	f := rangeCmd.Flags()
	f.Int("x", -1, "anchor x, -1 for the player start")
	f.Int("y", -1, "anchor y, -1 for the player start")
	f.Uint32("max-cost", 30, "movement budget (a floor tile costs 5)")
	f.String("to", "", "print the path to x,y")

	for _, name := range []string{"x", "y", "max-cost", "to"} {
		if err := cfg.BindPFlag("range."+name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func runRange(cmd *cobra.Command, args []string) error {
	log := newLogger()

	mb, err := buildMap(newRand(), log)
	if err != nil {
		return err
	}

	anchor := mb.PlayerStart
	if x, y := cfg.GetInt("range.x"), cfg.GetInt("range.y"); x >= 0 && y >= 0 {
		anchor = world.Point{X: x, Y: y}
	}

	cache, err := pathfind.NewRangeCache(mb.Map, 64)
	if err != nil {
		return err
	}
	defer cache.Close()

	maxCost := cfg.GetUint32("range.max-cost")
	r := cache.Compute(anchor, maxCost)
	points := r.Points()

	// Count reached tiles per accumulated cost
	rings := make(map[uint32]int)
	for _, p := range points {
		cost, _ := r.CostTo(p)
		rings[cost]++
	}
	costs := make([]uint32, 0, len(rings))
	for c := range rings {
		costs = append(costs, c)
	}
	sort.Slice(costs, func(i, j int) bool { return costs[i] < costs[j] })

	fmt.Println(gotext.Get("RANGE_SUMMARY", len(points), anchor.String(), maxCost))
	for _, c := range costs {
		fmt.Printf("  %3d: %d\n", c, rings[c])
	}

	if to := cfg.GetString("range.to"); to != "" {
		var target world.Point
		if _, err := fmt.Sscanf(to, "%d,%d", &target.X, &target.Y); err != nil {
			return fmt.Errorf("parsing --to %q: %w", to, err)
		}
		path, ok := r.PathTo(target)
		if !ok {
			fmt.Println(gotext.Get("RANGE_UNREACHABLE", target.String()))
			return nil
		}
		steps := make([]string, len(path))
		for i, p := range path {
			steps[i] = p.String()
		}
		fmt.Printf("%s: %s\n", gotext.Get("RANGE_PATH"), strings.Join(steps, " -> "))
	}
	return nil
}
