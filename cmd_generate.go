package main

import (
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"encounters/pkg/engine/world"
	"encounters/pkg/game/devtools"
	"encounters/pkg/game/generator"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and dump it as text",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write the dump to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	mb, err := buildMap(newRand(), log)
	if err != nil {
		return err
	}

	dump := func(w io.Writer) error {
		fmt.Fprintf(w, "%s: %s / %s\n\n", gotext.Get("GENERATED_LEVEL"), mb.Architect.DisplayName(), themeName(mb))
		return devtools.DumpMap(w, mb)
	}

	if generateOut == "" {
		return dump(os.Stdout)
	}

	path, err := devtools.DumpToFile(generateOut, dump)
	if err != nil {
		return err
	}
	log.WithField("path", path).Info("Wrote map dump")
	return nil
}

func themeName(mb *generator.MapBuilder) string {
	switch mb.Theme {
	case world.DungeonTheme:
		return gotext.Get("THEME_DUNGEON")
	case world.ForestTheme:
		return gotext.Get("THEME_FOREST")
	default:
		return mb.Theme.String()
	}
}
