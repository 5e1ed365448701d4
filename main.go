// Command encounters generates dungeon and forest levels and simulates
// sight and lighting on them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "encounters",
	Short: "Procedural level generator",
	Long: `encounters builds tile maps with cellular automata, drunkard's walks,
rooms and corridors or hand-made templates, and runs the field of view and
illumination systems over them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	bindRootFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(simulateCmd)
}
