package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"encounters/pkg/engine/terminal"
	"encounters/pkg/engine/world"
	"encounters/pkg/game/generator"
	"encounters/pkg/game/logging"
	"encounters/pkg/game/templates"
)

// cfg holds flags, environment and the optional config file
var cfg = viper.New()

var configFile string

func bindRootFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "config file (toml, yaml or json)")
	f.Int("width", 80, "map width in tiles")
	f.Int("height", 50, "map height in tiles")
	f.String("architect", "random", "automata, drunkard, rooms, custom or random")
	f.String("theme", "random", "dungeon, forest or random")
	f.Int64("seed", 0, "random seed, 0 for time based")
	f.String("template", "", "template file for the custom architect")
	f.String("log-level", "info", "log level")
	f.String("locale", "en_GB", "message locale")
	f.String("locales-dir", "locales", "directory holding <locale>/LC_MESSAGES/default.po")
	f.String("color", "auto", "colour output: auto, always or never")

	for _, name := range []string{"width", "height", "architect", "theme", "seed", "template", "log-level", "locale", "locales-dir", "color"} {
		if err := cfg.BindPFlag(name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() error {
	if configFile != "" {
		cfg.SetConfigFile(configFile)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.SetEnvPrefix("ENCOUNTERS")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	cfg.AutomaticEnv()

	gotext.Configure(cfg.GetString("locales-dir"), cfg.GetString("locale"), "default")
	return nil
}

func newLogger() *logrus.Logger {
	return logging.New(cfg.GetString("log-level"), os.Stderr)
}

func newRand() *rand.Rand {
	seed := cfg.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// useColor resolves the color setting against the output
func useColor() bool {
	switch strings.ToLower(cfg.GetString("color")) {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal.IsTerminal(os.Stdout)
	}
}

// buildMap runs the configured architect
func buildMap(rng *rand.Rand, log logrus.FieldLogger) (*generator.MapBuilder, error) {
	gen := generator.New(rng, log)
	width, height := cfg.GetInt("width"), cfg.GetInt("height")

	architectName := cfg.GetString("architect")
	if path := cfg.GetString("template"); path != "" {
		if architectName != "random" && architectName != generator.CustomTemplate.String() {
			return nil, fmt.Errorf("--template needs the custom architect, got %q", architectName)
		}
		d, err := templates.Load(path)
		if err != nil {
			return nil, err
		}
		return gen.Generate(generator.Request{Architect: generator.CustomTemplate, Template: d})
	}

	if architectName == "random" && cfg.GetString("theme") == "random" {
		return gen.GenerateRandom(width, height)
	}

	architect := generator.RandomArchitects[rng.Intn(len(generator.RandomArchitects))]
	if architectName != "random" {
		a, err := generator.ParseArchitect(architectName)
		if err != nil {
			return nil, err
		}
		architect = a
	}

	if architect == generator.CustomTemplate {
		return nil, fmt.Errorf("%w: the custom architect needs --template", generator.ErrGenerationFailed)
	}

	themes := world.AllThemes()
	theme := themes[rng.Intn(len(themes))]
	if name := cfg.GetString("theme"); name != "random" {
		t, err := world.ParseTheme(name)
		if err != nil {
			return nil, err
		}
		theme = t
	}

	return gen.Generate(generator.Request{Architect: architect, Width: width, Height: height, Theme: theme})
}
