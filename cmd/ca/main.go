//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"initrows/internal/app"
	"initrows/internal/config"
	"initrows/internal/core"
	"initrows/internal/rows"
	"initrows/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	format, err := rows.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatal(err)
	}

	rebuild := func() (core.Universe, error) { return world.Build(cfg) }
	sim, err := rebuild()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, rebuild, cfg.Scale, cfg.TPS, rows.Options{Output: cfg.Output, Format: format})
	size := sim.Size()

	ebiten.SetWindowTitle("initrows — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, game.ScreenHeight())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
