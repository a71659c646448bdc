//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"islandgen/internal/app"
	"islandgen/internal/config"
	"islandgen/internal/logging"
	"islandgen/pkg/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.LoadConfig(flags.ConfigPath)
	flags.Apply(cfg)
	log := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error("config", "path", flags.ConfigPath, "err", err)
		os.Exit(1)
	}

	game, err := app.New(terrain.NewGenerator(cfg.Workers, log), cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("island (seed %d)", cfg.Generation.Seed))
	ebiten.SetTPS(max(cfg.Viewer.TPS, 1))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer exited", "err", err)
		os.Exit(1)
	}
}
