// Command islandgen generates an island without a window and reports on it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"io/fs"
	"os"
	"time"

	"islandgen/internal/app"
	"islandgen/internal/config"
	"islandgen/internal/logging"
	"islandgen/internal/render"
	"islandgen/pkg/core"
	"islandgen/pkg/terrain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	set := flag.NewFlagSet("islandgen", flag.ContinueOnError)
	set.SetOutput(stderr)
	flags := app.NewFlags()
	flags.Bind(set)
	randomSeed := set.Bool("random-seed", false, "pick a random seed instead of the configured one")
	ascii := set.Bool("ascii", false, "print the island as text")
	params := set.Bool("params", false, "print the effective parameters")
	pngPath := set.String("png", "", "write the island to this PNG file")
	writeConfig := set.String("write-config", "", "write the effective configuration to this YAML file")
	if err := set.Parse(args); err != nil {
		return 2
	}

	cfg, loadErr := config.LoadConfig(flags.ConfigPath)
	flags.Apply(cfg)
	log := logging.New(cfg.Log.Level, stderr)
	switch {
	case loadErr == nil:
		log.Debug("loaded config", "path", flags.ConfigPath)
	case errors.Is(loadErr, fs.ErrNotExist):
		log.Debug("no config file, using defaults", "path", flags.ConfigPath)
	default:
		log.Error("config", "path", flags.ConfigPath, "err", loadErr)
		return 1
	}

	if *randomSeed {
		cfg.Generation.Seed = core.NewRNG(time.Now().UnixNano()).IntN(terrain.MaxSeed + 1)
	}

	gen := terrain.NewGenerator(cfg.Workers, log)
	grid, err := gen.Generate(cfg.Generation)
	if err != nil {
		log.Error("generation failed", "err", err)
		return 1
	}

	if *ascii {
		if err := render.WriteASCII(stdout, grid); err != nil {
			log.Error("write ascii", "err", err)
			return 1
		}
	}
	if *params {
		printParameters(stdout, grid.Params())
	}
	printSummary(stdout, terrain.Summarize(grid))

	if *pngPath != "" {
		if err := writePNG(*pngPath, grid, cfg.Viewer.Scale); err != nil {
			log.Error("write png", "path", *pngPath, "err", err)
			return 1
		}
		log.Info("wrote image", "path", *pngPath)
	}
	if *writeConfig != "" {
		if err := config.SaveConfig(cfg, *writeConfig); err != nil {
			log.Error("write config", "err", err)
			return 1
		}
		log.Info("wrote config", "path", *writeConfig)
	}
	return 0
}

func printParameters(w io.Writer, p terrain.Params) {
	for _, group := range p.Parameters().Groups {
		fmt.Fprintf(w, "[%s]\n", group.Name)
		for _, param := range group.Params {
			fmt.Fprintf(w, "  %-12s %s\n", param.Label, param.Value)
		}
	}
}

func printSummary(w io.Writer, s terrain.Summary) {
	fmt.Fprintf(w, "cells=%d land=%d (%.1f%%) water=%d edges=%d corners=%d\n",
		s.Total(), s.Land, 100*s.LandFraction(), s.Water, s.Edges, s.Corners)
	for k := terrain.Water; int(k) < terrain.KindCount; k++ {
		fmt.Fprintf(w, "  %-9s %d\n", k, s.Counts[k])
	}
}

func writePNG(path string, grid *terrain.Grid, scale int) error {
	img, err := render.Image(grid, max(scale, 1), render.DefaultPalette())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
