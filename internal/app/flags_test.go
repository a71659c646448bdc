package app

import (
	"flag"
	"io"
	"testing"

	"islandgen/internal/config"
)

func TestFlagsApply(t *testing.T) {
	f := NewFlags()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.Bind(fs)
	err := fs.Parse([]string{
		"-seed", "77",
		"-scale", "3",
		"-log", "debug",
		"-set", "water_level=0.45",
		"-set", "noise_octaves = 6",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg := config.DefaultConfig()
	f.Apply(cfg)
	if cfg.Generation.Seed != 77 {
		t.Fatalf("seed = %d, want 77", cfg.Generation.Seed)
	}
	if cfg.Generation.WaterLevel != 0.45 || cfg.Generation.NoiseOctaves != 6 {
		t.Fatalf("overrides not applied: %+v", cfg.Generation)
	}
	if cfg.Viewer.Scale != 3 || cfg.Log.Level != "debug" {
		t.Fatalf("viewer/log not applied: %+v %+v", cfg.Viewer, cfg.Log)
	}
	if cfg.Workers != config.DefaultConfig().Workers {
		t.Fatalf("workers changed without a flag: %d", cfg.Workers)
	}
}

func TestFlagsDefaultsKeepConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generation.Seed = 5
	want := *cfg
	NewFlags().Apply(cfg)
	if *cfg != want {
		t.Fatalf("default flags changed the config: %+v, want %+v", *cfg, want)
	}
}

func TestOverridesSet(t *testing.T) {
	o := Overrides{}
	if err := o.Set("grid_size=64"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := o.Set("noise"); err == nil {
		t.Fatal("missing '=' must fail")
	}
	if err := o.Set("=3"); err == nil {
		t.Fatal("empty key must fail")
	}
	if got := o.String(); got != "grid_size=64" {
		t.Fatalf("String() = %q", got)
	}
}
