package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"islandgen/internal/config"
	"islandgen/pkg/terrain"
)

// Flags represents the command-line parameters shared by the binaries. Zero
// values leave the configuration file untouched.
type Flags struct {
	ConfigPath string
	Seed       int
	Scale      int
	Workers    int
	LogLevel   string
	Overrides  Overrides
}

// NewFlags returns Flags populated with defaults.
func NewFlags() *Flags {
	return &Flags{ConfigPath: "island.yaml", Seed: -1, Overrides: Overrides{}}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to YAML configuration")
	fs.IntVar(&f.Seed, "seed", f.Seed, "generation seed (-1 keeps the configured seed)")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixels per cell (0 keeps the configured scale)")
	fs.IntVar(&f.Workers, "workers", f.Workers, "rows generated concurrently (0 keeps the configured value)")
	fs.StringVar(&f.LogLevel, "log", f.LogLevel, "log level: debug, info, warn, error")
	fs.Var(f.Overrides, "set", "generation override key=value (repeatable), e.g. -set water_level=0.45")
}

// Apply merges the flags into cfg.
func (f *Flags) Apply(cfg *config.Config) {
	cfg.Generation = terrain.FromMap(cfg.Generation, f.Overrides)
	if f.Seed >= 0 {
		cfg.Generation = terrain.FromMap(cfg.Generation, map[string]string{"seed": fmt.Sprint(f.Seed)})
	}
	if f.Scale > 0 {
		cfg.Viewer.Scale = f.Scale
	}
	if f.Workers > 0 {
		cfg.Workers = f.Workers
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("override %q is not key=value", v)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}
