package terrain

import (
	"math"
	"strconv"

	"islandgen/internal/core"
	"islandgen/pkg/noise"
)

const (
	// MinOctaves and MaxOctaves bound the octave count accepted by FromMap.
	MinOctaves = 1
	MaxOctaves = 20
	// MaxSeed is the largest seed FromMap accepts.
	MaxSeed = 99999999
)

// Params holds the inputs of one generation pass. It is read-only while a
// grid is being generated.
type Params struct {
	GridSize     int     `yaml:"grid_size"`
	TileSize     float64 `yaml:"tile_size"` // presentation only
	WaterLevel   float64 `yaml:"water_level"`
	NoiseScale   float64 `yaml:"noise_scale"`
	IslandSize   float64 `yaml:"island_size"`
	NoiseOctaves int     `yaml:"noise_octaves"`
	Seed         int     `yaml:"seed"`
	Noise        string  `yaml:"noise"`
}

// DefaultParams returns the standard configuration.
func DefaultParams() Params {
	return Params{
		GridSize:     100,
		TileSize:     1,
		WaterLevel:   0.4,
		NoiseScale:   0.5,
		IslandSize:   20,
		NoiseOctaves: 4,
		Seed:         42,
		Noise:        noise.Default,
	}
}

// Validate rejects parameters that would divide by zero, produce an empty
// grid or take the square root of a negative seed.
func (p Params) Validate() error {
	switch {
	case p.GridSize <= 0:
		return &ConfigError{Field: "grid_size", Reason: "must be positive"}
	case p.IslandSize <= 0:
		return &ConfigError{Field: "island_size", Reason: "must be positive"}
	case p.NoiseOctaves < MinOctaves:
		return &ConfigError{Field: "noise_octaves", Reason: "must be at least 1"}
	case p.NoiseScale == 0:
		return &ConfigError{Field: "noise_scale", Reason: "must be nonzero"}
	case p.Seed < 0:
		return &ConfigError{Field: "seed", Reason: "must not be negative"}
	case p.TileSize <= 0:
		return &ConfigError{Field: "tile_size", Reason: "must be positive"}
	case !finite(p.WaterLevel):
		return &ConfigError{Field: "water_level", Reason: "must be finite"}
	case !finite(p.NoiseScale):
		return &ConfigError{Field: "noise_scale", Reason: "must be finite"}
	case !finite(p.IslandSize):
		return &ConfigError{Field: "island_size", Reason: "must be finite"}
	case !noise.Known(p.Noise):
		return &ConfigError{Field: "noise", Reason: "names no registered primitive"}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// FromMap applies flag-style key/value overrides on top of base. Unparsable
// values are ignored.
func FromMap(base Params, cfg map[string]string) Params {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["grid_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["tile_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["water_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.WaterLevel = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed != 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["island_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.IslandSize = parsed
		}
	}
	if v, ok := cfg["noise_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.NoiseOctaves = min(max(parsed, MinOctaves), MaxOctaves)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Seed = min(max(parsed, 0), MaxSeed)
		}
	}
	if v, ok := cfg["noise"]; ok && v != "" {
		c.Noise = v
	}
	return c
}

// Parameters describes p for display.
func (p Params) Parameters() core.ParameterSnapshot {
	primitive := p.Noise
	if primitive == "" {
		primitive = noise.Default
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("grid_size", "Grid size", p.GridSize),
				floatParam("tile_size", "Tile size", p.TileSize),
				floatParam("water_level", "Water level", p.WaterLevel),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				{Key: "noise", Label: "Primitive", Type: core.ParamTypeString, Value: primitive},
				floatParam("noise_scale", "Noise scale", p.NoiseScale),
				floatParam("island_size", "Island size", p.IslandSize),
				intParam("noise_octaves", "Octaves", p.NoiseOctaves),
				intParam("seed", "Seed", p.Seed),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

// Controls lists the parameters a viewer may step interactively.
func Controls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "grid_size", Label: "Grid size", Type: core.ParamTypeInt, Min: 8, Max: 512, Step: 8, HasMin: true, HasMax: true},
		{Key: "water_level", Label: "Water level", Type: core.ParamTypeFloat, Min: 0, Max: 1, Step: 0.05, HasMin: true, HasMax: true},
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Min: 0.05, Max: 5, Step: 0.05, HasMin: true, HasMax: true},
		{Key: "island_size", Label: "Island size", Type: core.ParamTypeFloat, Min: 1, Max: 200, Step: 1, HasMin: true, HasMax: true},
		{Key: "noise_octaves", Label: "Octaves", Type: core.ParamTypeInt, Min: MinOctaves, Max: MaxOctaves, Step: 1, HasMin: true, HasMax: true},
	}
}
