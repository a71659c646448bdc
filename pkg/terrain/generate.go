package terrain

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Generate builds a grid for p sequentially.
func Generate(p Params) (*Grid, error) {
	s, err := NewSampler(p)
	if err != nil {
		return nil, err
	}
	return build(s, p, 1)
}

// build fills a new grid row by row. With workers > 1 rows run concurrently
// and Wait is the barrier before the grid is returned.
func build(s *Sampler, p Params, workers int) (*Grid, error) {
	g := newGrid(p)
	if workers <= 1 {
		for y := 0; y < p.GridSize; y++ {
			fillRow(g, s, y)
		}
		return g, nil
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for y := 0; y < p.GridSize; y++ {
		row := y
		eg.Go(func() error {
			fillRow(g, s, row)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

// fillRow writes only the slots of row y.
func fillRow(g *Grid, s *Sampler, y int) {
	wl := s.params.WaterLevel
	for x := 0; x < s.params.GridSize; x++ {
		g.cells.Set(x, y, NewCell(x, y, s.Shaped(x, y), wl))
	}
}

// Generator owns the current grid and replaces it wholesale on every
// generation.
type Generator struct {
	log     *slog.Logger
	workers int

	mu     sync.RWMutex
	grid   *Grid
	params Params
}

// NewGenerator returns a Generator. workers > 1 generates rows concurrently.
func NewGenerator(workers int, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if workers < 1 {
		workers = 1
	}
	return &Generator{log: log, workers: workers}
}

// Generate builds a new grid for p and makes it current. On error the
// previous grid stays current.
func (g *Generator) Generate(p Params) (*Grid, error) {
	s, err := NewSampler(p)
	if err != nil {
		g.log.Warn("rejected generation parameters", "err", err)
		return nil, err
	}

	start := time.Now()
	grid, err := build(s, p, g.workers)
	if err != nil {
		g.log.Error("generation failed", "err", err)
		return nil, err
	}

	g.mu.Lock()
	g.grid = grid
	g.params = p
	g.mu.Unlock()

	if g.log.Enabled(context.Background(), slog.LevelDebug) {
		sum := Summarize(grid)
		g.log.Debug("grid generated",
			"size", p.GridSize,
			"seed", p.Seed,
			"land", sum.Land,
			"workers", g.workers,
			"took", time.Since(start))
	}
	return grid, nil
}

// Regenerate rebuilds the grid from the last accepted parameters.
func (g *Generator) Regenerate() (*Grid, error) {
	g.mu.RLock()
	generated := g.grid != nil
	p := g.params
	g.mu.RUnlock()
	if !generated {
		return nil, ErrUninitializedGrid
	}
	return g.Generate(p)
}

// Grid returns the current grid.
func (g *Generator) Grid() (*Grid, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.grid == nil {
		return nil, ErrUninitializedGrid
	}
	return g.grid, nil
}

// Params returns the parameters of the current grid.
func (g *Generator) Params() (Params, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.grid == nil {
		return Params{}, ErrUninitializedGrid
	}
	return g.params, nil
}
