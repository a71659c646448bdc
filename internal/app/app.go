//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"islandgen/internal/config"
	"islandgen/internal/render"
	"islandgen/internal/ui"
	"islandgen/pkg/core"
	"islandgen/pkg/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the island generator to the ebiten.Game interface.
type Game struct {
	gen     *terrain.Generator
	grid    *terrain.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	rng     *core.RNG
	log     *slog.Logger

	scale    int
	hudWidth int
}

// New generates the first grid from cfg and constructs a Game around it.
func New(gen *terrain.Generator, cfg *config.Config, log *slog.Logger) (*Game, error) {
	grid, err := gen.Generate(cfg.Generation)
	if err != nil {
		return nil, err
	}
	scale := cfg.Viewer.Scale
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		gen:      gen,
		grid:     grid,
		painter:  render.NewGridPainter(grid.Size(), scale, render.DefaultPalette()),
		hud:      ui.NewHUD(cfg.Viewer.HUDWidth, terrain.Controls()),
		overlay:  ui.NewOverlay(scale),
		rng:      core.NewRNG(time.Now().UnixNano()),
		log:      log,
		scale:    scale,
		hudWidth: max(cfg.Viewer.HUDWidth, 0),
	}
	if err := g.painter.Update(grid); err != nil {
		return nil, fmt.Errorf("paint initial grid: %w", err)
	}
	return g, nil
}

// Regenerate rebuilds the grid with the current parameters.
func (g *Game) Regenerate() error {
	grid, err := g.gen.Regenerate()
	if err != nil {
		return err
	}
	return g.show(grid)
}

// Reseed rebuilds the grid with a fresh random seed.
func (g *Game) Reseed() error {
	p, err := g.gen.Params()
	if err != nil {
		return err
	}
	p.Seed = g.rng.IntN(terrain.MaxSeed + 1)
	grid, err := g.gen.Generate(p)
	if err != nil {
		return err
	}
	g.log.Info("reseeded", "seed", p.Seed)
	return g.show(grid)
}

// Apply rebuilds the grid with the overrides applied to the current
// parameters. Invalid values are ignored by FromMap.
func (g *Game) Apply(overrides map[string]string) error {
	p, err := g.gen.Params()
	if err != nil {
		return err
	}
	grid, err := g.gen.Generate(terrain.FromMap(p, overrides))
	if err != nil {
		return err
	}
	return g.show(grid)
}

func (g *Game) show(grid *terrain.Grid) error {
	if size, _ := g.painter.Size(); size != grid.Size() {
		g.painter = render.NewGridPainter(grid.Size(), g.scale, render.DefaultPalette())
	}
	g.grid = grid
	return g.painter.Update(grid)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Regenerate(); err != nil {
			g.log.Error("regenerate failed", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reseed(); err != nil {
			g.log.Error("reseed failed", "err", err)
		}
	}

	g.overlay.Update()
	side := g.grid.Size() * g.scale
	cx, cy := -1, -1
	if mx, my := ebiten.CursorPosition(); mx >= 0 && my >= 0 && mx < side && my < side {
		cx, cy = mx/g.scale, g.grid.Size()-1-my/g.scale
	}
	g.hud.Update(g.grid, cx, cy, side)
	if edit, ok := g.hud.TakeEdit(); ok {
		if err := g.Apply(edit); err != nil {
			g.log.Error("apply edit failed", "err", err)
		}
	}
	return nil
}

// Draw renders the grid, overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen, g.grid)
	g.hud.Draw(screen, g.grid.Size()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.grid.Size() * g.scale
	return side + g.hudWidth, side
}
