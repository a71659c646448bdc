//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"islandgen/internal/core"
	"islandgen/pkg/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the island view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	panelOffsetX int
	pending      map[string]string

	hovered    terrain.Placement
	hoverCell  terrain.Cell
	hasHovered bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD with the provided panel width and adjustable controls.
func NewHUD(width int, controls []core.ParameterControl) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	return h
}

// Update refreshes the parameter snapshot and the hovered cell, then handles
// clicks on the control buttons. (cx, cy) is the grid cell under the cursor.
func (h *HUD) Update(grid *terrain.Grid, cx, cy, panelOffsetX int) {
	if h == nil || grid == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = grid.Params().Parameters()
	h.refreshControlValues()

	h.hasHovered = false
	if pl, err := terrain.PlacementAt(grid, cx, cy); err == nil {
		cell, _ := grid.CellAt(cx, cy)
		h.hovered, h.hoverCell, h.hasHovered = pl, cell, true
	}
	h.handleInput()
}

// TakeEdit returns the parameter change requested since the last call, if any.
func (h *HUD) TakeEdit() (map[string]string, bool) {
	if h == nil || h.pending == nil {
		return nil, false
	}
	edit := h.pending
	h.pending = nil
	return edit, true
}

// Draw paints the HUD panel anchored to the right edge of the island view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawDetails()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.hasValue = true
		if state.control.Type == core.ParamTypeInt {
			state.value = strconv.Itoa(int(parsed))
		} else {
			state.value = formatFloat(state.control, parsed)
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := state.step(direction)
	if !ok {
		return
	}
	value := formatFloat(state.control, target)
	if state.control.Type == core.ParamTypeInt {
		value = strconv.Itoa(int(math.Round(target)))
	}
	h.pending = map[string]string{state.control.Key: value}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Island Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 180, G: 200, B: 255, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 140, G: 140, B: 150, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - len(state.value)*face.Advance
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, canDec := state.step(-1)
		_, canInc := state.step(1)
		h.drawButton(state.minusRect, "-", canDec)
		h.drawButton(state.plusRect, "+", canInc)
	}
}

func (h *HUD) drawDetails() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	muted := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	bright := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	for _, key := range []string{"noise", "seed", "tile_size"} {
		if param, ok := h.snapshot.Lookup(key); ok {
			text.Draw(h.panel, fmt.Sprintf("%s: %s", param.Label, param.Value), face, panelPadding, y, muted)
			y += detailSpacing
		}
	}

	y += detailSpacing / 2
	text.Draw(h.panel, "Cell", face, panelPadding, y, bright)
	y += detailSpacing
	if !h.hasHovered {
		text.Draw(h.panel, "cursor outside grid", face, panelPadding, y, muted)
		return
	}
	c, pl := h.hoverCell, h.hovered
	lines := []string{
		fmt.Sprintf("at (%d, %d)", c.Position.X, c.Position.Y),
		fmt.Sprintf("kind: %s", c.Kind),
		fmt.Sprintf("noise: %.3f", c.NoiseValue),
		fmt.Sprintf("edge: %t  corner: %t", pl.Edge, pl.Corner),
		fmt.Sprintf("rotation: %d", pl.Rotation),
	}
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, muted)
		y += detailSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// step returns the value one step away in direction, clamped to the control's
// range, and whether it differs from the current value.
func (s *hudControlState) step(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin && target < s.control.Min {
		target = s.control.Min
	}
	if s.control.HasMax && target > s.control.Max {
		target = s.control.Max
	}
	if math.Abs(target-s.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	detailSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
