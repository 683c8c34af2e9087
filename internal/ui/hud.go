//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"terraview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding  = 8
	panelWidth    = 230
	lineHeight    = 16
	rowHeight     = 22
	buttonSize    = 16
	buttonGap     = 6
	statsLineNum  = 5
	labelBaseline = 12
)

type hudControlState struct {
	control core.ParameterControl

	intValue   int
	floatValue float64
	value      string
	hasValue   bool

	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// HUD renders a translucent readout panel in the top-left corner: seed,
// field hash, FPS and the adjustable noise parameters with +/- buttons.
type HUD struct {
	controls []hudControlState

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	intGetter   core.IntParameterGetter
	floatGetter core.FloatParameterGetter

	pixel   *ebiten.Image
	visible bool
	hot     bool
}

// NewHUD constructs a HUD bound to target. Controls appear only when target
// implements the parameter provider and setter interfaces.
func NewHUD(target any) *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if getter, ok := target.(core.IntParameterGetter); ok {
		h.intGetter = getter
	}
	if getter, ok := target.(core.FloatParameterGetter); ok {
		h.floatGetter = getter
	}
	return h
}

// Update refreshes control values and handles clicks. Call once per frame
// before Draw.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.visible = !h.visible
	}
	if !h.visible {
		h.hot = false
		return
	}
	h.refreshControlValues()

	mx, my := ebiten.CursorPosition()
	h.hot = mx >= 0 && mx < panelWidth && my >= 0 && my < h.panelHeight()

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	pt := image.Pt(mx, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pt.In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// Hot reports whether the cursor is over the panel, so the caller can keep
// panel clicks from turning into view pans.
func (h *HUD) Hot() bool { return h.visible && h.hot }

// Draw paints the panel onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats) {
	if !h.visible {
		return
	}
	h.fillRect(screen, image.Rect(0, 0, panelWidth, h.panelHeight()), color.RGBA{R: 10, G: 10, B: 14, A: 170})

	face := basicfont.Face7x13
	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	y := panelPadding + labelBaseline
	lines := []string{
		fmt.Sprintf("seed  %s (%d)", stats.SeedText, stats.Seed),
		fmt.Sprintf("hash  %08x", stats.Hash),
		fmt.Sprintf("fps   %.1f", stats.FPS),
		fmt.Sprintf("src   %s", stats.Source),
		fmt.Sprintf("zoom  %.2f", stats.Zoom),
	}
	for _, line := range lines {
		text.Draw(screen, line, face, panelPadding, y, textColor)
		y += lineHeight
	}

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.minusRect.Min.Y + labelBaseline
		text.Draw(screen, state.control.Label, face, panelPadding, labelY, textColor)

		valueColor := textColor
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(screen, state.value, face, valueX, labelY, valueColor)

		h.drawButton(screen, state.minusRect, "-")
		h.drawButton(screen, state.plusRect, "+")
	}
}

func (h *HUD) panelHeight() int {
	return panelPadding*2 + statsLineNum*lineHeight + len(h.controls)*rowHeight
}

func (h *HUD) layoutControls() {
	top := panelPadding + statsLineNum*lineHeight + 4
	plusX := panelWidth - panelPadding - buttonSize
	minusX := plusX - buttonGap - buttonSize
	for i := range h.controls {
		rowTop := top + i*rowHeight
		h.controls[i].minusRect = image.Rect(minusX, rowTop, minusX+buttonSize, rowTop+buttonSize)
		h.controls[i].plusRect = image.Rect(plusX, rowTop, plusX+buttonSize, rowTop+buttonSize)
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		switch state.control.Type {
		case core.ParamTypeInt:
			if h.intGetter == nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			v, ok := h.intGetter.IntParameter(state.control.Key)
			if !ok {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = v
			state.floatValue = float64(v)
			state.value = strconv.Itoa(v)
			state.hasValue = true
		case core.ParamTypeFloat:
			if h.floatGetter == nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			v, ok := h.floatGetter.FloatParameter(state.control.Key)
			if !ok {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = v
			state.value = formatFloat(state.control, v)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.intValue + direction*step
		if state.control.HasMin && target < int(math.Round(state.control.Min)) {
			target = int(math.Round(state.control.Min))
		}
		if state.control.HasMax && target > int(math.Round(state.control.Max)) {
			target = int(math.Round(state.control.Max))
		}
		if target == state.intValue {
			return
		}
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if state.control.HasMin && target < state.control.Min {
			target = state.control.Min
		}
		if state.control.HasMax && target > state.control.Max {
			target = state.control.Max
		}
		if math.Abs(target-state.floatValue) < 1e-9 {
			return
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, r image.Rectangle, label string) {
	h.fillRect(screen, r, color.RGBA{R: 60, G: 60, B: 72, A: 220})
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + labelBaseline
	text.Draw(screen, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) fillRect(screen *ebiten.Image, r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(h.pixel, op)
}

func formatFloat(ctrl core.ParameterControl, v float64) string {
	decimals := 2
	if ctrl.Step > 0 && ctrl.Step < 0.001 {
		decimals = 4
	} else if ctrl.Step > 0 && ctrl.Step < 0.01 {
		decimals = 3
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
