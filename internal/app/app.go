//go:build ebiten

package app

import (
	"strconv"
	"time"

	"terraview/internal/core"
	"terraview/internal/render"
	"terraview/internal/ui"
	"terraview/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelNotchDelta converts ebiten wheel units (roughly one per notch) into
// the classic 120-per-notch delta the zoom sensitivity is calibrated for.
const wheelNotchDelta = 120.0

// renderedState snapshots everything that affects the rasterized frame. The
// redraw decision is a pure comparison of the last rendered snapshot against
// the current one.
type renderedState struct {
	generation uint64

	panX, panY float64
	zoom       float64
	ratio      float64
	w, h       float64

	showGrid  bool
	showCross bool
}

// Game adapts a terrain session to the ebiten.Game interface: input mutates
// the view state and session synchronously in Update, and Draw re-rasterizes
// only when the snapshot changed.
type Game struct {
	session *Session
	vt      *view.Transform
	raster  *render.Rasterizer
	overlay *render.Overlay
	painter *render.Painter
	mapper  render.ColorMapper
	hud     *ui.HUD
	fps     *core.FPSMeter

	zoomSens float64

	dragging     bool
	lastX, lastY int

	last     renderedState
	rendered bool
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	return &Game{
		session:  session,
		vt:       view.NewTransform(cfg.ZoomMin, cfg.ZoomMax),
		raster:   render.NewRasterizer(),
		overlay:  render.NewOverlay(),
		painter:  render.NewPainter(),
		mapper:   render.NewColorRamp(nil),
		hud:      ui.NewHUD(session),
		fps:      core.NewFPSMeter(),
		zoomSens: cfg.ZoomSens,
	}
}

// Update handles per-frame input. All state mutations happen here; Draw only
// reads.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Regenerate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.session.Reseed(strconv.FormatInt(time.Now().UnixNano(), 10)); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.session.ToggleSource()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.session.ToggleShade()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ShowGrid = !g.overlay.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.overlay.ShowCrosshair = !g.overlay.ShowCrosshair
	}

	g.handlePointer()
	g.hud.Update()
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging && !g.hud.Hot() {
			g.vt.Pan(float64(mx-g.lastX), float64(my-g.lastY))
		}
		g.dragging = true
		g.lastX, g.lastY = mx, my
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.vt.ZoomWheel(float64(mx), float64(my), -wy*wheelNotchDelta, g.zoomSens)
	}
}

// Draw re-rasterizes when the rendered snapshot changed, then presents the
// pixel buffer and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Tick()

	state := renderedState{
		generation: g.session.Generation(),
		panX:       g.vt.PanX,
		panY:       g.vt.PanY,
		zoom:       g.vt.Zoom,
		ratio:      g.vt.PixelRatio,
		w:          g.vt.W,
		h:          g.vt.H,
		showGrid:   g.overlay.ShowGrid,
		showCross:  g.overlay.ShowCrosshair,
	}
	if !g.rendered || state != g.last {
		shade, strength := g.session.Shading()
		buf := g.raster.Render(g.session.Source(), g.mapper, g.vt, shade, strength)
		g.overlay.Draw(buf, g.vt)
		g.last = state
		g.rendered = true
	}

	buf, dw, dh := g.raster.Buffer()
	g.painter.Blit(screen, buf, dw, dh, g.vt.PixelRatio)

	g.hud.Draw(screen, ui.Stats{
		SeedText: g.session.SeedText(),
		Seed:     g.session.Seed(),
		Hash:     g.session.Hash(),
		FPS:      g.fps.FPS(),
		Source:   g.session.SourceName(),
		Zoom:     g.vt.Zoom,
	})
}

// Layout keeps the viewport transform in sync with the window size and
// device scale. The logical screen stays in CSS pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vt.SetPixelRatio(ebiten.DeviceScaleFactor())
	g.vt.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
