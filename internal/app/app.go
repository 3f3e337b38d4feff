//go:build ebiten

package app

import (
	"image/color"
	"log"

	"initrows/internal/core"
	"initrows/internal/render"
	"initrows/internal/rows"
	"initrows/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Rebuild recreates the universe from its configuration.
type Rebuild func() (core.Universe, error)

// Game adapts a universe to the ebiten.Game interface and lets the user pick
// a row and extract initial rows from it.
type Game struct {
	sim     core.Universe
	rebuild Rebuild
	painter *render.GridPainter
	overlay *ui.Overlay
	stepper *core.FixedStep
	drag    ui.Drag
	opts    rows.Options
	session *Session

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided universe. Generations advance at tps
// while running.
func New(sim core.Universe, rebuild Rebuild, scale, tps int, opts rows.Options) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:      sim,
		rebuild:  rebuild,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		stepper:  core.NewFixedStep(tps),
		opts:     opts,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		paused:   true,
	}
	g.overlay.SetStatus("Drag to select a row, E to extract, Space to run")
	return g
}

// Reset rebuilds the universe from its configuration.
func (g *Game) Reset() {
	u, err := g.rebuild()
	if err != nil {
		log.Printf("reset: %v", err)
		g.overlay.SetStatus(err.Error())
		return
	}
	g.sim = u
	g.overlay.SetSim(u)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.overlay.Asking() {
		g.updatePrompt()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.stepper.Pause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.stepper.SetTPS(g.stepper.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		if tps := g.stepper.TPS() / 2; tps >= 1 {
			g.stepper.SetTPS(tps)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.startExtraction()
		return nil
	}

	g.updateSelection()

	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateSelection() {
	size := g.sim.Size()
	px, py := ebiten.CursorPosition()
	x, y, inside := render.ScreenToCell(px, py, g.scale, size.W, size.H)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.drag.Clear()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside:
		g.drag.Begin(x, y)
	case g.drag.Dragging() && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.drag.End()
	case g.drag.Dragging() && inside:
		g.drag.Move(x, y)
	}
	g.overlay.SetSelection(g.drag.Rect())
}

func (g *Game) startExtraction() {
	g.paused = true
	sel, ok := g.drag.Rect()
	g.session = NewSession(g.sim, sel, ok, g.opts)
	g.advance()
}

func (g *Game) updatePrompt() {
	answer, ev := g.overlay.Update()
	switch ev {
	case ui.PromptCancelled:
		g.session = nil
		g.overlay.SetStatus("Extraction cancelled")
	case ui.PromptSubmitted:
		g.session.Answer(answer)
		g.advance()
	}
}

func (g *Game) advance() {
	prompt, res, err := g.session.Advance()
	if prompt != "" {
		g.overlay.Ask(prompt)
		return
	}
	msg := Status(res, g.session.Warnings(), err)
	if err != nil {
		log.Printf("extract: %s", msg)
	} else if res != nil && res.Saved {
		log.Printf("extract: wrote %d rows to %s (period %d, offset %d)", len(res.Rows), res.Path, res.Period, res.Offset)
	}
	for _, w := range g.session.Warnings() {
		log.Printf("warning: %s", w)
	}
	g.overlay.SetStatus(msg)
	g.session = nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// ScreenHeight is the height of the grid plus the status bar, in pixels.
func (g *Game) ScreenHeight() int {
	return g.sim.Size().H*g.scale + ui.StatusHeight
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Size().W * g.scale, g.ScreenHeight()
}
