//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"initrows/internal/core"
	"initrows/internal/rows"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusHeight is the height in pixels of the status bar under the grid.
const StatusHeight = 34

const (
	textPadding   = 6
	lineBaseline  = 13
	maxInputRunes = 12
)

// PromptEvent reports what happened to an open prompt during Update.
type PromptEvent int

const (
	// PromptIdle means no prompt is open or the user is still typing.
	PromptIdle PromptEvent = iota
	// PromptSubmitted means the user pressed Enter.
	PromptSubmitted
	// PromptCancelled means the user pressed Escape.
	PromptCancelled
)

// Overlay draws the row selection, the status bar and the input prompt on top
// of the simulation.
type Overlay struct {
	sim   core.Sim
	scale int
	pixel *ebiten.Image

	sel    rows.Rect
	hasSel bool
	status string

	prompt string
	input  []rune
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetSim points the overlay at a rebuilt simulation.
func (o *Overlay) SetSim(sim core.Sim) { o.sim = sim }

// SetSelection updates the highlighted rectangle.
func (o *Overlay) SetSelection(r rows.Rect, ok bool) {
	o.sel, o.hasSel = r, ok
}

// SetStatus replaces the message shown in the status bar.
func (o *Overlay) SetStatus(msg string) { o.status = msg }

// Ask opens a prompt with the given message and an empty input line.
func (o *Overlay) Ask(msg string) {
	o.prompt = msg
	o.input = o.input[:0]
}

// Asking reports whether a prompt is open.
func (o *Overlay) Asking() bool { return o.prompt != "" }

// Update handles text entry for an open prompt. On PromptSubmitted the typed
// text is returned and the prompt is closed.
func (o *Overlay) Update() (string, PromptEvent) {
	if !o.Asking() {
		return "", PromptIdle
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		o.prompt = ""
		return "", PromptCancelled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		answer := string(o.input)
		o.prompt = ""
		return answer, PromptSubmitted
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(o.input) > 0 {
		o.input = o.input[:len(o.input)-1]
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(o.input) < maxInputRunes && r >= ' ' && r != 0x7f {
			o.input = append(o.input, r)
		}
	}
	return "", PromptIdle
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.hasSel {
		o.drawSelection(screen, size)
	}
	o.drawStatus(screen, size)
}

func (o *Overlay) drawSelection(screen *ebiten.Image, size core.Size) {
	s := float64(o.scale)
	x := float64(o.sel.X) * s
	y := float64(o.sel.Y) * s
	w := float64(o.sel.W) * s
	h := float64(o.sel.H) * s

	fill := color.RGBA{R: 60, G: 140, B: 255, A: 70}
	edge := color.RGBA{R: 90, G: 170, B: 255, A: 230}
	if o.sel.H != 1 {
		edge = color.RGBA{R: 255, G: 110, B: 90, A: 230}
	}
	o.drawRect(screen, x, y, w, h, fill)
	o.drawRect(screen, x, y, w, 1, edge)
	o.drawRect(screen, x, y+h-1, w, 1, edge)
	o.drawRect(screen, x, y, 1, h, edge)
	o.drawRect(screen, x+w-1, y, 1, h, edge)
}

func (o *Overlay) drawStatus(screen *ebiten.Image, size core.Size) {
	top := size.H * o.scale
	width := float64(size.W * o.scale)
	o.drawRect(screen, 0, float64(top), width, StatusHeight, color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	line1 := top + textPadding + lineBaseline - 4
	line2 := line1 + lineBaseline + 2

	if o.Asking() {
		text.Draw(screen, o.prompt, face, textPadding, line1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		text.Draw(screen, "> "+string(o.input)+"_", face, textPadding, line2, color.RGBA{R: 255, G: 220, B: 120, A: 255})
		return
	}

	text.Draw(screen, o.summary(), face, textPadding, line1, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	if o.status != "" {
		text.Draw(screen, o.status, face, textPadding, line2, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (o *Overlay) summary() string {
	var parts []string
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		for _, p := range provider.Parameters().Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
	}
	if o.hasSel {
		parts = append(parts, rectLabel(o.sel))
	}
	return strings.Join(parts, "  ")
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
