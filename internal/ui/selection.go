package ui

import (
	"fmt"

	"initrows/internal/rows"
)

// Drag tracks a rectangle selection made by dragging between two cells.
type Drag struct {
	ax, ay   int
	bx, by   int
	dragging bool
	has      bool
}

// Begin starts a new selection at cell (x, y), replacing any previous one.
func (d *Drag) Begin(x, y int) {
	d.ax, d.ay, d.bx, d.by = x, y, x, y
	d.dragging = true
	d.has = true
}

// Move extends the selection to cell (x, y) while dragging.
func (d *Drag) Move(x, y int) {
	if d.dragging {
		d.bx, d.by = x, y
	}
}

// End finishes the drag.
func (d *Drag) End() { d.dragging = false }

// Clear drops the selection.
func (d *Drag) Clear() { *d = Drag{} }

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool { return d.dragging }

// Rect returns the selected cells, inclusive of both corners.
func (d *Drag) Rect() (rows.Rect, bool) {
	if !d.has {
		return rows.Rect{}, false
	}
	x0, x1 := order(d.ax, d.bx)
	y0, y1 := order(d.ay, d.by)
	return rows.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}, true
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func rectLabel(r rows.Rect) string {
	return fmt.Sprintf("Sel %d,%d %dx%d", r.X, r.Y, r.W, r.H)
}
