package rows

import "strings"

const (
	aliveMark = 'o'
	deadMark  = '.'
)

// CellStepper is the slice of a universe the sampler needs: a cell query and
// a single-generation step.
type CellStepper interface {
	Cell(x, y int) bool
	Step()
}

// Rect is a selection rectangle in universe coordinates.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// EncodeRow reads width cells starting at (x, y) and renders them as o/. text.
func EncodeRow(u CellStepper, x, y, width int) string {
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		if u.Cell(x+i, y) {
			b.WriteByte(aliveMark)
		} else {
			b.WriteByte(deadMark)
		}
	}
	return b.String()
}

// Sample advances u through len(backOff) generations and captures the row at
// (x, y) and the row beneath it in schedule order.
//
// The capture for slot k lands in rows[k] (upper row) and rows[k+period]
// (lower row). Every time the walk through backOff wraps past period the
// pattern has moved up one cell, so the read position moves up with it.
// The universe ends period generations ahead of where it started.
func Sample(u CellStepper, x, y, width int, backOff []int) []string {
	period := len(backOff)
	out := make([]string, 2*period)
	k, mp := 0, 0
	for i := 0; i < period; i++ {
		out[k] = EncodeRow(u, x, y-mp, width)
		out[k+period] = EncodeRow(u, x, y+1-mp, width)
		k += backOff[k]
		if k >= period {
			k -= period
			mp++
		}
		u.Step()
	}
	return out
}
