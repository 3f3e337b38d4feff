// Package pattern loads Life patterns from RLE and plaintext files and places
// them into a universe.
package pattern

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadPattern is wrapped by every parse failure.
var ErrBadPattern = errors.New("bad pattern")

// Setter is anything live cells can be written into.
type Setter interface {
	Set(x, y int, alive bool)
}

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	W, H  int
	Rule  string
	Cells [][2]int
}

// Place writes the live cells of p into dst with the top-left corner at (x, y).
func (p *Pattern) Place(dst Setter, x, y int) {
	for _, c := range p.Cells {
		dst.Set(x+c[0], y+c[1], true)
	}
}

// Rotate returns a copy of p turned clockwise by quarter turns.
func (p *Pattern) Rotate(quarters int) *Pattern {
	q := ((quarters % 4) + 4) % 4
	out := &Pattern{W: p.W, H: p.H, Rule: p.Rule, Cells: make([][2]int, len(p.Cells))}
	if q%2 == 1 {
		out.W, out.H = p.H, p.W
	}
	for i, c := range p.Cells {
		x, y := c[0], c[1]
		switch q {
		case 1:
			x, y = p.H-1-y, x
		case 2:
			x, y = p.W-1-x, p.H-1-y
		case 3:
			x, y = y, p.W-1-x
		}
		out.Cells[i] = [2]int{x, y}
	}
	return out
}

// Load reads a pattern file, choosing the parser from the extension: .rle
// files are run-length encoded and everything else is plaintext.
func Load(path string) (*Pattern, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var p *Pattern
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		p, err = ParseRLE(fh)
	} else {
		p, err = ParsePlaintext(fh)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *Pattern) add(x, y int) {
	p.Cells = append(p.Cells, [2]int{x, y})
	if x+1 > p.W {
		p.W = x + 1
	}
	if y+1 > p.H {
		p.H = y + 1
	}
}
