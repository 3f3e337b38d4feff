package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePlaintext reads the .cells format: '!' comment lines, then one line
// per row with 'O' (or 'o', '*') for live cells and '.' for dead ones.
func ParsePlaintext(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(r)
	y := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, c := range line {
			switch c {
			case 'O', 'o', '*':
				p.add(x, y)
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d", ErrBadPattern, c, y+1)
			}
		}
		if len(line) > p.W {
			p.W = len(line)
		}
		if line != "" && y+1 > p.H {
			p.H = y + 1
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read plaintext: %w", err)
	}
	return p, nil
}
