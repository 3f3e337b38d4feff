package rows

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrShortFile is returned when an initial rows file holds fewer than
// 2*period rows.
var ErrShortFile = errors.New("not enough rows")

// ReadInitRows loads 2*period rows the way the search programs consume them:
// whitespace-separated tokens, of which only the first width characters
// matter. A '.' or '0' is a dead cell and anything else is alive. The result
// is normalized to o/. text.
func ReadInitRows(r io.Reader, period, width int) ([]string, error) {
	if period <= 0 || width <= 0 {
		return nil, fmt.Errorf("period %d and width %d must be positive", period, width)
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	out := make([]string, 0, 2*period)
	for len(out) < 2*period {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read rows: %w", err)
			}
			return nil, fmt.Errorf("%w: got %d, want %d", ErrShortFile, len(out), 2*period)
		}
		tok := sc.Text()
		if len(tok) < width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", len(out)+1, len(tok), width)
		}
		var b strings.Builder
		b.Grow(width)
		for i := 0; i < width; i++ {
			switch tok[i] {
			case deadMark, '0':
				b.WriteByte(deadMark)
			default:
				b.WriteByte(aliveMark)
			}
		}
		out = append(out, b.String())
	}
	return out, nil
}

// ReadInitRowsFile is ReadInitRows on a named file.
func ReadInitRowsFile(path string, period, width int) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	rows, err := ReadInitRows(fh, period, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
