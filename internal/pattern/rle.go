package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseRLE reads a run-length encoded pattern. The header line
// "x = W, y = H, rule = R" is optional; '#' lines are skipped.
func ParseRLE(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(r)
	var body strings.Builder
	sawHeader := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case !sawHeader && body.Len() == 0 && strings.HasPrefix(line, "x"):
			if err := parseHeader(line, p); err != nil {
				return nil, err
			}
			sawHeader = true
			continue
		}
		body.WriteString(line)
		if strings.Contains(line, "!") {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rle: %w", err)
	}

	declaredW, declaredH := p.W, p.H
	x, y, run := 0, 0, 0
	for _, c := range body.String() {
		switch {
		case c >= '0' && c <= '9':
			run = run*10 + int(c-'0')
			continue
		case c == ' ' || c == '\t':
			continue
		}
		n := run
		if n == 0 {
			n = 1
		}
		run = 0
		switch {
		case c == '!':
			return finish(p, declaredW, declaredH), nil
		case c == '$':
			y += n
			x = 0
		case c == 'b' || c == '.':
			x += n
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			for i := 0; i < n; i++ {
				p.add(x, y)
				x++
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q in rle body", ErrBadPattern, c)
		}
	}
	if run != 0 {
		return nil, fmt.Errorf("%w: dangling run count %d", ErrBadPattern, run)
	}
	return finish(p, declaredW, declaredH), nil
}

func finish(p *Pattern, w, h int) *Pattern {
	if w > p.W {
		p.W = w
	}
	if h > p.H {
		p.H = h
	}
	return p
}

func parseHeader(line string, p *Pattern) error {
	for _, field := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: malformed header field %q", ErrBadPattern, strings.TrimSpace(field))
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: bad %s dimension %q", ErrBadPattern, key, val)
			}
			if key == "x" {
				p.W = n
			} else {
				p.H = n
			}
		case "rule":
			p.Rule = val
		}
	}
	return nil
}
