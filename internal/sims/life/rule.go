package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRule is wrapped by every rule parsing failure.
var ErrBadRule = errors.New("bad rule")

// Rule is an outer-totalistic Life-like rule. Birth[n] and Survive[n] report
// whether a dead or live cell with n live neighbours is alive next generation.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway returns B3/S23.
func Conway() Rule {
	var r Rule
	r.Birth[3] = true
	r.Survive[2] = true
	r.Survive[3] = true
	return r
}

// ParseRule parses a rule written as B<digits>/S<digits>. Letters are
// accepted in either case.
func ParseRule(s string) (Rule, error) {
	var r Rule
	p := strings.TrimSpace(s)
	fail := func(msg string) (Rule, error) {
		return Rule{}, fmt.Errorf("%w %q: %s", ErrBadRule, s, msg)
	}

	if p == "" || (p[0] != 'B' && p[0] != 'b') {
		return fail("Expected B at start of rule")
	}
	rest, msg := parseCounts(p[1:], &r.Birth)
	if msg != "" {
		return fail(msg)
	}
	if rest == "" || rest[0] != '/' {
		return fail("Missing expected slash between B and S")
	}
	rest = rest[1:]
	if rest == "" || (rest[0] != 'S' && rest[0] != 's') {
		return fail("Expected S after slash")
	}
	rest, msg = parseCounts(rest[1:], &r.Survive)
	if msg != "" {
		return fail(msg)
	}
	if rest != "" {
		return fail("Extra unparsed junk at end of rule string")
	}
	if r.Birth[0] {
		return fail("rules with B0 are not supported")
	}
	return r, nil
}

// parseCounts consumes neighbour digits up to the next slash and returns the
// unconsumed remainder.
func parseCounts(p string, dst *[9]bool) (string, string) {
	for p != "" && p[0] != '/' {
		c := p[0]
		if c < '0' || c > '8' {
			return p, "Unexpected character in rule"
		}
		dst[c-'0'] = true
		p = p[1:]
	}
	return p, ""
}

// String renders the rule in canonical B/S form.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Next returns the next state of a cell given its state and neighbour count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}
