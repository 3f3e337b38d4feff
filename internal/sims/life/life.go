package life

import (
	"strconv"

	"initrows/internal/core"
)

// Life implements a Life-like cellular automaton with toroidal wrapping.
type Life struct {
	rule    Rule
	density float64
	gen     int
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
}

// New returns a Conway's Life universe with the provided dimensions.
func New(w, h int) *Life {
	c := DefaultConfig()
	c.Width, c.Height = w, h
	return NewWithConfig(c)
}

// NewWithConfig returns a universe using the provided configuration.
func NewWithConfig(c Config) *Life {
	return &Life{
		rule:    c.Rule,
		density: c.Density,
		cur:     core.NewByteGrid(c.Width, c.Height),
		nxt:     core.NewByteGrid(c.Width, c.Height),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Rule returns the rule the universe evolves under.
func (l *Life) Rule() Rule { return l.rule }

// Generation counts steps since the last Reset or Clear.
func (l *Life) Generation() int { return l.gen }

// Reset fills the board with a random soup derived from seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, l.cur.Cells(), l.density)
	l.gen = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}

// Cell reports whether the cell at (x, y) is alive.
func (l *Life) Cell(x, y int) bool { return l.cur.At(x, y) != 0 }

// Set changes the state of the cell at (x, y).
func (l *Life) Set(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	l.cur.Put(x, y, v)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			nxt[idx] = 0
			if l.rule.Next(cur[idx] == 1, neighbors) {
				nxt[idx] = 1
			}
		}
	}
	l.cur.Swap(l.nxt)
	l.gen++
}

// Population counts live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// Parameters reports the values shown in the viewer status line.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "rule", Label: "Rule", Value: l.rule.String()},
		{Key: "gen", Label: "Gen", Value: strconv.Itoa(l.gen)},
		{Key: "pop", Label: "Pop", Value: strconv.Itoa(l.Population())},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
