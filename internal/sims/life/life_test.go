package life

import (
	"errors"
	"strings"
	"testing"

	"initrows/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.Clear()

	life.Set(2, 1, true)
	life.Set(2, 2, true)
	life.Set(2, 3, true)

	life.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := life.Cell(x, y); shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := life.Cell(x, y); shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if life.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", life.Generation())
	}
}

func TestGliderTranslatesAcrossWrap(t *testing.T) {
	life := New(8, 8)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	// Start near the corner so the glider crosses both edges.
	const ox, oy = 6, 6
	for _, c := range glider {
		life.Set(ox+c[0], oy+c[1], true)
	}

	for i := 0; i < 4; i++ {
		life.Step()
	}

	if got := life.Population(); got != len(glider) {
		t.Fatalf("population = %d after one period, want %d", got, len(glider))
	}
	for _, c := range glider {
		if !life.Cell(ox+c[0]+1, oy+c[1]+1) {
			t.Fatalf("expected glider cell at (%d,%d) after 4 generations", ox+c[0]+1, oy+c[1]+1)
		}
	}
}

func TestHighLifeReplicatorBirth(t *testing.T) {
	rule, err := ParseRule("B36/S23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Rule = 7, 7, rule
	life := NewWithConfig(cfg)

	// A dead cell with six live neighbours is born under B6 only.
	for _, c := range [][2]int{{2, 2}, {3, 2}, {4, 2}, {2, 4}, {3, 4}, {4, 4}} {
		life.Set(c[0], c[1], true)
	}
	life.Step()
	if !life.Cell(3, 3) {
		t.Fatal("expected birth on six neighbours under B36/S23")
	}

	conway := New(7, 7)
	for _, c := range [][2]int{{2, 2}, {3, 2}, {4, 2}, {2, 4}, {3, 4}, {4, 4}} {
		conway.Set(c[0], c[1], true)
	}
	conway.Step()
	if conway.Cell(3, 3) {
		t.Fatal("unexpected birth on six neighbours under B3/S23")
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("b3s23")
	if err == nil {
		t.Fatalf("expected slash to be required, got %v", r)
	}

	for _, s := range []string{"B3/S23", "b3/s23", " B3/S23 "} {
		r, err := ParseRule(s)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", s, err)
		}
		if r != Conway() {
			t.Fatalf("ParseRule(%q) = %v, want Conway", s, r)
		}
	}

	if got := Conway().String(); got != "B3/S23" {
		t.Fatalf("Conway().String() = %q", got)
	}

	bad := map[string]string{
		"":             "Expected B at start of rule",
		"S23/B3":       "Expected B at start of rule",
		"B3":           "Missing expected slash between B and S",
		"B3S23":        "Unexpected character in rule",
		"B3/23":        "Expected S after slash",
		"B39/S23":      "Unexpected character in rule",
		"B2e/S23":      "Unexpected character in rule",
		"B3/S23/B4":    "Extra unparsed junk at end of rule string",
		"B03/S23":      "rules with B0 are not supported",
		"B3/S2a3":      "Unexpected character in rule",
		"B3/S23 extra": "Unexpected character in rule",
	}
	for in, want := range bad {
		_, err := ParseRule(in)
		if err == nil {
			t.Fatalf("ParseRule(%q) succeeded, want error %q", in, want)
		}
		if !errors.Is(err, ErrBadRule) {
			t.Fatalf("ParseRule(%q) error %v does not wrap ErrBadRule", in, err)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("ParseRule(%q) error %q, want it to mention %q", in, err, want)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "32", "h": "-1", "rule": "B36/S23", "density": "0.25"})
	if c.Width != 32 || c.Height != DefaultConfig().Height {
		t.Fatalf("unexpected dimensions %dx%d", c.Width, c.Height)
	}
	if c.Rule.String() != "B36/S23" {
		t.Fatalf("rule = %s", c.Rule)
	}
	if c.Density != 0.25 {
		t.Fatalf("density = %v", c.Density)
	}

	c = FromMap(map[string]string{"rule": "nonsense"})
	if c.Rule != Conway() {
		t.Fatal("invalid rule should keep the default")
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life is not registered")
	}
	sim := factory(map[string]string{"w": "12", "h": "9"})
	if sim.Size() != (core.Size{W: 12, H: 9}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if _, ok := sim.(core.Universe); !ok {
		t.Fatal("life should satisfy core.Universe")
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(99)
	b.Reset(99)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs for identical seeds", i)
		}
	}
	a.Step()
	a.Reset(99)
	if a.Generation() != 0 {
		t.Fatal("Reset should rewind the generation counter")
	}
}
