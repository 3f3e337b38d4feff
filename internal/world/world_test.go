package world

import (
	"os"
	"path/filepath"
	"testing"

	"initrows/internal/config"
	"initrows/internal/sims/life"
)

func TestBuildPlacesPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.rle")
	if err := os.WriteFile(path, []byte("x = 3, y = 1, rule = B36/S23\n3o!\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewConfig()
	cfg.Width, cfg.Height = 9, 7
	cfg.Pattern = path

	u, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Centred: (9-3)/2 = 3, (7-1)/2 = 3.
	for x := 0; x < 9; x++ {
		want := x >= 3 && x <= 5
		if got := u.Cell(x, 3); got != want {
			t.Fatalf("cell (%d,3) = %v, want %v", x, got, want)
		}
	}
	if l, ok := u.(*life.Life); !ok || l.Rule().String() != "B36/S23" {
		t.Fatalf("pattern rule should be applied, got %T", u)
	}
}

func TestBuildExplicitOriginAndRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.cells")
	if err := os.WriteFile(path, []byte("OOO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Pattern = path
	cfg.At = "1,2"
	cfg.Rotate = 1

	u, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{1, 2}, {1, 3}, {1, 4}} {
		if !u.Cell(c[0], c[1]) {
			t.Fatalf("expected vertical line cell at %v", c)
		}
	}
	if u.Cell(2, 2) {
		t.Fatal("rotation should leave (2,2) empty")
	}
}

func TestBuildSoupIsSeeded(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Width, cfg.Height, cfg.Seed = 16, 16, 5
	a, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatal("soups with the same seed differ")
		}
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Sim = "nope"
	if _, err := Build(cfg); err == nil {
		t.Fatal("unknown sim should fail")
	}

	cfg = config.NewConfig()
	cfg.Pattern = filepath.Join(t.TempDir(), "missing.rle")
	if _, err := Build(cfg); err == nil {
		t.Fatal("missing pattern should fail")
	}

	path := filepath.Join(t.TempDir(), "odd.rle")
	if err := os.WriteFile(path, []byte("x = 1, y = 1, rule = B0/S8\no!\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg = config.NewConfig()
	cfg.Pattern = path
	if _, err := Build(cfg); err == nil {
		t.Fatal("unsupported pattern rule should fail")
	}
}
