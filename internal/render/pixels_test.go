package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestScreenToCell(t *testing.T) {
	x, y, ok := ScreenToCell(13, 7, 4, 10, 10)
	if !ok || x != 3 || y != 1 {
		t.Fatalf("ScreenToCell = %d,%d,%v", x, y, ok)
	}
	if _, _, ok := ScreenToCell(40, 0, 4, 10, 10); ok {
		t.Fatal("x past the grid should be rejected")
	}
	if _, _, ok := ScreenToCell(-1, 0, 4, 10, 10); ok {
		t.Fatal("negative positions should be rejected")
	}
	if x, y, ok := ScreenToCell(5, 6, 0, 10, 10); !ok || x != 5 || y != 6 {
		t.Fatal("zero scale should behave like scale 1")
	}
}
