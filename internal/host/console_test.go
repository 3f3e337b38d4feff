package host

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"initrows/internal/pattern"
	"initrows/internal/rows"
	"initrows/internal/sims/life"
)

// A lightweight spaceship turned to travel up two cells every four
// generations.
const lwss = "x = 5, y = 4, rule = B3/S23\nbo2bo$o4b$o3bo$4o!\n"

func upwardShip(t *testing.T) *life.Life {
	t.Helper()
	p, err := pattern.ParseRLE(strings.NewReader(lwss))
	if err != nil {
		t.Fatal(err)
	}
	u := life.New(16, 16)
	p.Rotate(1).Place(u, 6, 8)
	return u
}

func TestExtractSpaceshipRows(t *testing.T) {
	cases := []struct {
		sel  rows.Rect
		want []string
	}{
		{
			sel:  rows.Rect{X: 6, Y: 10, W: 4, H: 1},
			want: []string{"o...", "..o.", "oo..", ".ooo", "o...", "..o.", "oo..", ".oo."},
		},
		{
			sel:  rows.Rect{X: 5, Y: 8, W: 6, H: 1},
			want: []string{".ooo..", ".ooo..", ".ooo..", ".ooo..", ".o..o.", "o..o..", "oo.o..", ".o.oo."},
		},
	}
	for _, tc := range cases {
		out := filepath.Join(t.TempDir(), rows.DefaultOutput)
		var logs bytes.Buffer
		c := NewConsole(upwardShip(t), strings.NewReader("4\n2\n"), io.Discard, log.New(&logs, "", 0))
		c.Select(tc.sel)

		res, err := rows.Extract(c, rows.Options{Output: out})
		if err != nil {
			t.Fatalf("Extract(%+v): %v", tc.sel, err)
		}
		if !slices.Equal(res.Rows, tc.want) {
			t.Fatalf("Extract(%+v) rows\n got %q\nwant %q", tc.sel, res.Rows, tc.want)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != strings.Join(tc.want, "\n")+"\n" {
			t.Fatalf("file contents %q", data)
		}
		if c.Generation() != 4 {
			t.Fatalf("universe at generation %d, want 4", c.Generation())
		}
	}
}

func TestConsolePromptsInteractively(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(life.New(4, 4), strings.NewReader("7\r\n3"), &out, log.New(io.Discard, "", 0))

	got, err := c.Prompt(rows.PromptPeriod)
	if err != nil || got != "7" {
		t.Fatalf("Prompt = %q, %v", got, err)
	}
	got, err = c.Prompt(rows.PromptOffset)
	if err != nil || got != "3" {
		t.Fatalf("Prompt without trailing newline = %q, %v", got, err)
	}
	if want := rows.PromptPeriod + " " + rows.PromptOffset + " "; out.String() != want {
		t.Fatalf("prompt output %q, want %q", out.String(), want)
	}
	if _, err := c.Prompt(rows.PromptPeriod); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Prompt at EOF error = %v", err)
	}
}

func TestConsoleAnswersAndWarnings(t *testing.T) {
	var logs bytes.Buffer
	c := NewConsole(life.New(4, 4), strings.NewReader(""), io.Discard, log.New(&logs, "", 0))
	c.Answer(rows.PromptPeriod, "12")

	got, err := c.Prompt(rows.PromptPeriod)
	if err != nil || got != "12" {
		t.Fatalf("preset Prompt = %q, %v", got, err)
	}
	c.Warn(rows.MsgSaveFailed)

	text := logs.String()
	if !strings.Contains(text, rows.PromptPeriod+" 12") {
		t.Fatalf("preset answer not logged: %q", text)
	}
	if !strings.Contains(text, "warning: "+rows.MsgSaveFailed) {
		t.Fatalf("warning not logged: %q", text)
	}

	if _, ok := c.Selection(); ok {
		t.Fatal("a fresh console has no selection")
	}
}
