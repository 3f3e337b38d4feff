package rows

import (
	"fmt"
	"strconv"
	"strings"
)

// Prompts and messages shown to the user. Downstream tooling documents these
// strings, so keep them stable.
const (
	PromptPeriod = "Enter the period."
	PromptOffset = "Enter the offset (translation)."

	MsgNoSelection    = "There is no selection."
	MsgBadSelection   = "Incorrect selection dimensions (height must be 1)"
	MsgBadPeriod      = "Period should be a positive integer."
	MsgBadOffset      = "Offset should be a positive integer."
	MsgPeriodVsOffset = "Period must be greater than offset."
	MsgSaveFailed     = "Unable to save file."
)

// Host is everything Extract needs from the application it runs inside.
type Host interface {
	CellStepper
	// Selection returns the current selection and whether one exists.
	Selection() (Rect, bool)
	// Prompt asks the user for a line of text.
	Prompt(msg string) (string, error)
	// Warn reports a non-fatal problem to the user.
	Warn(msg string)
}

// AbortError stops an extraction with a message for the user.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return e.Msg }

func abort(msg string) error { return &AbortError{Msg: msg} }

// Options control where and how Extract saves its rows.
type Options struct {
	Output string
	Format Format
}

// Result describes a completed extraction.
type Result struct {
	Selection Rect
	Period    int
	Offset    int
	BackOff   []int
	Rows      []string
	Path      string
	Saved     bool
}

// Extract captures initial rows for a search from the host's selected row.
//
// Validation failures return an *AbortError before the universe is touched.
// A failure to save is reported through Host.Warn and leaves Result.Saved
// false; the captured rows are still returned.
func Extract(h Host, opts Options) (*Result, error) {
	sel, ok := h.Selection()
	if !ok || sel.Empty() {
		return nil, abort(MsgNoSelection)
	}
	if sel.H != 1 {
		return nil, abort(MsgBadSelection)
	}

	period, err := promptPositive(h, PromptPeriod, MsgBadPeriod)
	if err != nil {
		return nil, err
	}
	offset, err := promptPositive(h, PromptOffset, MsgBadOffset)
	if err != nil {
		return nil, err
	}
	if period <= offset {
		return nil, abort(MsgPeriodVsOffset)
	}

	backOff, err := Schedule(period, offset)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Selection: sel,
		Period:    period,
		Offset:    offset,
		BackOff:   backOff,
		Rows:      Sample(h, sel.X, sel.Y, sel.W, backOff),
		Path:      opts.Output,
	}
	if res.Path == "" {
		res.Path = DefaultOutput
	}
	if err := WriteFile(res.Path, res.Rows, opts.Format); err != nil {
		h.Warn(MsgSaveFailed)
		return res, nil
	}
	res.Saved = true
	return res, nil
}

func promptPositive(h Host, prompt, invalid string) (int, error) {
	s, err := h.Prompt(prompt)
	if err != nil {
		return 0, fmt.Errorf("prompt %q: %w", prompt, err)
	}
	n, ok := ParsePositive(s)
	if !ok {
		return 0, abort(invalid)
	}
	return n, nil
}

// ParsePositive accepts a decimal integer with optional thousands commas, an
// optional sign and surrounding whitespace, and reports whether it is > 0.
func ParsePositive(s string) (int, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || len(s)-len(digits) > 1 {
		return 0, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
