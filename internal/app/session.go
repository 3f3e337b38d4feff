package app

import (
	"errors"
	"fmt"

	"initrows/internal/rows"
)

var errPending = errors.New("waiting for input")

// Session drives rows.Extract from a frame loop that cannot block on input.
// Each Advance reruns the extraction with the answers gathered so far; it
// stops at the first unanswered prompt, so validation order and messages are
// exactly those of a blocking run.
type Session struct {
	u        rows.CellStepper
	sel      rows.Rect
	hasSel   bool
	opts     rows.Options
	answers  map[string]string
	pending  string
	warnings []string
}

// NewSession prepares an extraction against u for the given selection.
func NewSession(u rows.CellStepper, sel rows.Rect, hasSel bool, opts rows.Options) *Session {
	return &Session{u: u, sel: sel, hasSel: hasSel, opts: opts, answers: map[string]string{}}
}

// Advance runs the extraction. When input is still needed it returns the
// prompt to show and a nil result.
func (s *Session) Advance() (string, *rows.Result, error) {
	s.pending = ""
	s.warnings = nil
	res, err := rows.Extract(sessionHost{s}, s.opts)
	if errors.Is(err, errPending) {
		return s.pending, nil, nil
	}
	return "", res, err
}

// Answer supplies the reply to the prompt last returned by Advance.
func (s *Session) Answer(v string) {
	if s.pending != "" {
		s.answers[s.pending] = v
	}
}

// Warnings returns the warnings raised by the last Advance.
func (s *Session) Warnings() []string { return s.warnings }

type sessionHost struct{ s *Session }

func (h sessionHost) Cell(x, y int) bool { return h.s.u.Cell(x, y) }

func (h sessionHost) Step() { h.s.u.Step() }

func (h sessionHost) Selection() (rows.Rect, bool) { return h.s.sel, h.s.hasSel }

func (h sessionHost) Prompt(msg string) (string, error) {
	if v, ok := h.s.answers[msg]; ok {
		return v, nil
	}
	h.s.pending = msg
	return "", fmt.Errorf("%s: %w", msg, errPending)
}

func (h sessionHost) Warn(msg string) { h.s.warnings = append(h.s.warnings, msg) }

// Status summarizes the outcome of a finished Advance for the status line.
func Status(res *rows.Result, warnings []string, err error) string {
	var ab *rows.AbortError
	switch {
	case errors.As(err, &ab):
		return ab.Msg
	case err != nil:
		return err.Error()
	case len(warnings) > 0:
		return warnings[len(warnings)-1]
	case res == nil:
		return ""
	}
	return fmt.Sprintf("Wrote %d rows to %s", len(res.Rows), res.Path)
}
