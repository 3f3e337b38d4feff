// Package host adapts a universe and a terminal into the capability set that
// rows.Extract runs against.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"initrows/internal/core"
	"initrows/internal/rows"
)

// Console is a rows.Host backed by an in-process universe and line-oriented
// input. Prompts can be answered ahead of time so the extraction runs
// unattended.
type Console struct {
	core.Universe

	sel     rows.Rect
	hasSel  bool
	in      *bufio.Reader
	out     io.Writer
	logger  *log.Logger
	answers map[string]string
}

// NewConsole wraps u. Prompts are written to out and answered from in;
// warnings go to logger.
func NewConsole(u core.Universe, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.Default()
	}
	return &Console{
		Universe: u,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger,
		answers:  map[string]string{},
	}
}

// Select sets the current selection.
func (c *Console) Select(r rows.Rect) {
	c.sel = r
	c.hasSel = true
}

// Answer records a reply for prompt so it is not asked interactively.
func (c *Console) Answer(prompt, value string) {
	c.answers[prompt] = value
}

// Selection implements rows.Host.
func (c *Console) Selection() (rows.Rect, bool) { return c.sel, c.hasSel }

// Prompt implements rows.Host.
func (c *Console) Prompt(msg string) (string, error) {
	if v, ok := c.answers[msg]; ok {
		c.logger.Printf("%s %s", msg, v)
		return v, nil
	}
	if _, err := fmt.Fprintf(c.out, "%s ", msg); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Warn implements rows.Host.
func (c *Console) Warn(msg string) {
	c.logger.Printf("warning: %s", msg)
}
