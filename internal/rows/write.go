package rows

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultOutput is the file name the search programs expect.
const DefaultOutput = "initrows.txt"

// Format selects how rows are rendered on disk.
type Format string

const (
	// FormatText writes rows as o/. strings, ready for qfind and zfind.
	FormatText Format = "text"
	// FormatBinary writes rows as 1/0 strings for pasting into gfind.
	FormatBinary Format = "binary"
)

// ParseFormat validates a format name. The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatBinary:
		return FormatBinary, nil
	}
	return "", fmt.Errorf("unknown output format %q (want %q or %q)", s, FormatText, FormatBinary)
}

var binaryReplacer = strings.NewReplacer(string(aliveMark), "1", string(deadMark), "0")

// Render converts a captured row into the requested format.
func (f Format) Render(row string) string {
	if f == FormatBinary {
		return binaryReplacer.Replace(row)
	}
	return row
}

// Write emits each row followed by a newline, in order.
func Write(w io.Writer, rows []string, f Format) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := bw.WriteString(f.Render(r)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates or truncates path and writes rows to it. A failed write
// may leave the file incomplete.
func WriteFile(path string, rows []string, f Format) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(fh, rows, f); err != nil {
		fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
