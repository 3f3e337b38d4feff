// Command getrows captures the initial rows for extending a partial
// spaceship with qfind, zfind or gfind.
//
// Orient the partial result so it travels upwards, select the row to extend
// from with -sel (for symmetric searches only its left half), and give the
// period and translation. The rows are written to initrows.txt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"

	"initrows/internal/config"
	"initrows/internal/host"
	"initrows/internal/rows"
	"initrows/internal/world"
)

// errAborted marks a run stopped by a validation message already shown to
// the user.
var errAborted = errors.New("aborted")

func main() {
	log.SetFlags(0)
	log.SetPrefix("getrows: ")

	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, log.Default())
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errAborted):
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("getrows", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := config.NewConfig()
	if err := cfg.Parse(fs, args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := rows.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	u, err := world.Build(cfg)
	if err != nil {
		return err
	}

	con := host.NewConsole(u, stdin, stdout, logger)
	if sel, ok, _ := cfg.SelectionRect(); ok {
		con.Select(sel)
	}
	if cfg.Period != 0 {
		con.Answer(rows.PromptPeriod, strconv.Itoa(cfg.Period))
	}
	if cfg.Offset != 0 {
		con.Answer(rows.PromptOffset, strconv.Itoa(cfg.Offset))
	}

	res, err := rows.Extract(con, rows.Options{Output: cfg.Output, Format: format})
	var ab *rows.AbortError
	if errors.As(err, &ab) {
		fmt.Fprintln(stderr, ab.Msg)
		return errAborted
	}
	if err != nil {
		return err
	}
	if !res.Saved {
		return nil
	}
	logger.Printf("wrote %d rows of width %d to %s (period %d, offset %d)",
		len(res.Rows), res.Selection.W, res.Path, res.Period, res.Offset)

	if cfg.Verify {
		back, err := rows.ReadInitRowsFile(res.Path, res.Period, res.Selection.W)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !slices.Equal(back, res.Rows) {
			return fmt.Errorf("verify: %s does not match the captured rows", res.Path)
		}
		logger.Printf("verified %s", res.Path)
	}
	return nil
}
