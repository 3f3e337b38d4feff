package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"initrows/internal/rows"
	"initrows/internal/sims/life"
)

// Config represents the command-line parameters shared by the front ends.
// Every field can also come from a YAML file named by -config; flags given
// on the command line win over the file.
type Config struct {
	File string `yaml:"-"`

	Sim     string  `yaml:"sim"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Rule    string  `yaml:"rule"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`

	Pattern string `yaml:"pattern"`
	At      string `yaml:"at"`
	Rotate  int    `yaml:"rotate"`

	Selection string `yaml:"selection"`
	Period    int    `yaml:"period"`
	Offset    int    `yaml:"offset"`
	Output    string `yaml:"output"`
	Format    string `yaml:"format"`
	Verify    bool   `yaml:"verify"`

	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   128,
		Height:  128,
		Rule:    "B3/S23",
		Density: 0.5,
		Seed:    42,
		Output:  rows.DefaultOutput,
		Format:  string(rows.FormatText),
		Scale:   4,
		TPS:     60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML file with default settings")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "universe width")
	fs.IntVar(&c.Height, "h", c.Height, "universe height")
	fs.StringVar(&c.Rule, "rule", c.Rule, "Life-like rule in B/S notation")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density of random soups")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups when no pattern is loaded")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file (.rle or plaintext)")
	fs.StringVar(&c.At, "at", c.At, "x,y of the pattern's top-left corner (default: centred)")
	fs.IntVar(&c.Rotate, "rotate", c.Rotate, "clockwise quarter turns applied to the pattern")
	fs.StringVar(&c.Selection, "sel", c.Selection, "selected row as x,y,w[,h]")
	fs.IntVar(&c.Period, "period", c.Period, "period of the partial result (prompted when 0)")
	fs.IntVar(&c.Offset, "offset", c.Offset, "translation per period (prompted when 0)")
	fs.StringVar(&c.Output, "out", c.Output, "output file")
	fs.StringVar(&c.Format, "format", c.Format, "output format: text or binary")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "re-read the output file after writing it")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
}

// Parse binds c to fs, parses args and, when -config is given, loads that
// file underneath the flags that were set explicitly.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := LoadFile(c.File, c); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply -%s: %w", name, err)
		}
	}
	return nil
}

// LoadFile decodes a YAML file into c. Keys absent from the file leave the
// current values untouched.
func LoadFile(path string, c *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SimParams returns the key/value map the sim factories understand.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"rule":    c.Rule,
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}

// Validate checks the fields that have a fixed syntax.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("universe size %dx%d must be positive", c.Width, c.Height)
	}
	if _, err := life.ParseRule(c.Rule); err != nil {
		return err
	}
	if _, err := rows.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Period < 0 || c.Offset < 0 {
		return fmt.Errorf("period %d and offset %d cannot be negative", c.Period, c.Offset)
	}
	if _, _, err := c.SelectionRect(); err != nil {
		return err
	}
	if _, _, _, err := c.Origin(); err != nil {
		return err
	}
	return nil
}

// SelectionRect parses -sel. The second result is false when no selection
// was given.
func (c *Config) SelectionRect() (rows.Rect, bool, error) {
	if strings.TrimSpace(c.Selection) == "" {
		return rows.Rect{}, false, nil
	}
	n, err := ints(c.Selection, 3, 4)
	if err != nil {
		return rows.Rect{}, false, fmt.Errorf("selection %q: %w", c.Selection, err)
	}
	r := rows.Rect{X: n[0], Y: n[1], W: n[2], H: 1}
	if len(n) == 4 {
		r.H = n[3]
	}
	return r, true, nil
}

// Origin parses -at. The third result is false when the pattern should be
// centred.
func (c *Config) Origin() (int, int, bool, error) {
	if strings.TrimSpace(c.At) == "" {
		return 0, 0, false, nil
	}
	n, err := ints(c.At, 2, 2)
	if err != nil {
		return 0, 0, false, fmt.Errorf("origin %q: %w", c.At, err)
	}
	return n[0], n[1], true, nil
}

func ints(s string, lo, hi int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) < lo || len(parts) > hi {
		if lo == hi {
			return nil, fmt.Errorf("want %d comma-separated integers", lo)
		}
		return nil, fmt.Errorf("want %d to %d comma-separated integers", lo, hi)
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
