// Package world builds the universe a front end runs against from its
// configuration.
package world

import (
	"fmt"

	"initrows/internal/config"
	"initrows/internal/core"
	"initrows/internal/pattern"
	"initrows/internal/sims/life"
)

// Build creates the configured sim and seeds it. A pattern file, when given,
// is placed on an empty board and its declared rule replaces the configured
// one; otherwise the board is filled with a random soup.
func Build(cfg *config.Config) (core.Universe, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}

	params := cfg.SimParams()
	var pat *pattern.Pattern
	if cfg.Pattern != "" {
		p, err := pattern.Load(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		if p.Rule != "" {
			if _, err := life.ParseRule(p.Rule); err != nil {
				return nil, fmt.Errorf("%s: %w", cfg.Pattern, err)
			}
			params["rule"] = p.Rule
		}
		pat = p.Rotate(cfg.Rotate)
	}

	u, ok := factory(params).(core.Universe)
	if !ok {
		return nil, fmt.Errorf("sim %q does not expose individual cells", cfg.Sim)
	}
	if pat == nil {
		u.Reset(cfg.Seed)
		return u, nil
	}

	x, y, set, err := cfg.Origin()
	if err != nil {
		return nil, err
	}
	if !set {
		size := u.Size()
		x, y = (size.W-pat.W)/2, (size.H-pat.H)/2
	}
	u.Clear()
	pat.Place(u, x, y)
	return u, nil
}
