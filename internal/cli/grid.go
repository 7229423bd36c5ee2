package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"text-ca/internal/pattern"
	"text-ca/pkg/life"
	"text-ca/pkg/rule"
)

// gridOptions holds the flags shared by every command that builds a
// universe.
type gridOptions struct {
	width   int
	height  int
	rule    string
	edge    string
	seed    int64
	pattern string
	alive   string
	dead    string
}

func addGridFlags(cmd *cobra.Command, o *gridOptions) {
	f := cmd.Flags()
	f.IntVar(&o.width, "width", life.DefaultWidth, "grid width in cells")
	f.IntVar(&o.height, "height", life.DefaultHeight, "grid height in cells")
	f.StringVar(&o.rule, "rule", "life", "rule preset or B/S notation")
	f.StringVar(&o.edge, "edge", "wrap", "edge mode: wrap, dead or alive")
	f.Int64Var(&o.seed, "seed", 0, "random soup seed; 0 keeps the canonical start pattern")
	f.StringVar(&o.pattern, "pattern", "", "stamp a pattern (built-in name or YAML file) on an empty grid")
	f.StringVar(&o.alive, "alive", string(life.DefaultAliveGlyph), "glyph for live cells")
	f.StringVar(&o.dead, "dead", string(life.DefaultDeadGlyph), "glyph for dead cells")
}

// buildUniverse turns the shared flags into a ready universe. With
// --pattern the grid starts empty and the pattern is stamped centered.
func buildUniverse(o *gridOptions) (*life.Universe, error) {
	r, err := rule.Resolve(o.rule)
	if err != nil {
		return nil, err
	}
	edge, err := life.ParseEdgeMode(o.edge)
	if err != nil {
		return nil, err
	}
	aliveGlyph, err := parseGlyph("alive", o.alive)
	if err != nil {
		return nil, err
	}
	deadGlyph, err := parseGlyph("dead", o.dead)
	if err != nil {
		return nil, err
	}

	u, err := life.NewWithConfig(life.Config{
		Width:      o.width,
		Height:     o.height,
		Rule:       r,
		Edge:       edge,
		Seed:       o.seed,
		AliveGlyph: aliveGlyph,
		DeadGlyph:  deadGlyph,
	})
	if err != nil {
		return nil, err
	}

	if o.pattern != "" {
		p, err := pattern.Resolve(o.pattern)
		if err != nil {
			return nil, err
		}
		u.Clear()
		if err := p.StampCentered(u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// parseGlyph reads a single-rune flag value. Input is NFC-normalized
// first so decomposed sequences that collapse to one rune are accepted.
func parseGlyph(name, s string) (rune, error) {
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--%s glyph %q must be a single character", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
