// Package pattern provides seed shapes that can be stamped onto a
// universe, either from the built-in library or from YAML files.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"text-ca/pkg/life"
)

// Pattern is a rectangular stencil of cells. Rows use '.' for dead and
// 'O' for alive; short rows are padded with dead cells on the right.
type Pattern struct {
	Name    string   `yaml:"name"`
	Comment string   `yaml:"comment,omitempty"`
	Rows    []string `yaml:"rows"`
}

// builtins are the classic shapes available without a file.
var builtins = map[string]Pattern{
	"block": {
		Name:    "block",
		Comment: "2x2 still life",
		Rows:    []string{"OO", "OO"},
	},
	"blinker": {
		Name:    "blinker",
		Comment: "period-2 oscillator",
		Rows:    []string{"OOO"},
	},
	"toad": {
		Name:    "toad",
		Comment: "period-2 oscillator",
		Rows:    []string{".OOO", "OOO."},
	},
	"beacon": {
		Name:    "beacon",
		Comment: "period-2 oscillator",
		Rows:    []string{"OO..", "OO..", "..OO", "..OO"},
	},
	"glider": {
		Name:    "glider",
		Comment: "diagonal spaceship, period 4",
		Rows:    []string{".O.", "..O", "OOO"},
	},
	"rpentomino": {
		Name:    "rpentomino",
		Comment: "methuselah, stabilizes after 1103 generations",
		Rows:    []string{".OO", "OO.", ".O."},
	},
}

// Builtin resolves a built-in pattern by name.
func Builtin(name string) (Pattern, bool) {
	p, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names lists the built-in pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the stencil's bounding box. Width is the longest row.
func (p Pattern) Size() (w, h int) {
	for _, row := range p.Rows {
		if n := len(row); n > w {
			w = n
		}
	}
	return w, len(p.Rows)
}

// Cells returns the offsets of the live cells, row by row.
func (p Pattern) Cells() [][2]int {
	var out [][2]int
	for y, row := range p.Rows {
		for x, r := range row {
			if r == 'O' {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// Validate checks the stencil for empty or malformed rows.
func (p Pattern) Validate() error {
	if len(p.Rows) == 0 {
		return fmt.Errorf("pattern %q has no rows", p.Name)
	}
	for i, row := range p.Rows {
		if row == "" {
			return fmt.Errorf("pattern %q: rows[%d] is empty", p.Name, i)
		}
		for _, r := range row {
			if r != '.' && r != 'O' {
				return fmt.Errorf("pattern %q: rows[%d] has cell %q, want '.' or 'O'", p.Name, i, string(r))
			}
		}
	}
	return nil
}

// Stamp raises the pattern's live cells onto u with its top-left corner
// at (ox, oy). Dead stencil cells leave the grid untouched. On a
// wrapping universe the placement wraps; otherwise every live cell must
// land inside the grid, and nothing is written on error.
func (p Pattern) Stamp(u *life.Universe, ox, oy int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	cells := p.Cells()
	if u.EdgeMode() == life.EdgeWrap {
		w, h := u.Width(), u.Height()
		for _, c := range cells {
			x := ((ox+c[0])%w + w) % w
			y := ((oy+c[1])%h + h) % h
			if err := u.Set(x, y, life.Alive); err != nil {
				return err
			}
		}
		return nil
	}
	for _, c := range cells {
		x, y := ox+c[0], oy+c[1]
		if x < 0 || x >= u.Width() || y < 0 || y >= u.Height() {
			return fmt.Errorf("pattern %q at (%d,%d): %w", p.Name, x, y, life.ErrOutOfBounds)
		}
	}
	for _, c := range cells {
		if err := u.Set(ox+c[0], oy+c[1], life.Alive); err != nil {
			return err
		}
	}
	return nil
}

// StampCentered places the pattern in the middle of the grid.
func (p Pattern) StampCentered(u *life.Universe) error {
	pw, ph := p.Size()
	return p.Stamp(u, (u.Width()-pw)/2, (u.Height()-ph)/2)
}
