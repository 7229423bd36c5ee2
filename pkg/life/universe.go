// Package life implements a deterministic two-state cellular automaton
// over a fixed-size rectangular grid with a stable textual serialization.
package life

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"text-ca/pkg/core"
	"text-ca/pkg/rule"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// EdgeMode controls how neighbor lookups treat coordinates outside the grid.
type EdgeMode uint8

const (
	// EdgeWrap joins opposite edges, making the grid a torus.
	EdgeWrap EdgeMode = iota
	// EdgeDead reads every out-of-bounds neighbor as Dead.
	EdgeDead
	// EdgeAlive reads every out-of-bounds neighbor as Alive.
	EdgeAlive
)

// String returns the mode name used on the command line.
func (m EdgeMode) String() string {
	switch m {
	case EdgeDead:
		return "dead"
	case EdgeAlive:
		return "alive"
	default:
		return "wrap"
	}
}

// ParseEdgeMode maps the names wrap, dead and alive to their modes.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "torus":
		return EdgeWrap, nil
	case "dead":
		return EdgeDead, nil
	case "alive":
		return EdgeAlive, nil
	}
	return EdgeWrap, fmt.Errorf("life: unknown edge mode %q", s)
}

var (
	// ErrInvalidDimension reports a zero or negative grid dimension.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrOutOfBounds reports coordinates outside the grid.
	ErrOutOfBounds = errors.New("life: out of bounds")
)

// Defaults match the observed behavior of the system this engine models:
// a 128x128 torus seeded with the canonical stripe pattern and rendered
// with medium-square glyphs.
const (
	DefaultWidth      = 128
	DefaultHeight     = 128
	DefaultAliveGlyph = '◼'
	DefaultDeadGlyph  = '◻'
)

// Config controls universe construction.
type Config struct {
	Width  int
	Height int

	// Rule is the birth/survival rule. The zero value means rule.Conway.
	Rule rule.Rule
	Edge EdgeMode

	// Seed selects the initial pattern for Reset: 0 restores the
	// canonical stripe pattern, any other value fills a reproducible
	// random soup.
	Seed int64

	// Glyphs used by Render. Zero runes mean the defaults.
	AliveGlyph rune
	DeadGlyph  rune
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Rule:       rule.Conway,
		Edge:       EdgeWrap,
		AliveGlyph: DefaultAliveGlyph,
		DeadGlyph:  DefaultDeadGlyph,
	}
}

// Census summarizes a universe at a point in time.
type Census struct {
	Generation uint64
	Population int

	// Born and Died count the cells that changed in the most recent Step.
	Born int
	Died int
}

// Universe owns a fixed-size grid of cells and advances it one
// generation per Step. Dimensions are constant for the lifetime of the
// Universe. A Universe belongs to a single goroutine; it performs no
// internal locking.
type Universe struct {
	w, h int
	cur  []Cell
	nxt  []Cell

	rule rule.Rule
	edge EdgeMode

	aliveGlyph rune
	deadGlyph  rune

	gen  uint64
	born int
	died int
}

// New returns a universe of the given dimensions with the default rule,
// edge mode and initial pattern.
func New(width, height int) (*Universe, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns a universe built from the provided options.
func NewWithConfig(cfg Config) (*Universe, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, cfg.Width, cfg.Height)
	}
	if cfg.Rule.IsZero() {
		cfg.Rule = rule.Conway
	}
	if cfg.AliveGlyph == 0 {
		cfg.AliveGlyph = DefaultAliveGlyph
	}
	if cfg.DeadGlyph == 0 {
		cfg.DeadGlyph = DefaultDeadGlyph
	}
	if cfg.AliveGlyph == cfg.DeadGlyph {
		return nil, fmt.Errorf("life: alive and dead glyphs are both %q", cfg.AliveGlyph)
	}
	total := cfg.Width * cfg.Height
	u := &Universe{
		w:          cfg.Width,
		h:          cfg.Height,
		cur:        make([]Cell, total),
		nxt:        make([]Cell, total),
		rule:       cfg.Rule,
		edge:       cfg.Edge,
		aliveGlyph: cfg.AliveGlyph,
		deadGlyph:  cfg.DeadGlyph,
	}
	u.Reset(cfg.Seed)
	return u, nil
}

// Name identifies the automaton by its rule notation, e.g. "B3/S23".
func (u *Universe) Name() string { return u.rule.String() }

// Width returns the grid width in cells.
func (u *Universe) Width() int { return u.w }

// Height returns the grid height in cells.
func (u *Universe) Height() int { return u.h }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Rule returns the birth/survival rule in effect.
func (u *Universe) Rule() rule.Rule { return u.rule }

// EdgeMode returns the edge handling in effect.
func (u *Universe) EdgeMode() EdgeMode { return u.edge }

// Generation returns how many steps the universe has taken since the
// last Reset.
func (u *Universe) Generation() uint64 { return u.gen }

// Cells exposes the current grid values in row-major order. The slice
// is only valid until the next Step; callers that hold state across
// steps must re-fetch it.
func (u *Universe) Cells() []Cell { return u.cur }

// Reset reinitializes the grid and the generation counter. Seed 0
// restores the canonical stripe pattern (a cell is Alive when its
// linear index is divisible by 2 or by 7); any other seed fills a
// reproducible random soup.
func (u *Universe) Reset(seed int64) {
	if seed == 0 {
		for i := range u.cur {
			if i%2 == 0 || i%7 == 0 {
				u.cur[i] = Alive
			} else {
				u.cur[i] = Dead
			}
		}
	} else {
		core.FillBinary(core.NewRNG(seed).Source(), u.cur)
	}
	for i := range u.nxt {
		u.nxt[i] = Dead
	}
	u.gen = 0
	u.born = 0
	u.died = 0
}

// Clear kills every cell without touching the generation counter.
func (u *Universe) Clear() {
	for i := range u.cur {
		u.cur[i] = Dead
	}
}

// Population counts the live cells in the current generation.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Census reports the current generation, its population and the cell
// turnover of the most recent Step.
func (u *Universe) Census() Census {
	return Census{
		Generation: u.gen,
		Population: u.Population(),
		Born:       u.born,
		Died:       u.died,
	}
}

func (u *Universe) index(x, y int) int { return y*u.w + x }

func (u *Universe) check(x, y int) error {
	if x < 0 || x >= u.w || y < 0 || y >= u.h {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, u.w, u.h)
	}
	return nil
}

// Get returns the state of cell (x, y).
func (u *Universe) Get(x, y int) (Cell, error) {
	if err := u.check(x, y); err != nil {
		return Dead, err
	}
	return u.cur[u.index(x, y)], nil
}

// Set writes the state of cell (x, y).
func (u *Universe) Set(x, y int, c Cell) error {
	if err := u.check(x, y); err != nil {
		return err
	}
	u.cur[u.index(x, y)] = c
	return nil
}

// Toggle flips cell (x, y) between Alive and Dead.
func (u *Universe) Toggle(x, y int) error {
	if err := u.check(x, y); err != nil {
		return err
	}
	idx := u.index(x, y)
	if u.cur[idx] == Alive {
		u.cur[idx] = Dead
	} else {
		u.cur[idx] = Alive
	}
	return nil
}

// Step advances the universe by one generation. The next state is
// computed entirely from the current buffer before the swap, so rule
// evaluation never observes partially updated neighbors.
func (u *Universe) Step() {
	var born, died int
	if u.edge == EdgeWrap {
		born, died = u.stepWrap()
	} else {
		born, died = u.stepBounded()
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
	u.born = born
	u.died = died
}

func (u *Universe) stepWrap() (born, died int) {
	w, h := u.w, u.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if u.cur[ny*w+nx] == Alive {
						neighbors++
					}
				}
			}
			idx := y*w + x
			cur := u.cur[idx]
			next := u.successor(cur, neighbors)
			u.nxt[idx] = next
			if next != cur {
				if next == Alive {
					born++
				} else {
					died++
				}
			}
		}
	}
	return born, died
}

func (u *Universe) stepBounded() (born, died int) {
	w, h := u.w, u.h
	outsideAlive := u.edge == EdgeAlive
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						if outsideAlive {
							neighbors++
						}
						continue
					}
					if u.cur[ny*w+nx] == Alive {
						neighbors++
					}
				}
			}
			idx := y*w + x
			cur := u.cur[idx]
			next := u.successor(cur, neighbors)
			u.nxt[idx] = next
			if next != cur {
				if next == Alive {
					born++
				} else {
					died++
				}
			}
		}
	}
	return born, died
}

// successor applies the birth/survival rule to a single cell.
func (u *Universe) successor(cur Cell, neighbors int) Cell {
	if cur == Alive {
		if u.rule.Survives(neighbors) {
			return Alive
		}
		return Dead
	}
	if u.rule.Born(neighbors) {
		return Alive
	}
	return Dead
}

// Render serializes the current grid, one row per line with every line
// terminated by '\n'. The output is a pure function of the grid and the
// glyph pair, so repeated calls between steps return identical text.
func (u *Universe) Render() string {
	glyphLen := utf8.RuneLen(u.aliveGlyph)
	if l := utf8.RuneLen(u.deadGlyph); l > glyphLen {
		glyphLen = l
	}
	var b strings.Builder
	b.Grow((u.w*glyphLen + 1) * u.h)
	for y := 0; y < u.h; y++ {
		row := u.cur[y*u.w : (y+1)*u.w]
		for _, c := range row {
			if c == Alive {
				b.WriteRune(u.aliveGlyph)
			} else {
				b.WriteRune(u.deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the same text as Render.
func (u *Universe) String() string { return u.Render() }
