// Package rule implements outer-totalistic birth/survival rules in the
// conventional B/S notation, such as B3/S23 for Conway's Game of Life.
package rule

import (
	"fmt"
	"strings"
)

// Rule decides the next state of a cell from its current state and the
// number of live cells in its eight-cell Moore neighborhood. Bit n of a
// mask marks neighbor count n.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is the standard Game of Life rule, B3/S23.
var Conway = MustParse("B3/S23")

// Parse reads B/S notation such as "B3/S23" or "b36/s23". Either digit
// list may be empty: "B2/S" births on two neighbors and never survives.
func Parse(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule: %q is not B<counts>/S<counts> notation", s)
	}
	birth, err := parseMask(parts[0], "Bb", s)
	if err != nil {
		return Rule{}, err
	}
	survive, err := parseMask(parts[1], "Ss", s)
	if err != nil {
		return Rule{}, err
	}
	return Rule{birth: birth, survive: survive}, nil
}

func parseMask(part, prefixes, full string) (uint16, error) {
	if part == "" || !strings.ContainsRune(prefixes, rune(part[0])) {
		return 0, fmt.Errorf("rule: missing %c prefix in %q", prefixes[0], full)
	}
	var mask uint16
	for _, r := range part[1:] {
		if r < '0' || r > '8' {
			return 0, fmt.Errorf("rule: neighbor count %q out of range in %q", string(r), full)
		}
		mask |= 1 << uint(r-'0')
	}
	return mask, nil
}

// MustParse is Parse for notation known to be valid; it panics on error.
func MustParse(s string) Rule {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Born reports whether a dead cell with n live neighbors becomes alive.
func (r Rule) Born(n int) bool {
	return n >= 0 && n <= 8 && r.birth&(1<<uint(n)) != 0
}

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survives(n int) bool {
	return n >= 0 && n <= 8 && r.survive&(1<<uint(n)) != 0
}

// IsZero reports whether the rule births and survives on no counts at
// all, i.e. the zero value.
func (r Rule) IsZero() bool {
	return r.birth == 0 && r.survive == 0
}

// String renders the canonical notation with ascending digits.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteString("/S")
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<uint(n)) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}
