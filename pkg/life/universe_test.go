package life

import (
	"errors"
	"slices"
	"testing"

	"text-ca/pkg/rule"
)

func newEmpty(t *testing.T, w, h int, edge EdgeMode) *Universe {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Edge = edge
	u, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig(%dx%d): %v", w, h, err)
	}
	u.Clear()
	return u
}

func mustSet(t *testing.T, u *Universe, x, y int) {
	t.Helper()
	if err := u.Set(x, y, Alive); err != nil {
		t.Fatalf("Set(%d,%d): %v", x, y, err)
	}
}

func alivePositions(u *Universe) [][2]int {
	var out [][2]int
	cells := u.Cells()
	for y := 0; y < u.Height(); y++ {
		for x := 0; x < u.Width(); x++ {
			if cells[y*u.Width()+x] == Alive {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, u *Universe, want map[[2]int]bool) {
	t.Helper()
	cells := u.Cells()
	w := u.Width()
	for y := 0; y < u.Height(); y++ {
		for x := 0; x < w; x++ {
			alive := cells[y*w+x] == Alive
			if want[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func TestNewRejectsZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 4}, {4, -1}} {
		_, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d,%d) err=%v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestDefaultConfigDimensions(t *testing.T) {
	u, err := NewWithConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("NewWithConfig(DefaultConfig()): %v", err)
	}
	if u.Width() != DefaultWidth || u.Height() != DefaultHeight {
		t.Fatalf("default universe is %dx%d, want %dx%d", u.Width(), u.Height(), DefaultWidth, DefaultHeight)
	}
	if got := u.Name(); got != "B3/S23" {
		t.Fatalf("default rule name %q, want B3/S23", got)
	}
}

func TestDefaultPatternStripes(t *testing.T) {
	u, err := New(7, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Alive iff the linear index is divisible by 2 or by 7.
	wantAlive := map[int]bool{0: true, 2: true, 4: true, 6: true, 7: true, 8: true, 10: true, 12: true}
	for i, c := range u.Cells() {
		if (c == Alive) != wantAlive[i] {
			t.Fatalf("index %d alive=%v, expected %v", i, c == Alive, wantAlive[i])
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, edge := range []EdgeMode{EdgeWrap, EdgeDead} {
		u := newEmpty(t, 9, 7, edge)
		u.Step()
		if pop := u.Population(); pop != 0 {
			t.Fatalf("edge=%s: empty grid produced %d live cells", edge, pop)
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	u := newEmpty(t, 5, 5, EdgeWrap)
	mustSet(t, u, 2, 2)
	u.Step()
	if pop := u.Population(); pop != 0 {
		t.Fatalf("lone cell should die of underpopulation, got population %d", pop)
	}
}

func TestBlockStillLife(t *testing.T) {
	u := newEmpty(t, 6, 6, EdgeWrap)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		mustSet(t, u, p[0], p[1])
	}
	before := append([]Cell(nil), u.Cells()...)
	u.Step()
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("2x2 block should be a still life on a 6x6 torus")
	}
}

func TestBlockStillLifeAtDeadEdge(t *testing.T) {
	// With dead edges the block sits in the corner and is still stable.
	u := newEmpty(t, 4, 4, EdgeDead)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		mustSet(t, u, p[0], p[1])
	}
	before := append([]Cell(nil), u.Cells()...)
	u.Step()
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("corner block should be a still life with dead edges")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	u := newEmpty(t, 5, 5, EdgeWrap)
	mustSet(t, u, 2, 1)
	mustSet(t, u, 2, 2)
	mustSet(t, u, 2, 3)

	u.Step()
	expectAlive(t, u, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	u.Step()
	expectAlive(t, u, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestGliderReturnsHomeOnTorus(t *testing.T) {
	u := newEmpty(t, 8, 8, EdgeWrap)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		mustSet(t, u, p[0], p[1])
	}
	start := append([]Cell(nil), u.Cells()...)

	// A glider travels one cell diagonally every four generations, so it
	// crosses an 8x8 torus back to its origin in 32.
	for i := 0; i < 32; i++ {
		u.Step()
	}
	if !slices.Equal(start, u.Cells()) {
		t.Fatalf("glider did not return to start; alive=%v", alivePositions(u))
	}
}

func TestDeadEdgeClipsBlinker(t *testing.T) {
	// A vertical triple hugging x=0 loses its left arm when edges are
	// dead, but keeps all three cells on a torus.
	build := func(edge EdgeMode) *Universe {
		u := newEmpty(t, 4, 5, edge)
		mustSet(t, u, 0, 1)
		mustSet(t, u, 0, 2)
		mustSet(t, u, 0, 3)
		return u
	}

	wrapped := build(EdgeWrap)
	wrapped.Step()
	if pop := wrapped.Population(); pop != 3 {
		t.Fatalf("wrap: population after step = %d, want 3", pop)
	}

	clipped := build(EdgeDead)
	clipped.Step()
	expectAlive(t, clipped, map[[2]int]bool{
		{0, 2}: true,
		{1, 2}: true,
	})
}

func TestAliveEdgeSeedsBorder(t *testing.T) {
	u := newEmpty(t, 4, 4, EdgeAlive)
	u.Step()

	// Non-corner border cells see exactly three out-of-bounds neighbors
	// and are born; corners see five and stay dead.
	want := map[[2]int]bool{
		{1, 0}: true, {2, 0}: true,
		{0, 1}: true, {3, 1}: true,
		{0, 2}: true, {3, 2}: true,
		{1, 3}: true, {2, 3}: true,
	}
	expectAlive(t, u, want)
}

func TestSeedsRuleExplodes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 6
	cfg.Height = 6
	cfg.Edge = EdgeDead
	cfg.Rule = rule.MustParse("B2/S")
	u, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	u.Clear()
	mustSet(t, u, 1, 1)
	mustSet(t, u, 2, 1)

	u.Step()
	expectAlive(t, u, map[[2]int]bool{
		{1, 0}: true, {2, 0}: true,
		{1, 2}: true, {2, 2}: true,
	})
}

func TestRenderIdempotent(t *testing.T) {
	u, err := New(12, 9)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := u.Render()
	second := u.Render()
	if first != second {
		t.Fatal("Render must return identical text when no Step intervened")
	}
	u.Step()
	if u.Render() == first {
		t.Fatal("Render should reflect the stepped grid")
	}
}

func TestRenderShape(t *testing.T) {
	u := newEmpty(t, 3, 2, EdgeWrap)
	mustSet(t, u, 1, 0)
	got := u.Render()
	want := "◻◼◻\n◻◻◻\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if u.String() != got {
		t.Fatal("String must match Render")
	}
}

func TestRenderCustomGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	cfg.Height = 2
	cfg.AliveGlyph = '#'
	cfg.DeadGlyph = '.'
	u, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	u.Clear()
	mustSet(t, u, 0, 0)
	mustSet(t, u, 1, 1)
	if got, want := u.Render(), "#.\n.#\n"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestNewRejectsIdenticalGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AliveGlyph = '#'
	cfg.DeadGlyph = '#'
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("identical glyphs would make Render ambiguous")
	}
}

func TestResetDeterministic(t *testing.T) {
	u, err := New(16, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	u.Reset(99)
	first := append([]Cell(nil), u.Cells()...)
	u.Step()
	u.Reset(99)
	if !slices.Equal(first, u.Cells()) {
		t.Fatal("Reset with equal seeds must produce identical grids")
	}
	if u.Generation() != 0 {
		t.Fatalf("Reset should zero the generation counter, got %d", u.Generation())
	}

	u.Reset(100)
	if slices.Equal(first, u.Cells()) {
		t.Fatal("different seeds should produce different grids")
	}

	u.Reset(0)
	fresh, err := New(16, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !slices.Equal(fresh.Cells(), u.Cells()) {
		t.Fatal("Reset(0) must restore the canonical default pattern")
	}
}

func TestCellAccessBounds(t *testing.T) {
	u := newEmpty(t, 4, 3, EdgeWrap)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		if err := u.Toggle(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err=%v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := u.Set(p[0], p[1], Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err=%v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if _, err := u.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
}

func TestToggleFlips(t *testing.T) {
	u := newEmpty(t, 3, 3, EdgeWrap)
	if err := u.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if c, _ := u.Get(1, 1); c != Alive {
		t.Fatal("Toggle should raise a dead cell")
	}
	if err := u.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if c, _ := u.Get(1, 1); c != Dead {
		t.Fatal("Toggle should kill a live cell")
	}
}

func TestCensusTurnover(t *testing.T) {
	u := newEmpty(t, 5, 5, EdgeWrap)
	mustSet(t, u, 2, 1)
	mustSet(t, u, 2, 2)
	mustSet(t, u, 2, 3)

	c := u.Census()
	if c.Generation != 0 || c.Population != 3 || c.Born != 0 || c.Died != 0 {
		t.Fatalf("initial census = %+v", c)
	}

	u.Step()
	c = u.Census()
	if c.Generation != 1 {
		t.Fatalf("generation = %d, want 1", c.Generation)
	}
	if c.Population != 3 {
		t.Fatalf("population = %d, want 3", c.Population)
	}
	if c.Born != 2 || c.Died != 2 {
		t.Fatalf("turnover born=%d died=%d, want 2/2", c.Born, c.Died)
	}
}

func TestParseEdgeMode(t *testing.T) {
	cases := map[string]EdgeMode{
		"wrap":  EdgeWrap,
		"torus": EdgeWrap,
		"dead":  EdgeDead,
		"ALIVE": EdgeAlive,
	}
	for in, want := range cases {
		got, err := ParseEdgeMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseEdgeMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEdgeMode("expand"); err == nil {
		t.Fatal("ParseEdgeMode should reject unknown modes")
	}
}
