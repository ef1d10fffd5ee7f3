package digidoodle

import (
	"fmt"
	"testing"

	"github.com/gogpu/avatar/rng"
)

func grids(n int) []Grid {
	var gs []Grid
	for i := 0; i < 50; i++ {
		gs = append(gs, NewGrid(rng.New(fmt.Sprintf("grid-%d-%d", n, i)), n, 0.5))
	}
	return gs
}

func TestVerticalSymmetry(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 9} {
		for _, g := range grids(n) {
			g.Apply(SymmetryVertical)
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if g[y][x] != g[y][n-1-x] {
						t.Fatalf("n=%d: g[%d][%d] != g[%d][%d]", n, y, x, y, n-1-x)
					}
				}
			}
		}
	}
}

func TestHorizontalSymmetry(t *testing.T) {
	for _, n := range []int{2, 7, 8} {
		for _, g := range grids(n) {
			g.Apply(SymmetryHorizontal)
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if g[y][x] != g[n-1-y][x] {
						t.Fatalf("n=%d: row %d differs from row %d", n, y, n-1-y)
					}
				}
			}
		}
	}
}

func TestDiagonalSymmetry(t *testing.T) {
	for _, n := range []int{3, 8} {
		for _, g := range grids(n) {
			g.Apply(SymmetryDiagonal)
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if g[y][x] != g[x][y] {
						t.Fatalf("n=%d: g[%d][%d] != g[%d][%d]", n, y, x, x, y)
					}
				}
			}
		}
	}
}

func TestAntiDiagonalSymmetry(t *testing.T) {
	for _, n := range []int{3, 8} {
		for _, g := range grids(n) {
			g.Apply(SymmetryAntiDiagonal)
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if g[y][x] != g[n-1-x][n-1-y] {
						t.Fatalf("n=%d: g[%d][%d] != g[%d][%d]", n, y, x, n-1-x, n-1-y)
					}
				}
			}
		}
	}
}

func TestRotationalSymmetry(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 9} {
		for _, g := range grids(n) {
			g.Apply(SymmetryRotational)
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if g[y][x] != g[x][n-1-y] {
						t.Fatalf("n=%d: g[%d][%d] != g[%d][%d]", n, y, x, x, n-1-y)
					}
				}
			}
		}
	}
}

func TestCombinedSymmetry(t *testing.T) {
	for _, g := range grids(8) {
		g.Apply(SymmetryVertical | SymmetryHorizontal)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if g[y][x] != g[7-y][7-x] {
					t.Fatalf("g[%d][%d] is not 2-fold symmetric", y, x)
				}
			}
		}
	}
}

func TestSymmetryNoneKeepsGrid(t *testing.T) {
	g := NewGrid(rng.New("none"), 8, 0.5)
	want := NewGrid(rng.New("none"), 8, 0.5)
	g.Apply(SymmetryNone)
	for y := range g {
		for x := range g[y] {
			if g[y][x] != want[y][x] {
				t.Fatalf("cell (%d,%d) changed", x, y)
			}
		}
	}
}

func TestDensityExtremes(t *testing.T) {
	g := NewGrid(rng.New("full"), 6, 1)
	if got := g.Count(); got != 36 {
		t.Errorf("density 1: %d cells, want 36", got)
	}
	g = NewGrid(rng.New("empty"), 6, 0)
	if got := g.Count(); got != 0 {
		t.Errorf("density 0: %d cells, want 0", got)
	}
}

func TestParseSymmetry(t *testing.T) {
	tests := []struct {
		in   string
		want Symmetry
	}{
		{"", 0},
		{"true", 0},
		{"none", SymmetryNone},
		{"false", SymmetryNone},
		{"vertical", SymmetryVertical},
		{"Vertical|horizontal", SymmetryVertical | SymmetryHorizontal},
		{"diagonal, anti-diagonal", SymmetryDiagonal | SymmetryAntiDiagonal},
		{"rotational+vertical", SymmetryRotational | SymmetryVertical},
		{"3", SymmetryVertical | SymmetryHorizontal},
	}
	for _, tt := range tests {
		got, err := ParseSymmetry(tt.in)
		if err != nil {
			t.Errorf("ParseSymmetry(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSymmetry(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseSymmetry("sideways"); err == nil {
		t.Error("ParseSymmetry(sideways): expected error")
	}
}

func TestSymmetryString(t *testing.T) {
	tests := []struct {
		s    Symmetry
		want string
	}{
		{0, "vertical"},
		{SymmetryNone, "none"},
		{SymmetryVertical | SymmetryRotational, "vertical|rotational"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		back, err := ParseSymmetry(tt.want)
		if err != nil || back.resolved() != tt.s.resolved() {
			t.Errorf("ParseSymmetry(%q) = %v, %v", tt.want, back, err)
		}
	}
}
