package digidoodle

import "github.com/gogpu/avatar/rng"

// Grid is a square field of cells indexed [y][x].
type Grid [][]bool

// NewGrid draws an n x n grid row by row; each cell is filled with
// probability density.
func NewGrid(r *rng.Rand, n int, density float64) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]bool, n)
		for x := range g[y] {
			g[y][x] = r.Bool(density)
		}
	}
	return g
}

// Len returns the side length.
func (g Grid) Len() int { return len(g) }

// Count returns the number of filled cells.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// ClearBorder empties the outer width rings of cells.
func (g Grid) ClearBorder(width int) {
	n := len(g)
	for y := range g {
		for x := range g[y] {
			if x < width || y < width || x >= n-width || y >= n-width {
				g[y][x] = false
			}
		}
	}
}

// Apply runs the operations in s on g, in the fixed order vertical,
// horizontal, diagonal, anti-diagonal, rotational. Each operation copies
// source cells over their images.
func (g Grid) Apply(s Symmetry) {
	s = s.resolved()
	n := len(g)

	if s.Has(SymmetryVertical) {
		for y := 0; y < n; y++ {
			for x := 0; x < n/2; x++ {
				g[y][n-1-x] = g[y][x]
			}
		}
	}
	if s.Has(SymmetryHorizontal) {
		for y := 0; y < n/2; y++ {
			copy(g[n-1-y], g[y])
		}
	}
	if s.Has(SymmetryDiagonal) {
		for y := 0; y < n; y++ {
			for x := y + 1; x < n; x++ {
				g[x][y] = g[y][x]
			}
		}
	}
	if s.Has(SymmetryAntiDiagonal) {
		for y := 0; y < n; y++ {
			for x := 0; x < n-1-y; x++ {
				g[n-1-x][n-1-y] = g[y][x]
			}
		}
	}
	if s.Has(SymmetryRotational) {
		q := (n + 1) / 2
		for y := 0; y < q; y++ {
			for x := 0; x < q; x++ {
				v := g[y][x]
				g[x][n-1-y] = v
				g[n-1-y][n-1-x] = v
				g[n-1-x][y] = v
			}
		}
	}
}
