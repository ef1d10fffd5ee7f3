package digidoodle

import (
	"fmt"
	"strconv"
	"strings"
)

// Symmetry is a set of mirror and rotation operations applied to a grid.
//
// The zero value selects the default, SymmetryVertical. Use SymmetryNone to
// keep grids exactly as drawn.
type Symmetry uint8

// Symmetry operations, applied in declaration order.
const (
	// SymmetryVertical mirrors the left half onto the right half.
	SymmetryVertical Symmetry = 1 << iota
	// SymmetryHorizontal mirrors the top half onto the bottom half.
	SymmetryHorizontal
	// SymmetryDiagonal mirrors across the top-left to bottom-right diagonal.
	SymmetryDiagonal
	// SymmetryAntiDiagonal mirrors across the top-right to bottom-left diagonal.
	SymmetryAntiDiagonal
	// SymmetryRotational copies the top-left quadrant to the other three in
	// 90 degree steps.
	SymmetryRotational

	// SymmetryNone disables all operations.
	SymmetryNone Symmetry = 1 << 7
)

var symmetryNames = []struct {
	s    Symmetry
	name string
}{
	{SymmetryVertical, "vertical"},
	{SymmetryHorizontal, "horizontal"},
	{SymmetryDiagonal, "diagonal"},
	{SymmetryAntiDiagonal, "anti-diagonal"},
	{SymmetryRotational, "rotational"},
}

// Has reports whether every operation in op is set.
func (s Symmetry) Has(op Symmetry) bool {
	return s&op == op
}

// resolved maps the zero value to the default and strips SymmetryNone.
func (s Symmetry) resolved() Symmetry {
	switch {
	case s == 0:
		return SymmetryVertical
	case s.Has(SymmetryNone):
		return 0
	}
	return s
}

// String returns the operation names joined by "|".
func (s Symmetry) String() string {
	s = s.resolved()
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, n := range symmetryNames {
		if s.Has(n.s) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// MarshalText implements encoding.TextMarshaler.
func (s Symmetry) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a list of operation names separated by "|", "," or
// "+". "none" and "false" disable symmetry, "true" selects the default.
func (s *Symmetry) UnmarshalText(text []byte) error {
	v, err := ParseSymmetry(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSymmetry parses the textual form produced by Symmetry.String.
func ParseSymmetry(text string) (Symmetry, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "", "true", "default":
		return 0, nil
	case "none", "false":
		return SymmetryNone, nil
	}
	if n, err := strconv.ParseUint(text, 10, 8); err == nil {
		return Symmetry(n), nil
	}
	var s Symmetry
	for _, f := range strings.FieldsFunc(text, func(r rune) bool { return r == '|' || r == ',' || r == '+' }) {
		f = strings.TrimSpace(f)
		found := false
		for _, n := range symmetryNames {
			if n.name == f {
				s |= n.s
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("digidoodle: unknown symmetry %q", f)
		}
	}
	return s, nil
}
