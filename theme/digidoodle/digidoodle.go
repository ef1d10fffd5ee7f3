// Package digidoodle renders symmetric pixel-art avatars.
//
// One or more square grids are filled at random, mirrored according to the
// configured Symmetry and painted as colored blocks over a solid background.
// Every grid ("layer") gets its own foreground color; later layers cover
// earlier ones.
package digidoodle

import (
	"fmt"
	"math"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
	"github.com/gogpu/avatar/theme"
)

// Options configures a digidoodle avatar. Zero fields take the defaults
// from DefaultOptions.
type Options struct {
	theme.Base `mapstructure:",squash"`

	// GridSize is the number of cells per side.
	GridSize int `mapstructure:"grid_size" json:"grid_size,omitempty"`

	// Density is the fill probability of each cell, in (0, 1]. Zero or
	// less means the default 0.5; values above 1 are clamped to 1.
	Density float64 `mapstructure:"density" json:"density,omitempty"`

	// Layers is the number of independently drawn and colored grids.
	Layers int `mapstructure:"layers" json:"layers,omitempty"`

	// Border is the width in cells of the ring kept empty around each grid.
	Border int `mapstructure:"border" json:"border,omitempty"`

	// Margin is the fraction of the size left empty on every side.
	Margin float64 `mapstructure:"margin" json:"margin,omitempty"`

	// Spacing is the fraction of each cell left empty between blocks.
	Spacing float64 `mapstructure:"spacing" json:"spacing,omitempty"`

	// Symmetry selects the mirror operations.
	Symmetry Symmetry `mapstructure:"symmetry" json:"symmetry,omitempty"`
}

// DefaultOptions returns the defaults: an 8x8 grid at density 0.5, one
// layer and vertical symmetry.
func DefaultOptions() Options {
	return Options{
		GridSize: 8,
		Density:  0.5,
		Layers:   1,
		Symmetry: SymmetryVertical,
	}
}

// resolve merges o over the defaults and clamps out-of-range values.
func (o Options) resolve() Options {
	def := DefaultOptions()
	if o.GridSize <= 0 {
		o.GridSize = def.GridSize
	}
	if o.Density <= 0 {
		o.Density = def.Density
	}
	o.Density = math.Min(o.Density, 1)
	if o.Layers <= 0 {
		o.Layers = def.Layers
	}
	o.Border = max(0, min(o.Border, o.GridSize/2))
	o.Margin = clamp(o.Margin, 0, 0.49)
	o.Spacing = clamp(o.Spacing, 0, 0.99)
	return o
}

// Layers draws the colors and grids of an avatar without painting them.
// The background color is drawn first, then one color per layer, then the
// grids in layer order.
func Layers(r *rng.Rand, o Options) (bg palette.Color, colors []palette.Color, grids []Grid) {
	o = o.resolve()
	bg = palette.Background(o.Colors, r)
	colors = palette.Pick(o.Colors, r, o.Layers, palette.SourceForeground)
	grids = make([]Grid, o.Layers)
	for i := range grids {
		g := NewGrid(r, o.GridSize, o.Density)
		g.Apply(o.Symmetry)
		g.ClearBorder(o.Border)
		grids[i] = g
	}
	return bg, colors, grids
}

// Render paints a digidoodle avatar onto s.
func Render(s raster.Surface, r *rng.Rand, o Options) error {
	o = o.resolve()
	bg, colors, grids := Layers(r, o)

	size := float64(s.Size())
	s.SetColor(bg)
	if err := s.FillRect(0, 0, size, size); err != nil {
		return fmt.Errorf("digidoodle: background: %w", err)
	}

	cell := size * (1 - 2*o.Margin) / float64(o.GridSize)
	block := cell * (1 - o.Spacing)
	offset := size*o.Margin + (cell-block)/2

	for i, g := range grids {
		s.SetColor(colors[i])
		for y, row := range g {
			for x, filled := range row {
				if !filled {
					continue
				}
				px := offset + float64(x)*cell
				py := offset + float64(y)*cell
				if err := s.FillRect(px, py, block, block); err != nil {
					return fmt.Errorf("digidoodle: layer %d: %w", i, err)
				}
			}
		}
	}
	return nil
}

// Generate renders a digidoodle avatar for o.ID.
func Generate(o Options) (*raster.Canvas, error) {
	c, r, err := o.Prepare()
	if err != nil {
		return nil, fmt.Errorf("digidoodle: %w", err)
	}
	if err := Render(c, r, o); err != nil {
		return nil, err
	}
	return c, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
