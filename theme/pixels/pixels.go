// Package pixels renders pixel-noise avatars: a square grid of blocks, each
// with its own freshly drawn foreground color.
package pixels

import (
	"fmt"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
	"github.com/gogpu/avatar/theme"
)

// Options configures a pixels avatar.
type Options struct {
	theme.Base `mapstructure:",squash"`

	// GridSize is the number of blocks per side.
	GridSize int `mapstructure:"grid_size" json:"grid_size,omitempty"`
}

// DefaultOptions returns the defaults: a 9x9 grid.
func DefaultOptions() Options {
	return Options{GridSize: 9}
}

func (o Options) resolve() Options {
	if o.GridSize <= 0 {
		o.GridSize = DefaultOptions().GridSize
	}
	return o
}

// Bounds returns the pixel span [lo, hi) of block i when size pixels are
// split into n blocks. Boundaries are truncated to whole pixels and adjacent
// spans share them, so blocks tile the avatar without gaps or overlaps.
func Bounds(i, n, size int) (lo, hi int) {
	return i * size / n, (i + 1) * size / n
}

// Render paints a pixels avatar onto s.
func Render(s raster.Surface, r *rng.Rand, o Options) error {
	o = o.resolve()
	size := s.Size()

	s.SetColor(palette.Background(o.Colors, r))
	if err := s.FillRect(0, 0, float64(size), float64(size)); err != nil {
		return fmt.Errorf("pixels: background: %w", err)
	}

	for y := 0; y < o.GridSize; y++ {
		y0, y1 := Bounds(y, o.GridSize, size)
		for x := 0; x < o.GridSize; x++ {
			x0, x1 := Bounds(x, o.GridSize, size)
			s.SetColor(palette.Foreground(o.Colors, r))
			if x1 == x0 || y1 == y0 {
				continue
			}
			if err := s.FillRect(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0)); err != nil {
				return fmt.Errorf("pixels: cell %d,%d: %w", x, y, err)
			}
		}
	}
	return nil
}

// Generate renders a pixels avatar for o.ID.
func Generate(o Options) (*raster.Canvas, error) {
	c, r, err := o.Prepare()
	if err != nil {
		return nil, fmt.Errorf("pixels: %w", err)
	}
	if err := Render(c, r, o); err != nil {
		return nil, err
	}
	return c, nil
}
