// Package interference renders wave interference avatars.
//
// A few point sources are scattered around the avatar. Every pixel sums one
// sine wave per source, squares the sum and uses the normalized intensity to
// blend between two palette colors.
package interference

import (
	"fmt"
	"math"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
	"github.com/gogpu/avatar/theme"
)

// MaxSources bounds a fixed Sources parameter.
const MaxSources = 64

// Options configures an interference avatar. Zero numeric fields take the
// defaults from DefaultOptions.
type Options struct {
	theme.Base `mapstructure:",squash"`

	// Sources is the number of wave sources; random in [2, 5) by default.
	// Fixed values are clamped to [1, MaxSources].
	Sources theme.Param `mapstructure:"sources" json:"sources"`

	// Wavelength of every wave, in normalized units. Zero or less means
	// the default.
	Wavelength float64 `mapstructure:"wavelength" json:"wavelength,omitempty"`

	// SourceArea bounds source positions to [-SourceArea, SourceArea] on
	// both axes. Zero or less means the default.
	SourceArea float64 `mapstructure:"source_area" json:"source_area,omitempty"`

	// SourceDistance lifts the sources out of the image plane. Zero or less
	// means the default.
	SourceDistance float64 `mapstructure:"source_distance" json:"source_distance,omitempty"`
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{
		Sources:        theme.Random(),
		Wavelength:     1,
		SourceArea:     10,
		SourceDistance: 1,
	}
}

func (o Options) resolve() Options {
	def := DefaultOptions()
	if o.Wavelength <= 0 {
		o.Wavelength = def.Wavelength
	}
	if o.SourceArea <= 0 {
		o.SourceArea = def.SourceArea
	}
	if o.SourceDistance <= 0 {
		o.SourceDistance = def.SourceDistance
	}
	return o
}

// Point is a wave source position in normalized coordinates.
type Point struct {
	X, Y float64
}

// Field is a resolved interference pattern.
type Field struct {
	Sources        []Point
	Wavelength     float64
	SourceDistance float64
}

// NewField draws the sources in order: x then y for each.
func NewField(r *rng.Rand, n int, area, wavelength, distance float64) Field {
	f := Field{
		Sources:        make([]Point, n),
		Wavelength:     wavelength,
		SourceDistance: distance,
	}
	for i := range f.Sources {
		x := r.Range(-area, area)
		y := r.Range(-area, area)
		f.Sources[i] = Point{x, y}
	}
	return f
}

// Intensity returns the squared wave sum at (x, y).
func (f Field) Intensity(x, y float64) float64 {
	d2 := f.SourceDistance * f.SourceDistance
	sum := 0.0
	for _, s := range f.Sources {
		dx := x - s.X
		dy := y - s.Y
		dist := math.Sqrt(dx*dx + dy*dy + d2)
		sum += math.Sin(dist / f.Wavelength * math.Pi * 2)
	}
	return sum * sum
}

// Value returns the intensity at (x, y) normalized to [0, 1].
func (f Field) Value(x, y float64) float64 {
	n := float64(len(f.Sources))
	if n == 0 {
		return 0
	}
	return math.Min(1, f.Intensity(x, y)/(n*n))
}

// Render paints an interference avatar onto s.
func Render(s raster.Surface, r *rng.Rand, o Options) error {
	o = o.resolve()
	n := max(1, min(o.Sources.ResolveInt(r, 2, 5), MaxSources))
	colors := palette.Pick(o.Colors, r, 2, palette.SourceForeground)
	field := NewField(r, n, o.SourceArea, o.Wavelength, o.SourceDistance)

	size := s.Size()
	pix := make([]uint8, size*size*4)
	for py := 0; py < size; py++ {
		y := float64(py)/float64(size)*2 - 1
		for px := 0; px < size; px++ {
			x := float64(px)/float64(size)*2 - 1
			c := palette.Interpolate(colors[0], colors[1], field.Value(x, y))
			i := (py*size + px) * 4
			pix[i], pix[i+1], pix[i+2] = c.Bytes()
			pix[i+3] = 0xff
		}
	}
	if err := s.SetPixels(pix); err != nil {
		return fmt.Errorf("interference: %w", err)
	}
	return nil
}

// Generate renders an interference avatar for o.ID.
func Generate(o Options) (*raster.Canvas, error) {
	c, r, err := o.Prepare()
	if err != nil {
		return nil, fmt.Errorf("interference: %w", err)
	}
	if err := Render(c, r, o); err != nil {
		return nil, err
	}
	return c, nil
}
