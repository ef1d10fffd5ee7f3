// Package plasma renders classic plasma avatars.
//
// Three sinusoidal fields (an angled wave, a wave whose axis turns with the
// time offset, and a radial wave around an orbiting center) are weighted,
// summed and mapped through a looping palette built from three colors.
package plasma

import (
	"fmt"
	"math"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
	"github.com/gogpu/avatar/theme"
)

// MaxPaletteSize bounds PaletteSize.
const MaxPaletteSize = 4096

// Options configures a plasma avatar. Every Param left random is drawn at
// render time from the range noted on the field.
type Options struct {
	theme.Base `mapstructure:",squash"`

	// TimeOffset shifts all phases; random in [0, 2π).
	TimeOffset theme.Param `mapstructure:"time_offset" json:"time_offset"`

	// Scale1 and Scale2 are the angled and rotating wave frequencies;
	// random in [2, 4).
	Scale1 theme.Param `mapstructure:"scale1" json:"scale1"`
	Scale2 theme.Param `mapstructure:"scale2" json:"scale2"`

	// Scale3 is the radial wave frequency; random in [15, 30).
	Scale3 theme.Param `mapstructure:"scale3" json:"scale3"`

	// Weights of the three fields; random in [0.5, 1.5).
	Weight1 theme.Param `mapstructure:"weight1" json:"weight1"`
	Weight2 theme.Param `mapstructure:"weight2" json:"weight2"`
	Weight3 theme.Param `mapstructure:"weight3" json:"weight3"`

	// PaletteSize is the number of entries in the looping palette. Zero or
	// less means the default; larger values are clamped to MaxPaletteSize.
	PaletteSize int `mapstructure:"palette_size" json:"palette_size,omitempty"`

	// Zoom scales the normalized pixel coordinates.
	Zoom float64 `mapstructure:"zoom" json:"zoom,omitempty"`
}

// DefaultOptions returns the defaults: all wave parameters random, a
// 256-entry palette and no zoom.
func DefaultOptions() Options {
	return Options{
		PaletteSize: 256,
		Zoom:        1,
	}
}

func (o Options) resolve() Options {
	def := DefaultOptions()
	if o.PaletteSize <= 0 {
		o.PaletteSize = def.PaletteSize
	}
	o.PaletteSize = min(o.PaletteSize, MaxPaletteSize)
	if o.Zoom <= 0 {
		o.Zoom = def.Zoom
	}
	return o
}

// Field holds the resolved wave parameters.
type Field struct {
	Time                      float64
	Scale1, Scale2, Scale3    float64
	Angle                     float64
	Weight1, Weight2, Weight3 float64
}

// NewField resolves the wave parameters in their fixed draw order. The
// angle of the first wave is always drawn.
func NewField(r *rng.Rand, o Options) Field {
	var f Field
	f.Time = o.TimeOffset.Resolve(r, 0, 2*math.Pi)
	f.Scale1 = o.Scale1.Resolve(r, 2, 4)
	f.Scale2 = o.Scale2.Resolve(r, 2, 4)
	f.Scale3 = o.Scale3.Resolve(r, 15, 30)
	f.Angle = r.Range(0, 2*math.Pi)
	f.Weight1 = o.Weight1.Resolve(r, 0.5, 1.5)
	f.Weight2 = o.Weight2.Resolve(r, 0.5, 1.5)
	f.Weight3 = o.Weight3.Resolve(r, 0.5, 1.5)
	return f
}

// At evaluates the weighted plasma sum at (x, y). The result lies in
// [-(w1+w2+w3), w1+w2+w3].
func (f Field) At(x, y float64) float64 {
	v1 := math.Sin(math.Pi*f.Scale1*(math.Cos(f.Angle)*x+math.Sin(f.Angle)*y) + f.Time)

	a := f.Time / 2
	v2 := math.Sin(f.Scale2*(math.Pi*math.Sin(a)*x+y*math.Cos(a)) + f.Time)

	cx := x + 0.5*math.Sin(f.Time/5)
	cy := y + 0.5*math.Cos(f.Time/3)
	d := math.Sqrt(cx*cx + cy*cy)
	v3 := math.Sin(math.Sqrt(f.Scale3*d*d+1) + f.Time)

	return f.Weight1*v1 + f.Weight2*v2 + f.Weight3*v3
}

// Palette builds a looping gradient of n entries through base.
func Palette(base []palette.Color, n int) []palette.Color {
	out := make([]palette.Color, n)
	k := float64(len(base))
	for i := range out {
		t := float64(i) / float64(n) * k
		i1 := int(math.Floor(t)) % len(base)
		i2 := (i1 + 1) % len(base)
		out[i] = palette.Interpolate(base[i1], base[i2], t-math.Floor(t))
	}
	return out
}

// Index maps a plasma value to a palette index, treating [-3, 3] as the
// nominal range. Values above it wrap around the palette, values below it
// clamp to the first entry.
func Index(v float64, n int) int {
	i := int(math.Floor((v+3)/6*float64(n-1))) % n
	return max(0, min(n-1, i))
}

// Render paints a plasma avatar onto s.
func Render(s raster.Surface, r *rng.Rand, o Options) error {
	o = o.resolve()
	field := NewField(r, o)
	colors := Palette(palette.Pick(o.Colors, r, 3, palette.SourceForeground), o.PaletteSize)

	size := s.Size()
	pix := make([]uint8, size*size*4)
	for py := 0; py < size; py++ {
		y := (float64(py)/float64(size) - 0.5) * o.Zoom
		for px := 0; px < size; px++ {
			x := (float64(px)/float64(size) - 0.5) * o.Zoom
			c := colors[Index(field.At(x, y), o.PaletteSize)]
			i := (py*size + px) * 4
			pix[i], pix[i+1], pix[i+2] = c.Bytes()
			pix[i+3] = 0xff
		}
	}
	if err := s.SetPixels(pix); err != nil {
		return fmt.Errorf("plasma: %w", err)
	}
	return nil
}

// Generate renders a plasma avatar for o.ID.
func Generate(o Options) (*raster.Canvas, error) {
	c, r, err := o.Prepare()
	if err != nil {
		return nil, fmt.Errorf("plasma: %w", err)
	}
	if err := Render(c, r, o); err != nil {
		return nil, err
	}
	return c, nil
}
