package palette

import (
	"math"

	"github.com/gogpu/avatar/rng"
)

// Options configures color selection for a generator.
type Options struct {
	// Background and Foreground are the palettes for the two color slots.
	Background Palette `mapstructure:"background" json:"background,omitempty"`
	Foreground Palette `mapstructure:"foreground" json:"foreground,omitempty"`

	// Discrete disables blending between palette entries: colors are taken
	// verbatim from the palette.
	Discrete bool `mapstructure:"discrete" json:"discrete,omitempty"`

	// Interpolate, when set, overrides Discrete: false is the same as
	// Discrete, true forces blending. It is the configuration key
	// "interpolate" (default true).
	Interpolate *bool `mapstructure:"interpolate" json:"interpolate,omitempty"`

	// Random jitter applied to every resolved color. Hue is in degrees,
	// saturation and lightness in percent. Zero keeps palette colors exact.
	HueVariation        float64 `mapstructure:"hue_variation" json:"hue_variation,omitempty"`
	SaturationVariation float64 `mapstructure:"saturation_variation" json:"saturation_variation,omitempty"`
	LightnessVariation  float64 `mapstructure:"lightness_variation" json:"lightness_variation,omitempty"`
}

// Source selects the palette a multi-color pick reads from.
type Source uint8

// Palette sources.
const (
	SourceForeground Source = iota
	SourceBackground
)

var defaultBackground = Single(Hex("#ffffff"))

// interpolates reports whether palette entries are blended.
func (o Options) interpolates() bool {
	if o.Interpolate != nil {
		return *o.Interpolate
	}
	return !o.Discrete
}

// Vary jitters c in HSL space by the variations configured in opts.
// It draws from r once per non-zero variation and returns c unchanged when
// all variations are zero or negative.
func Vary(c Color, r *rng.Rand, opts Options) Color {
	hv := math.Max(opts.HueVariation, 0)
	sv := math.Max(opts.SaturationVariation, 0)
	lv := math.Max(opts.LightnessVariation, 0)
	if hv == 0 && sv == 0 && lv == 0 {
		return c
	}

	hsl := RGBToHSL(c)
	if hv > 0 {
		hsl.H = math.Mod(hsl.H+r.Range(-hv, hv)+360, 360)
	}
	if sv > 0 {
		hsl.S = clampPercent(hsl.S + r.Range(-sv, sv))
	}
	if lv > 0 {
		hsl.L = clampPercent(hsl.L + r.Range(-lv, lv))
	}
	return hsl.RGB()
}

// Background resolves one background color. An unconfigured background is white.
func Background(opts Options, r *rng.Rand) Color {
	p := opts.Background
	if p.IsZero() {
		p = defaultBackground
	}
	return Vary(pickOne(p, r, opts.interpolates()), r, opts)
}

// Foreground resolves one foreground color. Without a foreground palette a
// saturated random color is generated.
func Foreground(opts Options, r *rng.Rand) Color {
	var c Color
	if opts.Foreground.IsZero() {
		c = randomColor(r)
	} else {
		c = pickOne(opts.Foreground, r, opts.interpolates())
	}
	return Vary(c, r, opts)
}

// Pick resolves count colors from the palette selected by source.
//
// A single literal yields hue-shifted variants, a list yields adjacent
// entries (blended by one shared factor unless Discrete), and sets yield one
// set or an element-wise blend of two adjacent sets. Without a palette the
// colors are spread evenly around a randomly rotated color wheel.
func Pick(opts Options, r *rng.Rand, count int, source Source) []Color {
	if count == 1 {
		if source == SourceBackground {
			return []Color{Background(opts, r)}
		}
		return []Color{Foreground(opts, r)}
	}

	p := opts.Foreground
	if source == SourceBackground {
		p = opts.Background
	}
	interpolate := opts.interpolates()

	switch p.Kind() {
	case KindSingle:
		return variations(p.single().Color(), r, count, opts)
	case KindList:
		return pickFromList(p.list(), r, count, interpolate, opts)
	case KindSets:
		return pickFromSets(p.sets, r, count, interpolate, opts)
	default:
		return contrasting(r, count, opts)
	}
}

func pickOne(p Palette, r *rng.Rand, interpolate bool) Color {
	switch p.Kind() {
	case KindSingle:
		return p.single().Color()
	case KindList:
		return pickOneFromList(p.list(), r, interpolate)
	case KindSets:
		if len(p.sets) == 0 {
			return Gray
		}
		return pickOneFromList(rng.Pick(r, p.sets), r, interpolate)
	default:
		return Gray
	}
}

func pickOneFromList(values []Value, r *rng.Rand, interpolate bool) Color {
	if len(values) == 0 {
		return Gray
	}
	if len(values) == 1 || !interpolate {
		return rng.Pick(r, values).Color()
	}

	i := r.Int(0, len(values)-1)
	a := values[i].Color()
	b := values[(i+1)%len(values)].Color()
	return Interpolate(a, b, r.Float64())
}

func pickFromSets(sets [][]Value, r *rng.Rand, count int, interpolate bool, opts Options) []Color {
	switch {
	case len(sets) == 0:
		return contrasting(r, count, opts)
	case len(sets) == 1:
		return pickFromList(sets[0], r, count, interpolate, opts)
	case !interpolate:
		return pickFromList(rng.Pick(r, sets), r, count, false, opts)
	}

	i := r.Int(0, len(sets)-1)
	a := sets[i]
	b := sets[(i+1)%len(sets)]
	t := r.Float64()

	colors := make([]Color, 0, count)
	for k := 0; k < count; k++ {
		c := Interpolate(valueAt(a, k), valueAt(b, k), t)
		colors = append(colors, Vary(c, r, opts))
	}
	return colors
}

// valueAt returns set[k mod len(set)], or Gray for an empty set.
func valueAt(set []Value, k int) Color {
	if len(set) == 0 {
		return Gray
	}
	return set[k%len(set)].Color()
}

func pickFromList(values []Value, r *rng.Rand, count int, interpolate bool, opts Options) []Color {
	switch len(values) {
	case 0:
		return contrasting(r, count, opts)
	case 1:
		return variations(values[0].Color(), r, count, opts)
	}

	n := len(values)
	offset := r.Int(0, n-1)
	// t is drawn even for discrete picks so both modes consume the stream alike.
	t := r.Float64()

	colors := make([]Color, 0, count)
	for k := 0; k < count; k++ {
		i := (k + offset) % n
		c := values[i].Color()
		if interpolate {
			c = Interpolate(c, values[(i+1)%n].Color(), t)
		}
		colors = append(colors, Vary(c, r, opts))
	}
	return colors
}

func contrasting(r *rng.Rand, count int, opts Options) []Color {
	colors := make([]Color, 0, max(count, 0))
	baseHue := r.Range(0, 360)
	step := 360 / float64(count)
	for k := 0; k < count; k++ {
		hue := math.Mod(baseHue+float64(k)*step, 360)
		c := HSLToRGB(hue, r.Range(60, 90), r.Range(40, 70))
		colors = append(colors, Vary(c, r, opts))
	}
	return colors
}

func variations(base Color, r *rng.Rand, count int, opts Options) []Color {
	hsl := RGBToHSL(base)
	colors := make([]Color, 0, max(count, 0))
	for k := 0; k < count; k++ {
		shift := float64(k-count/2) * 30
		hue := math.Mod(hsl.H+shift+360, 360)
		colors = append(colors, Vary(HSLToRGB(hue, hsl.S, hsl.L), r, opts))
	}
	return colors
}

func randomColor(r *rng.Rand) Color {
	h := r.Range(0, 360)
	s := r.Range(60, 90)
	l := r.Range(40, 70)
	return HSLToRGB(h, s, l)
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
