package palette

import (
	"encoding/json"
	"image/color"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Value is a single color literal: either a hex string or an RGB triple.
// The zero Value parses to Gray.
type Value struct {
	hex   string
	rgb   [3]float64
	isRGB bool
}

// Hex returns a Value for a hex literal such as "#f80" or "#ff8800".
func Hex(s string) Value {
	return Value{hex: s}
}

// RGB returns a Value for an explicit channel triple in [0, 255].
func RGB(r, g, b float64) Value {
	return Value{rgb: [3]float64{r, g, b}, isRGB: true}
}

// Of returns a Value for a standard library color.
func Of(c color.Color) Value {
	col := FromColor(c)
	return RGB(col.R, col.G, col.B)
}

// Color resolves the literal. Unparseable hex literals yield Gray.
func (v Value) Color() Color {
	if v.isRGB {
		return Color{R: v.rgb[0], G: v.rgb[1], B: v.rgb[2]}
	}
	return Parse(v.hex)
}

// Raw returns the literal in its configuration form: a string or a
// three-element slice.
func (v Value) Raw() any {
	if v.isRGB {
		return []float64{v.rgb[0], v.rgb[1], v.rgb[2]}
	}
	return v.hex
}

// Kind identifies the shape of a Palette.
type Kind uint8

// Palette shapes.
const (
	KindNone   Kind = iota // nothing configured
	KindSingle             // one literal color
	KindList               // a flat list of colors
	KindSets               // a list of coordinated color lists
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindList:
		return "list"
	case KindSets:
		return "sets"
	default:
		return "none"
	}
}

// Palette specifies the candidate colors for a color slot.
// The zero Palette means "not configured".
type Palette struct {
	kind Kind
	sets [][]Value
}

// Single returns a palette holding one literal color.
func Single(v Value) Palette {
	return Palette{kind: KindSingle, sets: [][]Value{{v}}}
}

// List returns a palette of alternative colors.
func List(values ...Value) Palette {
	return Palette{kind: KindList, sets: [][]Value{values}}
}

// Sets returns a palette of coordinated color sets. Generators pick one set,
// or blend two adjacent sets element by element.
func Sets(sets ...[]Value) Palette {
	return Palette{kind: KindSets, sets: sets}
}

// HexList is a shorthand for List of hex literals.
func HexList(hex ...string) Palette {
	values := make([]Value, len(hex))
	for i, h := range hex {
		values[i] = Hex(h)
	}
	return List(values...)
}

// Kind returns the palette shape.
func (p Palette) Kind() Kind {
	return p.kind
}

// IsZero reports whether no palette is configured.
func (p Palette) IsZero() bool {
	return p.kind == KindNone
}

func (p Palette) single() Value {
	return p.sets[0][0]
}

func (p Palette) list() []Value {
	return p.sets[0]
}

// Raw returns the palette in its configuration form, the inverse of FromAny.
func (p Palette) Raw() any {
	switch p.kind {
	case KindSingle:
		return p.single().Raw()
	case KindList:
		return rawList(p.list())
	case KindSets:
		out := make([]any, len(p.sets))
		for i, set := range p.sets {
			out[i] = rawList(set)
		}
		return out
	default:
		return nil
	}
}

func rawList(values []Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Raw()
	}
	return out
}

// FromAny builds a Palette from decoded configuration data.
//
// Accepted shapes: "#rgb", [r, g, b], a list of those, or a list of lists of
// those. Any other shape yields the zero Palette, which generators treat as
// "not configured".
func FromAny(data any) Palette {
	if data == nil {
		return Palette{}
	}
	if s, ok := data.(string); ok {
		return Single(Hex(s))
	}
	if p, ok := data.(Palette); ok {
		return p
	}

	items, ok := asSlice(data)
	if !ok {
		return Palette{}
	}
	if rgb, ok := asTriple(items); ok {
		return Single(RGB(rgb[0], rgb[1], rgb[2]))
	}
	if len(items) > 0 {
		if first, ok := asSlice(items[0]); ok {
			if _, triple := asTriple(first); !triple {
				sets := make([][]Value, 0, len(items))
				for _, item := range items {
					inner, _ := asSlice(item)
					sets = append(sets, valuesFromAny(inner))
				}
				return Sets(sets...)
			}
		}
	}
	return List(valuesFromAny(items)...)
}

func valuesFromAny(items []any) []Value {
	values := make([]Value, 0, len(items))
	for _, item := range items {
		values = append(values, valueFromAny(item))
	}
	return values
}

func valueFromAny(item any) Value {
	if s, ok := item.(string); ok {
		return Hex(s)
	}
	if inner, ok := asSlice(item); ok {
		if rgb, ok := asTriple(inner); ok {
			return RGB(rgb[0], rgb[1], rgb[2])
		}
	}
	return Value{}
}

func asSlice(data any) ([]any, bool) {
	if items, ok := data.([]any); ok {
		return items, true
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, v.Len())
	for i := range items {
		items[i] = v.Index(i).Interface()
	}
	return items, true
}

func asTriple(items []any) ([3]float64, bool) {
	var rgb [3]float64
	if len(items) != 3 {
		return rgb, false
	}
	for i, item := range items {
		f, ok := asFloat(item)
		if !ok {
			return rgb, false
		}
		rgb[i] = f
	}
	return rgb, true
}

func asFloat(item any) (float64, bool) {
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

var paletteType = reflect.TypeOf(Palette{})

// DecodeHook returns a mapstructure hook that decodes configuration data
// into Palette fields.
func DecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != paletteType || f == paletteType {
			return data, nil
		}
		return FromAny(data), nil
	}
}

// MarshalJSON encodes the palette in its configuration form.
func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Raw())
}

// UnmarshalJSON decodes any accepted palette shape. Unknown shapes decode to
// the zero Palette rather than failing.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = FromAny(raw)
	return nil
}
