package theme

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/gogpu/avatar/rng"
)

// Param is a numeric theme parameter that is either fixed by the caller or
// drawn from the random source when the avatar is rendered.
//
// The zero value is Random. In configuration data the value -1 also means
// Random.
type Param struct {
	value float64
	fixed bool
}

// Fixed returns a parameter pinned to v.
func Fixed(v float64) Param {
	return Param{value: v, fixed: true}
}

// Random returns a parameter drawn at render time.
func Random() Param {
	return Param{}
}

// IsFixed reports whether the parameter was pinned.
func (p Param) IsFixed() bool { return p.fixed }

// Value returns the pinned value and whether there is one.
func (p Param) Value() (float64, bool) { return p.value, p.fixed }

// Resolve returns the pinned value, or draws r.Range(min, max).
// A pinned parameter consumes nothing from r.
func (p Param) Resolve(r *rng.Rand, min, max float64) float64 {
	if p.fixed {
		return p.value
	}
	return r.Range(min, max)
}

// ResolveInt is Resolve for integer parameters; it draws r.Int(min, max).
func (p Param) ResolveInt(r *rng.Rand, min, max int) int {
	if p.fixed {
		return int(p.value)
	}
	return r.Int(min, max)
}

// String implements fmt.Stringer.
func (p Param) String() string {
	if !p.fixed {
		return "random"
	}
	return fmt.Sprintf("%g", p.value)
}

// MarshalJSON encodes a random parameter as null.
func (p Param) MarshalJSON() ([]byte, error) {
	if !p.fixed {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON accepts a number, null, or the string "random". The number
// -1 decodes as Random.
func (p *Param) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	np, err := paramFromAny(v)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// randomSentinel is the configuration value that leaves a parameter random.
const randomSentinel = -1

var paramType = reflect.TypeOf(Param{})

// ParamDecodeHook returns a mapstructure hook that decodes numbers, numeric
// strings, nil and "random" into Param fields. The number -1 decodes as
// Random.
func ParamDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != paramType || from == paramType {
			return data, nil
		}
		return paramFromAny(data)
	}
}

func paramFromAny(v any) (Param, error) {
	switch x := v.(type) {
	case nil:
		return Random(), nil
	case Param:
		return x, nil
	case string:
		if x == "" || x == "random" {
			return Random(), nil
		}
		var f float64
		if _, err := fmt.Sscan(x, &f); err != nil {
			return Param{}, fmt.Errorf("theme: invalid parameter %q", x)
		}
		return fromConfig(f), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return fromConfig(rv.Float()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromConfig(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromConfig(float64(rv.Uint())), nil
	}
	return Param{}, fmt.Errorf("theme: cannot use %T as parameter", v)
}

func fromConfig(f float64) Param {
	if f == randomSentinel {
		return Random()
	}
	return Fixed(f)
}
