// Package theme holds what every avatar theme shares: the generator options
// that carry the identifier, size, colors and optional reusable canvas, the
// Param type for numeric parameters that may be left to the random source,
// and the input errors.
//
// The theme implementations live in the sub-packages (digidoodle,
// interference, plasma, pixels, smile). Each of them exposes
//
//	func DefaultOptions() Options
//	func Render(s raster.Surface, r *rng.Rand, o Options) error
//	func Generate(o Options) (*raster.Canvas, error)
package theme

import (
	"errors"
	"fmt"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
)

var (
	// ErrEmptyID is returned when the identifier is empty.
	ErrEmptyID = errors.New("theme: id must not be empty")

	// ErrInvalidSize is returned when the size is not positive.
	ErrInvalidSize = errors.New("theme: size must be positive")
)

// Base contains the options shared by all themes.
type Base struct {
	// ID seeds the random source. Required.
	ID string `mapstructure:"id" json:"id"`

	// Size is the side length of the square avatar in pixels. Required.
	Size int `mapstructure:"size" json:"size"`

	// Colors configures palette resolution.
	Colors palette.Options `mapstructure:",squash" json:"colors"`

	// Canvas, when set, is cleared, resized and drawn on instead of
	// allocating a new one. It must not be shared by concurrent calls.
	Canvas *raster.Canvas `mapstructure:"-" json:"-"`
}

// Validate reports caller contract violations.
func (b Base) Validate() error {
	if b.ID == "" {
		return ErrEmptyID
	}
	if b.Size <= 0 {
		return fmt.Errorf("size %d: %w", b.Size, ErrInvalidSize)
	}
	return nil
}

// Prepare validates b and returns the canvas and the random source for one
// generation call.
func (b Base) Prepare() (*raster.Canvas, *rng.Rand, error) {
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	c, err := raster.Reuse(b.Canvas, b.Size)
	if err != nil {
		return nil, nil, err
	}
	return c, rng.New(b.ID), nil
}

// Shared returns b itself. Theme options embed Base, so generic code
// reaches the shared fields through the promoted method.
func (b *Base) Shared() *Base {
	return b
}
