// Package raster is the drawing surface avatars are painted on.
//
// Renderers only talk to the Surface interface. Canvas is the
// implementation used by the generators; it wraps a gg.Context and renders
// in software, so the output does not depend on a GPU being present.
//
// Example:
//
//	c, err := raster.New(64)
//	if err != nil {
//		return err
//	}
//	c.SetColor(palette.White)
//	_ = c.FillRect(0, 0, 64, 64)
//	_ = c.EncodePNG(w)
package raster

import (
	"errors"
	"image/color"
)

// ErrInvalidSize is returned when a surface is requested with a
// non-positive side length.
var ErrInvalidSize = errors.New("raster: size must be positive")

// Surface is a square, pixel-addressable drawing target.
//
// Path methods add to the current path in the current transform. Fill and
// Stroke consume the current path. Clip consumes it as well and limits every
// later operation until the matching Restore.
//
// Surfaces are NOT safe for concurrent use.
type Surface interface {
	// Size returns the side length in pixels.
	Size() int

	// SetColor sets the paint used by Fill, Stroke and FillRect.
	SetColor(c color.Color)

	// SetLineWidth sets the stroke width in user units.
	SetLineWidth(w float64)

	// SetRoundCaps switches stroke caps and joins between round and
	// butt/miter.
	SetRoundCaps(round bool)

	// FillRect fills an axis-aligned rectangle in user space.
	FillRect(x, y, w, h float64) error

	// DrawCircle adds a circle to the current path.
	DrawCircle(x, y, r float64)

	// DrawEllipse adds an axis-aligned ellipse to the current path.
	DrawEllipse(x, y, rx, ry float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	// Fill fills and clears the current path.
	Fill() error

	// Stroke strokes and clears the current path.
	Stroke() error

	// Clip intersects the clip region with the current path and clears it.
	Clip()

	// Save pushes the transform and clip state.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)

	// Pixels returns the surface's RGBA buffer, 4 bytes per pixel in row
	// order. Writes to the slice are visible on the surface.
	Pixels() []uint8

	// SetPixels replaces the whole buffer. len(p) must be Size()*Size()*4.
	SetPixels(p []uint8) error
}
