// Package smile renders smiley face avatars.
//
// A face disc is drawn over a solid background and clipped to a circle.
// Eyes and mouth are inked black, or in the background color when the face
// is dark. Each face is nudged and tilted a little so no two sit the same.
package smile

import (
	"fmt"
	"math"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
	"github.com/gogpu/avatar/theme"
)

// Options configures a smile avatar. The theme has no parameters beyond
// the shared ones.
type Options struct {
	theme.Base `mapstructure:",squash"`
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{}
}

// Face holds the random features of one smiley.
type Face struct {
	MouthWidth float64 // fraction of the face size, [0.3, 0.4)
	EyeOffset  float64 // horizontal eye position, [0.2, 0.25)
	Grin       bool    // open rounded mouth instead of a curved line

	// Placement in pixels and radians.
	OffsetX, OffsetY float64
	Rotation         float64
}

// NewFace draws the features of a face for an avatar of the given size.
func NewFace(r *rng.Rand, size float64) Face {
	var f Face
	f.MouthWidth = r.Range(0.3, 0.4)
	f.EyeOffset = r.Range(0.2, 0.25)
	f.Grin = r.Bool(0.5)
	f.OffsetX = r.Range(-size*0.1, size*0.1)
	f.OffsetY = r.Range(-size*0.02, size*0.02)
	f.Rotation = r.Range(-math.Pi/12, math.Pi/12)
	return f
}

// Ink returns the eye and mouth color for a face colored face on bg.
func Ink(face, bg palette.Color) palette.Color {
	if face.IsDark() {
		return bg
	}
	return palette.Black
}

// Render paints a smile avatar onto s.
func Render(s raster.Surface, r *rng.Rand, o Options) error {
	colors := palette.Pick(o.Colors, r, 2, palette.SourceForeground)
	bg := palette.Background(o.Colors, r)
	ink := Ink(colors[1], bg)

	size := float64(s.Size())
	s.SetColor(bg)
	if err := s.FillRect(0, 0, size, size); err != nil {
		return fmt.Errorf("smile: background: %w", err)
	}

	radius := math.Ceil(size / 2)
	s.SetColor(colors[0])
	s.DrawCircle(size/2, size/2, radius)
	if err := s.Fill(); err != nil {
		return fmt.Errorf("smile: ring: %w", err)
	}

	s.Save()
	defer s.Restore()
	s.DrawCircle(size/2, size/2, radius)
	s.Clip()

	if err := drawFace(s, NewFace(r, size), size, colors[1], ink); err != nil {
		return fmt.Errorf("smile: %w", err)
	}
	return nil
}

func drawFace(s raster.Surface, f Face, size float64, fill, ink palette.Color) error {
	s.Save()
	defer s.Restore()
	s.Translate(size/2, size/2)
	s.Translate(f.OffsetX, f.OffsetY)
	s.Rotate(f.Rotation)

	s.SetColor(fill)
	s.DrawCircle(0, f.OffsetY, size/2)
	if err := s.Fill(); err != nil {
		return fmt.Errorf("face: %w", err)
	}

	s.SetColor(ink)
	s.SetLineWidth(size * 0.04)
	s.SetRoundCaps(true)

	faceSize := size * 0.7
	for _, side := range []float64{-1, 1} {
		s.DrawEllipse(side*faceSize*f.EyeOffset, -faceSize*0.125, size*0.025, size*0.055)
		if err := s.Fill(); err != nil {
			return fmt.Errorf("eye: %w", err)
		}
	}

	if err := drawMouth(s, faceSize, f.MouthWidth*0.5, f.Grin); err != nil {
		return fmt.Errorf("mouth: %w", err)
	}
	return nil
}

// drawMouth draws the mouth centered below the origin. width is the half
// width as a fraction of faceSize.
func drawMouth(s raster.Surface, faceSize, width float64, grin bool) error {
	y := faceSize * 0.15
	left := -faceSize * width
	right := faceSize * width
	cx := faceSize * width * 0.5

	if grin {
		depth := faceSize * 0.25
		corner := faceSize * 0.04
		s.MoveTo(left+corner, y)
		s.LineTo(right-corner, y)
		s.QuadraticTo(right, y, right, y+corner)
		s.LineTo(right, y+corner)
		s.CubicTo(cx, y+depth, -cx, y+depth, left, y+corner)
		s.LineTo(left, y+corner)
		s.QuadraticTo(left, y, left+corner, y)
		return s.Fill()
	}

	depth := faceSize * 0.18
	s.MoveTo(left, y)
	s.CubicTo(-cx, y+depth*0.7, cx, y+depth*0.7, right, y)
	return s.Stroke()
}

// Generate renders a smile avatar for o.ID.
func Generate(o Options) (*raster.Canvas, error) {
	c, r, err := o.Prepare()
	if err != nil {
		return nil, fmt.Errorf("smile: %w", err)
	}
	if err := Render(c, r, o); err != nil {
		return nil, err
	}
	return c, nil
}
