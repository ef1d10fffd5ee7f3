package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Canvas is a Surface backed by a software gg.Context.
type Canvas struct {
	dc   *gg.Context
	size int

	// clips holds one frame per Clip call; saves records len(clips) at
	// every Save so Restore knows which frames to unwind.
	clips []clipFrame
	saves []int
}

// clipFrame remembers what the surface looked like when a clip was set.
// Unwinding the frame keeps the new pixels only where mask covers them.
type clipFrame struct {
	mask     *gg.Mask
	snapshot []uint8
}

// Compile-time interface check.
var _ Surface = (*Canvas)(nil)

// New creates a transparent size x size canvas.
func New(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new canvas %d: %w", size, ErrInvalidSize)
	}
	return &Canvas{
		dc:   gg.NewContext(size, size),
		size: size,
	}, nil
}

// Reuse prepares c for a new avatar of the given size. The backing buffer is
// reallocated only when the size changes; the canvas is cleared, its
// transform reset and any pending save/clip state dropped. A nil c behaves
// like New.
func Reuse(c *Canvas, size int) (*Canvas, error) {
	if c == nil {
		return New(size)
	}
	if size <= 0 {
		return nil, fmt.Errorf("reuse canvas %d: %w", size, ErrInvalidSize)
	}
	if err := c.dc.Resize(size, size); err != nil {
		return nil, fmt.Errorf("reuse canvas %d: %w", size, err)
	}
	for range c.saves {
		c.dc.Pop()
	}
	c.saves = c.saves[:0]
	c.clips = c.clips[:0]
	c.size = size
	c.dc.Identity()
	c.dc.ClearPath()
	c.dc.Clear()
	return c, nil
}

// Size returns the side length in pixels.
func (c *Canvas) Size() int { return c.size }

// SetColor sets the paint for subsequent fills and strokes.
func (c *Canvas) SetColor(col color.Color) { c.dc.SetColor(col) }

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) { c.dc.SetLineWidth(w) }

// SetRoundCaps selects round caps and joins, or butt caps with miter joins.
func (c *Canvas) SetRoundCaps(round bool) {
	if round {
		c.dc.SetLineCap(gg.LineCapRound)
		c.dc.SetLineJoin(gg.LineJoinRound)
		return
	}
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.SetLineJoin(gg.LineJoinMiter)
}

// FillRect fills a rectangle with the current color.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	c.dc.DrawRectangle(x, y, w, h)
	return c.Fill()
}

// DrawCircle adds a circle to the current path.
func (c *Canvas) DrawCircle(x, y, r float64) { c.dc.DrawCircle(x, y, r) }

// DrawEllipse adds an axis-aligned ellipse to the current path.
func (c *Canvas) DrawEllipse(x, y, rx, ry float64) { c.dc.DrawEllipse(x, y, rx, ry) }

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

// LineTo adds a line segment to (x, y).
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

// QuadraticTo adds a quadratic Bezier curve with control point (cx, cy).
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) { c.dc.QuadraticTo(cx, cy, x, y) }

// CubicTo adds a cubic Bezier curve with control points c1 and c2.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() { c.dc.ClosePath() }

// Translate moves the origin of the current transform.
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// Rotate rotates the current transform by angle radians.
func (c *Canvas) Rotate(angle float64) { c.dc.Rotate(angle) }

// Fill fills the current path with the current color.
func (c *Canvas) Fill() error {
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("raster: fill: %w", err)
	}
	return nil
}

// Stroke strokes the current path with the current color and line style.
func (c *Canvas) Stroke() error {
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("raster: stroke: %w", err)
	}
	return nil
}

// Clip rasterizes the current path into a coverage mask and clears the path.
// Drawing continues on the full surface; the mask is applied when the
// enclosing Save is restored. A Clip outside any Save is applied by the
// next Reuse only, so callers always pair it with Save/Restore.
func (c *Canvas) Clip() {
	mask := c.dc.AsMask()
	c.dc.ClearPath()
	snap := make([]uint8, len(c.Pixels()))
	copy(snap, c.Pixels())
	c.clips = append(c.clips, clipFrame{mask: mask, snapshot: snap})
}

// Save pushes the transform and clip state.
func (c *Canvas) Save() {
	c.dc.Push()
	c.saves = append(c.saves, len(c.clips))
}

// Restore pops the last Save, compositing away everything drawn outside the
// clips set since then. Restore without a matching Save is a no-op.
func (c *Canvas) Restore() {
	if len(c.saves) == 0 {
		return
	}
	depth := c.saves[len(c.saves)-1]
	c.saves = c.saves[:len(c.saves)-1]
	for len(c.clips) > depth {
		f := c.clips[len(c.clips)-1]
		c.clips = c.clips[:len(c.clips)-1]
		composite(c.Pixels(), f.snapshot, f.mask.Data())
	}
	c.dc.Pop()
}

// composite blends cur toward snap where mask is not fully opaque:
// cur = snap + (cur-snap)*mask/255.
func composite(cur, snap, mask []uint8) {
	for i, m := range mask {
		if m == 0xff {
			continue
		}
		p := i * 4
		if m == 0 {
			copy(cur[p:p+4], snap[p:p+4])
			continue
		}
		for k := p; k < p+4; k++ {
			d := int(cur[k]) - int(snap[k])
			cur[k] = uint8(int(snap[k]) + (d*int(m)+127*sign(d))/255)
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// Pixels returns the live RGBA buffer.
func (c *Canvas) Pixels() []uint8 {
	return c.dc.ResizeTarget().Data()
}

// SetPixels copies p over the whole buffer.
func (c *Canvas) SetPixels(p []uint8) error {
	dst := c.Pixels()
	if len(p) != len(dst) {
		return fmt.Errorf("raster: set pixels: got %d bytes, want %d", len(p), len(dst))
	}
	copy(dst, p)
	return nil
}

// Image returns a copy of the canvas as an *image.RGBA.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.ResizeTarget().ToImage()
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Context exposes the underlying gg context for hosts that want to keep
// drawing on the avatar.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}
