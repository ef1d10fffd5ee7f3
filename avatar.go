package avatar

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
)

// ErrUnknownTheme is returned by Generate for names not in Themes.
var ErrUnknownTheme = errors.New("avatar: unknown theme")

// Generate renders the avatar of id with the named theme as a size x size
// canvas. The same theme, id, size and options always give the same pixels.
//
// Errors wrap ErrUnknownTheme, theme.ErrEmptyID, theme.ErrInvalidSize or a
// failure of the raster backend.
func Generate(themeName, id string, size int, opts ...Option) (*raster.Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, ok := lookup(themeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, themeName)
	}
	if o.normalize {
		id = NormalizeID(id)
	}

	Logger().Debug("avatar: generate",
		"theme", themeName,
		"size", size,
		"seed", rng.Hash(id),
	)

	return g(Request{
		ID:     id,
		Size:   size,
		Canvas: o.canvas,
		Colors: o.colors,
		Params: o.params,
	})
}

// GenerateContext is Generate for callers that carry a context. Rendering is
// bounded and not interruptible; ctx is only checked before it starts. The
// output is identical to Generate.
func GenerateContext(ctx context.Context, themeName, id string, size int, opts ...Option) (*raster.Canvas, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Generate(themeName, id, size, opts...)
}
