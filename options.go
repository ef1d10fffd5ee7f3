package avatar

import (
	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
)

// Option configures a Generate call.
//
// Example:
//
//	c, err := avatar.Generate("smile", "alice@example.com", 128,
//	    avatar.WithColors(palette.Options{
//	        Foreground: palette.HexList("#264653", "#2a9d8f", "#e9c46a"),
//	    }),
//	)
type Option func(*options)

// options holds the optional configuration of one Generate call.
type options struct {
	canvas    *raster.Canvas
	colors    *palette.Options
	params    map[string]any
	normalize bool
}

func defaultOptions() options {
	return options{}
}

// WithCanvas draws on c instead of allocating a new canvas. The canvas is
// resized and cleared first. It must not be used by two calls at once.
func WithCanvas(c *raster.Canvas) Option {
	return func(o *options) {
		o.canvas = c
	}
}

// WithColors sets the palette options. They take precedence over palette
// keys passed through WithParams.
func WithColors(c palette.Options) Option {
	return func(o *options) {
		o.colors = &c
	}
}

// WithParams sets theme parameters by name, as they appear in configuration
// files: "grid_size", "density", "sources", "background" and so on. Values
// are decoded into the theme's options; unknown names are logged and
// ignored. Later calls add to earlier ones.
//
// Example:
//
//	avatar.WithParams(map[string]any{
//	    "grid_size": 5,
//	    "symmetry":  "vertical|horizontal",
//	    "foreground": []any{"#ff0000", "#0000ff"},
//	})
func WithParams(params map[string]any) Option {
	return func(o *options) {
		if o.params == nil {
			o.params = make(map[string]any, len(params))
		}
		for k, v := range params {
			o.params[k] = v
		}
	}
}

// WithNormalizedID passes the identifier through NormalizeID before it is
// hashed, so differently cased or composed forms share an avatar.
func WithNormalizedID() Option {
	return func(o *options) {
		o.normalize = true
	}
}
