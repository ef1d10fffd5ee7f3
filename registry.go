package avatar

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/theme"
	"github.com/gogpu/avatar/theme/digidoodle"
	"github.com/gogpu/avatar/theme/interference"
	"github.com/gogpu/avatar/theme/pixels"
	"github.com/gogpu/avatar/theme/plasma"
	"github.com/gogpu/avatar/theme/smile"
)

// Request is what a Generator receives from Generate.
type Request struct {
	// ID, Size and Canvas are copied into the theme's base options.
	ID     string
	Size   int
	Canvas *raster.Canvas

	// Colors overrides palette keys found in Params when non-nil.
	Colors *palette.Options

	// Params holds theme parameters by configuration name.
	Params map[string]any
}

// Generator renders one avatar for a theme.
type Generator func(req Request) (*raster.Canvas, error)

// themeOptions is satisfied by pointers to theme option structs, which all
// embed theme.Base.
type themeOptions[O any] interface {
	*O
	Shared() *theme.Base
}

// Adapt turns a theme's Generate function into a Generator. Parameters are
// decoded into the theme's options starting from def; Request fields are
// applied on top.
func Adapt[O any, P themeOptions[O]](name string, def func() O, generate func(O) (*raster.Canvas, error)) Generator {
	return func(req Request) (*raster.Canvas, error) {
		o := def()
		if err := decodeParams(name, req.Params, &o); err != nil {
			return nil, err
		}
		b := P(&o).Shared()
		b.ID = req.ID
		b.Size = req.Size
		b.Canvas = req.Canvas
		if req.Colors != nil {
			b.Colors = *req.Colors
		}
		return generate(o)
	}
}

// decodeParams decodes params into out and logs every key no field took.
func decodeParams(name string, params map[string]any, out any) error {
	if len(params) == 0 {
		return nil
	}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			palette.DecodeHook(),
			theme.ParamDecodeHook(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("avatar: %s: %w", name, err)
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("avatar: %s: invalid parameters: %w", name, err)
	}
	for _, key := range md.Unused {
		Logger().Warn("avatar: ignoring unknown parameter", "theme", name, "param", key)
	}
	return nil
}

// registry maps theme names to generators.
type registry struct {
	mu      sync.RWMutex
	entries map[string]Generator
}

var globalRegistry = &registry{entries: make(map[string]Generator)}

func init() {
	Register("digidoodle", Adapt("digidoodle", digidoodle.DefaultOptions, digidoodle.Generate))
	Register("interference", Adapt("interference", interference.DefaultOptions, interference.Generate))
	Register("plasma", Adapt("plasma", plasma.DefaultOptions, plasma.Generate))
	Register("pixels", Adapt("pixels", pixels.DefaultOptions, pixels.Generate))
	Register("smile", Adapt("smile", smile.DefaultOptions, smile.Generate))
}

// Register adds a theme. Registering an existing name replaces it.
//
// Example:
//
//	func init() {
//	    avatar.Register("stripes", avatar.Adapt("stripes", stripes.DefaultOptions, stripes.Generate))
//	}
func Register(name string, g Generator) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.entries[name] = g
}

// Unregister removes a theme.
func Unregister(name string) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	delete(globalRegistry.entries, name)
}

// Themes returns the registered theme names in sorted order.
func Themes() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	names := make([]string, 0, len(globalRegistry.entries))
	for name := range globalRegistry.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (Generator, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	g, ok := globalRegistry.entries[name]
	return g, ok
}
