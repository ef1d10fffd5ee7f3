package avatar

import (
	"testing"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.canvas != nil || o.colors != nil || o.params != nil || o.normalize {
		t.Errorf("defaultOptions() = %+v, want zero", o)
	}
}

func TestWithParamsMerges(t *testing.T) {
	o := defaultOptions()
	WithParams(map[string]any{"grid_size": 4, "density": 0.3})(&o)
	WithParams(map[string]any{"density": 0.9})(&o)

	if len(o.params) != 2 {
		t.Fatalf("len(params) = %d, want 2", len(o.params))
	}
	if o.params["grid_size"] != 4 {
		t.Errorf("grid_size = %v, want 4", o.params["grid_size"])
	}
	if o.params["density"] != 0.9 {
		t.Errorf("density = %v, want 0.9", o.params["density"])
	}
}

func TestWithParamsCopies(t *testing.T) {
	src := map[string]any{"layers": 2}
	o := defaultOptions()
	WithParams(src)(&o)
	src["layers"] = 5

	if o.params["layers"] != 2 {
		t.Errorf("layers = %v, want 2", o.params["layers"])
	}
}

func TestWithColorsCopies(t *testing.T) {
	c := palette.Options{Discrete: true}
	o := defaultOptions()
	WithColors(c)(&o)
	c.Discrete = false

	if o.colors == nil || !o.colors.Discrete {
		t.Errorf("colors = %+v, want Discrete", o.colors)
	}
}

func TestWithCanvasAndNormalize(t *testing.T) {
	c, err := raster.New(2)
	if err != nil {
		t.Fatal(err)
	}
	o := defaultOptions()
	WithCanvas(c)(&o)
	WithNormalizedID()(&o)

	if o.canvas != c {
		t.Error("WithCanvas did not set canvas")
	}
	if !o.normalize {
		t.Error("WithNormalizedID did not set normalize")
	}
}
