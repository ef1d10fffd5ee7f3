package interference

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/raster"
	"github.com/gogpu/avatar/rng"
	"github.com/gogpu/avatar/theme"
)

func render(t *testing.T, o Options) []uint8 {
	t.Helper()
	c, err := Generate(o)
	if err != nil {
		t.Fatalf("Generate(%q) error = %v", o.ID, err)
	}
	return c.Pixels()
}

func TestDeterminism(t *testing.T) {
	o := Options{Base: theme.Base{ID: "alice@example.com", Size: 32}}
	if !bytes.Equal(render(t, o), render(t, o)) {
		t.Error("two renders differ")
	}
}

func TestSeedSensitivity(t *testing.T) {
	seen := make(map[[32]byte]string)
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("wave-%d", i)
		sum := sha256.Sum256(render(t, Options{Base: theme.Base{ID: id, Size: 12}}))
		if prev, ok := seen[sum]; ok {
			t.Fatalf("%q and %q render identically", prev, id)
		}
		seen[sum] = id
	}
}

func TestOpaque(t *testing.T) {
	pix := render(t, Options{Base: theme.Base{ID: "opaque", Size: 10}})
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatalf("alpha at pixel %d = %d, want 255", i/4, pix[i])
		}
	}
}

func TestValueBounded(t *testing.T) {
	for i := 0; i < 50; i++ {
		r := rng.New(fmt.Sprintf("bounded-%d", i))
		n := r.Int(1, 8)
		f := NewField(r, n, r.Range(0.1, 20), r.Range(0.05, 3), r.Range(0.01, 3))
		for py := 0; py < 16; py++ {
			for px := 0; px < 16; px++ {
				v := f.Value(float64(px)/8-1, float64(py)/8-1)
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("Value = %v outside [0, 1]", v)
				}
			}
		}
	}
}

func TestIntensityAtSource(t *testing.T) {
	f := Field{Sources: []Point{{0, 0}}, Wavelength: 1, SourceDistance: 0.25}
	// Distance is the out-of-plane offset: sin(2*pi*0.25) = 1.
	if got := f.Intensity(0, 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("Intensity(0, 0) = %v, want 1", got)
	}
	if got := (Field{}).Value(0, 0); got != 0 {
		t.Errorf("empty field Value = %v, want 0", got)
	}
}

func TestDrawOrder(t *testing.T) {
	o := Options{Base: theme.Base{ID: "order", Size: 4}}

	r := rng.New(o.ID)
	n := r.Int(2, 5)
	colors := palette.Pick(o.Colors, r, 2, palette.SourceForeground)
	want := NewField(r, n, 10, 1, 1)

	c, err := raster.New(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := Render(c, rng.New(o.ID), o); err != nil {
		t.Fatal(err)
	}
	wr, wg, wb := palette.Interpolate(colors[0], colors[1], want.Value(-1, -1)).Bytes()
	if got := c.Pixels()[:3]; !bytes.Equal(got, []uint8{wr, wg, wb}) {
		t.Errorf("first pixel = %v, want %v", got, []uint8{wr, wg, wb})
	}
}

func TestFixedSourcesSkipDraw(t *testing.T) {
	base := theme.Base{ID: "fixed", Size: 4}
	a, err := Generate(Options{Base: base, Sources: theme.Fixed(3)})
	if err != nil {
		t.Fatal(err)
	}

	// With a pinned count the colors are drawn from the start of the stream.
	r := rng.New(base.ID)
	colors := palette.Pick(base.Colors, r, 2, palette.SourceForeground)
	f := NewField(r, 3, 10, 1, 1)
	wr, wg, wb := palette.Interpolate(colors[0], colors[1], f.Value(-1, -1)).Bytes()
	if got := a.Pixels()[:3]; !bytes.Equal(got, []uint8{wr, wg, wb}) {
		t.Errorf("first pixel = %v, want %v", got, []uint8{wr, wg, wb})
	}
}

func TestBlendStaysOnPaletteLine(t *testing.T) {
	o := Options{Base: theme.Base{ID: "gray", Size: 16, Colors: palette.Options{
		Foreground: palette.HexList("#000000", "#ffffff"),
		Discrete:   true,
	}}}
	pix := render(t, o)
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+1] || pix[i+1] != pix[i+2] {
			t.Fatalf("pixel %d = %v, want a gray", i/4, pix[i:i+4])
		}
	}
}

func TestSourcesClamped(t *testing.T) {
	base := theme.Base{ID: "many", Size: 8}
	tests := []struct {
		sources, want float64
	}{
		{1e6, MaxSources},
		{MaxSources + 1, MaxSources},
		{0, 1},
		{-5, 1},
	}
	for _, tt := range tests {
		got := render(t, Options{Base: base, Sources: theme.Fixed(tt.sources)})
		want := render(t, Options{Base: base, Sources: theme.Fixed(tt.want)})
		if !bytes.Equal(got, want) {
			t.Errorf("Sources %v differs from Sources %v", tt.sources, tt.want)
		}
	}
}

func TestZeroGeometryIsDefault(t *testing.T) {
	base := theme.Base{ID: "geometry", Size: 12}
	want := render(t, Options{Base: base, Wavelength: 1, SourceArea: 10, SourceDistance: 1})
	got := render(t, Options{Base: base, Wavelength: -1, SourceArea: 0, SourceDistance: -3})
	if !bytes.Equal(got, want) {
		t.Error("non-positive geometry differs from the defaults")
	}
}
