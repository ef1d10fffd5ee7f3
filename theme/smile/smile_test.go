package smile

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

var testColors = palette.Options{
	Background: palette.Single(palette.Hex("#ffffff")),
	Foreground: palette.HexList("#ff0000", "#0000ff"),
	Discrete:   true,
}

func pixel(c *raster.Canvas, x, y int) []uint8 {
	i := (y*c.Size() + x) * 4
	return c.Pixels()[i : i+4]
}

// replay draws what Render draws before painting.
func replay(id string, colors palette.Options, size float64) ([]palette.Color, palette.Color, Face, *rng.Rand) {
	r := rng.New(id)
	fg := palette.Pick(colors, r, 2, palette.SourceForeground)
	bg := palette.Background(colors, r)
	return fg, bg, NewFace(r, size), r
}

func TestDeterminism(t *testing.T) {
	o := Options{Base: theme.Base{ID: "alice@example.com", Size: 64}}
	a, err := Generate(o)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pixels(), b.Pixels()) {
		t.Error("two renders differ")
	}
}

func TestSeedSensitivity(t *testing.T) {
	seen := make(map[[32]byte]string)
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("smile-%d", i)
		c, err := Generate(Options{Base: theme.Base{ID: id, Size: 24}})
		if err != nil {
			t.Fatal(err)
		}
		sum := sha256.Sum256(c.Pixels())
		if prev, ok := seen[sum]; ok {
			t.Fatalf("%q and %q render identically", prev, id)
		}
		seen[sum] = id
	}
}

func TestNewFaceRanges(t *testing.T) {
	grins := 0
	for i := 0; i < 500; i++ {
		f := NewFace(rng.New(fmt.Sprintf("face-%d", i)), 100)
		if f.MouthWidth < 0.3 || f.MouthWidth >= 0.4 {
			t.Fatalf("MouthWidth = %v", f.MouthWidth)
		}
		if f.EyeOffset < 0.2 || f.EyeOffset >= 0.25 {
			t.Fatalf("EyeOffset = %v", f.EyeOffset)
		}
		if math.Abs(f.OffsetX) > 10 || math.Abs(f.OffsetY) > 2 {
			t.Fatalf("offset = %v, %v", f.OffsetX, f.OffsetY)
		}
		if math.Abs(f.Rotation) > math.Pi/12 {
			t.Fatalf("Rotation = %v", f.Rotation)
		}
		if f.Grin {
			grins++
		}
	}
	if grins < 150 || grins > 350 {
		t.Errorf("grins = %d of 500, want about half", grins)
	}
}

func TestInk(t *testing.T) {
	bg := palette.Color{R: 10, G: 200, B: 30}
	if got := Ink(palette.Color{R: 20, G: 20, B: 60}, bg); got != bg {
		t.Errorf("dark face ink = %v, want background %v", got, bg)
	}
	if got := Ink(palette.Color{R: 250, G: 230, B: 120}, bg); got != palette.Black {
		t.Errorf("light face ink = %v, want black", got)
	}
}

func TestDrawCount(t *testing.T) {
	o := Options{Base: theme.Base{ID: "count", Size: 32}}
	r := rng.New(o.ID)
	if err := Render(mustCanvas(t, 32), r, o); err != nil {
		t.Fatal(err)
	}
	_, _, _, want := replay(o.ID, o.Colors, 32)
	if r.Float64() != want.Float64() {
		t.Error("Render drew a different number of values")
	}
}

func TestCornersShowBackground(t *testing.T) {
	for i := 0; i < 20; i++ {
		o := Options{Base: theme.Base{ID: fmt.Sprintf("corner-%d", i), Size: 40, Colors: testColors}}
		c, err := Generate(o)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range [][2]int{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
			if got := pixel(c, p[0], p[1]); !bytes.Equal(got, []uint8{255, 255, 255, 255}) {
				t.Fatalf("%s corner %v = %v, want white", o.ID, p, got)
			}
		}
	}
}

func TestFaceIsClippedToRing(t *testing.T) {
	const size = 100
	var id string
	var fg []palette.Color
	for i := 0; i < 1000; i++ {
		cand := fmt.Sprintf("clip-%d", i)
		colors, _, f, _ := replay(cand, testColors, size)
		if f.OffsetX > 9 {
			id, fg = cand, colors
			break
		}
	}
	if id == "" {
		t.Fatal("no face shifted far enough right")
	}

	c, err := Generate(Options{Base: theme.Base{ID: id, Size: size, Colors: testColors}})
	if err != nil {
		t.Fatal(err)
	}

	// Outside the ring but inside the shifted face disc.
	if got := pixel(c, 95, 24); !bytes.Equal(got, []uint8{255, 255, 255, 255}) {
		t.Errorf("pixel outside ring = %v, want background", got)
	}

	// The canvas center is covered by the face.
	r, g, b := fg[1].Bytes()
	if got := pixel(c, 50, 50); !bytes.Equal(got, []uint8{r, g, b, 255}) {
		t.Errorf("center = %v, want face color %v", got, []uint8{r, g, b, 255})
	}
}

func TestInvalidSize(t *testing.T) {
	if _, err := Generate(Options{Base: theme.Base{ID: "x", Size: -1}}); err == nil {
		t.Error("expected error for negative size")
	}
}

func mustCanvas(t *testing.T, size int) *raster.Canvas {
	t.Helper()
	c, err := raster.New(size)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
