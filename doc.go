// Package avatar generates deterministic avatar images from identifiers.
//
// # Overview
//
// The same identifier always produces the same image: the identifier is
// hashed into the seed of a small linear congruential generator, and every
// choice a theme makes (colors, shapes, offsets) is drawn from that stream
// in a fixed order. No state is stored between calls.
//
// # Quick Start
//
//	import "github.com/gogpu/avatar"
//
//	c, err := avatar.Generate("digidoodle", "alice@example.com", 128)
//	if err != nil {
//		log.Fatal(err)
//	}
//	f, _ := os.Create("alice.png")
//	defer f.Close()
//	_ = c.EncodePNG(f)
//
// # Themes
//
//   - digidoodle: symmetric pixel-art grids, optionally layered
//   - interference: wave interference between random point sources
//   - plasma: weighted sinusoidal plasma through a looping palette
//   - pixels: a grid of independently colored blocks
//   - smile: a tilted smiley face
//
// Each theme lives in its own package under theme/ and can be used directly
// with typed options; Generate selects themes by name and decodes loosely
// typed parameters (WithParams) for hosts driven by configuration.
//
// # Colors
//
// Palettes are described by package palette: a single color, a list of
// colors, or a list of coordinated color sets. See palette.Options.
//
// # Concurrency
//
// Generate is safe for concurrent use. A canvas passed with WithCanvas must
// not be shared between concurrent calls.
package avatar
