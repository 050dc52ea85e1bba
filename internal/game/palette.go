package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// The scene is two-tone: every shaded pixel is either Lit or Unlit.
// Strokes use whichever tone contrasts with the region they are drawn over.
var Palette = struct {
	Lit   RGB
	Unlit RGB
}{
	Lit:   RGB{R: 232, G: 240, B: 250},
	Unlit: RGB{R: 10, G: 18, B: 38},
}

// Ink returns the stroke colour for a shape drawn over water (lit) or sky (unlit).
func Ink(overWater bool) RGB {
	if overWater {
		return Palette.Lit
	}
	return Palette.Unlit
}
