package game

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const overlayLineHeight = 13

func rgba(c RGB) *image.Uniform {
	return image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// DrawText blits lines of diagnostic text in the top-left corner. Each
// glyph gets a one-pixel drop shadow in the opposite tone so it stays
// readable over both sea and sky.
func DrawText(buf *Buffer, lines ...string) {
	d := font.Drawer{Dst: buf.Image(), Face: basicfont.Face7x13}
	for pass, c := range []RGB{Palette.Lit, Palette.Unlit} {
		d.Src = rgba(c)
		for i, line := range lines {
			off := 1 - pass
			d.Dot = fixed.P(4+off, overlayLineHeight*(i+1)+off)
			d.DrawString(line)
		}
	}
}

// OverlayLines formats the standard diagnostics readout.
func OverlayLines(fps float64, d *Dolphin, s *Splash) []string {
	lines := []string{
		fmt.Sprintf("%5.1f fps", fps),
		fmt.Sprintf("pos %d,%d  speed %.2f", d.X, d.Y, d.Speed()),
	}
	if s.Active() {
		lines = append(lines, fmt.Sprintf("splash %d/%d", s.Alive, s.Life))
	}
	return lines
}
