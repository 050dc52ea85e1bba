package game

import (
	"fmt"
	"image"
)

// Buffer is the fixed-size RGBA frame the whole scene is rasterized into.
// Pixels are row-major, four channels each, alpha always 255.
type Buffer struct {
	img *image.RGBA
}

func NewBuffer() *Buffer {
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, Width, Height))}
}

// Pix exposes the raw RGBA bytes. Callers that keep the data past the
// current frame must copy it.
func (b *Buffer) Pix() []uint8 { return b.img.Pix }

// Image exposes the buffer as a standard image for overlays and encoders.
func (b *Buffer) Image() *image.RGBA { return b.img }

// CopyTo copies the frame into dst, which must hold Width*Height*4 bytes.
func (b *Buffer) CopyTo(dst []uint8) {
	copy(dst, b.img.Pix)
}

// At returns the colour of pixel (x, y). Out-of-range reads return black.
func (b *Buffer) At(x, y int) RGB {
	if !InBounds(x, y) {
		return RGB{}
	}
	o := y*Stride + x*Channels
	p := b.img.Pix
	return RGB{R: p[o], G: p[o+1], B: p[o+2]}
}

// Clear fills the whole frame with c.
func (b *Buffer) Clear(c RGB) {
	p := b.img.Pix
	for o := 0; o < len(p); o += Channels {
		p[o+0] = c.R
		p[o+1] = c.G
		p[o+2] = c.B
		p[o+3] = 255
	}
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Plot writes one pixel. Coordinates outside the frame are a caller bug.
func (b *Buffer) Plot(x, y int, c RGB) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("plot out of bounds: (%d, %d)", x, y))
	}
	o := y*Stride + x*Channels
	p := b.img.Pix
	p[o+0] = c.R
	p[o+1] = c.G
	p[o+2] = c.B
	p[o+3] = 255
}

// PlotLine rasterizes the segment with integer Bresenham, plotting only
// every fill-th step so larger periods give dotted, lighter strokes.
// Endpoints are walked in a canonical order, so swapping them paints the
// same pixels.
func (b *Buffer) PlotLine(x0, y0, x1, y1, fill int, c RGB) {
	if fill < 1 {
		fill = 1
	}
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for cnt := 0; ; cnt = (cnt + 1) % fill {
		if cnt == 0 {
			b.Plot(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PlotLineClipped draws the segment only when both endpoints are on screen.
// There is no partial clipping; it reports whether anything was drawn.
func (b *Buffer) PlotLineClipped(x0, y0, x1, y1, fill int, c RGB) bool {
	if !InBounds(x0, y0) || !InBounds(x1, y1) {
		return false
	}
	b.PlotLine(x0, y0, x1, y1, fill, c)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
