package game

import "math"

// ghost strokes trail the body along -velocity to suggest motion.
var ghosts = [...]struct {
	lag  float64
	fill int
}{
	{lag: 1, fill: 2},
	{lag: 3, fill: 3},
}

// spine returns the body polyline in screen space, nose first. The body
// curls with Bend and ripples with Wiggle.
func (d *Dolphin) spine(pts []float64) []float64 {
	pts = pts[:0]
	dx, dy := d.Heading()
	half := BodySegLen * BodySegments / 2
	x := CenterX + dx*half
	y := CenterY - dy*half
	pts = append(pts, x, y)

	a := d.Angle + math.Pi
	for i := 0; i < BodySegments; i++ {
		a += d.Bend * BodyCurlScale
		a += d.Wiggle * math.Sin(float64(i)*1.3) * BodyCurlScale
		x += math.Cos(a) * BodySegLen
		y -= math.Sin(a) * BodySegLen
		pts = append(pts, x, y)
	}
	return pts
}

// DrawDolphin rasterizes the body and its motion ghosts around the frame
// centre. Segments that would leave the frame are skipped.
func DrawDolphin(buf *Buffer, d *Dolphin, scratch []float64) []float64 {
	scratch = d.spine(scratch)
	ink := Ink(d.InWater)

	drawPolyline(buf, scratch, 0, 0, 1, ink)
	for _, g := range ghosts {
		drawPolyline(buf, scratch, -d.VX*g.lag, d.VY*g.lag, g.fill, ink)
	}
	return scratch
}

func drawPolyline(buf *Buffer, pts []float64, ox, oy float64, fill int, c RGB) {
	for i := 0; i+3 < len(pts); i += 2 {
		x0 := int(math.Round(pts[i] + ox))
		y0 := int(math.Round(pts[i+1] + oy))
		x1 := int(math.Round(pts[i+2] + ox))
		y1 := int(math.Round(pts[i+3] + oy))
		buf.PlotLineClipped(x0, y0, x1, y1, fill, c)
	}
}
