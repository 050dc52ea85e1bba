package game

import "math"

// Camera pins the dolphin to the centre of the frame. World Y grows upward,
// screen rows grow downward.
type Camera struct {
	X, Y int // world position shown at (CenterX, CenterY)
}

// Follow re-centres the camera on the dolphin.
func (c *Camera) Follow(d *Dolphin) {
	c.X, c.Y = d.X, d.Y
}

// WorldX returns the world x of screen column col.
func (c Camera) WorldX(col int) int { return c.X + col - CenterX }

// WorldY returns the world y of screen row row.
func (c Camera) WorldY(row int) int { return c.Y + CenterY - row }

// ToScreen maps a world point to the nearest screen pixel.
func (c Camera) ToScreen(wx, wy float64) (int, int) {
	sx := int(math.Round(wx - float64(c.X) + CenterX))
	sy := int(math.Round(float64(c.Y) - wy + CenterY))
	return sx, sy
}
