package desktop

import "github.com/lixenwraith/tapgrid/engine"

// SpriteStride is the float count per dot sprite: x, y, size, r, g, b, a
const SpriteStride = 7

// RGBA is a normalized color
type RGBA [4]float32

// Background matches the light surface the dots are drawn on
var Background = RGBA{1, 1, 1, 1}

// VisualColors maps each dot state to its fill
var VisualColors = [...]RGBA{
	engine.DotInactive: {0.62, 0.62, 0.64, 1},
	engine.DotCurrent:  {0.13, 0.45, 0.95, 1},
	engine.DotTapped:   {0.20, 0.72, 0.32, 1},
}

// AppendSprites appends one point sprite per dot to buf
func AppendSprites(buf []float32, f engine.Frame) []float32 {
	size := float32(2 * f.DotRadius)
	for _, d := range f.Dots {
		c := RGBA{1, 0, 1, 1}
		if int(d.Visual) < len(VisualColors) {
			c = VisualColors[d.Visual]
		}
		buf = append(buf, float32(d.X), float32(d.Y), size, c[0], c[1], c[2], c[3])
	}
	return buf
}
