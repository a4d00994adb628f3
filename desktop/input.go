package desktop

import "math"

// ToFramebuffer scales a cursor position in window coordinates to framebuffer pixels
// HiDPI windows have a framebuffer larger than the window
func ToFramebuffer(cx, cy float64, winW, winH, fbW, fbH int) (x, y int) {
	if winW <= 0 || winH <= 0 {
		return int(math.Round(cx)), int(math.Round(cy))
	}
	sx := float64(fbW) / float64(winW)
	sy := float64(fbH) / float64(winH)
	return int(math.Round(cx * sx)), int(math.Round(cy * sy))
}

// EdgeDetector reports press edges for polled buttons and keys
type EdgeDetector struct {
	prev map[int]bool
}

// NewEdgeDetector creates a detector with every input released
func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{prev: make(map[int]bool)}
}

// Pressed records the state of id and reports whether it just went down
func (e *EdgeDetector) Pressed(id int, down bool) bool {
	jp := down && !e.prev[id]
	e.prev[id] = down
	return jp
}
