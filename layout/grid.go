// Package layout maps the dot grid onto screen coordinates
package layout

import (
	"fmt"

	"github.com/lixenwraith/tapgrid/constants"
)

// Point is a screen position in pixels (or logical units for cell-based frontends)
type Point struct {
	X, Y int
}

// Layout is the resolved geometry of one grid on one screen
// Cells are row-major: top row first, left to right within a row
type Layout struct {
	Width, Height int
	GridSize      int

	Cells     []Point
	Center    Point
	Spacing   int
	DotRadius int
	Tolerance int // Hit radius around a dot center

	// LabelAnchor is the center of the time label, one spacing above the grid
	LabelAnchor Point
}

// Compute derives the grid geometry from the screen bounds
// The shorter side is the basis, so the grid is square and centered in both orientations
func Compute(width, height, gridSize int) Layout {
	if gridSize < 1 {
		panic(fmt.Sprintf("layout: grid size must be >= 1, got %d", gridSize))
	}
	width = max(width, 0)
	height = max(height, 0)
	short := min(width, height)

	spacing := 0
	if gridSize > 1 {
		spacing = (short / constants.GridSpanDivisor) / (gridSize - 1)
	}
	radius := short / constants.DotRadiusDivisor

	l := Layout{
		Width:     width,
		Height:    height,
		GridSize:  gridSize,
		Cells:     make([]Point, 0, gridSize*gridSize),
		Center:    Point{X: width / 2, Y: height / 2},
		Spacing:   spacing,
		DotRadius: radius,
		Tolerance: radius + short/constants.TapMarginDivisor,
	}

	// Integer half span keeps the grid symmetric about the center
	halfSpan := spacing * (gridSize - 1) / 2
	left := l.Center.X - halfSpan
	top := l.Center.Y - halfSpan
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			l.Cells = append(l.Cells, Point{X: left + col*spacing, Y: top + row*spacing})
		}
	}

	l.LabelAnchor = Point{X: l.Center.X, Y: max(top-spacing, 0)}
	return l
}

// Hit reports whether (x, y) lies within Tolerance of the dot centered at c
func (l Layout) Hit(x, y int, c Point) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= l.Tolerance*l.Tolerance
}

// Bounds returns the bounding box of all cell centers
func (l Layout) Bounds() (minP, maxP Point) {
	if len(l.Cells) == 0 {
		return l.Center, l.Center
	}
	minP, maxP = l.Cells[0], l.Cells[len(l.Cells)-1]
	return minP, maxP
}
