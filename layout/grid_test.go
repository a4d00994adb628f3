package layout

import (
	"testing"

	"github.com/lixenwraith/tapgrid/constants"
)

// TestComputeReferencePortrait checks the 1080x1920 reference geometry
func TestComputeReferencePortrait(t *testing.T) {
	l := Compute(1080, 1920, constants.GridSize)

	if len(l.Cells) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(l.Cells))
	}
	if l.Spacing != 135 {
		t.Errorf("Spacing = %d, want 135", l.Spacing)
	}
	if l.DotRadius != 49 {
		t.Errorf("DotRadius = %d, want 49", l.DotRadius)
	}
	if l.Tolerance != 73 {
		t.Errorf("Tolerance = %d, want 73", l.Tolerance)
	}

	wantX := []int{270, 405, 540, 675, 810}
	wantY := []int{690, 825, 960, 1095, 1230}
	for i, c := range l.Cells {
		row, col := i/5, i%5
		if c.X != wantX[col] || c.Y != wantY[row] {
			t.Errorf("cell %d = (%d,%d), want (%d,%d)", i, c.X, c.Y, wantX[col], wantY[row])
		}
	}

	if l.LabelAnchor != (Point{X: 540, Y: 555}) {
		t.Errorf("LabelAnchor = %+v, want {540 555}", l.LabelAnchor)
	}
}

// TestComputeBoundsAndSymmetry covers count, bounds and symmetry for both orientations
func TestComputeBoundsAndSymmetry(t *testing.T) {
	sizes := [][2]int{{1080, 1920}, {1920, 1080}, {80, 48}, {200, 90}, {37, 101}, {1, 1}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		l := Compute(w, h, constants.GridSize)

		if len(l.Cells) != constants.DotCount {
			t.Errorf("%dx%d: got %d cells", w, h, len(l.Cells))
			continue
		}
		for i, c := range l.Cells {
			if c.X < 0 || c.X > w || c.Y < 0 || c.Y > h {
				t.Errorf("%dx%d: cell %d (%d,%d) out of bounds", w, h, i, c.X, c.Y)
			}
		}

		// Point reflection through the grid center maps cell i onto cell n-1-i
		minP, maxP := l.Bounds()
		cx2, cy2 := minP.X+maxP.X, minP.Y+maxP.Y
		n := len(l.Cells)
		for i := 0; i < n; i++ {
			a, b := l.Cells[i], l.Cells[n-1-i]
			if a.X+b.X != cx2 || a.Y+b.Y != cy2 {
				t.Errorf("%dx%d: cells %d and %d not symmetric", w, h, i, n-1-i)
			}
		}

		// Grid is square
		if maxP.X-minP.X != maxP.Y-minP.Y {
			t.Errorf("%dx%d: grid not square: %v..%v", w, h, minP, maxP)
		}
	}
}

// TestComputeOrientationSwap verifies swapping width/height transposes the grid offsets
func TestComputeOrientationSwap(t *testing.T) {
	p := Compute(1080, 1920, 5)
	q := Compute(1920, 1080, 5)

	if p.Spacing != q.Spacing || p.DotRadius != q.DotRadius || p.Tolerance != q.Tolerance {
		t.Fatalf("portrait/landscape metrics differ: %+v vs %+v", p, q)
	}
	for i := range p.Cells {
		pdx, pdy := p.Cells[i].X-p.Center.X, p.Cells[i].Y-p.Center.Y
		qdx, qdy := q.Cells[i].X-q.Center.X, q.Cells[i].Y-q.Center.Y
		if pdx != qdx || pdy != qdy {
			t.Errorf("cell %d offset differs: (%d,%d) vs (%d,%d)", i, pdx, pdy, qdx, qdy)
		}
	}
}

func TestComputeRowMajor(t *testing.T) {
	l := Compute(400, 400, 5)
	for i := 1; i < len(l.Cells); i++ {
		prev, cur := l.Cells[i-1], l.Cells[i]
		if i%5 == 0 {
			if cur.Y <= prev.Y {
				t.Errorf("cell %d should start a lower row", i)
			}
			continue
		}
		if cur.Y != prev.Y || cur.X <= prev.X {
			t.Errorf("cell %d not right of cell %d on the same row", i, i-1)
		}
	}
}

func TestHit(t *testing.T) {
	l := Compute(1080, 1920, 5)
	c := l.Cells[12]

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", c.X, c.Y, true},
		{"edge", c.X + l.Tolerance, c.Y, true},
		{"just outside", c.X + l.Tolerance + 1, c.Y, false},
		{"diagonal corner", c.X + l.Tolerance, c.Y + l.Tolerance, false},
		{"origin", 0, 0, false},
		{"negative", -500, -500, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Hit(tt.x, tt.y, c); got != tt.want {
				t.Errorf("Hit(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestComputeSingleCell(t *testing.T) {
	l := Compute(100, 60, 1)
	if len(l.Cells) != 1 || l.Cells[0] != l.Center {
		t.Errorf("single cell grid = %+v, want center %+v", l.Cells, l.Center)
	}
}
