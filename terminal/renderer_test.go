package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tapgrid/engine"
	"github.com/lixenwraith/tapgrid/layout"
	"github.com/lixenwraith/tapgrid/pattern"
	"github.com/lixenwraith/tapgrid/status"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

// cellRune returns the primary rune at (col, row)
func cellRune(s tcell.SimulationScreen, col, row int) rune {
	cells, w, _ := s.GetContents()
	c := cells[row*w+col]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

// rowText returns one screen row as a string
func rowText(s tcell.SimulationScreen, row int) string {
	_, w, _ := s.GetContents()
	var b strings.Builder
	for col := 0; col < w; col++ {
		b.WriteRune(cellRune(s, col, row))
	}
	return b.String()
}

func newTestState(cols, rows int) *engine.GameState {
	w, h := LogicalSize(cols, rows)
	return engine.NewGameState(layout.Compute(w, h, 5), pattern.Identity(25), "Get ready")
}

func playing(gs *engine.GameState, at time.Time) {
	gs.BeginCountdown(1, at)
	gs.StepCountdown(at)
}

func TestRendererDrawsEveryDot(t *testing.T) {
	scr := newSimScreen(t, 80, 24)
	r := NewRenderer(scr, nil, Options{})
	gs := newTestState(80, 24)
	r.Draw(gs.Frame())

	for _, d := range gs.Dots() {
		col, row := LogicalToCell(d.X, d.Y)
		if got := cellRune(scr, col, row); got != '█' {
			t.Errorf("dot %d at cell (%d,%d) shows %q", d.Sequence, col, row, got)
		}
	}

	_, row := LogicalToCell(0, gs.Layout().LabelAnchor.Y)
	if !strings.Contains(rowText(scr, row), "Get ready") {
		t.Errorf("label row %d = %q", row, rowText(scr, row))
	}
}

// TestRendererMonoVisuals distinguishes the dot states by glyph
func TestRendererMonoVisuals(t *testing.T) {
	scr := newSimScreen(t, 80, 24)
	r := NewRenderer(scr, nil, Options{Mono: true})
	gs := newTestState(80, 24)

	now := time.Now()
	playing(gs, now)
	first := gs.Dot(0)
	gs.HandleTap(first.X, first.Y, now.Add(time.Second))
	r.Draw(gs.Frame())

	want := map[int]rune{0: '▓', 1: '█', 2: '░', 24: '░'}
	for i, glyph := range want {
		d := gs.Dot(i)
		col, row := LogicalToCell(d.X, d.Y)
		if got := cellRune(scr, col, row); got != glyph {
			t.Errorf("dot %d glyph = %q, want %q", i+1, got, glyph)
		}
	}
}

func TestRendererResultsAndStatus(t *testing.T) {
	scr := newSimScreen(t, 80, 36)
	reg := status.NewRegistry()
	reg.Ints.Get("tap.hits").Store(25)
	r := NewRenderer(scr, reg, Options{ShowStatus: true})

	gs := newTestState(80, 36)
	now := time.Now()
	playing(gs, now)
	for i := 0; i < 25; i++ {
		d := gs.Dot(i)
		gs.HandleTap(d.X, d.Y, now.Add(time.Duration(i+1)*100*time.Millisecond))
	}
	gs.Tick(now)
	r.Draw(gs.Frame())

	var all strings.Builder
	for row := 0; row < 36; row++ {
		all.WriteString(rowText(scr, row))
		all.WriteByte('\n')
	}
	screen := all.String()
	for _, want := range []string{"2.500", "Total 2.500s", "Misses 0", "r restart"} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen missing %q:\n%s", want, screen)
		}
	}

	bottom := rowText(scr, 35)
	if !strings.HasPrefix(bottom, "Finished") || !strings.Contains(bottom, "hits 25") {
		t.Errorf("status line = %q", bottom)
	}
}

func TestRendererBanner(t *testing.T) {
	scr := newSimScreen(t, 80, 24)
	r := NewRenderer(scr, nil, Options{})
	gs := newTestState(80, 24)
	r.Draw(gs.Frame())
	r.Banner("Paused")

	_, row := LogicalToCell(0, gs.Layout().LabelAnchor.Y)
	text := rowText(scr, row)
	if !strings.Contains(text, "Paused") || strings.Contains(text, "Get ready") {
		t.Errorf("banner row = %q", text)
	}
}

func TestRendererTinyScreen(t *testing.T) {
	scr := newSimScreen(t, 6, 3)
	r := NewRenderer(scr, nil, Options{ShowStatus: true})
	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("drawing on a tiny screen panicked: %v", rec)
		}
	}()
	r.Draw(newTestState(6, 3).Frame())
}
