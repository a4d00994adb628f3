package terminal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/engine"
	"github.com/lixenwraith/tapgrid/status"
)

// Options controls presentation
type Options struct {
	Mono       bool // Glyph shading instead of colors
	ShowStatus bool // Metrics line on the bottom row
}

// palette maps dot visuals to cell content
type palette struct {
	glyphs [3]rune
	styles [3]tcell.Style
	label  tcell.Style
	text   tcell.Style
	dim    tcell.Style
}

func newPalette(mono bool) palette {
	base := tcell.StyleDefault
	if mono {
		return palette{
			glyphs: [3]rune{'░', constants.DotGlyph, '▓'},
			styles: [3]tcell.Style{base.Dim(true), base.Bold(true), base},
			label:  base.Bold(true),
			text:   base,
			dim:    base.Dim(true),
		}
	}
	return palette{
		glyphs: [3]rune{constants.DotGlyph, constants.DotGlyph, constants.DotGlyph},
		styles: [3]tcell.Style{
			engine.DotInactive: base.Foreground(tcell.ColorGray),
			engine.DotCurrent:  base.Foreground(tcell.ColorDodgerBlue),
			engine.DotTapped:   base.Foreground(tcell.ColorLimeGreen),
		},
		label: base.Foreground(tcell.ColorWhite).Bold(true),
		text:  base.Foreground(tcell.ColorSilver),
		dim:   base.Foreground(tcell.ColorDarkGray),
	}
}

// Renderer draws session frames into a tcell screen
// Draw runs on the loop goroutine, Banner on the input goroutine while the loop is stopped
type Renderer struct {
	mu      sync.Mutex
	screen  tcell.Screen
	pal     palette
	opts    Options
	metrics *status.Registry
	last    engine.Frame
}

// NewRenderer creates a renderer, metrics may be nil
func NewRenderer(screen tcell.Screen, metrics *status.Registry, opts Options) *Renderer {
	return &Renderer{
		screen:  screen,
		pal:     newPalette(opts.Mono),
		opts:    opts,
		metrics: metrics,
	}
}

// Draw implements engine.Renderer
func (r *Renderer) Draw(f engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = f
	r.paint(f, "")
	r.screen.Show()
}

// Banner repaints the last frame with msg in place of the label
func (r *Renderer) Banner(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paint(r.last, msg)
	r.screen.Show()
}

func (r *Renderer) paint(f engine.Frame, banner string) {
	r.screen.Clear()

	for _, d := range f.Dots {
		r.drawDisc(d.X, d.Y, f.DotRadius, d.Visual)
	}

	label := f.Label
	if banner != "" {
		label = banner
	}
	col, row := LogicalToCell(f.LabelAnchor.X, f.LabelAnchor.Y)
	r.drawCentered(col, row, label, r.pal.label)

	if f.Results != nil {
		r.drawResults(f)
	}
	if r.opts.ShowStatus && r.metrics != nil {
		r.drawStatus(f)
	}
}

// drawDisc fills every cell whose center lies within radius of (cx, cy)
func (r *Renderer) drawDisc(cx, cy, radius int, v engine.DotVisual) {
	if int(v) >= len(r.pal.glyphs) {
		return
	}
	glyph, style := r.pal.glyphs[v], r.pal.styles[v]

	// The center cell is always drawn so tiny terminals still show every dot
	ccol, crow := LogicalToCell(cx, cy)
	r.screen.SetContent(ccol, crow, glyph, nil, style)

	_, rowMin := LogicalToCell(cx, cy-radius)
	_, rowMax := LogicalToCell(cx, cy+radius)
	for row := rowMin; row <= rowMax; row++ {
		for col := cx - radius; col <= cx+radius; col++ {
			x, y := CellToLogical(col, row)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				r.screen.SetContent(col, row, glyph, nil, style)
			}
		}
	}
}

// drawText writes s left to right from (col, row), clipping handled by tcell
func (r *Renderer) drawText(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (r *Renderer) drawCentered(col, row int, s string, style tcell.Style) {
	r.drawText(col-len([]rune(s))/2, row, s, style)
}

// drawResults lists the summary under the grid
func (r *Renderer) drawResults(f engine.Frame) {
	res := f.Results
	_, row := LogicalToCell(0, gridBottom(f))
	col, _ := LogicalToCell(f.Width/2, 0)
	row += 2

	lines := []string{
		fmt.Sprintf("Total %s  avg %s", seconds(res.Total), seconds(res.Average)),
		fmt.Sprintf("Fastest #%d %s  Slowest #%d %s",
			res.Fastest, seconds(res.FastestSplit), res.Slowest, seconds(res.SlowestSplit)),
		fmt.Sprintf("Misses %d", res.Misses),
	}
	for i, line := range lines {
		r.drawCentered(col, row+i, line, r.pal.text)
	}
	r.drawCentered(col, row+len(lines)+1, "r restart  q quit", r.pal.dim)
}

// drawStatus writes the session counters on the bottom row
func (r *Renderer) drawStatus(f engine.Frame) {
	_, rows := r.screen.Size()
	parts := []string{
		f.Phase.String(),
		fmt.Sprintf("hits %d", r.metrics.Int("tap.hits")),
		fmt.Sprintf("misses %d", r.metrics.Int("tap.misses")),
		fmt.Sprintf("games %d", r.metrics.Int("session.games")),
		fmt.Sprintf("frames %d", r.metrics.Int("loop.frames")),
	}
	r.drawText(0, rows-1, strings.Join(parts, "  "), r.pal.dim)
}

// gridBottom returns the logical y just below the lowest dot
func gridBottom(f engine.Frame) int {
	bottom := 0
	for _, d := range f.Dots {
		bottom = max(bottom, d.Y+f.DotRadius)
	}
	return bottom
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
