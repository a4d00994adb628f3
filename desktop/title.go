package desktop

import (
	"fmt"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/engine"
)

// Title renders the frame label into the window title
func Title(f engine.Frame) string {
	if f.Results != nil {
		r := f.Results
		return fmt.Sprintf("%s - %s s (avg %.3f, best #%d, misses %d) - R to restart",
			constants.DesktopWindowTitle, f.Label, r.Average.Seconds(), r.Fastest, r.Misses)
	}
	if f.Label == "" {
		return constants.DesktopWindowTitle
	}
	return constants.DesktopWindowTitle + " - " + f.Label
}
