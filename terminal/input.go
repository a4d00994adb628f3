package terminal

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tapgrid/engine"
)

// Controller is the part of engine.Session the input handler drives
type Controller interface {
	HandleTap(x, y int) engine.TapResult
	Pause()
	Resume()
	IsPaused() bool
	Restart(width, height int)
	Size() (width, height int)
}

// Action is what the event loop should do after an event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPaused
	ActionResumed
	ActionRestarted
)

// InputHandler translates tcell events into session calls
type InputHandler struct {
	ctrl Controller

	// Button1 state from the previous mouse event, taps fire on the press edge only
	buttonDown bool
}

// NewInputHandler creates a handler driving ctrl
func NewInputHandler(ctrl Controller) *InputHandler {
	return &InputHandler{ctrl: ctrl}
}

// Handle processes one event
func (h *InputHandler) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return h.handleMouse(ev)
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		lw, lh := LogicalSize(cols, rows)
		if cw, ch := h.ctrl.Size(); cw == lw && ch == lh {
			return ActionNone
		}
		log.Printf("terminal: resize to %dx%d cells", cols, rows)
		h.ctrl.Restart(lw, lh)
		return ActionRestarted
	}
	return ActionNone
}

func (h *InputHandler) handleMouse(ev *tcell.EventMouse) Action {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !h.buttonDown
	h.buttonDown = down
	if !pressed || h.ctrl.IsPaused() {
		return ActionNone
	}

	col, row := ev.Position()
	x, y := CellToLogical(col, row)
	h.ctrl.HandleTap(x, y)
	return ActionNone
}

func (h *InputHandler) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case 'p', 'P', ' ':
		if h.ctrl.IsPaused() {
			h.ctrl.Resume()
			return ActionResumed
		}
		h.ctrl.Pause()
		return ActionPaused
	case 'r', 'R':
		w, hgt := h.ctrl.Size()
		h.ctrl.Restart(w, hgt)
		return ActionRestarted
	}
	return ActionNone
}
