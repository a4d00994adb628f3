package terminal

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tapgrid/core"
	"github.com/lixenwraith/tapgrid/engine"
)

// App wires a tcell screen to a session
type App struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *Renderer
	input    *InputHandler
}

// NewApp creates the frontend, the session must draw through renderer
func NewApp(screen tcell.Screen, session *engine.Session, renderer *Renderer) *App {
	return &App{
		screen:   screen,
		session:  session,
		renderer: renderer,
		input:    NewInputHandler(session),
	}
}

// Run starts a session at the current screen size and processes events until quit or ctx is done
// The caller owns the screen and calls Fini after Run returns
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseButtonEvents)
	a.screen.HideCursor()

	w, h := LogicalSize(a.screen.Size())
	a.session.InitSession(w, h)
	a.session.SetRunning(true)
	defer a.session.SetRunning(false)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	// Event pump, PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			log.Printf("terminal: %v", ctx.Err())
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.screen.Sync()
			}
			switch a.input.Handle(ev) {
			case ActionQuit:
				return nil
			case ActionPaused:
				a.renderer.Banner("Paused, p to resume")
			}
		}
	}
}

// BellFeedback rings the terminal bell, used when no audio device is available
func BellFeedback(screen tcell.Screen) engine.Feedback {
	return engine.FeedbackFunc(func(engine.PulseKind) {
		if err := screen.Beep(); err != nil {
			log.Printf("terminal: bell: %v", err)
		}
	})
}
