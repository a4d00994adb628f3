package glview

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/desktop"
	"github.com/lixenwraith/tapgrid/engine"
)

// mouseLeftID keys the left button in the edge detector apart from keyboard keys
const mouseLeftID = -1

// Options sizes the window
type Options struct {
	Width, Height int
}

// Run opens the window and drives session until the window closes or ctx is done
// It must be called from the main goroutine, GLFW and GL stay on the locked thread
func Run(ctx context.Context, session *engine.Session, sink *desktop.FrameSink, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = constants.DesktopWindowWidth, constants.DesktopWindowHeight
	}

	window, err := initWindow(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("glview: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rend, err := newRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.destroy()

	fbW, fbH := window.GetFramebufferSize()
	session.InitSession(fbW, fbH)
	session.SetRunning(true)
	defer session.SetRunning(false)

	window.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			session.Pause()
		} else {
			session.Resume()
		}
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		// Minimizing reports 0x0, the iconify callback handles that case
		if width <= 0 || height <= 0 {
			return
		}
		if w, h := session.Size(); w != width || h != height {
			session.Restart(width, height)
		}
	})

	edges := desktop.NewEdgeDetector()
	pressed := func(key glfw.Key) bool {
		return edges.Pressed(int(key), window.GetKey(key) == glfw.Press)
	}

	title := ""
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			window.SetShouldClose(true)
			continue
		default:
		}

		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press || pressed(glfw.KeyQ) {
			window.SetShouldClose(true)
		}
		togglePause := pressed(glfw.KeyP)
		togglePause = pressed(glfw.KeySpace) || togglePause
		if togglePause {
			if session.IsPaused() {
				session.Resume()
			} else {
				session.Pause()
			}
		}
		if pressed(glfw.KeyR) {
			w, h := window.GetFramebufferSize()
			session.Restart(w, h)
		}

		fbW, fbH := window.GetFramebufferSize()
		if edges.Pressed(mouseLeftID, window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press) && !session.IsPaused() {
			cx, cy := window.GetCursorPos()
			winW, winH := window.GetSize()
			session.HandleTap(desktop.ToFramebuffer(cx, cy, winW, winH, fbW, fbH))
		}

		f := sink.Latest()
		rend.draw(f, fbW, fbH)

		next := constants.DesktopWindowTitle
		switch {
		case session.IsPaused():
			next += " - Paused"
		case f != nil:
			next = desktop.Title(*f)
		}
		if next != title {
			window.SetTitle(next)
			title = next
		}

		window.SwapBuffers()
	}
	return nil
}
