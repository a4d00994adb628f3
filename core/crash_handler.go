// Package core holds process-wide crash handling for goroutines that touch the screen
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the output device, satisfied by tcell.Screen and the desktop window
type Finalizer interface {
	Fini()
}

var crashScreen atomic.Pointer[Finalizer]

// SetCrashScreen registers the surface restored before a crash report is printed
func SetCrashScreen(f Finalizer) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&f)
}

// HandleCrash restores the screen, prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashScreen.Load(); f != nil {
		(*f).Fini()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// exit is swapped in tests
var exit = os.Exit

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
