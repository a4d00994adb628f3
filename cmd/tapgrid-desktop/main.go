package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lixenwraith/tapgrid/audio"
	"github.com/lixenwraith/tapgrid/config"
	"github.com/lixenwraith/tapgrid/core"
	"github.com/lixenwraith/tapgrid/desktop"
	"github.com/lixenwraith/tapgrid/desktop/glview"
	"github.com/lixenwraith/tapgrid/engine"
	"github.com/lixenwraith/tapgrid/status"
)

// GLFW must run on the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	width := flag.Int("width", 0, "Window width in screen coordinates")
	height := flag.Int("height", 0, "Window height in screen coordinates")
	flag.Parse()

	if logFile := core.SetupLogging(flags.Debug, "tapgrid-desktop"); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Resolve(flags.Path, os.Getenv, flags.Apply)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	if flags.DumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable (continuing silent): %v", err)
	} else {
		defer sound.Cleanup()
	}

	sink := &desktop.FrameSink{}
	reg := status.NewRegistry()
	session := engine.NewSession(cfg.SessionConfig(), sink,
		engine.WithFeedback(audio.Fallback(sound, nil)),
		engine.WithMetrics(reg),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := glview.Run(ctx, session, sink, glview.Options{Width: *width, Height: *height}); err != nil {
		fmt.Fprintf(os.Stderr, "desktop: %v\n", err)
		return 1
	}
	log.Printf("exit: %d games, %d hits, %d misses",
		reg.Int("session.games"), reg.Int("tap.hits"), reg.Int("tap.misses"))
	return 0
}
