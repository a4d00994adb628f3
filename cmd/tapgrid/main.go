package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tapgrid/audio"
	"github.com/lixenwraith/tapgrid/config"
	"github.com/lixenwraith/tapgrid/core"
	"github.com/lixenwraith/tapgrid/engine"
	"github.com/lixenwraith/tapgrid/status"
	"github.com/lixenwraith/tapgrid/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic recovery on the main goroutine, core.Go covers the others
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := core.SetupLogging(flags.Debug, "tapgrid"); logFile != nil {
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)
	defer screen.Fini()

	// Audio is optional, the bell covers a missing device
	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable (continuing with terminal bell): %v", err)
	} else {
		defer sound.Cleanup()
	}

	reg := status.NewRegistry()
	renderer := terminal.NewRenderer(screen, reg, terminal.Options{
		Mono:       cfg.Display.ColorMode == config.ColorMono,
		ShowStatus: cfg.Display.ShowStatus,
	})
	session := engine.NewSession(cfg.SessionConfig(), renderer,
		engine.WithFeedback(audio.Fallback(sound, terminal.BellFeedback(screen))),
		engine.WithMetrics(reg),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := terminal.NewApp(screen, session, renderer).Run(ctx); err != nil {
		log.Printf("terminal: %v", err)
		return 1
	}
	log.Printf("exit: %d games, %d hits, %d misses",
		reg.Int("session.games"), reg.Int("tap.hits"), reg.Int("tap.misses"))
	return 0
}
