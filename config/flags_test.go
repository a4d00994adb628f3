package config

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("tapgrid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return f
}

func TestFlagsUnsetLeaveConfig(t *testing.T) {
	f := parseFlags(t)
	cfg := Default()
	cfg.Audio.MasterVolume = 0.3
	f.Apply(&cfg)
	if cfg.Audio.MasterVolume != 0.3 || !cfg.Audio.Enabled {
		t.Errorf("unset flags changed config: %+v", cfg.Audio)
	}
}

func TestFlagsApply(t *testing.T) {
	f := parseFlags(t, "-config", "x.toml", "-debug", "-no-sound", "-volume", "25", "-mono", "-no-status", "-label", "Go")
	if f.Path != "x.toml" || !f.Debug {
		t.Errorf("path/debug = %q/%v", f.Path, f.Debug)
	}

	cfg := Default()
	f.Apply(&cfg)
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Display.ColorMode != ColorMono || cfg.Display.ShowStatus {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Game.WaitingLabel != "Go" {
		t.Errorf("label = %q", cfg.Game.WaitingLabel)
	}
}

func TestFlagsOutOfRangeVolumeFailsValidation(t *testing.T) {
	f := parseFlags(t, "-volume", "150")
	_, err := Resolve("", func(string) string { return "" }, f.Apply)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Resolve = %v, want ErrInvalidConfig", err)
	}
}
