// Package config loads game settings from defaults, an optional TOML file, the environment and flags
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tapgrid/audio"
	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/engine"
)

// ErrInvalidConfig marks a config that loaded but holds unusable values
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides
const (
	EnvSound  = "TAPGRID_SOUND"  // bool
	EnvVolume = "TAPGRID_VOLUME" // 0-100
)

// Color modes accepted by the terminal frontend
const (
	ColorAuto = "auto"
	ColorMono = "mono"
)

// Duration is a time.Duration written as a Go duration string ("20ms") in TOML
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the full settings tree
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
}

// GameConfig holds the session geometry and timing
type GameConfig struct {
	GridSize      int      `toml:"grid_size"`
	TickInterval  Duration `toml:"tick_interval"`
	StartDelay    Duration `toml:"start_delay"`
	CountdownStep Duration `toml:"countdown_step"`
	CountdownFrom int      `toml:"countdown_from"`
	WaitingLabel  string   `toml:"waiting_label"`
}

// AudioConfig holds the feedback sound settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// DisplayConfig holds frontend presentation settings
type DisplayConfig struct {
	ColorMode  string `toml:"color_mode"`
	ShowStatus bool   `toml:"show_status"`
}

// Default returns the reference settings
func Default() Config {
	return Config{
		Game: GameConfig{
			GridSize:      constants.GridSize,
			TickInterval:  Duration(constants.TickInterval),
			StartDelay:    Duration(constants.StartDelay),
			CountdownStep: Duration(constants.CountdownStep),
			CountdownFrom: constants.CountdownFrom,
			WaitingLabel:  constants.WaitingLabel,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
		},
		Display: DisplayConfig{
			ColorMode:  ColorAuto,
			ShowStatus: true,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path
// An empty path yields the defaults, unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config: %s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides, unparseable values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvSound); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// 0-100 converted to 0.0-1.0
	if v := getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}
}

// Validate reports the first unusable value wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.GridSize != constants.GridSize:
		return fmt.Errorf("%w: grid_size must be %d, got %d", ErrInvalidConfig, constants.GridSize, g.GridSize)
	case g.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	case g.StartDelay <= 0:
		return fmt.Errorf("%w: start_delay must be positive", ErrInvalidConfig)
	case g.CountdownStep <= 0:
		return fmt.Errorf("%w: countdown_step must be positive", ErrInvalidConfig)
	case g.CountdownFrom < 1:
		return fmt.Errorf("%w: countdown_from must be at least 1, got %d", ErrInvalidConfig, g.CountdownFrom)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master_volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.MasterVolume)
	case c.Display.ColorMode != ColorAuto && c.Display.ColorMode != ColorMono:
		return fmt.Errorf("%w: color_mode must be %q or %q, got %q", ErrInvalidConfig, ColorAuto, ColorMono, c.Display.ColorMode)
	}
	return nil
}

// SessionConfig converts the game section for engine.NewSession
func (c Config) SessionConfig() engine.SessionConfig {
	return engine.SessionConfig{
		GridSize:      c.Game.GridSize,
		TickInterval:  time.Duration(c.Game.TickInterval),
		StartDelay:    time.Duration(c.Game.StartDelay),
		CountdownStep: time.Duration(c.Game.CountdownStep),
		CountdownFrom: c.Game.CountdownFrom,
		WaitingLabel:  c.Game.WaitingLabel,
	}
}

// AudioSettings converts the audio section for audio.NewSoundManager
func (c Config) AudioSettings() audio.Settings {
	s := audio.DefaultSettings()
	s.Enabled = c.Audio.Enabled
	s.MasterVolume = c.Audio.MasterVolume
	return s
}

// Write encodes c as TOML
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// Resolve applies the full precedence chain: defaults, file at path, environment, then override
// override carries command-line flags and may be nil
func Resolve(path string, getenv func(string) string, override func(*Config)) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(getenv)
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
