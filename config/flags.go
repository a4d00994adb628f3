package config

import "flag"

// Flags holds the command-line overrides shared by both frontends
type Flags struct {
	Path       string
	Debug      bool
	DumpConfig bool

	fs       *flag.FlagSet
	noSound  bool
	volume   int
	mono     bool
	noStatus bool
	label    string
}

// RegisterFlags defines the common flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "Path to a TOML config file")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug logs to logs/")
	fs.BoolVar(&f.DumpConfig, "dump-config", false, "Print the resolved config as TOML and exit")
	fs.BoolVar(&f.noSound, "no-sound", false, "Disable audio feedback")
	fs.IntVar(&f.volume, "volume", 100, "Master volume, 0-100")
	fs.BoolVar(&f.mono, "mono", false, "Terminal: glyph shading instead of colors")
	fs.BoolVar(&f.noStatus, "no-status", false, "Terminal: hide the status line")
	fs.StringVar(&f.label, "label", "", "Text shown before the countdown")
	return f
}

// Apply copies the flags the user set onto c, unset flags leave c untouched
func (f *Flags) Apply(c *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "no-sound":
			c.Audio.Enabled = !f.noSound
		case "volume":
			c.Audio.MasterVolume = float64(f.volume) / 100.0
		case "mono":
			if f.mono {
				c.Display.ColorMode = ColorMono
			} else {
				c.Display.ColorMode = ColorAuto
			}
		case "no-status":
			c.Display.ShowStatus = !f.noStatus
		case "label":
			c.Game.WaitingLabel = f.label
		}
	})
}
