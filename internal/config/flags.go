package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagRows       = flag.Int("rows", 0, "Board rows")
	flagCols       = flag.Int("cols", 0, "Board columns")
	flagColors     = flag.Int("colors", 0, "Palette size")
	flagSeed       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	flagMute       = flag.Bool("mute", false, "Disable sound effects")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit (\"default\" for the user config dir)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config target, or "" when not requested.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagRows > 0 {
		cfg.Board.Rows = *flagRows
	}
	if *flagCols > 0 {
		cfg.Board.Cols = *flagCols
	}
	if *flagColors > 0 {
		cfg.Board.Colors = *flagColors
	}
	if *flagSeed != 0 {
		cfg.Board.Seed = *flagSeed
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
}
