// Package config handles game configuration loading and management.
package config

import "github.com/Faultbox/colorgrid/internal/game/board"

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Board    BoardConfig    `yaml:"board"`
	Audio    AudioConfig    `yaml:"audio"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// BoardConfig holds the grid layout.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"` // Palette size

	// Seed for the board's random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Volume float32 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Jogo das Cores",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Board: BoardConfig{
			Rows:   board.DefaultRows,
			Cols:   board.DefaultCols,
			Colors: board.DefaultPaletteSize,
		},
		Audio: AudioConfig{
			Volume: 0.6,
			Muted:  false,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "colorgrid",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}
