// Package game implements the main game loop.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/colorgrid/internal/config"
	"github.com/Faultbox/colorgrid/internal/engine/audio"
	"github.com/Faultbox/colorgrid/internal/engine/capture"
	"github.com/Faultbox/colorgrid/internal/engine/input"
	"github.com/Faultbox/colorgrid/internal/engine/renderer"
	"github.com/Faultbox/colorgrid/internal/engine/window"
	"github.com/Faultbox/colorgrid/internal/game/board"
	"github.com/Faultbox/colorgrid/internal/logger"
)

// clearColor is the background shown behind the grid.
var clearColor = [3]float32{0.2, 0.3, 0.3}

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	session  *Session
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	capture  *capture.Capturer
	log      *zap.Logger
}

// New creates the session, then the window, renderer and audio, in that order.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	g.session, err = NewSession(cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := g.window.GetDrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:           fbWidth,
		Height:          fbHeight,
		Cells:           g.session.Board().Len(),
		VerticesPerCell: board.VerticesPerCell,
		FloatsPerVertex: board.FloatsPerVertex,
		ClearColor:      clearColor,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.capture = capture.New(cfg.Capture.Dir, cfg.Capture.Prefix)

	g.audio = audio.New(float64(cfg.Audio.Volume), cfg.Audio.Muted)
	if !g.audio.Muted() {
		if err := g.audio.Init(); err != nil {
			g.log.Warn("audio disabled", zap.Error(err))
		}
	}

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop. It returns when the window is closed or Escape is pressed;
// the frame in progress is always finished first.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		// 1. Process input
		if g.input.Update() {
			g.running = false
		}
		g.handleEvents()

		// 2. Upload changed cells
		if err := g.session.Flush(g.renderer); err != nil {
			return fmt.Errorf("upload error: %w", err)
		}

		// 3. Render
		g.renderer.Begin()
		g.renderer.DrawCells()

		if g.input.IsKeyPressed(input.KeyScreenshot) {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies this frame's input before anything is drawn.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := g.window.GetDrawableSize()
			g.renderer.Resize(w, h)

		case input.EventKeyDown:
			switch event.Key {
			case input.KeyEscape:
				g.running = false
			case input.KeyReset:
				g.session.Reset()
			case input.KeyMute:
				g.toggleMute()
			}
		}
	}

	// Mouse coordinates are in window units, so map against the window size.
	w, h := g.window.GetSize()
	for _, click := range g.input.Clicks() {
		m, ok := g.session.HandleClick(float64(click.MouseX), float64(click.MouseY), w, h)
		if !ok {
			continue
		}
		if err := g.audio.PlayClear(len(m.Changed)); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
			g.log.Warn("clear sound failed", zap.Error(err))
		}
	}
}

// toggleMute flips sound effects on or off, opening the device on first unmute.
func (g *Game) toggleMute() {
	muted := !g.audio.Muted()
	if err := g.audio.SetMuted(muted); err != nil {
		g.log.Warn("audio unavailable", zap.Error(err))
		return
	}
	g.log.Info("sound toggled", zap.Bool("muted", muted))
}

// screenshot saves the frame just drawn.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.capture.SavePixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases resources in reverse order of acquisition.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
