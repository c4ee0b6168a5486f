// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDown
)

// Keys the game reacts to.
const (
	KeyEscape     = sdl.Scancode(sdl.SCANCODE_ESCAPE)
	KeyReset      = sdl.Scancode(sdl.SCANCODE_R)
	KeyScreenshot = sdl.Scancode(sdl.SCANCODE_F12)
	KeyMute       = sdl.Scancode(sdl.SCANCODE_M)
)

// ButtonLeft is the primary mouse button.
const ButtonLeft = uint8(sdl.BUTTON_LEFT)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	MouseX int
	MouseY int
	Button uint8
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains pending SDL events and converts them to game events.
// Returns true if a quit was requested. Events queued before the quit in the
// same frame are kept so they can still be handled.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				// The drawable size is queried from the window, which
				// differs from Data1/Data2 on high-DPI displays.
				i.events = append(i.events, Event{Type: EventWindowResize})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Clicks returns the left-button presses of this frame in arrival order.
func (i *Input) Clicks() []Event {
	var clicks []Event
	for _, e := range i.events {
		if e.Type == EventMouseDown && e.Button == ButtonLeft {
			clicks = append(clicks, e)
		}
	}
	return clicks
}
