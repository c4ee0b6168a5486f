package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestClicksFiltersLeftButton(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventMouseDown, MouseX: 1, MouseY: 2, Button: ButtonLeft},
		Event{Type: EventMouseDown, MouseX: 3, MouseY: 4, Button: 3},
		Event{Type: EventKeyDown, Key: KeyReset},
		Event{Type: EventMouseDown, MouseX: 5, MouseY: 6, Button: ButtonLeft},
	)

	clicks := in.Clicks()
	if len(clicks) != 2 {
		t.Fatalf("got %d clicks, want 2", len(clicks))
	}
	if clicks[0].MouseX != 1 || clicks[1].MouseX != 5 {
		t.Errorf("clicks out of order: %+v", clicks)
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: KeyEscape})

	if !in.IsKeyPressed(KeyEscape) {
		t.Error("expected escape to be pressed")
	}
	if in.IsKeyPressed(KeyScreenshot) {
		t.Error("screenshot key was not pressed")
	}
}

func TestGameKeysDistinct(t *testing.T) {
	keys := map[string]sdl.Scancode{
		"escape":     KeyEscape,
		"reset":      KeyReset,
		"screenshot": KeyScreenshot,
		"mute":       KeyMute,
	}
	seen := make(map[sdl.Scancode]string)
	for name, k := range keys {
		if other, ok := seen[k]; ok {
			t.Errorf("%s and %s share scancode %d", name, other, k)
		}
		seen[k] = name
	}

	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: KeyMute})
	if !in.IsKeyPressed(KeyMute) || in.IsKeyPressed(KeyReset) {
		t.Error("mute key press not reported on its own")
	}
}
