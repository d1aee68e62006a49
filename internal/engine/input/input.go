// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft   Button = sdl.BUTTON_LEFT
	ButtonMiddle Button = sdl.BUTTON_MIDDLE
	ButtonRight  Button = sdl.BUTTON_RIGHT
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int32
	MouseY int32
	Button Button
	// WheelY is the vertical scroll delta in wheel steps; positive away
	// from the user.
	WheelY float32
}

// Input polls SDL and converts raw events into viewer events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them. Returns true on quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: e.X,
				MouseY: e.Y,
			})

		case *sdl.MouseButtonEvent:
			typ := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = EventMouseUp
			}
			i.events = append(i.events, Event{
				Type:   typ,
				MouseX: e.X,
				MouseY: e.Y,
				Button: Button(e.Button),
			})

		case *sdl.MouseWheelEvent:
			wy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wy = -wy
			}
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				WheelY: wy,
			})
		}
	}

	return quit
}

// Events returns the events collected by the last Update.
func (i *Input) Events() []Event {
	return i.events
}
