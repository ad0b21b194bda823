// Package input translates SDL2 events into viewer gestures and commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is what an event asks the application to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionOrbit      // left-drag
	ActionPan        // right-drag, ignored while panning is disabled
	ActionZoom       // wheel
	ActionBlueprint  // B
	ActionModel      // M
	ActionScreenshot // F12
	ActionReload     // R
)

// Event is a translated input event.
type Event struct {
	Action Action
	Width  int     // ActionResize
	Height int     // ActionResize
	DX, DY float32 // ActionOrbit, ActionPan: pixels moved
	Zoom   float32 // ActionZoom: wheel notches, positive zooms in
}

// keyActions maps key presses to commands.
var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_B:      ActionBlueprint,
	sdl.SCANCODE_M:      ActionModel,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_R:      ActionReload,
	sdl.SCANCODE_ESCAPE: ActionQuit,
}

// Input tracks drag state across events.
type Input struct {
	events   []Event
	orbiting bool
	panning  bool
}

// New creates an input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update drains the SDL event queue. It returns true if the application
// should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := i.Translate(ev); ok {
			i.events = append(i.events, e)
			if e.Action == ActionQuit {
				quit = true
			}
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate converts one SDL event. ok is false for events the viewer does
// not care about.
func (i *Input) Translate(ev sdl.Event) (Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Event{Action: ActionQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			return Event{Action: ActionResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Event{}, false
		}
		if a, ok := keyActions[e.Keysym.Scancode]; ok {
			return Event{Action: a}, true
		}

	case *sdl.MouseButtonEvent:
		down := e.Type == sdl.MOUSEBUTTONDOWN
		switch e.Button {
		case sdl.BUTTON_LEFT:
			i.orbiting = down
		case sdl.BUTTON_RIGHT:
			i.panning = down
		}

	case *sdl.MouseMotionEvent:
		dx, dy := float32(e.XRel), float32(e.YRel)
		switch {
		case i.orbiting:
			return Event{Action: ActionOrbit, DX: dx, DY: dy}, true
		case i.panning:
			return Event{Action: ActionPan, DX: dx, DY: dy}, true
		}

	case *sdl.MouseWheelEvent:
		notches := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			notches = -notches
		}
		if notches != 0 {
			return Event{Action: ActionZoom, Zoom: notches}, true
		}
	}
	return Event{}, false
}
