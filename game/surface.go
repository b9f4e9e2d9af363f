package game

import "snake-arcade/game/types"

// EventKind distinguishes input events
type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
)

// Event is one input event reported by a Surface.
// Direction is only meaningful for EventKey.
type Event struct {
	Kind      EventKind
	Direction types.Direction
}

// QuitEvent asks the loop to stop
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent is a directional key press
func KeyEvent(d types.Direction) Event {
	return Event{Kind: EventKey, Direction: d}
}

// Surface is the rendering and input collaborator of the loop
type Surface interface {
	types.Canvas
	ClearBoard(bg types.Color)
	Present()
	// PollEvents returns the events received since the last call without blocking
	PollEvents() []Event
}

// Clock paces the loop
type Clock interface {
	// Tick blocks until the next frame boundary at rate ticks per second
	Tick(rate int)
}

// Sound plays the game cues
type Sound interface {
	PlayEat()
	PlayCrash()
}

type silence struct{}

func (silence) PlayEat()   {}
func (silence) PlayCrash() {}
