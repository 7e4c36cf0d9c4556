package game

import (
	"elastic-snake/game/manager"
	"elastic-snake/game/types"
)

type EventType int

const (
	EventFruitEaten EventType = iota
	EventGameOver
	EventPaused
	EventResumed
	EventRestarted
)

func (t EventType) String() string {
	switch t {
	case EventFruitEaten:
		return "fruit_eaten"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRestarted:
		return "restarted"
	}
	return "unknown"
}

// Event is published after the state change it describes.
type Event struct {
	Type  EventType
	Score int
	Fruit types.Point           // new fruit position for EventFruitEaten
	Cause manager.CollisionType // set for EventGameOver
}

// EventSink receives events on the goroutine that calls Game.Update.
type EventSink interface {
	Handle(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

func (f EventSinkFunc) Handle(e Event) {
	f(e)
}
