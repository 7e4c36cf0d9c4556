package game

import (
	"elastic-snake/game/types"
)

// Action is a logical key the game reacts to.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionConfirm
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionConfirm:
		return "confirm"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Input reports which actions are held during the current frame.
type Input interface {
	Held(a Action) bool
}

// InputFunc adapts a plain function to Input.
type InputFunc func(a Action) bool

func (f InputFunc) Held(a Action) bool {
	return f(a)
}

// KeySet is an Input backed by a map. Missing entries are not held.
type KeySet map[Action]bool

func (k KeySet) Held(a Action) bool {
	return k[a]
}

// NoInput holds nothing.
var NoInput Input = KeySet(nil)

// Inputs merges several sources; an action is held if any source holds it.
type Inputs []Input

func (in Inputs) Held(a Action) bool {
	for _, src := range in {
		if src != nil && src.Held(a) {
			return true
		}
	}
	return false
}

type directionRule struct {
	action    Action
	dir       types.Point
	forbidden types.Point // last applied direction that blocks this rule
}

// Evaluated in order, first match wins.
var directionRules = []directionRule{
	{ActionRight, types.Right, types.Left},
	{ActionLeft, types.Left, types.Right},
	{ActionUp, types.Up, types.Down},
	{ActionDown, types.Down, types.Up},
}

// ResolveDirection picks the direction for the next tick from the held keys.
// A held key that would reverse odir is skipped and the next rule is tried.
func ResolveDirection(odir types.Point, in Input) (types.Point, bool) {
	for _, rule := range directionRules {
		if in.Held(rule.action) && odir != rule.forbidden {
			return rule.dir, true
		}
	}
	return types.Point{}, false
}
