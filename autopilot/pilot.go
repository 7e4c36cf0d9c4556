// Package autopilot steers a game without a player. It plays greedily:
// head for the fruit, avoid cells that would end the round right away.
package autopilot

import (
	"elastic-snake/game"
	"elastic-snake/game/manager"
	"elastic-snake/game/types"
)

// candidates follow the same order the key resolver uses, so ties resolve
// the way a player holding several keys would see them resolve.
var candidates = []struct {
	action game.Action
	dir    types.Point
}{
	{game.ActionRight, types.Right},
	{game.ActionLeft, types.Left},
	{game.ActionUp, types.Up},
	{game.ActionDown, types.Down},
}

// Pilot is a game.Input that presses whatever key it would press if it
// were playing.
type Pilot struct {
	g            *game.Game
	collisionMgr *manager.CollisionManager
	restart      bool
}

// New returns a pilot for g. With restart set it confirms the game over
// prompt so demo mode keeps playing.
func New(g *game.Game, restart bool) *Pilot {
	return &Pilot{
		g:            g,
		collisionMgr: manager.NewCollisionManager(g.Grid()),
		restart:      restart,
	}
}

func (p *Pilot) Held(a game.Action) bool {
	switch p.g.Phase() {
	case game.PhaseGameOver:
		return a == game.ActionConfirm && p.restart
	case game.PhasePaused:
		return false
	}

	dir, ok := p.Choose()
	if !ok {
		return false
	}
	for _, c := range candidates {
		if c.action == a {
			return c.dir == dir
		}
	}
	return false
}

// Choose returns the direction the pilot wants for the next tick. ok is
// false when every legal move is dangerous; the snake then keeps going.
func (p *Pilot) Choose() (types.Point, bool) {
	snake := p.g.Snake()
	fruit := p.g.Fruit()

	best := types.Point{}
	bestDist := -1
	for _, c := range candidates {
		if c.dir == snake.ODir.Opposite() {
			continue
		}
		next := snake.Head.Add(c.dir)
		if p.collisionMgr.IsDanger(next, snake) {
			continue
		}
		dist := next.Manhattan(fruit)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && c.dir == snake.Dir) {
			best = c.dir
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}
