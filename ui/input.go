package ui

import (
	"elastic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = map[game.Action][]int32{
	game.ActionRight:   {rl.KeyRight, rl.KeyD},
	game.ActionLeft:    {rl.KeyLeft, rl.KeyA},
	game.ActionUp:      {rl.KeyUp, rl.KeyW},
	game.ActionDown:    {rl.KeyDown, rl.KeyS},
	game.ActionPause:   {rl.KeySpace},
	game.ActionConfirm: {rl.KeyEnter},
	game.ActionQuit:    {rl.KeyEscape},
}

// Keyboard reads raylib's key state. A key counts as held for every frame
// it is down.
type Keyboard struct{}

func (Keyboard) Held(a game.Action) bool {
	for _, key := range keyBindings[a] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}
