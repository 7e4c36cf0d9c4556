package ui

import (
	"errors"

	"elastic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

type Options struct {
	Width, Height int
	Title         string
	Pilot         game.Input // optional, merged with the keyboard
}

// Run opens a window and drives g once per frame until the window is
// closed or the player quits.
func Run(g *game.Game, opts Options) error {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// Escape is the quit action, not raylib's close shortcut.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	var in game.Input = Keyboard{}
	if opts.Pilot != nil {
		in = game.Inputs{Keyboard{}, opts.Pilot}
	}

	renderer := NewRenderer()
	for !rl.WindowShouldClose() {
		if err := g.Update(in); err != nil {
			if errors.Is(err, game.ErrQuit) {
				glog.Info("quit requested")
				return nil
			}
			return err
		}
		renderer.Draw(g)
	}
	glog.Info("window closed")
	return nil
}
