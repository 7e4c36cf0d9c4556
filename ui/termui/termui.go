// Package termui plays the game in a terminal through tcell.
//
// Terminals report key presses, not key state, so a key event counts as
// held for the frame it arrives in and is released afterwards.
package termui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"elastic-snake/game"
	"elastic-snake/game/types"
	"elastic-snake/ui/view"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

const (
	frameInterval = time.Second / 60
	cellWidth     = 2 // columns per grid cell, keeps cells roughly square
	boardTop      = 2 // rows above the board: score line and a gap
)

const (
	headRune  = '█'
	bodyRune  = '▓'
	fruitRune = '●'
)

var keyBindings = map[tcell.Key]game.Action{
	tcell.KeyRight:  game.ActionRight,
	tcell.KeyLeft:   game.ActionLeft,
	tcell.KeyUp:     game.ActionUp,
	tcell.KeyDown:   game.ActionDown,
	tcell.KeyEnter:  game.ActionConfirm,
	tcell.KeyEscape: game.ActionQuit,
}

var runeBindings = map[rune]game.Action{
	'd': game.ActionRight,
	'a': game.ActionLeft,
	'w': game.ActionUp,
	's': game.ActionDown,
	' ': game.ActionPause,
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	boardStyle = tcell.StyleDefault.Background(tcellColor(view.Board))
	headStyle  = boardStyle.Foreground(tcellColor(view.Head))
	bodyStyle  = boardStyle.Foreground(tcellColor(view.Body))
	fruitStyle = boardStyle.Foreground(tcellColor(view.Fruit))
	textStyle  = tcell.StyleDefault.Foreground(tcellColor(view.Text))
)

type Terminal struct {
	screen tcell.Screen
	g      *game.Game
	pilot  game.Input
	keys   game.KeySet
}

// New wraps an initialized screen. pilot may be nil.
func New(screen tcell.Screen, g *game.Game, pilot game.Input) *Terminal {
	return &Terminal{
		screen: screen,
		g:      g,
		pilot:  pilot,
		keys:   game.KeySet{},
	}
}

// Run takes over the terminal until the player quits.
func Run(ctx context.Context, g *game.Game, pilot game.Input) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()

	return New(s, g, pilot).Loop(ctx)
}

// Loop polls terminal events on a separate goroutine and runs one game
// frame per tick. It returns nil on quit, Ctrl-C or context cancellation.
func (t *Terminal) Loop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isInterrupt(ev) {
					glog.Info("interrupted")
					return nil
				}
				t.Latch(ev)
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			if err := t.Frame(); err != nil {
				if errors.Is(err, game.ErrQuit) {
					glog.Info("quit requested")
					return nil
				}
				return err
			}
		}
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c'
}

// Latch marks the action bound to ev as held until the next frame.
func (t *Terminal) Latch(ev *tcell.EventKey) {
	a, ok := keyBindings[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		a, ok = runeBindings[ev.Rune()]
	}
	if ok {
		t.keys[a] = true
	}
}

// Frame runs one game update with the latched keys, releases them and
// redraws.
func (t *Terminal) Frame() error {
	var in game.Input = t.keys
	if t.pilot != nil {
		in = game.Inputs{t.keys, t.pilot}
	}
	err := t.g.Update(in)
	t.keys = game.KeySet{}
	t.Draw()
	return err
}

// origin returns the screen column and row of grid cell (0, 0).
func (t *Terminal) origin() (int, int) {
	w, _ := t.screen.Size()
	return max((w-t.g.Grid().Width*cellWidth)/2, 0), boardTop
}

func (t *Terminal) cell(p types.Point) (int, int) {
	x, y := t.origin()
	return x + p.X*cellWidth, y + p.Y
}

func (t *Terminal) Draw() {
	t.screen.Clear()
	grid := t.g.Grid()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			t.fill(types.Point{X: x, Y: y}, ' ', boardStyle)
		}
	}

	snake := t.g.Snake()
	for _, p := range snake.Body {
		t.fill(p, bodyRune, bodyStyle)
	}
	if grid.Contains(snake.Head) {
		t.fill(snake.Head, headRune, headStyle)
	}
	fx, fy := t.cell(t.g.Fruit())
	t.screen.SetContent(fx, fy, fruitRune, nil, fruitStyle)

	header := view.ScoreText(t.g.Score()) + "  " + view.BestText(t.g.HighScore())
	t.drawCentered(0, header)
	if msg, ok := view.Overlay(t.g.Phase()); ok {
		t.drawCentered(boardTop+grid.Height/2, msg)
	}
	t.screen.Show()
}

func (t *Terminal) fill(p types.Point, r rune, style tcell.Style) {
	x, y := t.cell(p)
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) drawCentered(row int, s string) {
	w, _ := t.screen.Size()
	col := max(view.CenterX(w, len(s)), 0)
	for i, r := range []rune(s) {
		t.screen.SetContent(col+i, row, r, nil, textStyle)
	}
}
