// Package ebitenui runs the game in an ebiten window.
package ebitenui

import (
	"errors"
	"fmt"

	"elastic-snake/game"
	"elastic-snake/ui/view"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var keyBindings = map[game.Action][]ebiten.Key{
	game.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	game.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	game.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	game.ActionPause:   {ebiten.KeySpace},
	game.ActionConfirm: {ebiten.KeyEnter},
	game.ActionQuit:    {ebiten.KeyEscape},
}

type Keyboard struct{}

func (Keyboard) Held(a game.Action) bool {
	for _, key := range keyBindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

type Options struct {
	Width, Height int
	Title         string
	Pilot         game.Input
}

// Game adapts *game.Game to ebiten.Game.
type Game struct {
	g      *game.Game
	in     game.Input
	face   font.Face
	width  int
	height int
}

func New(g *game.Game, opts Options) *Game {
	var in game.Input = Keyboard{}
	if opts.Pilot != nil {
		in = game.Inputs{Keyboard{}, opts.Pilot}
	}
	return &Game{
		g:      g,
		in:     in,
		face:   basicfont.Face7x13,
		width:  opts.Width,
		height: opts.Height,
	}
}

func Run(g *game.Game, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(New(g, opts)); err != nil {
		return err
	}
	glog.Info("ebiten window closed")
	return nil
}

func (e *Game) Update() error {
	if err := e.g.Update(e.in); err != nil {
		if errors.Is(err, game.ErrQuit) {
			glog.Info("quit requested")
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (e *Game) Draw(screen *ebiten.Image) {
	screen.Fill(view.Background)

	l := view.NewLayout(e.width, e.height, e.g.Grid().Width)
	vector.DrawFilledRect(screen,
		float32(l.OffsetX), float32(l.OffsetY),
		float32(l.Size), float32(l.Size),
		view.Board, false)

	snake := e.g.Snake()
	sq := float32(l.Square)
	for _, p := range snake.Body {
		x, y := l.Cell(p)
		vector.DrawFilledRect(screen, float32(x), float32(y), sq, sq, view.Body, false)
	}
	x, y := l.Cell(snake.Head)
	vector.DrawFilledRect(screen, float32(x), float32(y), sq, sq, view.Head, false)

	cx, cy, r := l.Circle(e.g.Fruit())
	vector.DrawFilledCircle(screen, cx, cy, r, view.Fruit, true)

	lineHeight := e.face.Metrics().Height.Ceil()
	e.drawCentered(screen, view.ScoreText(e.g.Score()), l.OffsetY-lineHeight)
	if msg, ok := view.Overlay(e.g.Phase()); ok {
		e.drawCentered(screen, msg, l.OffsetY+2*lineHeight)
	}

	stats := e.g.GetStateManager()
	text.Draw(screen, view.BestText(stats.GetHighScore()), e.face, 10, 10+lineHeight, view.Text)
	text.Draw(screen, fmt.Sprintf("Games: %d", stats.GetGamesPlayed()), e.face, 10, 10+2*lineHeight, view.Text)
}

func (e *Game) drawCentered(screen *ebiten.Image, s string, y int) {
	bounds := text.BoundString(e.face, s)
	text.Draw(screen, s, e.face, view.CenterX(e.width, bounds.Dx()), y, view.Text)
}

func (e *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
