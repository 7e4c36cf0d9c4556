// Package view holds what every frontend draws the same way: board
// geometry, colors and the text shown on screen.
package view

import (
	"fmt"
	"image"
	"image/color"

	"elastic-snake/game"
	"elastic-snake/game/types"
)

const (
	HeaderHeight = 40 // room above the board for the score
	BoardMargin  = 80
)

const (
	PausedText   = "Paused. Press [enter] to continue."
	GameOverText = "Game Over. Press [enter] to play again."
)

// Colors, RGB values match raylib's named colors.
var (
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Board      = color.RGBA{R: 0, G: 82, B: 172, A: 255}
	Body       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Head       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Fruit      = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	Text       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Layout places a square board of Squares x Squares cells in a window.
type Layout struct {
	Square  int // cell side in pixels
	Size    int // board side in pixels
	OffsetX int
	OffsetY int
}

// NewLayout fits the board to a width x height window, leaving
// HeaderHeight pixels above it. Cells are at least one pixel wide.
func NewLayout(width, height, squares int) Layout {
	size := min(width, height-HeaderHeight)
	sq := max((size-BoardMargin)/squares, 1)
	size = sq * squares
	return Layout{
		Square:  sq,
		Size:    size,
		OffsetX: (width - size) / 2,
		OffsetY: (height-size)/2 + HeaderHeight,
	}
}

// Cell returns the top left pixel of grid cell p.
func (l Layout) Cell(p types.Point) (x, y int) {
	return l.OffsetX + p.X*l.Square, l.OffsetY + p.Y*l.Square
}

// Circle returns center and radius of a circle inscribed in cell p.
func (l Layout) Circle(p types.Point) (cx, cy, r float32) {
	x, y := l.Cell(p)
	half := float32(l.Square) / 2
	return float32(x) + half, float32(y) + half, half
}

// CenterX returns the x at which text of the given width is centered in
// a window of the given width.
func CenterX(windowWidth, textWidth int) int {
	return windowWidth/2 - textWidth/2
}

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func BestText(best int) string {
	return fmt.Sprintf("Best: %d", best)
}

// Overlay returns the prompt for the phase, if any.
func Overlay(p game.Phase) (string, bool) {
	switch p {
	case game.PhasePaused:
		return PausedText, true
	case game.PhaseGameOver:
		return GameOverText, true
	}
	return "", false
}

// History maps the last limit scores onto a width x height box with the
// origin at its top left. The best score shown touches the top edge.
func History(scores []int, limit, width, height int) []image.Point {
	if len(scores) > limit {
		scores = scores[len(scores)-limit:]
	}
	if len(scores) == 0 {
		return nil
	}

	best := 1
	for _, s := range scores {
		best = max(best, s)
	}
	step := 0
	if limit > 1 {
		step = width / (limit - 1)
	}

	points := make([]image.Point, len(scores))
	for i, s := range scores {
		points[i] = image.Point{X: i * step, Y: height - height*s/best}
	}
	return points
}
