package ui

import (
	"fmt"
	"image/color"

	"elastic-snake/game"
	"elastic-snake/ui/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 50 // rounds shown in the history graph
	borderPadding = 10
	minFontSize   = 10
	maxFontSize   = 60
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       view.Layout
	fontSize     int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// UpdateDimensions recomputes the layout from the current window size.
func (r *Renderer) UpdateDimensions(squares int) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = view.NewLayout(int(r.screenWidth), int(r.screenHeight), squares)
	r.fontSize = min(max(int32(r.layout.Size/16), minFontSize), maxFontSize)
}

func toRL(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions(g.Grid().Width)
	rl.BeginDrawing()
	rl.ClearBackground(toRL(view.Background))

	l := r.layout
	rl.DrawRectangle(int32(l.OffsetX), int32(l.OffsetY), int32(l.Size), int32(l.Size), toRL(view.Board))

	snake := g.Snake()
	sq := int32(l.Square)
	for _, p := range snake.Body {
		x, y := l.Cell(p)
		rl.DrawRectangle(int32(x), int32(y), sq, sq, toRL(view.Body))
	}
	x, y := l.Cell(snake.Head)
	rl.DrawRectangle(int32(x), int32(y), sq, sq, toRL(view.Head))

	cx, cy, radius := l.Circle(g.Fruit())
	rl.DrawCircle(int32(cx), int32(cy), radius, toRL(view.Fruit))

	score := view.ScoreText(g.Score())
	r.drawCentered(score, int32(l.OffsetY)-r.fontSize)

	if text, ok := view.Overlay(g.Phase()); ok {
		r.drawCentered(text, int32(l.OffsetY)+r.fontSize)
	}

	r.drawStatsPanel(g)
	rl.EndDrawing()
}

// drawCentered shrinks the font until text fits the window width.
func (r *Renderer) drawCentered(text string, y int32) {
	size := r.fontSize
	for size > minFontSize && rl.MeasureText(text, size) > r.screenWidth-2*borderPadding {
		size--
	}
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(view.CenterX(int(r.screenWidth), int(w))), y, size, toRL(view.Text))
}

// drawStatsPanel fills the space left of the board with session stats.
func (r *Renderer) drawStatsPanel(g *game.Game) {
	panelWidth := int32(r.layout.OffsetX) - 2*borderPadding
	if panelWidth < 80 {
		return
	}

	fontSize := int32(minFontSize + 4)
	lineHeight := fontSize + 4
	x, y := int32(borderPadding), int32(borderPadding)
	textColor := toRL(view.Text)

	stats := g.GetStateManager()
	lines := []string{
		view.BestText(stats.GetHighScore()),
		fmt.Sprintf("Games: %d", stats.GetGamesPlayed()),
		fmt.Sprintf("Avg: %.1f", stats.GetAverageScore()),
		fmt.Sprintf("Median: %.1f", stats.GetMedianScore()),
		fmt.Sprintf("Avg time: %.0fs", stats.GetAverageDuration()),
		fmt.Sprintf("Speed: %.3fs", g.Speed()),
	}
	for _, line := range lines {
		rl.DrawText(line, x, y, fontSize, textColor)
		y += lineHeight
	}

	r.drawPerformanceGraph(stats.GetScoreHistory(), x, panelWidth, fontSize)
}

func (r *Renderer) drawPerformanceGraph(scores []int, graphX, graphWidth, fontSize int32) {
	graphHeight := r.screenHeight / 5
	graphY := r.screenHeight - graphHeight - borderPadding

	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText("History", graphX, graphY-fontSize-5, fontSize, rl.White)

	points := view.History(scores, maxScores, int(graphWidth), int(graphHeight))
	for i := 1; i < len(points); i++ {
		rl.DrawLine(
			graphX+int32(points[i-1].X), graphY+int32(points[i-1].Y),
			graphX+int32(points[i].X), graphY+int32(points[i].Y),
			toRL(view.Fruit))
	}
}
