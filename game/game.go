package game

import (
	"errors"
	"math"
	"time"

	"elastic-snake/game/entity"
	"elastic-snake/game/manager"
	"elastic-snake/game/types"

	"github.com/golang/glog"
)

// ErrQuit is returned by Update when the player asked to leave.
var ErrQuit = errors.New("quit requested")

// Phase is the state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Game holds everything a round needs. It is not safe for concurrent use;
// the frontend calls Update and reads the accessors from one goroutine.
type Game struct {
	cfg   Config
	grid  types.Grid
	clock Clock
	wall  func() time.Time

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	score         int
	fruits        int
	speed         float64
	lastUpdate    float64
	phase         Phase
	ticks         int
	roundStart    time.Time
	lastCollision manager.CollisionType

	sinks []EventSink
}

// New creates a running game. cfg is assumed valid.
func New(cfg Config, clock Clock, rng RNG) *Game {
	grid := cfg.Grid()
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		clock:        clock,
		wall:         time.Now,
		snake:        entity.NewSnake(grid),
		foodMgr:      manager.NewFoodManager(grid, rng),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
		speed:        cfg.StartSpeed,
		lastUpdate:   clock.Now(),
		phase:        PhaseRunning,
	}
	g.roundStart = g.wall()
	return g
}

// Subscribe registers a sink for game events.
func (g *Game) Subscribe(sink EventSink) {
	g.sinks = append(g.sinks, sink)
}

// Reset starts a fresh round. The session scoreboard is kept.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.grid)
	g.foodMgr.Respawn()
	g.score = 0
	g.fruits = 0
	g.speed = g.cfg.StartSpeed
	g.lastUpdate = g.clock.Now()
	g.phase = PhaseRunning
	g.lastCollision = manager.NoCollision
	g.roundStart = g.wall()
}

// Update runs one frame: input handling, at most one tick, then the
// pause/game over prompts. It returns ErrQuit when the game should end.
func (g *Game) Update(in Input) error {
	if in == nil {
		in = NoInput
	}

	if g.phase == PhaseRunning {
		if dir, ok := ResolveDirection(g.snake.ODir, in); ok {
			g.snake.SetDirection(dir)
		} else if in.Held(ActionPause) {
			g.phase = PhasePaused
			g.emit(Event{Type: EventPaused, Score: g.score})
		} else if g.quitRequested(in) {
			return ErrQuit
		}

		now := g.clock.Now()
		if g.phase == PhaseRunning && now-g.lastUpdate > g.speed {
			g.lastUpdate = now
			g.tick()
		}
	}

	switch g.phase {
	case PhaseGameOver:
		if in.Held(ActionConfirm) {
			g.Reset()
			glog.Info("new round started")
			g.emit(Event{Type: EventRestarted})
		} else if g.quitRequested(in) {
			return ErrQuit
		}
	case PhasePaused:
		if in.Held(ActionConfirm) {
			g.phase = PhaseRunning
			g.emit(Event{Type: EventResumed, Score: g.score})
		} else if g.quitRequested(in) {
			return ErrQuit
		}
	}
	return nil
}

// tick moves the snake one cell and applies the fruit and collision rules.
func (g *Game) tick() {
	g.ticks++

	if g.snake.Advance() {
		g.score += types.TailScore
	}

	if g.collisionMgr.IsFoodCollision(g.snake.Head, g.foodMgr.Fruit()) {
		g.snake.Grow()
		fruit := g.foodMgr.Respawn()
		g.fruits++
		g.score += types.FruitScore
		g.speed = math.Max(g.speed*types.SpeedFactor, types.MinSpeed)
		glog.V(1).Infof("fruit eaten: score=%d speed=%.4f next=%v", g.score, g.speed, fruit)
		g.emit(Event{Type: EventFruitEaten, Score: g.score, Fruit: fruit})
	}

	if c := g.collisionMgr.Check(g.snake); c != manager.NoCollision {
		g.gameOver(c)
	}

	g.snake.Commit()
	glog.V(2).Infof("tick %d: head=%v body=%v score=%d", g.ticks, g.snake.Head, g.snake.Body, g.score)
}

func (g *Game) gameOver(cause manager.CollisionType) {
	g.phase = PhaseGameOver
	g.lastCollision = cause
	record := g.stateMgr.AddRound(g.score, g.fruits, g.roundStart, g.wall(), cause)
	glog.V(1).Infof("round %s over: %s collision, score=%d", record.ID, cause, g.score)
	g.emit(Event{Type: EventGameOver, Score: g.score, Cause: cause})
}

func (g *Game) quitRequested(in Input) bool {
	return g.cfg.QuitEnabled && in.Held(ActionQuit)
}

func (g *Game) emit(e Event) {
	for _, sink := range g.sinks {
		sink.Handle(e)
	}
}

// Snake returns the live snake. Callers must not modify it.
func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Fruit() types.Point {
	return g.foodMgr.Fruit()
}

func (g *Game) Score() int {
	return g.score
}

// Speed is the current tick interval in seconds.
func (g *Game) Speed() float64 {
	return g.speed
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Paused() bool {
	return g.phase == PhasePaused
}

func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Ticks counts simulation steps since the game was created.
func (g *Game) Ticks() int {
	return g.ticks
}

// LastCollision is the cause of the most recent game over in this round.
func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCollision
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Config() Config {
	return g.cfg
}
