package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"elastic-snake/game/entity"
	"elastic-snake/game/manager"
	"elastic-snake/game/types"
)

type fakeClock struct {
	t float64
}

func (c *fakeClock) Now() float64 { return c.t }

// seqRNG replays fixed values, wrapping around.
type seqRNG struct {
	vals []int
	i    int
}

func (r *seqRNG) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// newTestGame builds a 32x32 game whose fruit sequence is given as x, y pairs.
func newTestGame(t *testing.T, fruit ...int) (*Game, *fakeClock) {
	t.Helper()
	if len(fruit) == 0 {
		fruit = []int{0, 0}
	}
	clock := &fakeClock{}
	g := New(DefaultConfig(), clock, &seqRNG{vals: fruit})
	g.wall = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return g, clock
}

// step advances the clock past the current speed and runs one frame.
func step(t *testing.T, g *Game, clock *fakeClock, in Input) {
	t.Helper()
	clock.t += g.Speed() + 0.001
	if err := g.Update(in); err != nil {
		t.Fatalf("Update returned %v", err)
	}
}

func TestStartingState(t *testing.T) {
	g, _ := newTestGame(t, 3, 4)

	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.Speed() != types.StartSpeed {
		t.Errorf("speed = %f, want %f", g.Speed(), types.StartSpeed)
	}
	if g.Fruit() != (types.Point{X: 3, Y: 4}) {
		t.Errorf("fruit = %v, want (3,4)", g.Fruit())
	}
	if g.Snake().Len() != 3 {
		t.Errorf("snake length = %d, want 3", g.Snake().Len())
	}
}

func TestFirstTickScenario(t *testing.T) {
	g, clock := newTestGame(t)

	step(t, g, clock, NoInput)

	s := g.Snake()
	if s.Head != (types.Point{X: 15, Y: 16}) {
		t.Errorf("head = %v, want (15,16)", s.Head)
	}
	want := []types.Point{{X: 16, Y: 16}, {X: 17, Y: 16}}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, s.Body[i], want[i])
		}
	}
	if g.Score() != types.TailScore {
		t.Errorf("score = %d, want %d for the tail move", g.Score(), types.TailScore)
	}
	if g.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", g.Ticks())
	}
}

func TestTickGating(t *testing.T) {
	g, clock := newTestGame(t)

	clock.t = types.StartSpeed
	if err := g.Update(NoInput); err != nil {
		t.Fatal(err)
	}
	if g.Ticks() != 0 {
		t.Fatal("tick fired when elapsed time equals speed")
	}

	clock.t = types.StartSpeed + 0.0001
	if err := g.Update(NoInput); err != nil {
		t.Fatal(err)
	}
	if g.Ticks() != 1 {
		t.Fatal("tick did not fire once elapsed time exceeded speed")
	}

	// Same timestamp again: last update was just reset.
	if err := g.Update(NoInput); err != nil {
		t.Fatal(err)
	}
	if g.Ticks() != 1 {
		t.Error("a second tick fired without time passing")
	}
}

func TestHeadMovesOneCellPerTick(t *testing.T) {
	g, clock := newTestGame(t)
	turns := []Input{
		KeySet{ActionUp: true},
		NoInput,
		KeySet{ActionRight: true},
		NoInput,
		KeySet{ActionDown: true},
		NoInput,
	}

	for i, in := range turns {
		before := g.Snake().Head
		step(t, g, clock, in)
		after := g.Snake().Head
		if d := before.Manhattan(after); d != 1 {
			t.Fatalf("frame %d: head moved %d cells (%v -> %v)", i, d, before, after)
		}
		if after.Sub(before) != g.Snake().ODir {
			t.Fatalf("frame %d: head moved by %v but odir is %v", i, after.Sub(before), g.Snake().ODir)
		}
	}
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name   string
		odir   types.Point
		held   KeySet
		want   types.Point
		wantOK bool
	}{
		{"nothing held", types.Left, KeySet{}, types.Point{}, false},
		{"right wins over everything", types.Up, KeySet{ActionRight: true, ActionLeft: true, ActionUp: true, ActionDown: true}, types.Right, true},
		{"left before up", types.Down, KeySet{ActionLeft: true, ActionUp: true}, types.Left, true},
		{"up before down", types.Left, KeySet{ActionUp: true, ActionDown: true}, types.Up, true},
		{"reversal refused", types.Left, KeySet{ActionRight: true}, types.Point{}, false},
		{"reversal falls through to next rule", types.Left, KeySet{ActionRight: true, ActionDown: true}, types.Down, true},
		{"down reversal refused", types.Up, KeySet{ActionDown: true}, types.Point{}, false},
		{"same direction accepted", types.Up, KeySet{ActionUp: true}, types.Up, true},
		{"non-direction keys ignored", types.Left, KeySet{ActionPause: true, ActionConfirm: true}, types.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDirection(tt.odir, tt.held)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveDirection(%v) = %v, %v; want %v, %v", tt.odir, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNoInstantReversal(t *testing.T) {
	g, clock := newTestGame(t)

	// Up then right within one tick interval: right is judged against the
	// odir of the last tick (left), not the pending up.
	if err := g.Update(KeySet{ActionUp: true}); err != nil {
		t.Fatal(err)
	}
	if err := g.Update(KeySet{ActionRight: true}); err != nil {
		t.Fatal(err)
	}
	if g.Snake().Dir != types.Up {
		t.Fatalf("dir = %v, want up (right is the reverse of odir)", g.Snake().Dir)
	}

	step(t, g, clock, NoInput)
	if g.Snake().ODir != types.Up {
		t.Fatalf("odir = %v, want up", g.Snake().ODir)
	}

	// Now right is allowed.
	step(t, g, clock, KeySet{ActionRight: true})
	if g.Snake().ODir != types.Right {
		t.Errorf("odir = %v, want right", g.Snake().ODir)
	}
}

func TestFruitEaten(t *testing.T) {
	g, clock := newTestGame(t, 15, 16, 0, 0)
	var events []Event
	g.Subscribe(EventSinkFunc(func(e Event) { events = append(events, e) }))

	bodyBefore := len(g.Snake().Body)
	scoreBefore := g.Score()
	fruitBefore := g.Fruit()

	step(t, g, clock, NoInput)

	if got := len(g.Snake().Body); got != bodyBefore+1 {
		t.Errorf("body length = %d, want %d", got, bodyBefore+1)
	}
	gained := g.Score() - scoreBefore
	if gained < types.FruitScore || gained > types.FruitScore+types.TailScore {
		t.Errorf("score gained %d, want %d plus at most %d", gained, types.FruitScore, types.TailScore)
	}
	if g.Fruit() == fruitBefore {
		t.Error("fruit was not replaced")
	}
	if !g.Grid().Contains(g.Fruit()) {
		t.Errorf("new fruit %v outside grid", g.Fruit())
	}
	if got, want := g.Speed(), types.StartSpeed*types.SpeedFactor; math.Abs(got-want) > 1e-12 {
		t.Errorf("speed = %f, want %f", got, want)
	}
	// New segment sits on the post-move tail.
	body := g.Snake().Body
	if body[len(body)-1] != body[len(body)-2] {
		t.Errorf("new segment %v not stacked on tail %v", body[len(body)-1], body[len(body)-2])
	}

	if len(events) != 1 || events[0].Type != EventFruitEaten {
		t.Fatalf("events = %v, want one fruit event", events)
	}
	if events[0].Fruit != g.Fruit() || events[0].Score != g.Score() {
		t.Errorf("event = %+v, does not match state", events[0])
	}
}

func TestSpeedAfterThreeFruits(t *testing.T) {
	g, clock := newTestGame(t, 15, 16, 14, 16, 13, 16, 0, 0)

	for i := 0; i < 3; i++ {
		step(t, g, clock, NoInput)
	}

	want := types.StartSpeed * math.Pow(types.SpeedFactor, 3)
	if math.Abs(g.Speed()-want) > 1e-9 {
		t.Errorf("speed = %f, want %f", g.Speed(), want)
	}
	if g.Speed() <= types.MinSpeed {
		t.Error("speed should still be above the floor")
	}
	if len(g.Snake().Body) != 5 {
		t.Errorf("body length = %d, want 5", len(g.Snake().Body))
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
}

func TestSpeedFloor(t *testing.T) {
	g, clock := newTestGame(t, 15, 16, 0, 0)
	g.speed = 0.0615

	step(t, g, clock, NoInput)

	if g.Speed() != types.MinSpeed {
		t.Errorf("speed = %f, want floor %f", g.Speed(), types.MinSpeed)
	}
}

func TestWallCollision(t *testing.T) {
	g, clock := newTestGame(t)
	var over []Event
	g.Subscribe(EventSinkFunc(func(e Event) {
		if e.Type == EventGameOver {
			over = append(over, e)
		}
	}))

	// Head starts at x=16 moving left: 16 ticks reach x=0.
	for i := 0; i < 16; i++ {
		step(t, g, clock, NoInput)
	}
	if g.Phase() != PhaseRunning {
		t.Fatalf("game over early at head %v", g.Snake().Head)
	}

	step(t, g, clock, NoInput)

	if g.Snake().Head.X != -1 {
		t.Errorf("head = %v, want x=-1", g.Snake().Head)
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
	if g.LastCollision() != manager.WallCollision {
		t.Errorf("collision = %v, want wall", g.LastCollision())
	}
	if len(over) != 1 || over[0].Cause != manager.WallCollision {
		t.Errorf("game over events = %v", over)
	}
	if g.GetStateManager().GetGamesPlayed() != 1 {
		t.Error("finished round not recorded")
	}

	// No further ticks while game over.
	ticks := g.Ticks()
	step(t, g, clock, KeySet{ActionUp: true})
	if g.Ticks() != ticks {
		t.Error("tick fired during game over")
	}
	if g.Snake().Dir != types.Left {
		t.Error("direction changed during game over")
	}
}

func TestSelfCollision(t *testing.T) {
	g, clock := newTestGame(t)
	g.snake = &entity.Snake{
		Head: types.Point{X: 5, Y: 5},
		Body: []types.Point{{X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}},
		Dir:  types.Down,
		ODir: types.Left,
	}

	step(t, g, clock, NoInput)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
	if g.LastCollision() != manager.SelfCollision {
		t.Errorf("collision = %v, want self", g.LastCollision())
	}
}

func TestPauseAndResume(t *testing.T) {
	g, clock := newTestGame(t)
	var seen []EventType
	g.Subscribe(EventSinkFunc(func(e Event) { seen = append(seen, e.Type) }))

	if err := g.Update(KeySet{ActionPause: true}); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", g.Phase())
	}

	head := g.Snake().Head
	step(t, g, clock, KeySet{ActionUp: true})
	if g.Ticks() != 0 || g.Snake().Head != head {
		t.Error("snake moved while paused")
	}
	if g.Snake().Dir != types.Left {
		t.Error("direction changed while paused")
	}

	// Pause again is a no-op while paused.
	if err := g.Update(KeySet{ActionPause: true}); err != nil {
		t.Fatal(err)
	}

	if err := g.Update(KeySet{ActionConfirm: true}); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", g.Phase())
	}

	if len(seen) != 2 || seen[0] != EventPaused || seen[1] != EventResumed {
		t.Errorf("events = %v, want paused, resumed", seen)
	}
}

func TestDirectionKeyBeatsPause(t *testing.T) {
	g, _ := newTestGame(t)

	if err := g.Update(KeySet{ActionUp: true, ActionPause: true}); err != nil {
		t.Fatal(err)
	}

	if g.Phase() != PhaseRunning {
		t.Error("pause should be ignored when a direction key matched")
	}
	if g.Snake().Dir != types.Up {
		t.Errorf("dir = %v, want up", g.Snake().Dir)
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g, clock := newTestGame(t, 15, 16, 0, 0)
	for g.Phase() == PhaseRunning {
		step(t, g, clock, NoInput)
	}
	if g.Score() == 0 || g.Speed() == types.StartSpeed {
		t.Fatal("round should have scored and sped up before dying")
	}

	var restarted bool
	g.Subscribe(EventSinkFunc(func(e Event) { restarted = restarted || e.Type == EventRestarted }))

	clock.t += 0.01
	if err := g.Update(KeySet{ActionConfirm: true}); err != nil {
		t.Fatal(err)
	}

	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.Speed() != types.StartSpeed {
		t.Errorf("speed = %f, want %f", g.Speed(), types.StartSpeed)
	}
	fresh := entity.NewSnake(g.Grid())
	s := g.Snake()
	if s.Head != fresh.Head || len(s.Body) != len(fresh.Body) || s.Body[0] != fresh.Body[0] || s.Body[1] != fresh.Body[1] {
		t.Errorf("snake = %+v, want %+v", s, fresh)
	}
	if s.Dir != types.Left || s.ODir != types.Left {
		t.Errorf("dir/odir = %v/%v, want left/left", s.Dir, s.ODir)
	}
	if g.lastUpdate != clock.t {
		t.Errorf("last update = %f, want %f", g.lastUpdate, clock.t)
	}
	if !restarted {
		t.Error("restart event not published")
	}
	if g.HighScore() == 0 {
		t.Error("high score lost on reset")
	}
}

func TestQuit(t *testing.T) {
	quit := KeySet{ActionQuit: true}

	g, _ := newTestGame(t)
	if err := g.Update(quit); !errors.Is(err, ErrQuit) {
		t.Errorf("running: err = %v, want ErrQuit", err)
	}

	g.phase = PhasePaused
	if err := g.Update(quit); !errors.Is(err, ErrQuit) {
		t.Errorf("paused: err = %v, want ErrQuit", err)
	}

	g.phase = PhaseGameOver
	if err := g.Update(quit); !errors.Is(err, ErrQuit) {
		t.Errorf("game over: err = %v, want ErrQuit", err)
	}

	cfg := DefaultConfig()
	cfg.QuitEnabled = false
	restricted := New(cfg, &fakeClock{}, &seqRNG{vals: []int{0}})
	if err := restricted.Update(quit); err != nil {
		t.Errorf("quit disabled: err = %v, want nil", err)
	}
}

func TestNilInputIsNotHeld(t *testing.T) {
	g, clock := newTestGame(t)
	clock.t = 1
	if err := g.Update(nil); err != nil {
		t.Fatal(err)
	}
	if g.Ticks() != 1 {
		t.Error("nil input should still let the tick run")
	}
}

func TestInputsMerge(t *testing.T) {
	in := Inputs{nil, KeySet{ActionUp: true}, InputFunc(func(a Action) bool { return a == ActionPause })}

	if !in.Held(ActionUp) || !in.Held(ActionPause) {
		t.Error("merged input lost a held action")
	}
	if in.Held(ActionQuit) {
		t.Error("quit reported held")
	}
	if (Inputs{}).Held(ActionUp) {
		t.Error("empty merge holds nothing")
	}
}

func TestSeededRNGIsReproducible(t *testing.T) {
	a := New(DefaultConfig(), &fakeClock{}, NewRNG(99))
	b := New(DefaultConfig(), &fakeClock{}, NewRNG(99))

	for i := 0; i < 20; i++ {
		if a.Fruit() != b.Fruit() {
			t.Fatalf("fruit %d differs: %v vs %v", i, a.Fruit(), b.Fruit())
		}
		a.Reset()
		b.Reset()
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"tiny grid", func(c *Config) { c.Squares = 4 }, true},
		{"huge grid", func(c *Config) { c.Squares = 500 }, true},
		{"below floor", func(c *Config) { c.StartSpeed = 0.01 }, true},
		{"slow but valid", func(c *Config) { c.StartSpeed = 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}
