package entity

import (
	"elastic-snake/game/types"
)

// Snake is a head plus trailing segments that chase it. Body[0] is the
// segment nearest the head.
type Snake struct {
	Head types.Point
	Body []types.Point
	Dir  types.Point // requested for the next tick
	ODir types.Point // applied on the last tick
}

// NewSnake builds the starting snake: head in the grid center, two segments
// trailing to the right, moving left.
func NewSnake(grid types.Grid) *Snake {
	c := grid.Center()
	return &Snake{
		Head: c,
		Body: []types.Point{
			{X: c.X + 1, Y: c.Y},
			{X: c.X + 2, Y: c.Y},
		},
		Dir:  types.Left,
		ODir: types.Left,
	}
}

// Follow moves p one step toward target on each axis independently when the
// target is two or more cells away (Chebyshev). Diagonal steps are allowed.
func Follow(p, target types.Point) types.Point {
	if p.Chebyshev(target) < 2 {
		return p
	}
	return types.Point{
		X: p.X + types.Sign(target.X-p.X),
		Y: p.Y + types.Sign(target.Y-p.Y),
	}
}

// Tail returns the last body segment, or the head for a bodiless snake.
func (s *Snake) Tail() types.Point {
	if len(s.Body) == 0 {
		return s.Head
	}
	return s.Body[len(s.Body)-1]
}

// Advance moves the head one cell along Dir and lets every segment chase the
// one ahead of it, front to back, using the already-moved position. It
// reports whether the tail ended up somewhere new.
func (s *Snake) Advance() bool {
	s.Head = s.Head.Add(s.Dir)
	if len(s.Body) == 0 {
		return false
	}

	oldTail := s.Body[len(s.Body)-1]
	s.Body[0] = Follow(s.Body[0], s.Head)
	for i := 1; i < len(s.Body); i++ {
		s.Body[i] = Follow(s.Body[i], s.Body[i-1])
	}
	return s.Body[len(s.Body)-1] != oldTail
}

// Grow appends a segment on top of the current tail.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Tail())
}

// SetDirection requests dir for the next tick. Reversing onto ODir and
// non-unit vectors are refused.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !dir.IsUnit() || dir == s.ODir.Opposite() {
		return false
	}
	s.Dir = dir
	return true
}

// Commit records the direction used by the tick that just ran.
func (s *Snake) Commit() {
	s.ODir = s.Dir
}

// Occupies reports whether any body segment sits on p. The head is not
// checked.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Len counts head and body.
func (s *Snake) Len() int {
	return len(s.Body) + 1
}

// Clone returns a deep copy, safe to hand to renderers.
func (s *Snake) Clone() *Snake {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{
		Head: s.Head,
		Body: body,
		Dir:  s.Dir,
		ODir: s.ODir,
	}
}
