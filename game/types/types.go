package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Square returns a Width x Height grid of the given size.
func Square(size int) Grid {
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Point is a grid cell. It doubles as a direction vector.
type Point struct {
	X, Y int
}

// Unit directions. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Opposite returns the vector pointing the other way.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsUnit reports whether p is one of Up, Down, Left or Right.
func (p Point) IsUnit() bool {
	return abs(p.X)+abs(p.Y) == 1
}

// Chebyshev returns max(|dx|, |dy|) between p and o.
func (p Point) Chebyshev(o Point) int {
	dx := abs(o.X - p.X)
	dy := abs(o.Y - p.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Manhattan returns |dx| + |dy| between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(o.X-p.X) + abs(o.Y-p.Y)
}

// Gameplay constants
const (
	Squares     = 32   // Default grid size
	StartSpeed  = 0.15 // Seconds per tick at the start of a round
	MinSpeed    = 0.06 // Fastest allowed tick interval
	SpeedFactor = 0.95 // Applied to speed on every fruit
	FruitScore  = 50
	TailScore   = 1 // Awarded when the tail moves during a tick
)

func Sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
