package manager

import (
	"elastic-snake/game/entity"
	"elastic-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check inspects the head after a move. Wall collisions take precedence.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.Head) {
		return WallCollision
	}
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position is outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the head against every body segment
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	return snake.Occupies(snake.Head)
}

// IsDanger reports whether moving the head onto pos would end the round.
// The current body is used as is; it does not account for segments that
// would move out of the way on the same tick.
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	return cm.isWallCollision(pos) || snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
