package manager

import (
	"elastic-snake/game/types"
)

// Rand is the subset of a random source the managers draw from.
type Rand interface {
	Intn(n int) int
}

// FoodManager owns the single fruit on the grid.
type FoodManager struct {
	grid  types.Grid
	rng   Rand
	fruit types.Point
}

func NewFoodManager(grid types.Grid, rng Rand) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rng,
	}
	fm.fruit = fm.GenerateFood()
	return fm
}

// GenerateFood draws x and y independently and uniformly. The snake is not
// consulted, so fruit can land on it.
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

func (fm *FoodManager) Fruit() types.Point {
	return fm.fruit
}

// Respawn replaces the current fruit and returns the new position.
func (fm *FoodManager) Respawn() types.Point {
	fm.fruit = fm.GenerateFood()
	return fm.fruit
}
