package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type FoodManager struct {
	grid         types.Grid
	food         *entity.Food
	eaten        int
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		food:         entity.NewFood(grid, rng),
		collisionMgr: collisionMgr,
	}
}

// Spawn places the food on a cell the snake does not cover
func (fm *FoodManager) Spawn(snake *entity.Snake) error {
	return fm.food.Relocate(snake.Occupied())
}

// Update feeds the snake when its head reached the food and relocates the food.
// The returned error is ErrBoardFull when no cell is left.
func (fm *FoodManager) Update(snake *entity.Snake) (bool, error) {
	if !fm.collisionMgr.IsFoodCollision(snake.Head(), fm.food.Position()) {
		return false, nil
	}
	snake.Grow()
	fm.eaten++
	return true, fm.Spawn(snake)
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// Eaten counts the food consumed since the manager was created
func (fm *FoodManager) Eaten() int {
	return fm.eaten
}
