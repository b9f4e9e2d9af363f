package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/pkg/errors"
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

// CheckCollision classifies the outcome of the last move.
// moveErr is the error returned by Snake.Move.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, moveErr error) CollisionType {
	if errors.Is(moveErr, entity.ErrBoundaryViolation) || cm.isWallCollision(snake.Head()) {
		return WallCollision
	}
	if snake.CollidesWithSelf() {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
