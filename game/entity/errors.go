package entity

import "github.com/pkg/errors"

var (
	// ErrBoundaryViolation is returned by Move when the head would leave the board
	// under the reset boundary policy.
	ErrBoundaryViolation = errors.New("snake left the board")

	// ErrBoardFull is returned by Relocate when no free cell is left for the food.
	ErrBoardFull = errors.New("board is full")
)
