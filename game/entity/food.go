package entity

import (
	"snake-arcade/game/types"

	"github.com/pkg/errors"
)

type Food struct {
	position types.Point
	color    types.Color
	grid     types.Grid
	rng      types.Rand
}

func NewFood(grid types.Grid, rng types.Rand) *Food {
	return &Food{
		position: grid.Center(),
		color:    types.FoodColor,
		grid:     grid,
		rng:      rng,
	}
}

// Relocate moves the food to a random cell outside excluded, sampling until one is free.
// It fails with ErrBoardFull when excluded already covers the whole board.
func (f *Food) Relocate(excluded map[types.Point]struct{}) error {
	taken := 0
	for p := range excluded {
		if f.grid.Contains(p) {
			taken++
		}
	}
	if taken >= f.grid.Cells() {
		return errors.Wrapf(ErrBoardFull, "%d of %d cells occupied", taken, f.grid.Cells())
	}

	for {
		candidate := types.Point{
			X: f.rng.Intn(f.grid.Width),
			Y: f.rng.Intn(f.grid.Height),
		}
		if _, occupied := excluded[candidate]; !occupied {
			f.position = candidate
			return nil
		}
	}
}

// Place puts the food on a specific cell
func (f *Food) Place(p types.Point) {
	f.position = p
}

func (f *Food) Position() types.Point {
	return f.position
}

func (f *Food) Color() types.Color {
	return f.color
}

func (f *Food) Draw(c types.Canvas) {
	c.DrawCell(f.position, f.color, types.BorderColor)
}
