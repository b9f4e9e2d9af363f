package entity

import (
	"snake-arcade/game/types"

	"github.com/pkg/errors"
)

type Snake struct {
	body          []types.Point
	direction     types.Direction
	pending       types.Direction
	hasPending    bool
	targetLength  int
	initialLength int
	grid          types.Grid
	policy        types.BoundaryPolicy
	rng           types.Rand
	Color         types.Color
}

// NewSnake places a snake of initialLength cells at the board center, heading right
func NewSnake(grid types.Grid, policy types.BoundaryPolicy, initialLength int, rng types.Rand) *Snake {
	if initialLength < 1 {
		initialLength = 1
	}
	s := &Snake{
		grid:          grid,
		policy:        policy,
		initialLength: initialLength,
		rng:           rng,
		Color:         types.SnakeColor,
	}
	s.spawn(types.Right)
	return s
}

// spawn lays the starting body out behind the head, opposite to dir
func (s *Snake) spawn(dir types.Direction) {
	head := s.grid.Center()
	back := dir.Opposite().ToPoint()

	s.body = make([]types.Point, 0, s.initialLength)
	s.body = append(s.body, head)
	for i := 1; i < s.initialLength; i++ {
		prev := s.body[i-1]
		s.body = append(s.body, s.grid.Wrap(prev.Add(back)))
	}

	s.direction = dir
	s.hasPending = false
	s.targetLength = s.initialLength
}

// SetPendingDirection records the direction to take on the next tick.
// A 180° reversal of the committed direction is ignored.
func (s *Snake) SetPendingDirection(d types.Direction) {
	if !d.Valid() || d == s.direction.Opposite() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// CommitDirection applies the pending direction, if any
func (s *Snake) CommitDirection() {
	if !s.hasPending {
		return
	}
	s.direction = s.pending
	s.hasPending = false
}

// Move advances the head one cell in the committed direction and drops the tail
// once the body is longer than the target length. The dropped cell is returned
// with ok set so the caller can erase it.
//
// Under BoundaryReset a head leaving the board leaves the body untouched and
// returns ErrBoundaryViolation; under BoundaryWrap the head re-enters on the
// opposite edge.
func (s *Snake) Move() (vacated types.Point, ok bool, err error) {
	if len(s.body) == 0 {
		panic("entity: Move on a snake with no body")
	}

	newHead := s.body[0].Add(s.direction.ToPoint())
	if !s.grid.Contains(newHead) {
		if s.policy != types.BoundaryWrap {
			return types.Point{}, false, errors.Wrapf(ErrBoundaryViolation, "head %v moving %v", s.body[0], s.direction)
		}
		newHead = s.grid.Wrap(newHead)
	}

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	if len(s.body) > s.targetLength {
		vacated = s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		return vacated, true, nil
	}
	return types.Point{}, false, nil
}

// Grow raises the target length by one; the body catches up on the next Move
func (s *Snake) Grow() {
	s.targetLength++
}

// CollidesWithSelf reports whether the head overlaps any other segment
func (s *Snake) CollidesWithSelf() bool {
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Reset puts the snake back at the center with its initial length and a random heading
func (s *Snake) Reset() {
	s.spawn(types.Directions[s.rng.Intn(len(types.Directions))])
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

func (s *Snake) InitialLength() int {
	return s.initialLength
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the direction waiting to be committed
func (s *Snake) Pending() (types.Direction, bool) {
	return s.pending, s.hasPending
}

func (s *Snake) Policy() types.BoundaryPolicy {
	return s.policy
}

// Occupied returns the set of cells covered by the body
func (s *Snake) Occupied() map[types.Point]struct{} {
	cells := make(map[types.Point]struct{}, len(s.body))
	for _, p := range s.body {
		cells[p] = struct{}{}
	}
	return cells
}

func (s *Snake) Draw(c types.Canvas) {
	for _, p := range s.body {
		c.DrawCell(p, s.Color, types.BorderColor)
	}
}
