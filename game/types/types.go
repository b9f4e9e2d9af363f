package types

// Point is a grid cell, column X and row Y
type Point struct {
	X, Y int
}

// Add returns the cell offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap reduces p modulo the board dimensions, so leaving one edge enters from the opposite one
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// BoundaryPolicy selects what happens when the head leaves the board
type BoundaryPolicy int

const (
	// BoundaryReset rejects the move and ends the round
	BoundaryReset BoundaryPolicy = iota
	// BoundaryWrap re-enters the board from the opposite edge
	BoundaryWrap
)

func (b BoundaryPolicy) String() string {
	switch b {
	case BoundaryReset:
		return "reset"
	case BoundaryWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy accepts the names produced by String
func ParseBoundaryPolicy(s string) (BoundaryPolicy, bool) {
	switch s {
	case "reset", "clamp":
		return BoundaryReset, true
	case "wrap":
		return BoundaryWrap, true
	default:
		return BoundaryReset, false
	}
}

// Rand is the random source used for food placement and reset directions.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
