package types

type Color struct {
	R, G, B uint8
}

// Palette of the board
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	FoodColor       = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

// Canvas receives grid-aligned draw commands
type Canvas interface {
	DrawCell(p Point, fill, border Color)
}

// Drawable is anything that knows how to paint itself on a Canvas
type Drawable interface {
	Draw(c Canvas)
}
