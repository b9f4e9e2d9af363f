package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is a raylib surface: one square of cellSize pixels per grid cell
type Window struct {
	cellSize int32
	grid     types.Grid
	drawing  bool
}

// NewWindow opens a window sized to the grid
func NewWindow(grid types.Grid, cellSize int, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width*cellSize), int32(grid.Height*cellSize), title)

	return &Window{
		cellSize: int32(cellSize),
		grid:     grid,
	}
}

// begin opens the frame on the first draw command after Present
func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func (w *Window) ClearBoard(bg types.Color) {
	w.begin()
	rl.ClearBackground(toRaylib(bg))
}

func (w *Window) DrawCell(p types.Point, fill, border types.Color) {
	w.begin()
	x := int32(p.X) * w.cellSize
	y := int32(p.Y) * w.cellSize
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, toRaylib(fill))
	if border != fill {
		rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, toRaylib(border))
	}
}

func (w *Window) Present() {
	if !w.drawing {
		return
	}
	rl.EndDrawing()
	w.drawing = false
}

// PollEvents drains raylib's key queue. Closing the window, Escape and Q quit.
func (w *Window) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyQ || key == rl.KeyEscape {
			events = append(events, game.QuitEvent())
			continue
		}
		if d, ok := directionForKey(key); ok {
			events = append(events, game.KeyEvent(d))
		}
	}
	return events
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func directionForKey(key int32) (types.Direction, bool) {
	switch key {
	case rl.KeyUp:
		return types.Up, true
	case rl.KeyDown:
		return types.Down, true
	case rl.KeyLeft:
		return types.Left, true
	case rl.KeyRight:
		return types.Right, true
	default:
		return 0, false
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
