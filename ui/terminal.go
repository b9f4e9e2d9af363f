package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	cellGlyph   = '█'
	cellColumns = 2 // terminal cells are about twice as tall as wide
)

// Terminal is a tcell surface. Each grid cell takes two columns of one row.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	done   chan struct{}
}

// NewTerminal takes over the controlling terminal
func NewTerminal(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	return NewTerminalOn(screen, grid)
}

// NewTerminalOn initializes screen and starts reading its events.
// tcell's PollEvent blocks, so a goroutine moves events into a buffered
// channel that PollEvents drains.
func NewTerminalOn(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing terminal screen")
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) ClearBoard(bg types.Color) {
	style := tcell.StyleDefault.Background(toTcell(bg))
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width*cellColumns; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawCell paints the cell in its fill color; a terminal cell has no room for a border
func (t *Terminal) DrawCell(p types.Point, fill, border types.Color) {
	style := cellStyle(fill)
	x := p.X * cellColumns
	for i := 0; i < cellColumns; i++ {
		t.screen.SetContent(x+i, p.Y, cellGlyph, nil, style)
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

func (t *Terminal) PollEvents() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := translateEvent(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

// Close restores the terminal
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

// translateEvent maps arrow keys to directions; Escape, Ctrl-C and q quit
func translateEvent(ev tcell.Event) (game.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return game.KeyEvent(types.Up), true
	case tcell.KeyDown:
		return game.KeyEvent(types.Down), true
	case tcell.KeyLeft:
		return game.KeyEvent(types.Left), true
	case tcell.KeyRight:
		return game.KeyEvent(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.QuitEvent(), true
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return game.QuitEvent(), true
		}
	}
	return game.Event{}, false
}

func cellStyle(c types.Color) tcell.Style {
	col := toTcell(c)
	return tcell.StyleDefault.Foreground(col).Background(col)
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
