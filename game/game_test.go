package game

import (
	"bytes"
	"strings"
	"testing"

	"snake-arcade/config"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

type drawCall struct {
	op   string
	cell types.Point
	fill types.Color
}

// fakeSurface replays one batch of scripted events per poll and records draw calls
type fakeSurface struct {
	batches [][]Event
	polls   int
	calls   []drawCall
}

func (s *fakeSurface) DrawCell(p types.Point, fill, border types.Color) {
	s.calls = append(s.calls, drawCall{op: "cell", cell: p, fill: fill})
}

func (s *fakeSurface) ClearBoard(bg types.Color) {
	s.calls = append(s.calls, drawCall{op: "clear", fill: bg})
}

func (s *fakeSurface) Present() {
	s.calls = append(s.calls, drawCall{op: "present"})
}

func (s *fakeSurface) PollEvents() []Event {
	defer func() { s.polls++ }()
	if s.polls < len(s.batches) {
		return s.batches[s.polls]
	}
	return nil
}

type fakeClock struct {
	ticks int
	rates []int
}

func (c *fakeClock) Tick(rate int) {
	c.ticks++
	c.rates = append(c.rates, rate)
}

type countingSound struct {
	eat, crash int
}

func (s *countingSound) PlayEat()   { s.eat++ }
func (s *countingSound) PlayCrash() { s.crash++ }

func testConfig(profile string, length int) *config.Config {
	cfg := config.Default()
	cfg.ApplyProfile(profile)
	cfg.InitialLength = length
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, surface *fakeSurface) (*Game, *fakeClock, *countingSound, *bytes.Buffer) {
	t.Helper()
	clock := &fakeClock{}
	sound := &countingSound{}
	out := &bytes.Buffer{}
	g, err := NewGame(cfg, surface, clock,
		WithRand(rand.New(rand.NewSource(99))),
		WithSound(sound),
		WithAnnouncer(out))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	// Keep the food out of the way unless a test places it
	g.Food().Place(types.Point{X: 0, Y: 0})
	return g, clock, sound, out
}

func TestFiveTicksWithoutInput(t *testing.T) {
	cfg := testConfig(config.ProfileClassic, 1)
	g, _, _, _ := newTestGame(t, cfg, &fakeSurface{})

	if g.Grid != (types.Grid{Width: 32, Height: 24}) {
		t.Fatalf("Expected 32x24 grid, got %v", g.Grid)
	}
	start := g.Snake().Head()
	if start != (types.Point{X: 16, Y: 12}) || g.Snake().Direction() != types.Right {
		t.Fatalf("Expected snake centered heading right, got %v %v", start, g.Snake().Direction())
	}

	for i := 0; i < 5; i++ {
		if !g.Step() {
			t.Fatalf("Step %d reported quit", i)
		}
	}

	if head := g.Snake().Head(); head != (types.Point{X: 21, Y: 12}) {
		t.Errorf("Expected head 5 cells right of center at (21,12), got %v", head)
	}
	if g.Snake().Len() != 1 {
		t.Errorf("Expected length 1, got %d", g.Snake().Len())
	}
	if g.Steps != 5 {
		t.Errorf("Expected 5 steps, got %d", g.Steps)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	surface := &fakeSurface{batches: [][]Event{
		nil,
		{KeyEvent(types.Up)},
		{QuitEvent(), KeyEvent(types.Left)},
	}}
	g, clock, _, _ := newTestGame(t, testConfig(config.ProfileWrap, 1), surface)

	g.Run()

	if clock.ticks != 3 {
		t.Errorf("Expected 3 clock ticks, got %d", clock.ticks)
	}
	for _, r := range clock.rates {
		if r != 10 {
			t.Errorf("Expected tick rate 10, got %d", r)
		}
	}
	if g.Steps != 2 {
		t.Errorf("Expected 2 updates before quitting, got %d", g.Steps)
	}
	// Events after the quit in the same batch are not applied
	if _, ok := g.Snake().Pending(); ok {
		t.Error("Expected no pending direction after quit")
	}
}

func TestInputTurnsSnake(t *testing.T) {
	surface := &fakeSurface{batches: [][]Event{{KeyEvent(types.Up)}}}
	g, _, _, _ := newTestGame(t, testConfig(config.ProfileClassic, 1), surface)

	g.Step()

	if head := g.Snake().Head(); head != (types.Point{X: 16, Y: 11}) {
		t.Errorf("Expected head at (16,11), got %v", head)
	}
}

func TestReverseInputIgnored(t *testing.T) {
	surface := &fakeSurface{batches: [][]Event{{KeyEvent(types.Left)}}}
	g, _, _, _ := newTestGame(t, testConfig(config.ProfileClassic, 2), surface)

	g.Step()

	if g.Snake().Direction() != types.Right {
		t.Errorf("Expected direction to stay right, got %v", g.Snake().Direction())
	}
	if head := g.Snake().Head(); head != (types.Point{X: 17, Y: 12}) {
		t.Errorf("Expected head at (17,12), got %v", head)
	}
	if len(g.State().History()) != 0 {
		t.Error("Expected no round to end")
	}
}

func TestEatingGrowsSnake(t *testing.T) {
	g, _, sound, _ := newTestGame(t, testConfig(config.ProfileClassic, 1), &fakeSurface{})
	g.Food().Place(types.Point{X: 17, Y: 12})

	g.Step()

	if g.Snake().TargetLength() != 2 {
		t.Errorf("Expected target length 2, got %d", g.Snake().TargetLength())
	}
	if g.Snake().Len() != 1 {
		t.Errorf("Expected growth to wait for the next move, got length %d", g.Snake().Len())
	}
	if sound.eat != 1 {
		t.Errorf("Expected one eat cue, got %d", sound.eat)
	}
	if _, covered := g.Snake().Occupied()[g.Food().Position()]; covered {
		t.Errorf("Expected food relocated off the snake, got %v", g.Food().Position())
	}

	g.Food().Place(types.Point{X: 0, Y: 0})
	g.Step()
	if g.Snake().Len() != 2 {
		t.Errorf("Expected length 2, got %d", g.Snake().Len())
	}
	if g.State().BestLength() != 2 {
		t.Errorf("Expected best length 2, got %d", g.State().BestLength())
	}
}

func TestWallResetsSnake(t *testing.T) {
	surface := &fakeSurface{batches: [][]Event{{KeyEvent(types.Up)}}}
	g, _, sound, out := newTestGame(t, testConfig(config.ProfileClassic, 1), surface)

	// 12 moves reach row 0, the 13th leaves the board
	for i := 0; i < 13; i++ {
		g.Step()
	}

	history := g.State().History()
	if len(history) != 1 || history[0].Cause != manager.EndWall {
		t.Fatalf("Expected one round ended by the wall, got %+v", history)
	}
	if g.Snake().Head() != g.Grid.Center() || g.Snake().Len() != 1 {
		t.Errorf("Expected snake reset to center, got %v", g.Snake().Body())
	}
	if sound.crash != 1 {
		t.Errorf("Expected one crash cue, got %d", sound.crash)
	}
	if !strings.Contains(out.String(), "left the board") {
		t.Errorf("Expected a game-over announcement, got %q", out.String())
	}
	if g.State().Round() != 2 {
		t.Errorf("Expected round 2, got %d", g.State().Round())
	}
}

func TestWrapKeepsPlaying(t *testing.T) {
	g, _, sound, out := newTestGame(t, testConfig(config.ProfileWrap, 1), &fakeSurface{})

	for i := 0; i < 16; i++ {
		g.Step()
	}

	if head := g.Snake().Head(); head != (types.Point{X: 0, Y: 12}) {
		t.Errorf("Expected head wrapped to (0,12), got %v", head)
	}
	if len(g.State().History()) != 0 || sound.crash != 0 {
		t.Error("Expected no round to end under the wrap policy")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no announcement, got %q", out.String())
	}
}

func TestSelfCollisionResetsSnake(t *testing.T) {
	for _, profile := range []string{config.ProfileClassic, config.ProfileWrap} {
		t.Run(profile, func(t *testing.T) {
			surface := &fakeSurface{batches: [][]Event{
				nil, nil, nil, nil,
				{KeyEvent(types.Down)},
				{KeyEvent(types.Left)},
				{KeyEvent(types.Up)},
			}}
			cfg := testConfig(profile, 1)
			g, _, sound, out := newTestGame(t, cfg, surface)
			for i := 0; i < 4; i++ {
				g.Snake().Grow()
			}

			for i := 0; i < 7; i++ {
				g.Step()
			}

			history := g.State().History()
			if len(history) != 1 || history[0].Cause != manager.EndSelf {
				t.Fatalf("Expected one round ended by self collision, got %+v", history)
			}
			if history[0].Length != 5 {
				t.Errorf("Expected length 5 when biting, got %d", history[0].Length)
			}
			if g.Snake().Len() != 1 {
				t.Errorf("Expected snake reset to length 1, got %d", g.Snake().Len())
			}
			if sound.crash != 1 {
				t.Errorf("Expected one crash cue, got %d", sound.crash)
			}
			announced := strings.Contains(out.String(), "bit its own tail")
			if announced != cfg.Announce {
				t.Errorf("Expected announcement=%v, got output %q", cfg.Announce, out.String())
			}
		})
	}
}

func TestBoardFullStartsNewRound(t *testing.T) {
	cfg := testConfig(config.ProfileWrap, 1)
	cfg.Width, cfg.Height = 40, 40
	surface := &fakeSurface{batches: [][]Event{
		nil,
		{KeyEvent(types.Down)},
		{KeyEvent(types.Right)},
	}}
	g, _, _, out := newTestGame(t, cfg, surface)
	g.announce = true

	// 2x2 board: a target length of 4 fills it when the food at (1,0) is eaten
	for i := 0; i < 3; i++ {
		g.Snake().Grow()
	}
	g.Food().Place(types.Point{X: 1, Y: 0})

	for i := 0; i < 3; i++ {
		g.Step()
	}

	history := g.State().History()
	if len(history) != 1 || history[0].Cause != manager.EndBoardFull {
		t.Fatalf("Expected one round ended by a full board, got %+v", history)
	}
	if history[0].Length != 4 {
		t.Errorf("Expected length 4, got %d", history[0].Length)
	}
	if _, covered := g.Snake().Occupied()[g.Food().Position()]; covered {
		t.Errorf("Expected food respawned off the snake, got %v", g.Food().Position())
	}
	if !strings.Contains(out.String(), "filled the board") {
		t.Errorf("Expected a win announcement, got %q", out.String())
	}
}

func TestRenderOrder(t *testing.T) {
	surface := &fakeSurface{}
	g, _, _, _ := newTestGame(t, testConfig(config.ProfileClassic, 2), surface)
	g.Food().Place(types.Point{X: 3, Y: 3})

	g.Step()

	want := []drawCall{
		{op: "clear", fill: types.BackgroundColor},
		{op: "cell", cell: types.Point{X: 15, Y: 12}, fill: types.BackgroundColor},
		{op: "cell", cell: types.Point{X: 3, Y: 3}, fill: types.FoodColor},
		{op: "cell", cell: types.Point{X: 17, Y: 12}, fill: types.SnakeColor},
		{op: "cell", cell: types.Point{X: 16, Y: 12}, fill: types.SnakeColor},
		{op: "present"},
	}
	if len(surface.calls) != len(want) {
		t.Fatalf("Expected %d draw calls, got %d: %+v", len(want), len(surface.calls), surface.calls)
	}
	for i := range want {
		if surface.calls[i] != want[i] {
			t.Errorf("Call %d: expected %+v, got %+v", i, want[i], surface.calls[i])
		}
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Speed = 0
	if _, err := NewGame(cfg, &fakeSurface{}, &fakeClock{}); err == nil {
		t.Error("Expected an error for speed 0")
	}
}

func TestSeededGamesAreReproducible(t *testing.T) {
	cfg := testConfig(config.ProfileClassic, 1)
	cfg.Seed = 1234

	a, err := NewGame(cfg, &fakeSurface{}, &fakeClock{}, WithAnnouncer(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	b, err := NewGame(cfg, &fakeSurface{}, &fakeClock{}, WithAnnouncer(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if a.Food().Position() != b.Food().Position() {
		t.Errorf("Expected identical first food with the same seed, got %v and %v",
			a.Food().Position(), b.Food().Position())
	}
}
