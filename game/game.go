package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Game ties input, state update and rendering together at a fixed tick rate.
// Everything runs on the caller's goroutine.
type Game struct {
	Grid  types.Grid
	Steps int

	rate     int
	announce bool

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	surface   Surface
	clock     Clock
	sound     Sound
	rng       types.Rand
	announcer io.Writer

	vacated    types.Point
	hasVacated bool
}

type Option func(*Game)

// WithRand replaces the clock-seeded random source
func WithRand(r types.Rand) Option {
	return func(g *Game) { g.rng = r }
}

func WithSound(s Sound) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// WithAnnouncer sets where game-over messages go, stdout by default
func WithAnnouncer(w io.Writer) Option {
	return func(g *Game) { g.announcer = w }
}

func NewGame(cfg *config.Config, surface Surface, clock Clock, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	g := &Game{
		Grid:      grid,
		rate:      cfg.Speed,
		announce:  cfg.Announce,
		surface:   surface,
		clock:     clock,
		sound:     silence{},
		announcer: os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	g.collisionMgr = manager.NewCollisionManager(grid)
	g.foodMgr = manager.NewFoodManager(grid, g.rng, g.collisionMgr)
	g.stateMgr = manager.NewStateManager()
	g.snake = entity.NewSnake(grid, cfg.Boundary, cfg.InitialLength, g.rng)

	if err := g.foodMgr.Spawn(g.snake); err != nil {
		return nil, errors.Wrap(err, "placing the first food")
	}
	g.stateMgr.Observe(g.snake.Len())
	return g, nil
}

// Run loops until the surface reports a quit event
func (g *Game) Run() {
	log.Printf("session %s: %dx%d board, %d ticks/s, boundary %v",
		g.stateMgr.SessionID(), g.Grid.Width, g.Grid.Height, g.rate, g.snake.Policy())

	for {
		g.clock.Tick(g.rate)
		if !g.Step() {
			break
		}
	}

	log.Printf("session %s: quit after %d ticks, %d rounds finished, best length %d",
		g.stateMgr.SessionID(), g.Steps, len(g.stateMgr.History()), g.stateMgr.BestLength())
}

// Step runs one tick and reports whether the loop should go on
func (g *Game) Step() bool {
	if !g.HandleInput() {
		return false
	}
	g.Update()
	g.Render()
	return true
}

// HandleInput drains the pending events; it returns false on quit
func (g *Game) HandleInput() bool {
	for _, ev := range g.surface.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			return false
		case EventKey:
			g.snake.SetPendingDirection(ev.Direction)
		}
	}
	return true
}

func (g *Game) Update() {
	g.Steps++

	g.snake.CommitDirection()
	vacated, ok, moveErr := g.snake.Move()
	g.vacated, g.hasVacated = vacated, ok

	if moveErr == nil {
		eaten, err := g.foodMgr.Update(g.snake)
		if eaten {
			g.sound.PlayEat()
		}
		if err != nil {
			log.Printf("session %s: %v", g.stateMgr.SessionID(), err)
			g.endRound(manager.EndBoardFull)
			return
		}
		g.stateMgr.Observe(g.snake.Len())
	}

	switch g.collisionMgr.CheckCollision(g.snake, moveErr) {
	case manager.WallCollision:
		g.endRound(manager.EndWall)
	case manager.SelfCollision:
		g.endRound(manager.EndSelf)
	}
}

func (g *Game) endRound(cause manager.RoundEnd) {
	rec := g.stateMgr.EndRound(g.snake.Len(), cause)
	log.Printf("session %s round %d: snake %v at length %d after %v",
		g.stateMgr.SessionID(), rec.Round, rec.Cause, rec.Length, rec.Duration().Round(time.Millisecond))

	if g.announce {
		fmt.Fprintln(g.announcer, announcement(cause))
	}
	if cause != manager.EndBoardFull {
		g.sound.PlayCrash()
	}

	g.snake.Reset()
	g.hasVacated = false

	if cause == manager.EndBoardFull {
		if err := g.foodMgr.Spawn(g.snake); err != nil {
			log.Printf("session %s: respawning food: %v", g.stateMgr.SessionID(), err)
		}
	}
}

func announcement(cause manager.RoundEnd) string {
	switch cause {
	case manager.EndWall:
		return "Game over! The snake left the board."
	case manager.EndSelf:
		return "Game over! The snake bit its own tail."
	default:
		return "You win! The snake filled the board."
	}
}

// Render draws the background, the erased tail, the food and the snake, then presents the frame
func (g *Game) Render() {
	g.surface.ClearBoard(types.BackgroundColor)
	if g.hasVacated {
		g.surface.DrawCell(g.vacated, types.BackgroundColor, types.BackgroundColor)
	}
	for _, d := range []types.Drawable{g.foodMgr.Food(), g.snake} {
		d.Draw(g.surface)
	}
	g.surface.Present()
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.foodMgr.Food()
}

func (g *Game) State() *manager.StateManager {
	return g.stateMgr
}
