package manager

import (
	"time"

	"github.com/google/uuid"
)

// maxRounds bounds the in-memory round history
const maxRounds = 50

// RoundEnd says why a round finished
type RoundEnd int

const (
	EndWall RoundEnd = iota
	EndSelf
	EndBoardFull
)

func (r RoundEnd) String() string {
	switch r {
	case EndWall:
		return "left the board"
	case EndSelf:
		return "bit its own tail"
	case EndBoardFull:
		return "filled the board"
	default:
		return "unknown"
	}
}

// RoundRecord holds the data of one finished round
type RoundRecord struct {
	Round     int
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Cause     RoundEnd
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the session bookkeeping: rounds played and lengths reached.
// Nothing is persisted.
type StateManager struct {
	sessionID  string
	round      int
	roundStart time.Time
	bestLength int
	history    []RoundRecord
	now        func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		sessionID: uuid.New().String(),
		round:     1,
		history:   make([]RoundRecord, 0, maxRounds),
		now:       time.Now,
	}
	sm.roundStart = sm.now()
	return sm
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// Round is the number of the round in progress, starting at 1
func (sm *StateManager) Round() int {
	return sm.round
}

// Observe records the current snake length
func (sm *StateManager) Observe(length int) {
	if length > sm.bestLength {
		sm.bestLength = length
	}
}

// EndRound closes the current round and starts the next one
func (sm *StateManager) EndRound(length int, cause RoundEnd) RoundRecord {
	sm.Observe(length)
	end := sm.now()
	rec := RoundRecord{
		Round:     sm.round,
		StartTime: sm.roundStart,
		EndTime:   end,
		Length:    length,
		Cause:     cause,
	}

	if len(sm.history) >= maxRounds {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, rec)

	sm.round++
	sm.roundStart = end
	return rec
}

func (sm *StateManager) BestLength() int {
	return sm.bestLength
}

// History returns the most recent finished rounds, oldest first
func (sm *StateManager) History() []RoundRecord {
	out := make([]RoundRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

// AverageLength over the rounds kept in history
func (sm *StateManager) AverageLength() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Length
	}
	return float64(sum) / float64(len(sm.history))
}
