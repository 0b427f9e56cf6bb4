package model

import "time"

// MaxGuesses is the number of attempts a player gets each day
const MaxGuesses = 5

// NoMystery is the mystery index used when there is no playable entity
const NoMystery = -1

// SessionState is the derived lifecycle state of a GameSession
type SessionState string

const (
	SessionStateUninitialized SessionState = "uninitialized"
	SessionStateInProgress    SessionState = "in_progress"
	SessionStateWon           SessionState = "won"
	SessionStateLost          SessionState = "lost"
)

// GuessRecord is one scored guess in a session's history
type GuessRecord struct {
	Name       string     `json:"name"` // canonical casing from the dataset
	Comparison Comparison `json:"comparison"`
}

// GameSession is a single player's game for one reference-timezone day
type GameSession struct {
	PlayerID     PlayerID      `json:"player_id"`
	GameDate     string        `json:"game_date"` // YYYY-MM-DD
	MysteryIndex int           `json:"mystery_index"`
	Guesses      []GuessRecord `json:"guesses"`
	Won          bool          `json:"won"`
	Lost         bool          `json:"lost"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// State derives the state machine position from the stored flags
func (s *GameSession) State() SessionState {
	switch {
	case s.GameDate == "" || s.MysteryIndex == NoMystery:
		return SessionStateUninitialized
	case s.Won:
		return SessionStateWon
	case s.Lost:
		return SessionStateLost
	default:
		return SessionStateInProgress
	}
}

// IsFinished returns true once the game has been won or lost
func (s *GameSession) IsFinished() bool {
	return s.Won || s.Lost
}

// GuessesRemaining returns how many attempts are left today
func (s *GameSession) GuessesRemaining() int {
	remaining := MaxGuesses - len(s.Guesses)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clone returns a deep copy so callers can compute a new state without
// touching the stored value
func (s *GameSession) Clone() *GameSession {
	c := *s
	c.Guesses = make([]GuessRecord, len(s.Guesses))
	for i, g := range s.Guesses {
		cmp := make(Comparison, len(g.Comparison))
		for k, v := range g.Comparison {
			cmp[k] = v
		}
		c.Guesses[i] = GuessRecord{Name: g.Name, Comparison: cmp}
	}
	return &c
}
