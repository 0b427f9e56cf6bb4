package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/cricle/internal/dependencies/clock"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/daily"
	"github.com/mcoot/cricle/internal/services/dataset"
	"github.com/mcoot/cricle/internal/services/scoring"
	"github.com/mcoot/cricle/internal/storage"
)

// GuessResult is the outcome of a successful guess
type GuessResult struct {
	Guessed          *model.Entity
	Comparison       model.Comparison
	Correct          bool
	GuessesRemaining int
	// MysteryName is only set when this guess lost the game
	MysteryName string
	Session     *model.GameSession
}

// Controller manages the per-player daily game state machine
type Controller struct {
	storage  storage.Storage
	dataset  *dataset.Dataset
	selector *daily.Selector
	clock    clock.Clock
	logger   *slog.Logger
	locks    *playerLocks
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	dataset *dataset.Dataset,
	selector *daily.Selector,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		dataset:  dataset,
		selector: selector,
		clock:    clock,
		logger:   logger,
		locks:    newPlayerLocks(),
	}
}

// Dataset returns the dataset games are played against
func (c *Controller) Dataset() *dataset.Dataset {
	return c.dataset
}

// EnsureToday returns the player's session for today, resetting it first if
// it is missing or belongs to an earlier day
func (c *Controller) EnsureToday(ctx context.Context, playerID model.PlayerID) (*model.GameSession, error) {
	unlock := c.locks.lock(playerID)
	defer unlock()

	return c.ensureToday(ctx, playerID)
}

// GetSession is an alias for EnsureToday used by read-only views
func (c *Controller) GetSession(ctx context.Context, playerID model.PlayerID) (*model.GameSession, error) {
	return c.EnsureToday(ctx, playerID)
}

// SubmitGuess scores a guess against today's mystery entity and advances the
// state machine. Every failure leaves the session unchanged, except that a
// session already at the attempt limit is marked lost.
func (c *Controller) SubmitGuess(ctx context.Context, playerID model.PlayerID, name string) (*GuessResult, error) {
	unlock := c.locks.lock(playerID)
	defer unlock()

	current, err := c.ensureToday(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !c.dataset.Available() {
		return nil, model.ErrDataUnavailable
	}
	if current.MysteryIndex == model.NoMystery {
		return nil, model.ErrSessionUninitialized
	}
	mystery, ok := c.dataset.At(current.MysteryIndex)
	if !ok {
		return nil, model.ErrSessionUninitialized
	}

	if current.IsFinished() {
		return nil, model.ErrGameAlreadyFinished
	}

	if len(current.Guesses) >= model.MaxGuesses {
		// Should be unreachable: the guess that hit the limit already marked the game lost
		next := current.Clone()
		next.Lost = true
		next.UpdatedAt = c.clock.Now()
		if err := c.save(ctx, next); err != nil {
			return nil, err
		}
		return nil, model.ErrNoGuessesRemaining
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrMissingGuessInput
	}

	guessed, ok := c.dataset.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrEntityNotFound, name)
	}

	comparison, correct := scoring.Compare(guessed, mystery)

	next := current.Clone()
	next.Guesses = append(next.Guesses, model.GuessRecord{
		Name:       guessed.Name,
		Comparison: comparison,
	})
	next.UpdatedAt = c.clock.Now()

	result := &GuessResult{
		Guessed:    guessed,
		Comparison: comparison,
		Correct:    correct,
	}

	switch {
	case correct:
		next.Won = true
	case len(next.Guesses) >= model.MaxGuesses:
		next.Lost = true
		result.MysteryName = mystery.Name
	}

	if err := c.save(ctx, next); err != nil {
		return nil, err
	}

	result.GuessesRemaining = next.GuessesRemaining()
	result.Session = next

	c.logger.Info("guess submitted",
		slog.String("player_id", string(playerID)),
		slog.String("game_date", next.GameDate),
		slog.Int("guess_number", len(next.Guesses)),
		slog.Bool("correct", correct),
		slog.Int("matched_attributes", scoring.MatchCount(comparison)),
		slog.String("state", string(next.State())),
	)

	return result, nil
}

// MysteryName returns the mystery entity's name if the session may reveal
// it. Only lost games reveal the answer; a won game already shows it as the
// winning guess.
func (c *Controller) MysteryName(session *model.GameSession) (string, bool) {
	if !session.Lost {
		return "", false
	}
	mystery, ok := c.dataset.At(session.MysteryIndex)
	if !ok {
		return "", false
	}
	return mystery.Name, true
}

// ensureToday must be called with the player's lock held
func (c *Controller) ensureToday(ctx context.Context, playerID model.PlayerID) (*model.GameSession, error) {
	current, err := c.storage.GetSession(ctx, playerID)
	if err != nil && !errors.Is(err, model.ErrSessionNotFound) {
		return nil, err
	}

	today := c.selector.TodayKey()
	if current != nil && !c.needsReset(current, today) {
		return current, nil
	}

	return c.reset(ctx, playerID, today)
}

// needsReset reports whether a stored session must be replaced: it is from
// another day, or its mystery index no longer points into the dataset while
// a playable dataset exists
func (c *Controller) needsReset(s *model.GameSession, today string) bool {
	if s.GameDate != today {
		return true
	}
	if !c.dataset.Available() {
		return false
	}
	_, ok := c.dataset.At(s.MysteryIndex)
	return !ok
}

func (c *Controller) reset(ctx context.Context, playerID model.PlayerID, today string) (*model.GameSession, error) {
	s := &model.GameSession{
		PlayerID:     playerID,
		GameDate:     today,
		MysteryIndex: c.selector.IndexForToday(c.dataset.Size()),
		Guesses:      []model.GuessRecord{},
		UpdatedAt:    c.clock.Now(),
	}

	if err := c.save(ctx, s); err != nil {
		return nil, err
	}

	c.logger.Info("new daily game",
		slog.String("player_id", string(playerID)),
		slog.String("game_date", today),
		slog.Int("mystery_index", s.MysteryIndex),
	)
	if mystery, ok := c.dataset.At(s.MysteryIndex); ok {
		c.logger.Debug("todays cricketer", slog.String("name", mystery.Name))
	}

	return s, nil
}

func (c *Controller) save(ctx context.Context, s *model.GameSession) error {
	if err := c.storage.SaveSession(ctx, s); err != nil {
		c.logger.Error("failed to save session",
			slog.String("player_id", string(s.PlayerID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
