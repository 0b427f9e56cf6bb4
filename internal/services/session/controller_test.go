package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cricle/internal/dependencies/mocks"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/daily"
	"github.com/mcoot/cricle/internal/services/dataset"
	"github.com/mcoot/cricle/internal/storage/memory"
	"github.com/mcoot/cricle/internal/testutil"
)

const player model.PlayerID = "player-1"

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	dataset    *dataset.Dataset
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func ptr[T any](v T) *T {
	return &v
}

func testEntities() []model.Entity {
	return []model.Entity{
		{Name: "A", DebutYear: ptr(2000), CountryPlaying: ptr("India"), CountryBorn: ptr("India"), Type: ptr("Batsman"), IPLTeam: ptr("Mumbai Indians")},
		{Name: "B", DebutYear: ptr(2010), CountryPlaying: ptr("India"), CountryBorn: ptr("India"), Type: ptr("Bowler"), IPLTeam: ptr("Mumbai Indians")},
		{Name: "Cee Dee", DebutYear: ptr(2000), CountryPlaying: ptr("England")},
	}
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	// 2024-03-10 is day 70: (70 + 2024) % 3 == 0, so the mystery is "A"
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s.dataset = dataset.New(testEntities(), testutil.NopLogger())
	s.controller = s.newController(s.dataset)
	s.ctx = context.Background()
}

func (s *ControllerSuite) newController(d *dataset.Dataset) *Controller {
	return NewController(s.storage, d, daily.New(s.clock, time.UTC), s.clock, testutil.NopLogger())
}

func (s *ControllerSuite) stored() *model.GameSession {
	sess, err := s.storage.GetSession(s.ctx, player)
	s.Require().NoError(err)
	return sess
}

// EnsureToday tests

func (s *ControllerSuite) TestEnsureTodayCreatesSession() {
	sess, err := s.controller.EnsureToday(s.ctx, player)
	s.Require().NoError(err)

	s.Equal(player, sess.PlayerID)
	s.Equal("2024-03-10", sess.GameDate)
	s.Equal(0, sess.MysteryIndex)
	s.Empty(sess.Guesses)
	s.False(sess.Won)
	s.False(sess.Lost)
	s.Equal(model.SessionStateInProgress, sess.State())

	s.Equal(sess.GameDate, s.stored().GameDate)
}

func (s *ControllerSuite) TestEnsureTodayKeepsTodaysSession() {
	_, err := s.controller.SubmitGuess(s.ctx, player, "B")
	s.Require().NoError(err)

	sess, err := s.controller.EnsureToday(s.ctx, player)
	s.Require().NoError(err)
	s.Len(sess.Guesses, 1)
}

func (s *ControllerSuite) TestEnsureTodayResetsYesterdaysSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{
		PlayerID:     player,
		GameDate:     "2024-03-09",
		MysteryIndex: 2,
		Guesses:      []model.GuessRecord{{Name: "B"}, {Name: "B"}},
		Lost:         true,
	}))

	sess, err := s.controller.EnsureToday(s.ctx, player)
	s.Require().NoError(err)

	s.Equal("2024-03-10", sess.GameDate)
	s.Equal(0, sess.MysteryIndex)
	s.Empty(sess.Guesses)
	s.False(sess.Won)
	s.False(sess.Lost)
	s.Equal(model.SessionStateInProgress, sess.State())
}

func (s *ControllerSuite) TestSessionResetsAfterMidnight() {
	_, err := s.controller.SubmitGuess(s.ctx, player, "A")
	s.Require().NoError(err)
	s.True(s.stored().Won)

	s.clock.AdvanceDays(1)

	// 2024-03-11: (71 + 2024) % 3 == 1
	result, err := s.controller.SubmitGuess(s.ctx, player, "B")
	s.Require().NoError(err)
	s.True(result.Correct)
	s.Equal("2024-03-11", result.Session.GameDate)
	s.Len(result.Session.Guesses, 1)
}

func (s *ControllerSuite) TestSessionKeepsMysteryWhenDatasetChanges() {
	_, err := s.controller.EnsureToday(s.ctx, player)
	s.Require().NoError(err)

	// Same day, bigger dataset: (70 + 2024) % 4 == 2 for new sessions
	bigger := append(testEntities(), model.Entity{Name: "D"})
	other := s.newController(dataset.New(bigger, testutil.NopLogger()))

	sess, err := other.EnsureToday(s.ctx, player)
	s.Require().NoError(err)
	s.Equal(0, sess.MysteryIndex)

	fresh, err := other.EnsureToday(s.ctx, "player-2")
	s.Require().NoError(err)
	s.Equal(2, fresh.MysteryIndex)
}

func (s *ControllerSuite) TestSentinelSessionIsReinitialisedOnceDataExists() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{
		PlayerID:     player,
		GameDate:     "2024-03-10",
		MysteryIndex: model.NoMystery,
	}))

	sess, err := s.controller.EnsureToday(s.ctx, player)
	s.Require().NoError(err)
	s.Equal(0, sess.MysteryIndex)
}

// SubmitGuess tests

func (s *ControllerSuite) TestWinningGuess() {
	result, err := s.controller.SubmitGuess(s.ctx, player, "A")
	s.Require().NoError(err)

	s.True(result.Correct)
	s.True(result.Comparison.AllMatch())
	s.Equal("A", result.Guessed.Name)
	s.Equal(4, result.GuessesRemaining)
	s.Empty(result.MysteryName)
	s.True(result.Session.Won)
	s.Equal(model.SessionStateWon, s.stored().State())
}

func (s *ControllerSuite) TestWinningAfterWrongGuesses() {
	for i := 0; i < 4; i++ {
		_, err := s.controller.SubmitGuess(s.ctx, player, "B")
		s.Require().NoError(err)
	}

	result, err := s.controller.SubmitGuess(s.ctx, player, "a")
	s.Require().NoError(err)
	s.True(result.Correct)
	s.Equal(0, result.GuessesRemaining)
	s.Empty(result.MysteryName)

	sess := s.stored()
	s.True(sess.Won)
	s.False(sess.Lost)
}

func (s *ControllerSuite) TestWrongGuessScoresAttributes() {
	result, err := s.controller.SubmitGuess(s.ctx, player, "B")
	s.Require().NoError(err)

	s.False(result.Correct)
	s.False(result.Comparison[model.AttrDebutYear])
	s.True(result.Comparison[model.AttrCountryPlaying])
	s.True(result.Comparison[model.AttrCountryBorn])
	s.False(result.Comparison[model.AttrType])
	s.True(result.Comparison[model.AttrIPLTeam])
	s.Equal(4, result.GuessesRemaining)
	s.Equal(model.SessionStateInProgress, s.stored().State())
}

func (s *ControllerSuite) TestGuessUsesCanonicalCasing() {
	result, err := s.controller.SubmitGuess(s.ctx, player, "  cee DEE ")
	s.Require().NoError(err)

	s.Equal("Cee Dee", result.Guessed.Name)
	s.Equal("Cee Dee", s.stored().Guesses[0].Name)
}

func (s *ControllerSuite) TestGuessLimitLosesGame() {
	var last *GuessResult
	for i := 0; i < model.MaxGuesses; i++ {
		result, err := s.controller.SubmitGuess(s.ctx, player, "B")
		s.Require().NoError(err)
		s.Equal(model.MaxGuesses-i-1, result.GuessesRemaining)
		if i < model.MaxGuesses-1 {
			s.Empty(result.MysteryName, "mystery revealed early")
		}
		last = result
	}

	s.Equal("A", last.MysteryName)
	s.True(last.Session.Lost)

	before := s.stored()
	s.True(before.Lost)
	s.Len(before.Guesses, model.MaxGuesses)

	// Sixth attempt is rejected and nothing changes
	_, err := s.controller.SubmitGuess(s.ctx, player, "A")
	s.ErrorIs(err, model.ErrGameAlreadyFinished)

	after := s.stored()
	s.Equal(before.Guesses, after.Guesses)
	s.True(after.Lost)
	s.False(after.Won)
}

func (s *ControllerSuite) TestGuessAfterWinRejected() {
	_, err := s.controller.SubmitGuess(s.ctx, player, "A")
	s.Require().NoError(err)

	_, err = s.controller.SubmitGuess(s.ctx, player, "B")
	s.ErrorIs(err, model.ErrGameAlreadyFinished)
	s.Len(s.stored().Guesses, 1)
}

func (s *ControllerSuite) TestAttemptLimitSafetyNet() {
	guesses := make([]model.GuessRecord, model.MaxGuesses)
	for i := range guesses {
		guesses[i] = model.GuessRecord{Name: "B"}
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{
		PlayerID:     player,
		GameDate:     "2024-03-10",
		MysteryIndex: 0,
		Guesses:      guesses,
	}))

	_, err := s.controller.SubmitGuess(s.ctx, player, "A")
	s.ErrorIs(err, model.ErrNoGuessesRemaining)

	sess := s.stored()
	s.True(sess.Lost)
	s.Len(sess.Guesses, model.MaxGuesses)
}

func (s *ControllerSuite) TestMissingName() {
	_, err := s.controller.SubmitGuess(s.ctx, player, "   ")
	s.ErrorIs(err, model.ErrMissingGuessInput)
	s.Empty(s.stored().Guesses)
}

func (s *ControllerSuite) TestUnknownName() {
	_, err := s.controller.SubmitGuess(s.ctx, player, "Don Bradman")
	s.ErrorIs(err, model.ErrEntityNotFound)
	s.Contains(err.Error(), "Don Bradman")
	s.Empty(s.stored().Guesses)
}

func (s *ControllerSuite) TestEmptyDatasetIsUnavailable() {
	c := s.newController(dataset.Empty())

	sess, err := c.EnsureToday(s.ctx, player)
	s.Require().NoError(err)
	s.Equal(model.NoMystery, sess.MysteryIndex)
	s.Equal(model.SessionStateUninitialized, sess.State())

	_, err = c.SubmitGuess(s.ctx, player, "A")
	s.ErrorIs(err, model.ErrDataUnavailable)
}

func (s *ControllerSuite) TestMysteryNameOnlyRevealedOnLoss() {
	sess, _ := s.controller.EnsureToday(s.ctx, player)
	_, ok := s.controller.MysteryName(sess)
	s.False(ok)

	for i := 0; i < model.MaxGuesses; i++ {
		_, _ = s.controller.SubmitGuess(s.ctx, player, "B")
	}

	name, ok := s.controller.MysteryName(s.stored())
	s.True(ok)
	s.Equal("A", name)
}

func (s *ControllerSuite) TestMysteryNameHiddenOnWin() {
	result, err := s.controller.SubmitGuess(s.ctx, player, "A")
	s.Require().NoError(err)

	_, ok := s.controller.MysteryName(result.Session)
	s.False(ok)
}

func (s *ControllerSuite) TestConcurrentGuessesDoNotExceedLimit() {
	const attempts = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded, rejected int

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.controller.SubmitGuess(s.ctx, player, "B")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, model.ErrGameAlreadyFinished):
				rejected++
			}
		}()
	}
	wg.Wait()

	s.Equal(model.MaxGuesses, succeeded)
	s.Equal(attempts-model.MaxGuesses, rejected)
	s.Len(s.stored().Guesses, model.MaxGuesses)
	s.Equal(0, s.controller.locks.size())
}

func (s *ControllerSuite) TestReferenceTimezoneDecidesTheDay() {
	kolkata, err := time.LoadLocation(daily.DefaultTimezone)
	s.Require().NoError(err)

	// 20:00 UTC on March 9 is already March 10 in Kolkata
	s.clock.Set(time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC))
	c := NewController(s.storage, s.dataset, daily.New(s.clock, kolkata), s.clock, testutil.NopLogger())

	sess, err := c.EnsureToday(s.ctx, player)
	s.Require().NoError(err)
	s.Equal("2024-03-10", sess.GameDate)
	s.Equal(0, sess.MysteryIndex)
}
