package player

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcoot/cricle/internal/dependencies/clock"
	"github.com/mcoot/cricle/internal/dependencies/random"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/storage"
)

// Errors
var (
	ErrInvalidPlayer = errors.New("unknown or expired player")
)

const (
	idPrefix = "p_"
	idLength = 22
)

// Service issues and resolves anonymous player identities
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateGuest creates and stores a new anonymous player
func (s *Service) CreateGuest(ctx context.Context) (*model.Player, error) {
	player := &model.Player{
		ID:        model.PlayerID(idPrefix + s.random.String(idLength, random.IDAlphabet)),
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player",
			slog.String("player_id", string(player.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("guest player created", slog.String("player_id", string(player.ID)))
	return player, nil
}

// Resolve returns the player identified by token
func (s *Service) Resolve(ctx context.Context, token string) (*model.Player, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidPlayer
	}

	player, err := s.storage.GetPlayer(ctx, model.PlayerID(token))
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidPlayer
		}
		return nil, err
	}
	return player, nil
}
