package storage

import (
	"context"

	"github.com/mcoot/cricle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Game session operations, one session per player
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, playerID model.PlayerID) (*model.GameSession, error)
	DeleteSession(ctx context.Context, playerID model.PlayerID) error
}
