package redis

import (
	"fmt"

	"github.com/mcoot/cricle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "cricle"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// sessionKey returns the Redis key for a player's GameSession
func sessionKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, playerID)
}
