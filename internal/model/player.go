package model

import "time"

// PlayerID uniquely identifies an anonymous player
type PlayerID string

// Player is an anonymous guest; the ID is carried in a cookie or bearer token
type Player struct {
	ID        PlayerID  `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
