package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Session errors
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionUninitialized = errors.New("game not initialized")
	ErrGameAlreadyFinished  = errors.New("game already finished for today")
	ErrNoGuessesRemaining   = errors.New("no more guesses remaining")
	ErrMissingGuessInput    = errors.New("no cricketer name provided")

	// Dataset errors
	ErrDataUnavailable = errors.New("cricketer data could not be loaded")
	ErrEntityNotFound  = errors.New("cricketer not found in database")
)
