package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/player"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeMissingGuessInput    = "MISSING_GUESS_INPUT"
	CodeNoGuessesRemaining   = "NO_GUESSES_REMAINING"
	CodeGameAlreadyFinished  = "GAME_ALREADY_FINISHED"
	CodeEntityNotFound       = "ENTITY_NOT_FOUND"
	CodeDataUnavailable      = "DATA_UNAVAILABLE"
	CodeSessionUninitialized = "SESSION_UNINITIALIZED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Guess validation
	case errors.Is(err, model.ErrMissingGuessInput):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingGuessInput, "No cricketer name provided"}}
	case errors.Is(err, model.ErrNoGuessesRemaining):
		return &httpError{http.StatusBadRequest, APIError{CodeNoGuessesRemaining, "No more guesses remaining"}}
	case errors.Is(err, model.ErrGameAlreadyFinished):
		return &httpError{http.StatusBadRequest, APIError{CodeGameAlreadyFinished, "Game already finished for today"}}
	case errors.Is(err, model.ErrEntityNotFound):
		// The wrapped message names the guess
		return &httpError{http.StatusNotFound, APIError{CodeEntityNotFound, err.Error()}}

	// Server side state
	case errors.Is(err, model.ErrDataUnavailable):
		return &httpError{http.StatusInternalServerError, APIError{CodeDataUnavailable, "Cricketer data could not be loaded"}}
	case errors.Is(err, model.ErrSessionUninitialized):
		return &httpError{http.StatusInternalServerError, APIError{CodeSessionUninitialized, "Game not initialized or data missing"}}

	// Identity
	case errors.Is(err, player.ErrInvalidPlayer), errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Unknown or expired player"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
