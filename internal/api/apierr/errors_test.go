package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/player"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrMissingGuessInput, http.StatusBadRequest, CodeMissingGuessInput},
		{model.ErrNoGuessesRemaining, http.StatusBadRequest, CodeNoGuessesRemaining},
		{model.ErrGameAlreadyFinished, http.StatusBadRequest, CodeGameAlreadyFinished},
		{fmt.Errorf("%w: %q", model.ErrEntityNotFound, "Nobody"), http.StatusNotFound, CodeEntityNotFound},
		{fmt.Errorf("load: %w", model.ErrDataUnavailable), http.StatusInternalServerError, CodeDataUnavailable},
		{model.ErrSessionUninitialized, http.StatusInternalServerError, CodeSessionUninitialized},
		{player.ErrInvalidPlayer, http.StatusUnauthorized, CodeUnauthorized},
		{NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{NewUnauthorizedError(), http.StatusUnauthorized, CodeUnauthorized},
		{fmt.Errorf("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.status, Status(tt.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestEntityNotFoundNamesTheGuess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, fmt.Errorf("%w: %q", model.ErrEntityNotFound, "Don Bradman"))

	assert.Contains(t, rr.Body.String(), "Don Bradman")
}
