package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/cricle/internal/api/middleware"
	"github.com/mcoot/cricle/internal/api/request"
	"github.com/mcoot/cricle/internal/api/response"
	"github.com/mcoot/cricle/internal/services/session"
)

// GameHandler handles the daily game endpoints
type GameHandler struct {
	controller *session.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *session.Controller) *GameHandler {
	return &GameHandler{
		controller: controller,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetPlayer(r.Context())

	sess, err := h.controller.GetSession(r.Context(), p.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	mystery, _ := h.controller.MysteryName(sess)
	response.JSON(w, http.StatusOK, response.GameStateFromModel(sess, h.controller.Dataset(), mystery))
}

// Guess handles POST /api/v1/game/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetPlayer(r.Context())

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.controller.SubmitGuess(r.Context(), p.ID, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResultFromModel(result))
}
