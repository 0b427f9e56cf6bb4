package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mcoot/cricle/internal/api/response"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/dataset"
	"github.com/mcoot/cricle/internal/services/session"
	"github.com/mcoot/cricle/internal/web/middleware"
	"github.com/mcoot/cricle/internal/web/templates/pages"
)

// autocompleteLimit caps the suggestions returned to the browser
const autocompleteLimit = 10

// attributeLabels are the column headings shown for each guess
var attributeLabels = map[model.Attribute]string{
	model.AttrDebutYear:      "Debut",
	model.AttrCountryPlaying: "Country Playing",
	model.AttrCountryBorn:    "Country Born",
	model.AttrType:           "Type",
	model.AttrIPLTeam:        "Current IPL Team",
}

// GameHandler serves the game page and its JSON endpoints
type GameHandler struct {
	controller *session.Controller
	logger     *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(controller *session.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller: controller,
		logger:     logger,
	}
}

// Page renders GET /
func (h *GameHandler) Page(w http.ResponseWriter, r *http.Request) {
	data := h.controller.Dataset()
	if !data.Available() {
		h.renderError(w, r, http.StatusInternalServerError, "Cricketer data could not be loaded.")
		return
	}

	p := middleware.GetPlayer(r.Context())
	sess, err := h.controller.EnsureToday(r.Context(), p.ID)
	if err != nil {
		h.logger.Error("failed to load session", slog.String("error", err.Error()))
		h.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	mystery, _ := h.controller.MysteryName(sess)
	view := pages.GameData{
		GameDate:         sess.GameDate,
		Status:           sess.State(),
		Names:            data.AllNamesSorted(),
		Guesses:          guessViews(sess, data),
		GuessesRemaining: sess.GuessesRemaining(),
		MaxGuesses:       model.MaxGuesses,
		MysteryName:      mystery,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pages.Game(view).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render game page", slog.String("error", err.Error()))
	}
}

// Guess handles POST /guess with a JSON body {"name": "..."}
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPlayer(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No cricketer name provided.")
		return
	}

	result, err := h.controller.SubmitGuess(r.Context(), p.ID, req.Name)
	if err != nil {
		status, message := guessError(err, strings.TrimSpace(req.Name))
		if status == http.StatusInternalServerError {
			h.logger.Error("guess failed", slog.String("error", err.Error()))
		}
		writeError(w, status, message)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResultFromModel(result))
}

// Autocomplete handles GET /autocomplete?q=
func (h *GameHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	limit := autocompleteLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	suggestions := h.controller.Dataset().Suggest(r.URL.Query().Get("q"), limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	response.JSON(w, http.StatusOK, suggestions)
}

func (h *GameHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.Error(pages.ErrorData{Status: status, Message: message}).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render error page", slog.String("error", err.Error()))
	}
}

// guessError maps a guess failure to a status and player-facing message
func guessError(err error, name string) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingGuessInput):
		return http.StatusBadRequest, "No cricketer name provided."
	case errors.Is(err, model.ErrNoGuessesRemaining):
		return http.StatusBadRequest, "No more guesses remaining."
	case errors.Is(err, model.ErrGameAlreadyFinished):
		return http.StatusBadRequest, "Game already finished for today."
	case errors.Is(err, model.ErrEntityNotFound):
		return http.StatusNotFound, fmt.Sprintf("Cricketer %q not found in database.", name)
	case errors.Is(err, model.ErrDataUnavailable), errors.Is(err, model.ErrSessionUninitialized):
		return http.StatusInternalServerError, "Game not initialized or data missing."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again later."
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	response.JSON(w, status, map[string]string{"error": message})
}

// guessViews lists the session's guesses most recent first, looking up each
// guessed cricketer for display values
func guessViews(sess *model.GameSession, data *dataset.Dataset) []pages.GuessView {
	views := make([]pages.GuessView, 0, len(sess.Guesses))
	for i := len(sess.Guesses) - 1; i >= 0; i-- {
		g := sess.Guesses[i]
		entity, ok := data.FindByName(g.Name)
		if !ok {
			entity = &model.Entity{Name: g.Name}
		}

		attrs := make([]pages.AttributeView, 0, len(model.Attributes))
		for _, a := range model.Attributes {
			attrs = append(attrs, pages.AttributeView{
				Key:   a,
				Label: attributeLabels[a],
				Value: displayValue(entity, a),
				Match: g.Comparison[a],
			})
		}

		views = append(views, pages.GuessView{
			Number:     i + 1,
			Name:       entity.Name,
			Attributes: attrs,
		})
	}
	return views
}

func displayValue(e *model.Entity, a model.Attribute) string {
	var s *string
	switch a {
	case model.AttrDebutYear:
		if e.DebutYear != nil {
			return strconv.Itoa(*e.DebutYear)
		}
	case model.AttrCountryPlaying:
		s = e.CountryPlaying
	case model.AttrCountryBorn:
		s = e.CountryBorn
	case model.AttrType:
		s = e.Type
	case model.AttrIPLTeam:
		s = e.IPLTeam
	}
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
