package response

import (
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/dataset"
	"github.com/mcoot/cricle/internal/services/session"
)

// Health is the response for the health check
type Health struct {
	Status      string `json:"status"`
	DatasetSize int    `json:"dataset_size"`
}

// Player is the response for guest creation. The ID doubles as the bearer token.
type Player struct {
	PlayerID string `json:"player_id"`
}

// Names is the response for the name listing and autocomplete
type Names struct {
	Names []string `json:"names"`
}

// Entity is a cricketer as shown to players
type Entity struct {
	Name           string  `json:"name"`
	DebutYear      *int    `json:"debut_year"`
	CountryPlaying *string `json:"country_playing"`
	CountryBorn    *string `json:"country_born"`
	Type           *string `json:"type"`
	IPLTeam        *string `json:"ipl_team"`
}

// EntityFromModel converts a model.Entity
func EntityFromModel(e *model.Entity) Entity {
	return Entity{
		Name:           e.Name,
		DebutYear:      e.DebutYear,
		CountryPlaying: e.CountryPlaying,
		CountryBorn:    e.CountryBorn,
		Type:           e.Type,
		IPLTeam:        e.IPLTeam,
	}
}

// ComparisonFromModel converts a comparison into a JSON object with every
// attribute present
func ComparisonFromModel(c model.Comparison) map[string]bool {
	out := make(map[string]bool, len(model.Attributes))
	for _, attr := range model.Attributes {
		out[string(attr)] = c[attr]
	}
	return out
}

// GuessResult is the response for a successful guess
type GuessResult struct {
	GuessedEntity    Entity          `json:"guessed_entity"`
	Comparison       map[string]bool `json:"comparison"`
	CorrectGuess     bool            `json:"correct_guess"`
	GuessesRemaining int             `json:"guesses_remaining"`
	MysteryName      string          `json:"mystery_name,omitempty"`
}

// GuessResultFromModel converts a session.GuessResult
func GuessResultFromModel(r *session.GuessResult) GuessResult {
	return GuessResult{
		GuessedEntity:    EntityFromModel(r.Guessed),
		Comparison:       ComparisonFromModel(r.Comparison),
		CorrectGuess:     r.Correct,
		GuessesRemaining: r.GuessesRemaining,
		MysteryName:      r.MysteryName,
	}
}

// Guess is one previous guess in the game state
type Guess struct {
	Entity     Entity          `json:"entity"`
	Comparison map[string]bool `json:"comparison"`
}

// GameState is the response for the current game
type GameState struct {
	GameDate         string  `json:"game_date"`
	Status           string  `json:"status"`
	Guesses          []Guess `json:"guesses"`
	GuessesRemaining int     `json:"guesses_remaining"`
	MaxGuesses       int     `json:"max_guesses"`
	MysteryName      string  `json:"mystery_name,omitempty"`
}

// GameStateFromModel converts a session. Guess entities are looked up in data
// so the full attribute values are shown; mysteryName should only be set
// when the session may reveal it.
func GameStateFromModel(s *model.GameSession, data *dataset.Dataset, mysteryName string) GameState {
	guesses := make([]Guess, 0, len(s.Guesses))
	for _, g := range s.Guesses {
		entity := Entity{Name: g.Name}
		if e, ok := data.FindByName(g.Name); ok {
			entity = EntityFromModel(e)
		}
		guesses = append(guesses, Guess{
			Entity:     entity,
			Comparison: ComparisonFromModel(g.Comparison),
		})
	}

	return GameState{
		GameDate:         s.GameDate,
		Status:           string(s.State()),
		Guesses:          guesses,
		GuessesRemaining: s.GuessesRemaining(),
		MaxGuesses:       model.MaxGuesses,
		MysteryName:      mysteryName,
	}
}
