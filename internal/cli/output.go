package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerCreated:
		o.printf("Player: %s\n", v.PlayerID)
	case Names:
		for _, n := range v.Names {
			o.printf("%s\n", n)
		}
	case GameState:
		o.printGameState(v)
	case GuessResult:
		o.printGuessResult(v)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
		o.printf("Cricketers: %d\n", v.DatasetSize)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

// PlayerCreated response type (matches API)
type PlayerCreated struct {
	PlayerID string `json:"player_id"`
}

// Names response type
type Names struct {
	Names []string `json:"names"`
}

// Entity response type
type Entity struct {
	Name           string  `json:"name"`
	DebutYear      *int    `json:"debut_year"`
	CountryPlaying *string `json:"country_playing"`
	CountryBorn    *string `json:"country_born"`
	Type           *string `json:"type"`
	IPLTeam        *string `json:"ipl_team"`
}

// Guess response type
type Guess struct {
	Entity     Entity          `json:"entity"`
	Comparison map[string]bool `json:"comparison"`
}

// GameState response type
type GameState struct {
	GameDate         string  `json:"game_date"`
	Status           string  `json:"status"`
	Guesses          []Guess `json:"guesses"`
	GuessesRemaining int     `json:"guesses_remaining"`
	MaxGuesses       int     `json:"max_guesses"`
	MysteryName      string  `json:"mystery_name,omitempty"`
}

// GuessResult response type
type GuessResult struct {
	GuessedEntity    Entity          `json:"guessed_entity"`
	Comparison       map[string]bool `json:"comparison"`
	CorrectGuess     bool            `json:"correct_guess"`
	GuessesRemaining int             `json:"guesses_remaining"`
	MysteryName      string          `json:"mystery_name,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status      string `json:"status"`
	DatasetSize int    `json:"dataset_size"`
}

var attributeLabels = []struct {
	key   string
	label string
}{
	{"debut_year", "Debut"},
	{"country_playing", "Country Playing"},
	{"country_born", "Country Born"},
	{"type", "Type"},
	{"ipl_team", "Current IPL Team"},
}

func (o *Output) printGameState(g GameState) {
	o.printf("Date: %s\n", g.GameDate)
	o.printf("Status: %s\n", g.Status)
	o.printf("Guesses: %d/%d\n", len(g.Guesses), g.MaxGuesses)

	for i, guess := range g.Guesses {
		o.printf("\n%d. %s\n", i+1, guess.Entity.Name)
		o.printAttributes(guess.Entity, guess.Comparison)
	}

	if g.MysteryName != "" {
		o.printf("\nThe cricketer was %s\n", g.MysteryName)
	}
}

func (o *Output) printGuessResult(r GuessResult) {
	o.printf("%s\n", r.GuessedEntity.Name)
	o.printAttributes(r.GuessedEntity, r.Comparison)

	switch {
	case r.CorrectGuess:
		o.printf("\nCorrect! You've guessed today's cricketer.\n")
	case r.MysteryName != "":
		o.printf("\nOut of guesses! The cricketer was %s\n", r.MysteryName)
	default:
		o.printf("\n%d guesses remaining\n", r.GuessesRemaining)
	}
}

func (o *Output) printAttributes(e Entity, cmp map[string]bool) {
	values := map[string]string{
		"debut_year":      intValue(e.DebutYear),
		"country_playing": stringValue(e.CountryPlaying),
		"country_born":    stringValue(e.CountryBorn),
		"type":            stringValue(e.Type),
		"ipl_team":        stringValue(e.IPLTeam),
	}

	width := 0
	for _, a := range attributeLabels {
		width = max(width, len(a.label))
	}

	for _, a := range attributeLabels {
		mark := "x"
		if cmp[a.key] {
			mark = "✓"
		}
		o.printf("   [%s] %s%s  %s\n", mark, a.label, strings.Repeat(" ", width-len(a.label)), values[a.key])
	}
}

func intValue(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func stringValue(v *string) string {
	if v == nil {
		return "N/A"
	}
	return *v
}
