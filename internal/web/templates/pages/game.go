package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/web/templates/layout"
)

// AttributeView is one scored attribute of a guess
type AttributeView struct {
	Key   model.Attribute
	Label string
	Value string
	Match bool
}

// GuessView is one previous guess
type GuessView struct {
	Number     int
	Name       string
	Attributes []AttributeView
}

// GameData is the data for the game page
type GameData struct {
	GameDate         string
	Status           model.SessionState
	Names            []string
	Guesses          []GuessView // most recent first
	GuessesRemaining int
	MaxGuesses       int
	MysteryName      string // only set once the game is lost
}

// Finished reports whether no more guesses can be made
func (d GameData) Finished() bool {
	return d.Status == model.SessionStateWon || d.Status == model.SessionStateLost
}

// StatusMessage is the line shown above the guess form
func (d GameData) StatusMessage() string {
	switch d.Status {
	case model.SessionStateWon:
		return "You've guessed today's cricketer!"
	case model.SessionStateLost:
		return fmt.Sprintf("Out of guesses! The cricketer was %s.", d.MysteryName)
	default:
		if d.GuessesRemaining == 1 {
			return "1 guess remaining"
		}
		return fmt.Sprintf("%d guesses remaining", d.GuessesRemaining)
	}
}

// Game renders the daily game page
func Game(data GameData) templ.Component {
	content := templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		names, err := json.Marshal(data.Names)
		if err != nil {
			return err
		}

		w := layout.NewWriter(out)

		w.Raw(`<section id="game" data-game-date="`)
		w.Text(data.GameDate)
		w.Raw(`" data-status="`)
		w.Text(string(data.Status))
		w.Raw(`" data-max-guesses="`)
		w.Raw(strconv.Itoa(data.MaxGuesses))
		w.Raw(`" data-guesses-remaining="`)
		w.Raw(strconv.Itoa(data.GuessesRemaining))
		w.Raw(`">`)

		messageClass := "info-message"
		switch data.Status {
		case model.SessionStateWon:
			messageClass = "success-message"
		case model.SessionStateLost:
			messageClass = "failure-message"
		}
		w.Raw(`<p id="message-area" class="` + messageClass + `">`)
		w.Text(data.StatusMessage())
		w.Raw(`</p>`)

		disabled := ""
		if data.Finished() {
			disabled = " disabled"
		}
		w.Raw(`<form id="guess-form" class="guess-form" autocomplete="off">`)
		w.Raw(`<input id="cricketer-input" name="name" type="text" list="cricketer-suggestions" placeholder="Type a cricketer's name"` + disabled + `>`)
		w.Raw(`<datalist id="cricketer-suggestions"></datalist>`)
		w.Raw(`<button id="guess-button" type="submit"` + disabled + `>Guess</button>`)
		w.Raw(`</form>`)

		w.Raw(`<div id="guesses-container">`)
		for _, g := range data.Guesses {
			renderGuess(w, g)
		}
		w.Raw(`</div></section>`)

		// json.Marshal escapes <, > and & so the list is safe inside a script tag
		w.Raw(`<script id="cricketer-names" type="application/json">`)
		w.Raw(string(names))
		w.Raw(`</script>`)
		w.Raw(`<script src="/static/js/game.js" defer></script>`)

		return w.Err()
	})

	return layout.Base("Today's cricketer", content)
}

func renderGuess(w *layout.Writer, g GuessView) {
	w.Raw(`<div class="guess-row"><div class="guess-header"><span class="guess-number">`)
	w.Raw(strconv.Itoa(g.Number))
	w.Raw(`</span><span class="guess-name">`)
	w.Text(g.Name)
	w.Raw(`</span></div><div class="guess-details">`)

	for _, a := range g.Attributes {
		class := "detail-box"
		if a.Match {
			class += " correct"
		}
		w.Raw(`<div class="` + class + `" data-attribute="`)
		w.Text(string(a.Key))
		w.Raw(`"><span class="label">`)
		w.Text(a.Label)
		w.Raw(`</span><span class="value">`)
		w.Text(a.Value)
		w.Raw(`</span></div>`)
	}

	w.Raw(`</div></div>`)
}
