package request

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Name string `json:"name"`
}
