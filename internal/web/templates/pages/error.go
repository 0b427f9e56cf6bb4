package pages

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/cricle/internal/web/templates/layout"
)

// ErrorData is the data for the error page
type ErrorData struct {
	Status  int
	Message string
}

// Error renders a full error page
func Error(data ErrorData) templ.Component {
	content := templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := layout.NewWriter(out)

		w.Raw(`<section class="error-page" data-status="`)
		w.Raw(strconv.Itoa(data.Status))
		w.Raw(`"><h2>`)
		w.Text(http.StatusText(data.Status))
		w.Raw(`</h2><p class="error-message">`)
		w.Text(data.Message)
		w.Raw(`</p><p><a href="/">Return to the game</a></p></section>`)

		return w.Err()
	})

	return layout.Base("Error", content)
}
