package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments, remembering the first error so components
// can emit markup without checking every call
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as-is
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes escaped text
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Component renders a child component into the same stream
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}

// Base wraps page content in the shared document shell
func Base(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)

		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Raw(`<title>`)
		w.Text(title)
		w.Raw(` | Cricle</title>`)
		w.Raw(`<link rel="stylesheet" href="/static/css/style.css">`)
		w.Raw(`</head><body><header class="site-header"><h1><a href="/">Cricle</a></h1>`)
		w.Raw(`<p class="tagline">Guess the cricketer of the day</p></header>`)
		w.Raw(`<main class="container">`)
		w.Component(ctx, content)
		w.Raw(`</main></body></html>`)

		return w.Err()
	})
}
