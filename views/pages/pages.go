// Package pages defines the server-rendered page shells. Components are
// plain templ.ComponentFunc values; the dynamic UI inside the shell is drawn
// by the static client from JSON snapshots.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"wordarena/internal/viewmodel"
)

func layout(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// HomePage renders the landing page with the new-game form.
func HomePage() templ.Component {
	return layout("Word Arena", func(w io.Writer) error {
		_, err := io.WriteString(w, `
<main class="home">
<h1>WORD ARENA</h1>
<p>Test your word unscrambling skills!</p>
<form method="post" action="/sessions">
<button type="submit" class="primary">Play</button>
</form>
</main>`)
		return err
	})
}

// GamePage renders the game shell; the client script drives everything
// inside #app from snapshots.
func GamePage(data viewmodel.GamePage) templ.Component {
	return layout(data.Title, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `
<div id="app" data-session="%s"></div>
<div id="overlay"></div>
<script src="/static/app.js"></script>`, templ.EscapeString(data.SessionID))
		return err
	})
}

// NotFoundPage renders a minimal 404 body.
func NotFoundPage() templ.Component {
	return layout("Not found", func(w io.Writer) error {
		_, err := io.WriteString(w, `
<main class="home">
<h1>Not found</h1>
<p><a href="/">Back to the arena</a></p>
</main>`)
		return err
	})
}
