package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "info", "success" or "error"
	Message string
}

// PageData holds the fields every page needs
type PageData struct {
	Title string
	Flash *FlashMessage
}

// Base wraps page content in the shared HTML shell
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`+templ.EscapeString(data.Title)+` - Peg Solitaire</title>
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
<script src="https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"></script>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<nav><a href="/">Peg Solitaire</a></nav>
<main>
`); err != nil {
			return err
		}

		if err := Flash(data.Flash).Render(ctx, w); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

// Flash renders the flash notice, or nothing when flash is nil
func Flash(flash *FlashMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if flash == nil {
			return nil
		}
		_, err := io.WriteString(w, `<div id="flash" class="flash flash-`+templ.EscapeString(flash.Type)+`">`+
			templ.EscapeString(flash.Message)+"</div>\n")
		return err
	})
}
