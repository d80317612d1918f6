package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/pegsolitaire-go/internal/web/templates/layout"
)

// ErrorData is the view model for a full-page error
type ErrorData struct {
	layout.PageData
	Heading string
	Message string
}

// Error renders a standalone error page with a link back home
func Error(data ErrorData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="error">
<h1>`+templ.EscapeString(data.Heading)+`</h1>
<p>`+templ.EscapeString(data.Message)+`</p>
<p><a href="/">Start a new game</a></p>
</section>
`)
		return err
	})
	return layout.Base(data.PageData, content)
}
