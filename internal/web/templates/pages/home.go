package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/pegsolitaire-go/internal/web/templates/layout"
)

// HomeData is the view model for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with the new game form
func Home(data HomeData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="home">
<h1>Peg Solitaire</h1>
<p>Jump pegs over each other to remove them. Finish with a single peg in the centre hole to win.</p>
<form id="new-game-form" method="post" action="/games">
<button type="submit">New game</button>
</form>
</section>
`)
		return err
	})
	return layout.Base(data.PageData, content)
}
