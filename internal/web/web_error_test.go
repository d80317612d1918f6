package web_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pegsolitaire-go/internal/web"
)

func TestUnknownGameRedirectsHome(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games/NOTEXIST")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	doc := pageOK(t, ts.followRedirect(rr))
	assertContainsElement(t, doc, "#flash.flash-error")
	assertContainsText(t, doc, "#flash", "Game not found")
}

func TestActionOnUnknownGameRedirectsHome(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.click("NOTEXIST", 2, 2)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestUnknownRouteNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/scores/ABC123")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStaticFileServing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte(".board{}"), 0o600))

	ts := newWebTestServer(t)
	ts.handler = web.NewRouter(web.RouterConfig{
		Logger:         ts.app.Logger,
		GameController: ts.app.GameController,
		HubManager:     ts.app.HubManager,
		StaticDir:      dir,
	})

	rr := ts.get("/static/style.css")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), ".board{}")
}
