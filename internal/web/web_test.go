package web_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/pegsolitaire-go/internal/factory"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/auth"
	"github.com/mcoot/pegsolitaire-go/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := factory.New(factory.Config{
		AuthConfig: auth.Config{HashCost: bcrypt.MinCost},
		Logger:     logger,
	})
	require.NoError(t, err)

	router := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		HubManager:     app.HubManager,
		StaticDir:      "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// visitor returns a second browser against the same server, with its own
// cookies
func (ts *webTestServer) visitor() *webTestServer {
	return &webTestServer{
		t:       ts.t,
		handler: ts.handler,
		app:     ts.app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, false)
}

// post makes a POST request with form data (non-HTMX)
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, false)
}

// postHTMX makes a POST request with form data as an HTMX request
func (ts *webTestServer) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, true)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would),
// honouring cookie paths
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

func cookieKey(c *http.Cookie) string {
	path := c.Path
	if path == "" {
		path = "/"
	}
	return c.Name + "@" + path
}

// addTo adds every cookie whose path covers the request path
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		path := cookie.Path
		if path == "" {
			path = "/"
		}
		if path == "/" || req.URL.Path == path || strings.HasPrefix(req.URL.Path, path+"/") {
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookieKey(cookie))
		} else {
			j.cookies[cookieKey(cookie)] = cookie
		}
	}
}

// hasGameToken returns true if a control token is held for the game
func (j *cookieJar) hasGameToken(id string) bool {
	_, ok := j.cookies["game_token@/games/"+id]
	return ok
}

// Helper functions for common test operations

// createGame starts a game through the home page form and returns its ID
func (ts *webTestServer) createGame() string {
	ts.t.Helper()
	rr := ts.post("/games", url.Values{})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after game creation")

	location := rr.Header().Get("Location")
	parts := strings.Split(location, "/games/")
	require.Len(ts.t, parts, 2, "Expected location to contain /games/{id}, got %q", location)
	require.True(ts.t, ts.cookies.hasGameToken(parts[1]), "Expected game token cookie to be set")
	return parts[1]
}

// setBoard replaces the stored board of a game
func (ts *webTestServer) setBoard(id string, pegs ...model.Position) {
	ts.t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	ts.t.Cleanup(cancel)
	g, err := ts.app.Storage.GetGame(ctx, model.GameID(id))
	require.NoError(ts.t, err)
	g.Board = model.NewBoardWithPegs(pegs...)
	g.History = []*model.Board{g.Board.Clone()}
	require.NoError(ts.t, ts.app.Storage.SaveGame(ctx, g))
}

// click posts a hole click
func (ts *webTestServer) click(id string, row, col int) *httptest.ResponseRecorder {
	return ts.post("/games/"+id+"/click", url.Values{
		"row": {strconv.Itoa(row)},
		"col": {strconv.Itoa(col)},
	})
}

// move posts the explicit move form
func (ts *webTestServer) move(id string, fromRow, fromCol, toRow, toCol int) *httptest.ResponseRecorder {
	return ts.post("/games/"+id+"/move", url.Values{
		"from_row": {strconv.Itoa(fromRow)},
		"from_col": {strconv.Itoa(fromCol)},
		"to_row":   {strconv.Itoa(toRow)},
		"to_col":   {strconv.Itoa(toCol)},
	})
}

// gamePage loads and parses the game page
func (ts *webTestServer) gamePage(id string) *goquery.Document {
	ts.t.Helper()
	rr := ts.get("/games/" + id)
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// followRedirect follows a redirect and returns the response
// Works with both traditional Location headers and HTMX HX-Redirect headers
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	// Check for HTMX redirect first
	location := rr.Header().Get("HX-Redirect")
	if location == "" {
		// Fall back to traditional redirect
		location = rr.Header().Get("Location")
	}
	require.NotEmpty(ts.t, location, "Expected Location or HX-Redirect header for redirect")
	return ts.get(location)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

// pageOK checks a page loaded and parses it
func pageOK(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}
