//go:build integration || !unit

package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	server "leisure_park/internal/adapters/http_server"
	"leisure_park/internal/adapters/observability"
	redisad "leisure_park/internal/adapters/redis"
	"leisure_park/internal/app"
	"leisure_park/internal/content"
	"leisure_park/web"
)

// ---------- helpers ----------

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findByID(c, id); f != nil {
			return f
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func menuChecked(t *testing.T, doc *html.Node) bool {
	t.Helper()
	box := findByID(doc, "menu-state")
	require.NotNil(t, box)
	for _, a := range box.Attr {
		if a.Key == "checked" {
			return true
		}
	}
	return false
}

func fetch(t *testing.T, url string) (*html.Node, *http.Response) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	doc, err := html.Parse(res.Body)
	require.NoError(t, err)
	return doc, res
}

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	srv := server.New(server.Options{})
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	srv.MountHandlers(&server.Handlers{
		Pages:  app.NewPageService(content.LeisurePark(""), cache, time.Minute),
		Static: web.Static(),
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

// ---------- the tests ----------

func TestHTTP_EndToEnd_MenuStateDoesNotPersist(t *testing.T) {
	ts := newSite(t)

	doc, _ := fetch(t, ts.URL+"/")
	assert.False(t, menuChecked(t, doc), "menu starts hidden")
	assert.NotNil(t, findByID(doc, "desktop-nav"), "desktop nav is always rendered")
	assert.NotNil(t, findByID(doc, "mobile-nav"), "mobile block is toggled by the browser")

	// the toggle is a label for the checkbox, not a link to another URL
	toggle := findByID(doc, "menu-toggle")
	require.NotNil(t, toggle)
	assert.Equal(t, "label", toggle.Data)
	assert.Equal(t, "menu-state", attr(toggle, "for"))
	assert.Empty(t, attr(toggle, "href"))

	doc, _ = fetch(t, ts.URL+"/?menu=open")
	assert.True(t, menuChecked(t, doc))

	// reloading the page URL starts closed again
	for reload := 0; reload < 2; reload++ {
		doc, _ = fetch(t, ts.URL+"/")
		assert.False(t, menuChecked(t, doc), "reload %d", reload)
	}
}

func TestHTTP_EndToEnd_StaticAndMetrics(t *testing.T) {
	ts := newSite(t)

	for _, path := range []string{"/static/styles.css", "/static/images/leisure.svg"} {
		res, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode, path)
	}

	// two page loads: one render, one cache hit
	fetch(t, ts.URL+"/?menu=open")
	fetch(t, ts.URL+"/?menu=open")

	res, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	out := string(body)
	assert.True(t, strings.Contains(out, `leisure_cache_events_total{cache="redis",event="hit"}`), "cache hit recorded")
	assert.Contains(t, out, "leisure_http_requests_total")
}
