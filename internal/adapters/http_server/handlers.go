package httpserver

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"leisure_park/internal/domain"
)

// PageRenderer renders the landing page for a menu state.
type PageRenderer interface {
	Render(ctx context.Context, m domain.MenuState) (domain.RenderedPage, error)
}

type Handlers struct {
	Pages  PageRenderer
	Static fs.FS
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// MountHandlers registers the routes. Health checks bypass the per-client
// limiter so checks from a shared address are never throttled.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(RateLimit(s.limiter))
		}
		r.Get("/", h.landing)
		r.Head("/", h.landing)
		if h.Static != nil {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(h.Static))))
		}
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) landing(w http.ResponseWriter, r *http.Request) {
	menu := domain.ParseMenuState(r.URL.Query().Get(domain.MenuParam))

	page, err := h.Pages.Render(r.Context(), menu)
	if err != nil {
		log.Error().Err(err).Str("menu", menu.String()).Msg("render landing page failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "page could not be rendered")
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	// If client already has this version, short-circuit.
	if etagMatches(r.Header.Get("If-None-Match"), page.ETag) {
		w.Header().Set("ETag", page.ETag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", page.ETag)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page.HTML); err != nil {
		log.Error().Err(err).Msg("failed to write landing page body")
	}
}

// etagMatches applies the weak comparison of If-None-Match: any listed tag,
// with or without the W/ prefix, or "*".
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == want {
			return true
		}
	}
	return false
}
