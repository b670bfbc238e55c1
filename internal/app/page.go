package app

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"leisure_park/internal/adapters/observability"
	"leisure_park/internal/domain"
	"leisure_park/internal/view"
)

// MenuStates lists every state the page can be rendered in.
var MenuStates = []domain.MenuState{domain.MenuClosed, domain.MenuOpen}

type PageService struct {
	hotel    domain.Hotel
	cache    domain.Cache // may be nil
	cacheTTL time.Duration
	version  string
	group    singleflight.Group
}

// DefaultCacheTTL replaces a TTL under one second. Redis treats a zero
// expiry as no expiry, which would keep stale pages forever.
const DefaultCacheTTL = 15 * time.Minute

func NewPageService(h domain.Hotel, c domain.Cache, ttl time.Duration) *PageService {
	if ttl < time.Second {
		ttl = DefaultCacheTTL
	}
	return &PageService{hotel: h, cache: c, cacheTTL: ttl, version: contentVersion(h)}
}

// contentVersion fingerprints the content; it is part of every cache key.
func contentVersion(h domain.Hotel) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%#v", h)))
	return hex.EncodeToString(sum[:4])
}

func (s *PageService) key(m domain.MenuState) string {
	return fmt.Sprintf("page:%s:%s", s.version, m)
}

// Render returns the landing page for menu state m, from cache when possible.
func (s *PageService) Render(ctx context.Context, m domain.MenuState) (domain.RenderedPage, error) {
	key := s.key(m)
	if s.cache != nil {
		if b, ok, err := s.cache.Get(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("page cache get failed")
		} else if ok {
			return domain.RenderedPage{Menu: m, HTML: b, ETag: etag(b)}, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		b, err := s.renderHTML(m)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, b, int(s.cacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("page cache set failed")
			}
		}
		return b, nil
	})
	if err != nil {
		return domain.RenderedPage{}, err
	}
	b := v.([]byte)
	return domain.RenderedPage{Menu: m, HTML: b, ETag: etag(b)}, nil
}

func (s *PageService) renderHTML(m domain.MenuState) ([]byte, error) {
	var buf bytes.Buffer
	if err := view.Page(view.PageProps{Hotel: s.hotel, Menu: m}).Render(&buf); err != nil {
		return nil, fmt.Errorf("render page (menu=%s): %w", m, err)
	}
	observability.ObservePageRender(m.String())
	return buf.Bytes(), nil
}

// Invalidate evicts every cached rendering of the current content.
func (s *PageService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	for _, m := range MenuStates {
		if err := s.cache.Del(ctx, s.key(m)); err != nil {
			return fmt.Errorf("invalidate %s: %w", s.key(m), err)
		}
	}
	return nil
}

func etag(body []byte) string {
	sum := sha1.Sum(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
