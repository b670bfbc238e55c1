package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"leisure_park/internal/domain"
)

type renderer interface {
	Render(ctx context.Context, m domain.MenuState) (domain.RenderedPage, error)
}

// snapshotName is the export file for each menu state.
func snapshotName(m domain.MenuState) string {
	if m.IsOpen() {
		return "menu-open.html"
	}
	return "index.html"
}

// prerender renders every state with at most workers in flight and, when dir
// is set, writes each page to dir. It returns the number of states that
// failed.
func prerender(ctx context.Context, pages renderer, states []domain.MenuState, dir string, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, m := range states {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return failed, err
		}

		wg.Add(1)
		go func(m domain.MenuState) {
			defer wg.Done()
			defer sem.Release(1)

			page, err := pages.Render(ctx, m)
			if err == nil && dir != "" {
				err = os.WriteFile(filepath.Join(dir, snapshotName(m)), page.HTML, 0o644)
			}
			if err != nil {
				log.Warn().Str("menu", m.String()).Err(err).Msg("prerender failed")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			log.Info().Str("menu", m.String()).Str("etag", page.ETag).Int("bytes", len(page.HTML)).Msg("prerender ok")
		}(m)
	}

	wg.Wait()
	return failed, nil
}
