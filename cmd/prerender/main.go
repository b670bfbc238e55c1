package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"leisure_park/internal/adapters/observability"
	redisad "leisure_park/internal/adapters/redis"
	"leisure_park/internal/app"
	"leisure_park/internal/content"
	"leisure_park/internal/domain"
	"leisure_park/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("redis", cfg.RedisAddr).
		Str("export_dir", cfg.ExportDir).
		Int("workers", cfg.Workers).
		Msg("prerender starting")

	if cfg.RedisAddr == "" && cfg.ExportDir == "" {
		log.Fatal().Msg("nothing to do: set REDIS_ADDR to warm the cache and/or EXPORT_DIR to write snapshots")
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		defer rc.Close()
		cache = rc
	}
	if cfg.ExportDir != "" {
		if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.ExportDir).Msg("create export dir failed")
		}
	}

	pages := app.NewPageService(content.LeisurePark(cfg.HeroImageURL), cache, cfg.CacheTTL)
	if err := pages.Invalidate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cache invalidation failed")
	}

	failed, err := prerender(ctx, pages, app.MenuStates, cfg.ExportDir, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("prerender aborted")
	}
	if failed > 0 {
		log.Fatal().Int("failed", failed).Msg("prerender completed with errors")
	}
	log.Info().Msg("prerender completed")
}
