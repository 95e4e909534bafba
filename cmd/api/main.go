package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "homebase/internal/adapters/http_server"
	"homebase/internal/adapters/observability"
	redisad "homebase/internal/adapters/redis"
	"homebase/internal/app"
	"homebase/internal/shared"
	"homebase/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog seed: file when configured, built-in otherwise
	seed := memory.DefaultSeed()
	if cfg.SeedPath != "" {
		var err error
		seed, err = memory.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SeedPath).Msg("seed load failed")
		}
	}
	store := memory.NewStore(seed)
	log.Info().Int("entries", len(seed)).Msg("catalog seeded")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, serving uncached")
	}

	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	b := app.NewBookingService(store, cache)

	go func() {
		ids := make([]string, len(seed))
		for i, e := range seed {
			ids[i] = e.ID
		}
		app.Warm(context.Background(), q, ids, cfg.WarmWorkers)
	}()

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:         q,
		B:         b,
		BookLimit: rate.NewLimiter(rate.Limit(cfg.BookRPS), cfg.BookBurst),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
