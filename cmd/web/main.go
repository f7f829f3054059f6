package main

import (
	"context"
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordarena/internal/config"
	"wordarena/internal/game"
	"wordarena/internal/handlers"
)

//go:embed static/*
var embeddedStatic embed.FS

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	bank, err := game.NewWordBank()
	if err != nil {
		log.Fatal().Err(err).Msg("loading word bank")
	}
	store := game.NewStore(bank, cfg.TickRate)
	store.StartSweeper(context.Background(), cfg.SweepInterval, cfg.SessionIdle)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("embedded static")
	}
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	limiter := handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateBurst)
	limiter.StartPruning(context.Background(), cfg.SweepInterval, cfg.SessionIdle)
	handlers.NewHomeHandler(store).RegisterRoutes(r)
	handlers.NewGameHandler(store, limiter).RegisterRoutes(r)

	// No WriteTimeout: /api/stream and /api/ws hold their connections open.
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Int("tick_rate", cfg.TickRate).Msg("listening")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
