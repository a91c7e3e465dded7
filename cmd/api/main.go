package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/strongpass/strongpass-go/internal/config"
	"github.com/strongpass/strongpass-go/internal/handler"
	"github.com/strongpass/strongpass-go/internal/middleware"
	"github.com/strongpass/strongpass-go/internal/service"
	"github.com/strongpass/strongpass-go/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// The word list is a one-time startup cost; a missing or empty source
	// is fatal here, never on the generation hot path.
	words, err := loadWords(cfg.WordlistPath)
	if err != nil {
		slog.Error("word list load failed", "path", cfg.WordlistPath, "error", err)
		os.Exit(1)
	}
	slog.Info("word list loaded", "words", words.Len())

	genService := service.NewGeneratorService(words)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/analyze", genHandler.HandleAnalyze)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func loadWords(path string) (*wordlist.List, error) {
	if path != "" {
		return wordlist.Load(path)
	}
	return wordlist.Default()
}
