package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/config"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/httpapi"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/news"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/provider"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/rating"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/store"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/util"
)

func main() {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfgPath := "config/credtech.yaml"
	if p := os.Getenv("CREDTECH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0o755); err != nil {
		log.Fatalf("creating data directory: %v", err)
	}
	ratings, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("opening rating store: %v", err)
	}
	defer ratings.Close()

	yahoo := provider.NewYahooClient(cfg.Yahoo.QuoteURL, cfg.Yahoo.ChartURL, cfg.Analysis.RateLimitPerMin, logger)
	headlines := news.NewFetcher(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret)
	analyzer := rating.NewAnalyzer(yahoo, headlines, cfg.News.HeadlineLimit, cfg.Analysis.MaxWorkers, logger)

	api := httpapi.NewServer(analyzer, ratings, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: api.Handler(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("credtech server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down credtech server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
