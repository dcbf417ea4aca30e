package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/analyzer"
	"github.com/policyscope/policyscope/internal/api"
	"github.com/policyscope/policyscope/internal/cache"
	"github.com/policyscope/policyscope/internal/config"
	"github.com/policyscope/policyscope/internal/database"
	"github.com/policyscope/policyscope/internal/llm"
	"github.com/policyscope/policyscope/internal/metrics"
	"github.com/policyscope/policyscope/internal/pipeline"
	"github.com/policyscope/policyscope/internal/scheduler"
	"github.com/policyscope/policyscope/internal/scraper"
	"github.com/policyscope/policyscope/internal/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("policyscope starting")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Attribute table: built-in unless a YAML override is configured.
	lib := analyzer.DefaultLibrary()
	if cfg.AttributesFile != "" {
		lib, err = analyzer.LoadLibrary(cfg.AttributesFile)
		if err != nil {
			logger.Fatal("load attribute table", zap.Error(err))
		}
		logger.Info("loaded attribute table", zap.String("file", cfg.AttributesFile), zap.Int("attributes", lib.Len()))
	}

	ctx := context.Background()

	// Optional storage.
	var db *database.DB
	if cfg.DatabaseURL != "" {
		db, err = database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("connect database", zap.Error(err))
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			logger.Fatal("ensure schema", zap.Error(err))
		}
		logger.Info("database connected")
	} else {
		logger.Info("no database configured, history disabled")
	}

	// Optional report cache.
	var reportCache *cache.Cache
	if cfg.RedisAddr != "" {
		reportCache, err = cache.New(ctx, cfg.RedisAddr, cfg.CacheTTL, logger)
		if err != nil {
			logger.Fatal("connect redis", zap.Error(err))
		}
		defer reportCache.Close()
		logger.Info("report cache connected", zap.String("addr", cfg.RedisAddr))
	}

	m := metrics.New(nil)
	scr := scraper.New(cfg.ScrapeTimeout, cfg.MaxDocumentChars, logger)
	llmClient := llm.New(cfg.OllamaHost, cfg.OllamaModel, logger)
	pipe := pipeline.New(lib, scr, llmClient, db, reportCache, m, logger)

	logger.Info("extraction mode", zap.String("mode", pipe.Mode(ctx)))

	// Background catalog refresh.
	sched := scheduler.New(pipe, cfg.RefreshInterval, cfg.RefreshWorkers, logger)
	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()

	go func() {
		if err := sched.Start(schedCtx); err != nil {
			logger.Error("scheduler error", zap.Error(err))
		}
	}()

	// Router.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Mount("/api/v1", api.New(pipe, db, logger).Router())
	r.Handle("/metrics", promhttp.Handler())

	if db != nil {
		webHandler, err := web.New(db, "internal/web/templates", logger)
		if err != nil {
			logger.Fatal("initialize web handler", zap.Error(err))
		}
		r.Mount("/", webHandler.Router())
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	// Graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		schedCancel()
		server.Shutdown(context.Background())
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}

	logger.Info("policyscope stopped")
}
