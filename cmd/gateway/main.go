package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/aqt"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/config"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/handlers"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid REDIS_URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	client := aqt.New(aqt.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.UpstreamTimeout,
		Tokens:  aqt.NewTokenSource(cfg.AuthURL, nil, logger),
		Logger:  logger,
	})

	tournaments := logic.NewTournamentService(client, rdb, sugar, cfg.CacheTTL)
	teams := logic.NewTeamService(client, rdb, sugar, cfg.CacheTTL)
	encounters := logic.NewEncounterService(client, rdb, sugar, cfg.CacheTTL)
	users := logic.NewUserService(client, rdb, sugar, cfg.CacheTTL)
	achievements := logic.NewAchievementService(client, rdb, sugar, cfg.CacheTTL)
	statistics := logic.NewStatisticsService(client, rdb, sugar, cfg.CacheTTL)

	// The analytics service and the warm pool reference each other: edits
	// schedule a debounced re-warm. Break the cycle with a late-bound
	// callback.
	var pool *worker.Pool
	analytics := logic.NewAnalyticsService(client, rdb, sugar, cfg.CacheTTL, func(tournamentID int64) {
		if pool != nil {
			pool.AnalyticsEdited(tournamentID)
		}
	})

	pool = worker.NewPool(worker.PoolConfig{
		WorkerCount:    cfg.WorkerCount,
		QueueSize:      cfg.QueueSize,
		WarmInterval:   cfg.WarmInterval,
		DebounceWindow: cfg.DebounceWindow,
		WarmDepth:      cfg.WarmDepth,
		Tournaments:    tournaments,
		Teams:          teams,
		Analytics:      analytics,
		Statistics:     statistics,
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool.Start(ctx)

	h := handlers.New(handlers.Config{
		WorkerPool:   pool,
		Redis:        rdb,
		Upstream:     client,
		Tokens:       client.Tokens(),
		Logger:       logger,
		Tournaments:  tournaments,
		Teams:        teams,
		Encounters:   encounters,
		Users:        users,
		Achievements: achievements,
		Statistics:   statistics,
		Analytics:    analytics,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.NewRouter(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Gateway listening", "addr", srv.Addr, "api", cfg.APIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
	pool.Stop()
	sugar.Info("Goodbye")
}
