/*
main.go - Report intake server entry point

PURPOSE:
  Starts the HTTP intake service: accepts report requests, places them on
  the Redis queue, and optionally exposes dataset regeneration.

STARTUP SEQUENCE:
  1. Load configuration (viper: .env, config.env, environment)
  2. Build the logger
  3. Connect to the queue; on failure keep serving with no queue
  4. Open the store and synthesizer when ADMIN_GENERATE_ENABLED is set
  5. Run the HTTP server and the shutdown watcher under one errgroup

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the server stops accepting connections and waits up
  to 30s for active requests, then the queue and store are closed.

ENVIRONMENT:
  See config/config.go. The most used keys:
  HTTP_PORT, REDIS_ADDR, QUEUE_NAME, DB_DRIVER, DB_PATH, DATABASE_URL,
  ADMIN_GENERATE_ENABLED, LOG_LEVEL

SEE ALSO:
  - api/server.go: Router configuration
  - cmd/synth: One-shot dataset generation
*/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PedroMissola/analisador-relatorios/api"
	"github.com/PedroMissola/analisador-relatorios/config"
	"github.com/PedroMissola/analisador-relatorios/logger"
	"github.com/PedroMissola/analisador-relatorios/queue"
	"github.com/PedroMissola/analisador-relatorios/store"
	"github.com/PedroMissola/analisador-relatorios/synth"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Env: "development", Level: "info"}).Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Queue
	redisQueue := queue.NewRedisQueue(queue.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Name:     cfg.Redis.QueueName,
	})
	defer redisQueue.Close()

	var tasks api.TaskQueue
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisQueue.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("queue unreachable, report requests will be refused")
	} else {
		tasks = redisQueue
		log.Info().Str("addr", cfg.Redis.Addr).Str("queue", redisQueue.Name()).Msg("queue connected")
	}
	cancel()

	// Dataset regeneration
	var generator api.DatasetGenerator
	if cfg.Synth.AdminGenerateEnabled {
		backend, closeStore, err := store.Open(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to open store")
		}
		defer closeStore()

		generator = synth.New(backend, synth.Config{
			Seed:   cfg.Synth.Seed,
			Logger: log,
		})
		log.Info().Str("driver", cfg.DB.Driver).Msg("admin dataset endpoint enabled")
	}

	handler := api.NewHandler(tasks, generator, log)
	handler.DefaultEmployees = cfg.Synth.Employees

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // regeneration of a large dataset is synchronous
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("app", cfg.App.Name).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
