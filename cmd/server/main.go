// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"tienlen-server/internal/app"
	"tienlen-server/internal/config"
	"tienlen-server/internal/httpapi"
	"tienlen-server/internal/ports"
	"tienlen-server/internal/ports/ws"
	"tienlen-server/internal/store"
)

func main() {
	logger := logrus.New()

	cfg, err := config.LoadServerConfig(".env")
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warnf("unknown log level %q, using info", cfg.LogLevel)
	}

	if err := config.LoadGameConfig(cfg.GameConfigPath); err != nil {
		logger.Warnf("game config: %v; using defaults", err)
	}
	gameCfg := config.GetGameConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scores, closeScores, err := openScoreStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("score store: %v", err)
	}
	defer closeScores()

	hub := ws.NewHub(logger)
	registry := app.NewRegistry(app.RoomOptions{
		Notifier:     hub,
		Scores:       scores,
		Logger:       logger,
		ScoreTimeout: gameCfg.ScoreTimeout(),
	})

	handler := httpapi.SetupRoutes(httpapi.Deps{
		Logger:   logger,
		Registry: registry,
		Hub:      hub,
		Auth:     ws.NewAuthenticator(cfg.JWTSecret, 0),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Running on %s (scores: %s)", cfg.Addr, cfg.ScoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server exited: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("shutdown: %v", err)
	}
	registry.Wait()
}

// openScoreStore connects the configured backend. The returned func releases it.
func openScoreStore(ctx context.Context, cfg *config.ServerConfig, logger logrus.FieldLogger) (ports.ScorePort, func(), error) {
	switch cfg.ScoreBackend {
	case config.BackendRedis:
		client, err := store.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("connected to redis at %s", cfg.RedisAddr)
		return store.NewRedis(client, store.DefaultKeyPrefix), func() { _ = client.Close() }, nil
	case config.BackendPostgres:
		pool, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("connected to postgres")
		return pg, pool.Close, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}
