package main

import (
	"context"
	"errors"
	"fmt"
	"gin-foodcart/infra"
	"gin-foodcart/repositories"
	"gin-foodcart/routes"
	"gin-foodcart/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const tokenCleanupInterval = 10 * time.Minute

// cleanExpiredTokens ブラックリストから期限切れのトークンを定期的に削除する
func cleanExpiredTokens(ctx context.Context, tokenRepository repositories.ITokenRepository, logger logrus.FieldLogger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := tokenRepository.CleanExpiredTokens()
			if err != nil {
				logger.WithError(err).Warn("Failed to clean expired tokens")
				continue
			}
			if removed > 0 {
				logger.WithField("removed", removed).Info("Cleaned expired tokens")
			}
		}
	}
}

func main() {
	cfg := infra.LoadConfig()
	logger := infra.NewLogger(cfg.Env, cfg.LogLevel)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
}

// run 開いた接続はすべて戻る前に閉じる
func run(cfg *infra.Config, logger *logrus.Logger) error {
	db, err := infra.SetupDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = infra.Close(db) }()

	if _, err := services.PrepareStore(db, logger); err != nil {
		return fmt.Errorf("prepare database: %w", err)
	}

	tokenDB, err := infra.SetupTokenDB(cfg)
	if err != nil {
		return fmt.Errorf("connect token blacklist database: %w", err)
	}
	defer func() { _ = infra.Close(tokenDB) }()

	if err := infra.EnsureTokenSchema(tokenDB); err != nil {
		return fmt.Errorf("migrate token blacklist database: %w", err)
	}

	r := routes.SetupRouter(routes.Deps{
		DB:      db,
		TokenDB: tokenDB,
		Logger:  logger,
		TokenOptions: services.TokenOptions{
			SecretKey: cfg.SecretKey,
			TTL:       cfg.TokenTTL,
		},
		CORSOrigins: cfg.CORSOrigins(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go cleanExpiredTokens(ctx, repositories.NewTokenRepository(tokenDB), logger)

	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}
