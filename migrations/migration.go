package main

import (
	"fmt"
	"gin-foodcart/infra"
	"gin-foodcart/services"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := infra.LoadConfig()
	logger := infra.NewLogger(cfg.Env, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Migration failed")
		os.Exit(1)
	}
}

func run(cfg *infra.Config, logger *logrus.Logger) error {
	db, err := infra.SetupDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = infra.Close(db) }()

	if _, err := services.PrepareStore(db, logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// トークンブラックリスト用のSQLiteデータベースのマイグレーション
	tokenDB, err := infra.SetupTokenDB(cfg)
	if err != nil {
		return fmt.Errorf("connect token blacklist database: %w", err)
	}
	defer func() { _ = infra.Close(tokenDB) }()

	if err := infra.EnsureTokenSchema(tokenDB); err != nil {
		return fmt.Errorf("migrate token blacklist database: %w", err)
	}
	return nil
}
