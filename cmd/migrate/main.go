package main

import (
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/database"
	"github.com/renovalte/renovalte/internal/env"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration complete")
}
