package database

import (
	"fmt"
	"time"

	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB_HOST, cfg.DB_PORT, cfg.DB_USERNAME, cfg.DB_PASSWORD, cfg.DB_DATABASE,
	)

	// TranslateError maps driver unique-violation errors to gorm.ErrDuplicatedKey,
	// which the offer repository relies on for its get-or-create and token retry.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	maxIdleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		maxIdleTime = 15 * time.Minute
	}
	sqlDB.SetConnMaxIdleTime(maxIdleTime)

	return db, nil
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Contractor{},
		&model.ContractorProjectType{},
		&model.Project{},
		&model.File{},
		&model.Offer{},
	)
}
