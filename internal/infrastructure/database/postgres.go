package database

import (
	"fmt"

	"github.com/tanzhongyan/Singheatlh/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the libpq connection string. Timestamps in the dataset are UTC.
func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)
}

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	// Readiness is polled by the seeder, so opening must not require a live server.
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// The seeder runs one statement at a time.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(4)

	logrus.Infof("PostgreSQL pool configured for %s:%s", cfg.Host, cfg.Port)

	return db, nil
}
