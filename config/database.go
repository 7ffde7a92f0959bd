package config

import (
	"fmt"
	"time"

	"github.com/siinmedia/jastiphemat/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates or updates the tables, including the unique index on
// invoice.id_pesanan the invoice upsert depends on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Pesanan{},
		&models.Invoice{},
		&models.Admin{},
	)
}
