package database

import (
	"fmt"

	"github.com/HarshJ166/invomax-sub000/internal/config"
	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Translate driver errors so the engine can detect duplicate-key
		// violations (quotation identifier collisions) portably.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Company{},
		&entity.Client{},
		&entity.Invoice{},
		&entity.InvoiceSequence{},
		&entity.InvoiceArchive{},
		&entity.DealerPayment{},
		&entity.DealerPaymentArchive{},
		&entity.Quotation{},
		&entity.IdempotencyKey{},
	)
}
