package service

import (
	"context"
	"testing"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	infraRepo "github.com/HarshJ166/invomax-sub000/internal/infrastructure/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Company{},
		&entity.Client{},
		&entity.Invoice{},
		&entity.InvoiceSequence{},
		&entity.Quotation{},
		&entity.DealerPayment{},
		&entity.InvoiceArchive{},
		&entity.DealerPaymentArchive{},
		&entity.IdempotencyKey{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// createTestCompany persists a company with a seeded invoice sequence
func createTestCompany(t *testing.T, db *gorm.DB, state, prefix string, initial int64) *entity.Company {
	t.Helper()
	companyRepo := infraRepo.NewCompanyRepository(db)
	company := &entity.Company{
		Name:                 "Test Traders",
		State:                state,
		GSTIN:                "27AAAAA0000A1Z5",
		InvoicePrefix:        prefix,
		InvoiceNumberInitial: initial,
	}
	seq := &entity.InvoiceSequence{
		Prefix:     prefix,
		NextNumber: initial - 1,
	}
	if err := companyRepo.CreateWithSequence(context.Background(), company, seq); err != nil {
		t.Fatalf("create company: %v", err)
	}
	return company
}

func createTestClient(t *testing.T, db *gorm.DB, company *entity.Company, state string) *entity.Client {
	t.Helper()
	client := &entity.Client{
		CompanyID: company.ID,
		Name:      "Test Client",
		State:     state,
	}
	if err := infraRepo.NewClientRepository(db).Create(context.Background(), client); err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}
