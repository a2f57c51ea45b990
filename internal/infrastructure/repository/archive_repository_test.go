package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupArchiveDB(t *testing.T) *gorm.DB {
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
		&entity.Invoice{},
		&entity.DealerPayment{},
		&entity.InvoiceArchive{},
		&entity.DealerPaymentArchive{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestArchiveInvoiceMovesExactlyOneTable(t *testing.T) {
	db := setupArchiveDB(t)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	invoice := &entity.Invoice{
		CompanyID: uuid.New(),
		InvoiceNo: "INV-000001",
		Date:      time.Now(),
		Status:    enum.InvoiceStatusDraft,
		Items:     entity.LineItems{{Name: "Widget", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)}},
		Subtotal:  decimal.NewFromInt(100),
		IGST:      decimal.NewFromInt(18),
		Total:     decimal.NewFromInt(118),
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	arch, err := repo.ArchiveInvoice(ctx, invoice)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	if n := countRows(t, db, &entity.Invoice{}); n != 0 {
		t.Errorf("live invoices = %d, want 0", n)
	}
	if n := countRows(t, db, &entity.InvoiceArchive{}); n != 1 {
		t.Errorf("archived invoices = %d, want 1", n)
	}
	if arch.OriginalID != invoice.ID {
		t.Errorf("original id = %s, want %s", arch.OriginalID, invoice.ID)
	}
	if arch.ID == invoice.ID {
		t.Error("archive row reuses the live row id")
	}

	restored, err := repo.RestoreInvoice(ctx, arch.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if n := countRows(t, db, &entity.Invoice{}); n != 1 {
		t.Errorf("live invoices = %d, want 1 after restore", n)
	}
	if n := countRows(t, db, &entity.InvoiceArchive{}); n != 0 {
		t.Errorf("archived invoices = %d, want 0 after restore", n)
	}
	if restored.ID != invoice.ID {
		t.Errorf("restored id = %s, want original %s", restored.ID, invoice.ID)
	}
	if restored.InvoiceNo != invoice.InvoiceNo {
		t.Errorf("restored invoice no = %q, want %q", restored.InvoiceNo, invoice.InvoiceNo)
	}
}

func TestArchiveInvoiceMissingLiveRow(t *testing.T) {
	db := setupArchiveDB(t)
	repo := NewArchiveRepository(db)

	invoice := &entity.Invoice{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		InvoiceNo: "INV-000009",
		Date:      time.Now(),
	}

	// Never persisted: the archive insert must roll back
	_, err := repo.ArchiveInvoice(context.Background(), invoice)
	if err == nil {
		t.Fatal("expected error archiving a missing invoice")
	}
	if n := countRows(t, db, &entity.InvoiceArchive{}); n != 0 {
		t.Errorf("archive rows = %d, want 0 after rollback", n)
	}
}

func TestRestoreInvoiceUnknownArchiveID(t *testing.T) {
	db := setupArchiveDB(t)
	repo := NewArchiveRepository(db)

	_, err := repo.RestoreInvoice(context.Background(), uuid.New())
	if !errors.Is(err, apperror.ErrArchiveNotFound) {
		t.Errorf("err = %v, want ErrArchiveNotFound", err)
	}
}

func TestArchiveDealerPaymentRoundTrip(t *testing.T) {
	db := setupArchiveDB(t)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	payment := &entity.DealerPayment{
		CompanyID:       uuid.New(),
		DealerName:      "Acme Suppliers",
		Date:            time.Now(),
		BillAmountTotal: decimal.NewFromInt(1000),
		PaymentStatus:   enum.PaymentStatusPartialPaid,
		PaidAmount:      decimal.NewFromInt(400),
		BalanceAmount:   decimal.NewFromInt(600),
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}

	arch, err := repo.ArchiveDealerPayment(ctx, payment)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if n := countRows(t, db, &entity.DealerPayment{}); n != 0 {
		t.Errorf("live payments = %d, want 0", n)
	}

	restored, err := repo.RestoreDealerPayment(ctx, arch.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID != payment.ID {
		t.Errorf("restored id = %s, want original %s", restored.ID, payment.ID)
	}
	if !restored.BalanceAmount.Equal(payment.BalanceAmount) {
		t.Errorf("restored balance = %s, want %s", restored.BalanceAmount, payment.BalanceAmount)
	}
	if n := countRows(t, db, &entity.DealerPaymentArchive{}); n != 0 {
		t.Errorf("archive rows = %d, want 0 after restore", n)
	}
}

func TestListInvoiceArchivesScopedToCompany(t *testing.T) {
	db := setupArchiveDB(t)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	companyA := uuid.New()
	companyB := uuid.New()

	for i, companyID := range []uuid.UUID{companyA, companyA, companyB} {
		invoice := &entity.Invoice{
			CompanyID: companyID,
			InvoiceNo: "INV-00000" + string(rune('1'+i)),
			Date:      time.Now(),
		}
		if err := db.Create(invoice).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := repo.ArchiveInvoice(ctx, invoice); err != nil {
			t.Fatalf("archive: %v", err)
		}
	}

	archives, total, err := repo.ListInvoiceArchives(ctx, companyA, pagination.DefaultPagination())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(archives) != 2 {
		t.Errorf("company A archives = %d (total %d), want 2", len(archives), total)
	}
	for _, a := range archives {
		if a.CompanyID != companyA {
			t.Errorf("archive %s belongs to %s, want company A", a.ID, a.CompanyID)
		}
	}
}
