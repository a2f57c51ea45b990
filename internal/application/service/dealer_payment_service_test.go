package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	infraRepo "github.com/HarshJ166/invomax-sub000/internal/infrastructure/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dealerPaymentServiceForTest(db *gorm.DB) *DealerPaymentService {
	return NewDealerPaymentService(
		infraRepo.NewDealerPaymentRepository(db),
		infraRepo.NewCompanyRepository(db),
		NewBalanceService(),
		NewArchiveService(infraRepo.NewArchiveRepository(db)),
	)
}

func TestCreateDealerPaymentDerivesAmounts(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := dealerPaymentServiceForTest(db)

	payment, err := svc.CreateDealerPayment(context.Background(), &CreateDealerPaymentInput{
		CompanyID:       company.ID,
		DealerName:      "Acme Suppliers",
		Date:            time.Now(),
		BillAmountTotal: dec("1000"),
		PaymentStatus:   enum.PaymentStatusPartialPaid,
		PaidAmount:      dec("400"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !payment.PaidAmount.Equal(dec("400")) {
		t.Errorf("paid = %s, want 400", payment.PaidAmount)
	}
	if !payment.BalanceAmount.Equal(dec("600")) {
		t.Errorf("balance = %s, want 600", payment.BalanceAmount)
	}
}

func TestCreateDealerPaymentRejectsInvalidPartial(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := dealerPaymentServiceForTest(db)

	_, err := svc.CreateDealerPayment(context.Background(), &CreateDealerPaymentInput{
		CompanyID:       company.ID,
		DealerName:      "Acme Suppliers",
		Date:            time.Now(),
		BillAmountTotal: dec("1000"),
		PaymentStatus:   enum.PaymentStatusPartialPaid,
		PaidAmount:      dec("1000"),
	})
	if !errors.Is(err, apperror.ErrInvalidPartialPayment) {
		t.Errorf("err = %v, want ErrInvalidPartialPayment", err)
	}
}

func TestUpdatePaymentStatusRederives(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := dealerPaymentServiceForTest(db)
	ctx := context.Background()

	payment, err := svc.CreateDealerPayment(ctx, &CreateDealerPaymentInput{
		CompanyID:       company.ID,
		DealerName:      "Acme Suppliers",
		Date:            time.Now(),
		BillAmountTotal: dec("1000"),
		PaymentStatus:   enum.PaymentStatusUnpaid,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdatePaymentStatus(ctx, payment.ID, enum.PaymentStatusPaid, decimal.Zero)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !updated.PaidAmount.Equal(dec("1000")) || !updated.BalanceAmount.IsZero() {
		t.Errorf("paid/balance = %s/%s, want 1000/0", updated.PaidAmount, updated.BalanceAmount)
	}

	reloaded, err := svc.GetDealerPayment(ctx, payment.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.PaymentStatus != enum.PaymentStatusPaid {
		t.Errorf("status = %s, want paid", reloaded.PaymentStatus)
	}
}

func TestDealerPaymentArchiveRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := dealerPaymentServiceForTest(db)
	ctx := context.Background()

	payment, err := svc.CreateDealerPayment(ctx, &CreateDealerPaymentInput{
		CompanyID:       company.ID,
		DealerName:      "Acme Suppliers",
		Date:            time.Now(),
		Items:           entity.LineItems{item("5", "20", "18")},
		BillAmountTotal: dec("118"),
		PaymentStatus:   enum.PaymentStatusPartialPaid,
		PaidAmount:      dec("50"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	archive, err := svc.DeleteDealerPayment(ctx, payment.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if archive.OriginalID != payment.ID {
		t.Errorf("archive original id = %s, want %s", archive.OriginalID, payment.ID)
	}

	if _, err := svc.GetDealerPayment(ctx, payment.ID); err == nil {
		t.Error("archived dealer payment still retrievable from live table")
	}

	restored, err := svc.RestoreDealerPayment(ctx, archive.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID != payment.ID {
		t.Errorf("restored id = %s, want original %s", restored.ID, payment.ID)
	}
	if !restored.PaidAmount.Equal(payment.PaidAmount) {
		t.Errorf("restored paid = %s, want %s", restored.PaidAmount, payment.PaidAmount)
	}
	if restored.PaymentStatus != payment.PaymentStatus {
		t.Errorf("restored status = %s, want %s", restored.PaymentStatus, payment.PaymentStatus)
	}
}
