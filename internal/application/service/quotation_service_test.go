package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	infraRepo "github.com/HarshJ166/invomax-sub000/internal/infrastructure/repository"
)

func TestCreateQuotationKeepsFreeIdentifier(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := NewQuotationService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewClientRepository(db),
		NewTaxService(),
	)

	q, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		CompanyID:   company.ID,
		QuotationID: "Q-100",
		Date:        time.Now(),
		Items:       entity.LineItems{item("1", "100", "18")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.QuotationID != "Q-100" {
		t.Errorf("quotation id = %q, want Q-100", q.QuotationID)
	}
}

func TestCreateQuotationSuffixesTakenIdentifier(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := NewQuotationService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewClientRepository(db),
		NewTaxService(),
	)

	want := []string{"Q-200", "Q-200-1", "Q-200-2"}
	for i, expected := range want {
		q, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
			CompanyID:   company.ID,
			QuotationID: "Q-200",
			Date:        time.Now(),
			Items:       entity.LineItems{item("1", "50", "5")},
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if q.QuotationID != expected {
			t.Errorf("create %d: quotation id = %q, want %q", i, q.QuotationID, expected)
		}
	}
}

func TestCreateQuotationSkipsTakenSuffix(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := NewQuotationService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewClientRepository(db),
		NewTaxService(),
	)

	// Occupy the base and the first suffix out of order
	for _, id := range []string{"Q-300-1", "Q-300"} {
		_, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
			CompanyID:   company.ID,
			QuotationID: id,
			Date:        time.Now(),
			Items:       entity.LineItems{item("1", "10", "0")},
		})
		if err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	q, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		CompanyID:   company.ID,
		QuotationID: "Q-300",
		Date:        time.Now(),
		Items:       entity.LineItems{item("1", "10", "0")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.QuotationID != "Q-300-2" {
		t.Errorf("quotation id = %q, want Q-300-2", q.QuotationID)
	}
}

func TestCreateQuotationAfterDeleteSuffixesRetiredIdentifier(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := NewQuotationService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewClientRepository(db),
		NewTaxService(),
	)

	q, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		CompanyID:   company.ID,
		QuotationID: "Q-600",
		Date:        time.Now(),
		Items:       entity.LineItems{item("1", "100", "18")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteQuotation(context.Background(), q.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The soft-deleted row still holds Q-600 in the unique index, so
	// the re-create must move on to the first free suffix instead of
	// colliding with it on every attempt.
	again, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		CompanyID:   company.ID,
		QuotationID: "Q-600",
		Date:        time.Now(),
		Items:       entity.LineItems{item("1", "100", "18")},
	})
	if err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
	if again.QuotationID != "Q-600-1" {
		t.Errorf("quotation id = %q, want Q-600-1", again.QuotationID)
	}
}

func TestQuotationRepositoryTranslatesDuplicate(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	repo := infraRepo.NewQuotationRepository(db)
	ctx := context.Background()

	first := &entity.Quotation{
		CompanyID:   company.ID,
		QuotationID: "Q-DUP",
		Date:        time.Now(),
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := &entity.Quotation{
		CompanyID:   company.ID,
		QuotationID: "Q-DUP",
		Date:        time.Now(),
	}
	err := repo.Create(ctx, second)
	if !errors.Is(err, repository.ErrDuplicateIdentifier) {
		t.Errorf("err = %v, want ErrDuplicateIdentifier", err)
	}
}

func TestCreateQuotationPricesItems(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)
	client := createTestClient(t, db, company, "Gujarat")

	svc := NewQuotationService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewClientRepository(db),
		NewTaxService(),
	)

	q, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		CompanyID:   company.ID,
		ClientID:    &client.ID,
		QuotationID: "Q-400",
		Date:        time.Now(),
		Items:       entity.LineItems{item("2", "100", "18")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !q.Subtotal.Equal(dec("200")) {
		t.Errorf("subtotal = %s, want 200", q.Subtotal)
	}
	if !q.IGST.Equal(dec("36")) {
		t.Errorf("igst = %s, want 36 for inter-state client", q.IGST)
	}
	if !q.CGST.IsZero() || !q.SGST.IsZero() {
		t.Errorf("cgst/sgst = %s/%s, want 0/0", q.CGST, q.SGST)
	}
	if q.ClientName != client.Name {
		t.Errorf("client name = %q, want %q", q.ClientName, client.Name)
	}
}

func TestUpdateQuotationKeepsIdentifier(t *testing.T) {
	db := setupTestDB(t)
	company := createTestCompany(t, db, "Maharashtra", "INV", 1)

	svc := NewQuotationService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewClientRepository(db),
		NewTaxService(),
	)

	q, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		CompanyID:   company.ID,
		QuotationID: "Q-500",
		Date:        time.Now(),
		Items:       entity.LineItems{item("1", "100", "18")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateQuotation(context.Background(), &UpdateQuotationInput{
		ID:    q.ID,
		Date:  time.Now(),
		Items: entity.LineItems{item("3", "100", "18")},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.QuotationID != "Q-500" {
		t.Errorf("identifier changed on update: %q", updated.QuotationID)
	}
	if !updated.Subtotal.Equal(dec("300")) {
		t.Errorf("subtotal = %s, want 300 after reprice", updated.Subtotal)
	}
}
