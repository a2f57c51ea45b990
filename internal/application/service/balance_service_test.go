package service

import (
	"errors"
	"testing"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
)

func TestDeriveUnpaid(t *testing.T) {
	svc := NewBalanceService()

	paid, balance, err := svc.Derive(dec("1000"), enum.PaymentStatusUnpaid, dec("400"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !paid.IsZero() {
		t.Errorf("paid = %s, want 0", paid)
	}
	if !balance.Equal(dec("1000")) {
		t.Errorf("balance = %s, want 1000", balance)
	}
}

func TestDerivePartialPaid(t *testing.T) {
	svc := NewBalanceService()

	paid, balance, err := svc.Derive(dec("1000"), enum.PaymentStatusPartialPaid, dec("400"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !paid.Equal(dec("400")) {
		t.Errorf("paid = %s, want 400", paid)
	}
	if !balance.Equal(dec("600")) {
		t.Errorf("balance = %s, want 600", balance)
	}
}

func TestDerivePaid(t *testing.T) {
	svc := NewBalanceService()

	paid, balance, err := svc.Derive(dec("1000"), enum.PaymentStatusPaid, dec("123"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !paid.Equal(dec("1000")) {
		t.Errorf("paid = %s, want 1000", paid)
	}
	if !balance.IsZero() {
		t.Errorf("balance = %s, want 0", balance)
	}
}

func TestDeriveInvalidPartialAmounts(t *testing.T) {
	svc := NewBalanceService()

	for _, amount := range []string{"0", "-10", "1000", "1500"} {
		_, _, err := svc.Derive(dec("1000"), enum.PaymentStatusPartialPaid, dec(amount))
		if !errors.Is(err, apperror.ErrInvalidPartialPayment) {
			t.Errorf("partial amount %s: err = %v, want ErrInvalidPartialPayment", amount, err)
		}
	}
}

func TestDeriveNegativeTotal(t *testing.T) {
	svc := NewBalanceService()

	_, _, err := svc.Derive(dec("-1"), enum.PaymentStatusUnpaid, decimal.Zero)
	if err == nil {
		t.Fatal("expected validation error for negative total")
	}
}

func TestDeriveBalanceNeverNegative(t *testing.T) {
	svc := NewBalanceService()

	totals := []string{"0", "0.01", "99.99", "1000000"}
	for _, total := range totals {
		for _, status := range []enum.PaymentStatus{enum.PaymentStatusUnpaid, enum.PaymentStatusPaid} {
			balance, err := svc.DeriveBalance(dec(total), status, decimal.Zero)
			if err != nil {
				t.Fatalf("total %s status %s: %v", total, status, err)
			}
			if balance.IsNegative() {
				t.Errorf("total %s status %s: negative balance %s", total, status, balance)
			}
		}
	}
}

func TestApplyStatusTransitions(t *testing.T) {
	svc := NewBalanceService()

	bill := &entity.DealerPayment{
		BillAmountTotal: dec("1000"),
		PaymentStatus:   enum.PaymentStatusUnpaid,
		PaidAmount:      decimal.Zero,
		BalanceAmount:   dec("1000"),
	}

	if err := svc.ApplyStatus(bill, enum.PaymentStatusPartialPaid, dec("400")); err != nil {
		t.Fatalf("to partial: %v", err)
	}
	if !bill.PaidAmount.Equal(dec("400")) || !bill.BalanceAmount.Equal(dec("600")) {
		t.Errorf("partial: paid=%s balance=%s, want 400/600", bill.PaidAmount, bill.BalanceAmount)
	}

	if err := svc.ApplyStatus(bill, enum.PaymentStatusPaid, decimal.Zero); err != nil {
		t.Fatalf("to paid: %v", err)
	}
	if !bill.PaidAmount.Equal(dec("1000")) || !bill.BalanceAmount.IsZero() {
		t.Errorf("paid: paid=%s balance=%s, want 1000/0", bill.PaidAmount, bill.BalanceAmount)
	}

	// Back to unpaid resets the stored paid amount
	if err := svc.ApplyStatus(bill, enum.PaymentStatusUnpaid, decimal.Zero); err != nil {
		t.Fatalf("to unpaid: %v", err)
	}
	if !bill.PaidAmount.IsZero() || !bill.BalanceAmount.Equal(dec("1000")) {
		t.Errorf("unpaid: paid=%s balance=%s, want 0/1000", bill.PaidAmount, bill.BalanceAmount)
	}

	// A rejected transition leaves the bill untouched
	if err := svc.ApplyStatus(bill, enum.PaymentStatusPartialPaid, dec("1000")); err == nil {
		t.Fatal("expected error for partial equal to total")
	}
	if bill.PaymentStatus != enum.PaymentStatusUnpaid {
		t.Errorf("status changed after rejected transition: %s", bill.PaymentStatus)
	}
}
