package service

import (
	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
)

// BalanceService derives paid/balance amounts from a bill total and a
// payment status. Pure: no storage.
type BalanceService struct{}

// NewBalanceService creates a new balance service
func NewBalanceService() *BalanceService {
	return &BalanceService{}
}

// Derive returns the canonical (paidAmount, balanceAmount) pair for a
// bill. The paidAmount argument is consulted only for partial_paid; the
// two terminal-like statuses always reset it, overriding whatever was
// stored before.
func (s *BalanceService) Derive(billTotal decimal.Decimal, status enum.PaymentStatus, paidAmount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if billTotal.IsNegative() {
		return decimal.Zero, decimal.Zero, apperror.NewValidationError([]apperror.FieldError{
			{Field: "bill_amount_total", Message: "must not be negative"},
		})
	}

	switch status {
	case enum.PaymentStatusUnpaid:
		return decimal.Zero, billTotal, nil
	case enum.PaymentStatusPaid:
		return billTotal, decimal.Zero, nil
	case enum.PaymentStatusPartialPaid:
		// A full payment must be recorded as paid, not as a partial
		// equal to the total.
		if !paidAmount.IsPositive() || paidAmount.GreaterThanOrEqual(billTotal) {
			return decimal.Zero, decimal.Zero, apperror.ErrInvalidPartialPayment
		}
		return paidAmount, billTotal.Sub(paidAmount), nil
	default:
		return decimal.Zero, decimal.Zero, apperror.NewBadRequestError("unknown payment status")
	}
}

// DeriveBalance returns only the balance amount for a bill
func (s *BalanceService) DeriveBalance(billTotal decimal.Decimal, status enum.PaymentStatus, paidAmount decimal.Decimal) (decimal.Decimal, error) {
	_, balance, err := s.Derive(billTotal, status, paidAmount)
	return balance, err
}

// ApplyStatus moves a dealer bill to a new payment status, resetting its
// paid and balance amounts to the canonical values for that status.
func (s *BalanceService) ApplyStatus(bill *entity.DealerPayment, newStatus enum.PaymentStatus, paidAmount decimal.Decimal) error {
	paid, balance, err := s.Derive(bill.BillAmountTotal, newStatus, paidAmount)
	if err != nil {
		return err
	}
	bill.PaymentStatus = newStatus
	bill.PaidAmount = paid
	bill.BalanceAmount = balance
	return nil
}
