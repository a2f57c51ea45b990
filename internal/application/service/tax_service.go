package service

import (
	"strings"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// TaxBreakdown is the per-invoice tax aggregate. For every line either
// CGST+SGST carry the tax (intra-state) or IGST does (inter-state),
// never both, so at the aggregate level at most one of the two groups is
// nonzero for a single-jurisdiction document.
type TaxBreakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	Total    decimal.Decimal `json:"total"`
}

// HSNSummary aggregates taxable amount and tax components per HSN code
type HSNSummary struct {
	HSNCode       string          `json:"hsn_code"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
}

// TaxService computes GST breakdowns. It is pure: no storage, no
// rounding. Display rounding is the caller's concern; keeping full
// precision here avoids drift compounding across many lines.
type TaxService struct{}

// NewTaxService creates a new tax service
func NewTaxService() *TaxService {
	return &TaxService{}
}

// normalizeState lowercases and strips all whitespace so "Tamil Nadu"
// and " tamilnadu " compare equal.
func normalizeState(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// IsIntraState reports whether seller and buyer share a jurisdiction.
// An empty state on either side is treated as inter-state: assuming
// same-state would silently under-collect tax.
func (s *TaxService) IsIntraState(sellerState, buyerState string) bool {
	seller := normalizeState(sellerState)
	buyer := normalizeState(buyerState)
	if seller == "" || buyer == "" {
		return false
	}
	return seller == buyer
}

// ValidateItems checks every line and collects all violations into a
// single validation error naming line index and field.
func (s *TaxService) ValidateItems(items entity.LineItems) error {
	var fieldErrors []apperror.FieldError
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			fieldErrors = append(fieldErrors, apperror.NewLineItemError(i, "quantity", "must be greater than zero"))
		}
		if item.Rate.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.NewLineItemError(i, "rate", "must not be negative"))
		}
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(hundred) {
			fieldErrors = append(fieldErrors, apperror.NewLineItemError(i, "tax_rate", "must be between 0 and 100"))
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// ComputeBreakdown splits each line's tax into CGST+SGST (intra-state)
// or IGST (inter-state) and aggregates the invoice totals. An empty item
// list yields a zero breakdown: a draft may have no lines yet.
func (s *TaxService) ComputeBreakdown(items entity.LineItems, sellerState, buyerState string) (*TaxBreakdown, error) {
	if err := s.ValidateItems(items); err != nil {
		return nil, err
	}

	intra := s.IsIntraState(sellerState, buyerState)

	b := &TaxBreakdown{
		Subtotal: decimal.Zero,
		CGST:     decimal.Zero,
		SGST:     decimal.Zero,
		IGST:     decimal.Zero,
	}

	for _, item := range items {
		b.Subtotal = b.Subtotal.Add(item.Amount())
		tax := item.Tax()
		if intra {
			half := tax.Div(two)
			b.CGST = b.CGST.Add(half)
			b.SGST = b.SGST.Add(half)
		} else {
			b.IGST = b.IGST.Add(tax)
		}
	}

	b.Total = b.Subtotal.Add(b.CGST).Add(b.SGST).Add(b.IGST)
	return b, nil
}

// ComputeHSNSummary groups taxable amounts and tax components by HSN
// code, in first-seen order. Lines without an HSN code are grouped
// under the empty code.
func (s *TaxService) ComputeHSNSummary(items entity.LineItems, sellerState, buyerState string) ([]HSNSummary, error) {
	if err := s.ValidateItems(items); err != nil {
		return nil, err
	}

	intra := s.IsIntraState(sellerState, buyerState)

	index := make(map[string]int)
	summaries := make([]HSNSummary, 0, len(items))

	for _, item := range items {
		i, seen := index[item.HSNCode]
		if !seen {
			i = len(summaries)
			index[item.HSNCode] = i
			summaries = append(summaries, HSNSummary{
				HSNCode:       item.HSNCode,
				TaxableAmount: decimal.Zero,
				CGST:          decimal.Zero,
				SGST:          decimal.Zero,
				IGST:          decimal.Zero,
			})
		}

		summaries[i].TaxableAmount = summaries[i].TaxableAmount.Add(item.Amount())
		tax := item.Tax()
		if intra {
			half := tax.Div(two)
			summaries[i].CGST = summaries[i].CGST.Add(half)
			summaries[i].SGST = summaries[i].SGST.Add(half)
		} else {
			summaries[i].IGST = summaries[i].IGST.Add(tax)
		}
	}

	return summaries, nil
}
