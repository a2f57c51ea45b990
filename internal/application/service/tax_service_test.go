package service

import (
	"errors"
	"testing"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(qty, rate, taxRate string) entity.LineItem {
	return entity.LineItem{
		Name:     "Widget",
		Quantity: dec(qty),
		Rate:     dec(rate),
		TaxRate:  dec(taxRate),
	}
}

func TestComputeBreakdownIntraState(t *testing.T) {
	svc := NewTaxService()

	items := entity.LineItems{
		item("2", "100", "18"),
	}

	b, err := svc.ComputeBreakdown(items, "Maharashtra", "maharashtra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.Subtotal.Equal(dec("200")) {
		t.Errorf("subtotal = %s, want 200", b.Subtotal)
	}
	if !b.CGST.Equal(dec("18")) {
		t.Errorf("cgst = %s, want 18", b.CGST)
	}
	if !b.SGST.Equal(dec("18")) {
		t.Errorf("sgst = %s, want 18", b.SGST)
	}
	if !b.IGST.IsZero() {
		t.Errorf("igst = %s, want 0", b.IGST)
	}
	if !b.Total.Equal(dec("236")) {
		t.Errorf("total = %s, want 236", b.Total)
	}
}

func TestComputeBreakdownInterState(t *testing.T) {
	svc := NewTaxService()

	items := entity.LineItems{
		item("2", "100", "18"),
	}

	b, err := svc.ComputeBreakdown(items, "Maharashtra", "Gujarat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.CGST.IsZero() || !b.SGST.IsZero() {
		t.Errorf("cgst/sgst = %s/%s, want 0/0", b.CGST, b.SGST)
	}
	if !b.IGST.Equal(dec("36")) {
		t.Errorf("igst = %s, want 36", b.IGST)
	}
	if !b.Total.Equal(dec("236")) {
		t.Errorf("total = %s, want 236", b.Total)
	}
}

func TestIsIntraStateNormalization(t *testing.T) {
	svc := NewTaxService()

	cases := []struct {
		seller, buyer string
		want          bool
	}{
		{"Maharashtra", "maharashtra", true},
		{"Tamil Nadu", " tamilnadu ", true},
		{"Maharashtra", "Gujarat", false},
		{"", "Gujarat", false},
		{"Maharashtra", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		if got := svc.IsIntraState(c.seller, c.buyer); got != c.want {
			t.Errorf("IsIntraState(%q, %q) = %v, want %v", c.seller, c.buyer, got, c.want)
		}
	}
}

func TestComputeBreakdownEmptyItems(t *testing.T) {
	svc := NewTaxService()

	b, err := svc.ComputeBreakdown(entity.LineItems{}, "Maharashtra", "Maharashtra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Subtotal.IsZero() || !b.Total.IsZero() {
		t.Errorf("empty items should yield a zero breakdown, got subtotal=%s total=%s", b.Subtotal, b.Total)
	}
}

func TestComputeBreakdownZeroTaxRate(t *testing.T) {
	svc := NewTaxService()

	b, err := svc.ComputeBreakdown(entity.LineItems{item("3", "50", "0")}, "Maharashtra", "Maharashtra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.CGST.IsZero() || !b.SGST.IsZero() || !b.IGST.IsZero() {
		t.Errorf("zero tax rate should produce no tax, got cgst=%s sgst=%s igst=%s", b.CGST, b.SGST, b.IGST)
	}
	if !b.Total.Equal(dec("150")) {
		t.Errorf("total = %s, want 150", b.Total)
	}
}

func TestValidateItemsCollectsAllViolations(t *testing.T) {
	svc := NewTaxService()

	items := entity.LineItems{
		item("0", "100", "18"),   // bad quantity
		item("1", "-5", "18"),    // bad rate
		item("1", "100", "101"),  // bad tax rate
		item("-2", "-1", "-0.5"), // everything bad
	}

	err := svc.ValidateItems(items)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if len(appErr.Errors) != 6 {
		t.Errorf("expected 6 field errors, got %d: %v", len(appErr.Errors), appErr.Errors)
	}
	if appErr.Errors[0].Field != "items[0].quantity" {
		t.Errorf("first field = %q, want items[0].quantity", appErr.Errors[0].Field)
	}
}

func TestBreakdownSplitExclusivityAndTotalIdentity(t *testing.T) {
	svc := NewTaxService()

	items := entity.LineItems{
		item("1", "99.99", "5"),
		item("3", "12.50", "12"),
		item("7", "7", "18"),
		item("2", "1049.50", "28"),
	}

	for _, buyer := range []string{"Maharashtra", "Karnataka"} {
		b, err := svc.ComputeBreakdown(items, "Maharashtra", buyer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		intraNonzero := !b.CGST.IsZero() || !b.SGST.IsZero()
		interNonzero := !b.IGST.IsZero()
		if intraNonzero && interNonzero {
			t.Errorf("buyer %s: both CGST/SGST and IGST nonzero", buyer)
		}

		want := b.Subtotal.Add(b.CGST).Add(b.SGST).Add(b.IGST)
		if !b.Total.Equal(want) {
			t.Errorf("buyer %s: total = %s, want %s", buyer, b.Total, want)
		}
		if !b.CGST.Equal(b.SGST) {
			t.Errorf("buyer %s: cgst %s != sgst %s", buyer, b.CGST, b.SGST)
		}
	}
}

func TestComputeHSNSummaryGrouping(t *testing.T) {
	svc := NewTaxService()

	items := entity.LineItems{
		{Name: "Bolt", HSNCode: "7318", Quantity: dec("10"), Rate: dec("5"), TaxRate: dec("18")},
		{Name: "Wire", HSNCode: "8544", Quantity: dec("2"), Rate: dec("100"), TaxRate: dec("18")},
		{Name: "Nut", HSNCode: "7318", Quantity: dec("10"), Rate: dec("3"), TaxRate: dec("18")},
	}

	summaries, err := svc.ComputeHSNSummary(items, "Maharashtra", "Maharashtra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(summaries))
	}
	if summaries[0].HSNCode != "7318" || summaries[1].HSNCode != "8544" {
		t.Errorf("groups not in first-seen order: %s, %s", summaries[0].HSNCode, summaries[1].HSNCode)
	}
	if !summaries[0].TaxableAmount.Equal(dec("80")) {
		t.Errorf("7318 taxable = %s, want 80", summaries[0].TaxableAmount)
	}
	if !summaries[0].CGST.Equal(dec("7.2")) {
		t.Errorf("7318 cgst = %s, want 7.2", summaries[0].CGST)
	}
	if !summaries[1].TaxableAmount.Equal(dec("200")) {
		t.Errorf("8544 taxable = %s, want 200", summaries[1].TaxableAmount)
	}
}
