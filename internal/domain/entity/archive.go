package entity

import (
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceArchive is a historical snapshot of a deleted invoice, keyed by
// its own id and carrying the original invoice id for restore. Archive
// rows are created only by archiving and deleted only by restoring.
type InvoiceArchive struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OriginalID uuid.UUID          `gorm:"type:uuid;not null;index" json:"original_id"`
	ArchivedAt time.Time          `gorm:"not null" json:"archived_at"`
	CompanyID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	ClientID   *uuid.UUID         `gorm:"type:uuid" json:"client_id,omitempty"`
	InvoiceNo  string             `gorm:"size:100;not null" json:"invoice_no"`
	Date       time.Time          `gorm:"type:date;not null" json:"date"`
	Status     enum.InvoiceStatus `json:"status"`
	Items      LineItems          `gorm:"type:text" json:"items"`
	Subtotal   decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	CGST       decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"cgst"`
	SGST       decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"sgst"`
	IGST       decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"igst"`
	Total      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes      *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new archive row
func (a *InvoiceArchive) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceArchive model
func (InvoiceArchive) TableName() string {
	return "invoice_archives"
}

// NewInvoiceArchive snapshots a live invoice into an archive row
func NewInvoiceArchive(inv *Invoice, archivedAt time.Time) *InvoiceArchive {
	return &InvoiceArchive{
		OriginalID: inv.ID,
		ArchivedAt: archivedAt,
		CompanyID:  inv.CompanyID,
		ClientID:   inv.ClientID,
		InvoiceNo:  inv.InvoiceNo,
		Date:       inv.Date,
		Status:     inv.Status,
		Items:      inv.Items,
		Subtotal:   inv.Subtotal,
		CGST:       inv.CGST,
		SGST:       inv.SGST,
		IGST:       inv.IGST,
		Total:      inv.Total,
		Notes:      inv.Notes,
		CreatedAt:  inv.CreatedAt,
	}
}

// ToInvoice rebuilds the live invoice from the archive row, restoring
// the original id. UpdatedAt is left zero so gorm refreshes it on insert.
func (a *InvoiceArchive) ToInvoice() *Invoice {
	return &Invoice{
		ID:        a.OriginalID,
		CompanyID: a.CompanyID,
		ClientID:  a.ClientID,
		InvoiceNo: a.InvoiceNo,
		Date:      a.Date,
		Status:    a.Status,
		Items:     a.Items,
		Subtotal:  a.Subtotal,
		CGST:      a.CGST,
		SGST:      a.SGST,
		IGST:      a.IGST,
		Total:     a.Total,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}

// DealerPaymentArchive is a historical snapshot of a deleted dealer bill
type DealerPaymentArchive struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OriginalID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"original_id"`
	ArchivedAt      time.Time          `gorm:"not null" json:"archived_at"`
	CompanyID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	DealerName      string             `gorm:"size:255;not null" json:"dealer_name"`
	Date            time.Time          `gorm:"type:date;not null" json:"date"`
	Items           LineItems          `gorm:"type:text" json:"items"`
	BillAmountTotal decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"bill_amount_total"`
	PaymentStatus   enum.PaymentStatus `json:"payment_status"`
	PaidAmount      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	BalanceAmount   decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"balance_amount"`
	Notes           *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new archive row
func (a *DealerPaymentArchive) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DealerPaymentArchive model
func (DealerPaymentArchive) TableName() string {
	return "dealer_payment_archives"
}

// NewDealerPaymentArchive snapshots a live dealer bill into an archive row
func NewDealerPaymentArchive(dp *DealerPayment, archivedAt time.Time) *DealerPaymentArchive {
	return &DealerPaymentArchive{
		OriginalID:      dp.ID,
		ArchivedAt:      archivedAt,
		CompanyID:       dp.CompanyID,
		DealerName:      dp.DealerName,
		Date:            dp.Date,
		Items:           dp.Items,
		BillAmountTotal: dp.BillAmountTotal,
		PaymentStatus:   dp.PaymentStatus,
		PaidAmount:      dp.PaidAmount,
		BalanceAmount:   dp.BalanceAmount,
		Notes:           dp.Notes,
		CreatedAt:       dp.CreatedAt,
	}
}

// ToDealerPayment rebuilds the live dealer bill from the archive row
func (a *DealerPaymentArchive) ToDealerPayment() *DealerPayment {
	return &DealerPayment{
		ID:              a.OriginalID,
		CompanyID:       a.CompanyID,
		DealerName:      a.DealerName,
		Date:            a.Date,
		Items:           a.Items,
		BillAmountTotal: a.BillAmountTotal,
		PaymentStatus:   a.PaymentStatus,
		PaidAmount:      a.PaidAmount,
		BalanceAmount:   a.BalanceAmount,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}
