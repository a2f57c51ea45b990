package entity

import (
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DealerPayment represents a bill owed to a dealer/supplier.
// PaidAmount and BalanceAmount are derived from the payment status and
// the bill total; they are never authoritative on their own.
// Like invoices, dealer payments are archived rather than soft-deleted.
type DealerPayment struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	DealerName      string             `gorm:"size:255;not null" json:"dealer_name"`
	Date            time.Time          `gorm:"type:date;not null" json:"date"`
	Items           LineItems          `gorm:"type:text" json:"items"`
	BillAmountTotal decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"bill_amount_total"`
	PaymentStatus   enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	PaidAmount      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	BalanceAmount   decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"balance_amount"`
	Notes           *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new dealer payment
func (d *DealerPayment) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DealerPayment model
func (DealerPayment) TableName() string {
	return "dealer_payments"
}
