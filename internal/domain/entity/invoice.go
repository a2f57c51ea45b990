package entity

import (
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents a tax invoice issued by a company to a client.
// Invoices carry no soft-delete column: deletion relocates the row into
// invoice_archives and restore relocates it back.
type Invoice struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:idx_invoices_company_no" json:"company_id"`
	ClientID  *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	InvoiceNo string             `gorm:"size:100;not null;uniqueIndex:idx_invoices_company_no" json:"invoice_no"`
	Date      time.Time          `gorm:"type:date;not null" json:"date"`
	Status    enum.InvoiceStatus `gorm:"default:0" json:"status"`
	Items     LineItems          `gorm:"type:text" json:"items"`
	Subtotal  decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	CGST      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"cgst"`
	SGST      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"sgst"`
	IGST      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"igst"`
	Total     decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes     *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Client  *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
