package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quotation represents a price quotation. QuotationID is user-supplied
// free text; global uniqueness is enforced on write by suffix probing,
// not by the primary key.
type Quotation struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"company_id"`
	ClientID    *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	QuotationID string          `gorm:"size:100;uniqueIndex;not null" json:"quotation_id"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	ClientName  string          `gorm:"size:255" json:"client_name"`
	Items       LineItems       `gorm:"type:text" json:"items"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	CGST        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"cgst"`
	SGST        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sgst"`
	IGST        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"igst"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes       *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Client  *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}
