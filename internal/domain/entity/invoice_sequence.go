package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InvoiceSequence holds the per-company invoice numbering counter.
// NextNumber is the last allocated value; it is mutated only by the
// atomic allocate operation.
type InvoiceSequence struct {
	ID         uint      `gorm:"primary_key" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"company_id"`
	Prefix     string    `gorm:"size:20;not null" json:"prefix"`
	NextNumber int64     `gorm:"not null" json:"next_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}

// Format renders a counter value as a document number, e.g. "INV-000006"
func (s *InvoiceSequence) Format(n int64) string {
	return fmt.Sprintf("%s-%06d", s.Prefix, n)
}
