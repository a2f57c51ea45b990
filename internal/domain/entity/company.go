package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents an issuing business. Its state drives the
// intra-/inter-state tax split and its numbering config seeds the
// invoice sequence.
type Company struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string         `gorm:"size:255;not null" json:"name"`
	State                string         `gorm:"size:100;not null" json:"state"`
	GSTIN                string         `gorm:"size:15" json:"gstin"`
	Address              *string        `gorm:"type:text" json:"address,omitempty"`
	InvoicePrefix        string         `gorm:"size:20;not null" json:"invoice_prefix"`
	InvoiceNumberInitial int64          `gorm:"not null;default:1" json:"invoice_number_initial"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
