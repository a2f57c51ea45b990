package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusDraft     InvoiceStatus = 0
	InvoiceStatusSent      InvoiceStatus = 1
	InvoiceStatusPaid      InvoiceStatus = 2
	InvoiceStatusCancelled InvoiceStatus = 3
)

func (s InvoiceStatus) String() string {
	names := [...]string{"draft", "sent", "paid", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "draft"
	}
	return names[s]
}

// IsLocked reports whether the invoice may no longer be mutated.
// Items and client are frozen once an invoice is paid or cancelled.
func (s InvoiceStatus) IsLocked() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

// ParseInvoiceStatus converts a status name into its enum value
func ParseInvoiceStatus(str string) (InvoiceStatus, bool) {
	switch str {
	case "draft":
		return InvoiceStatusDraft, true
	case "sent":
		return InvoiceStatusSent, true
	case "paid":
		return InvoiceStatusPaid, true
	case "cancelled":
		return InvoiceStatusCancelled, true
	}
	return InvoiceStatusDraft, false
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = InvoiceStatusDraft
	case "sent":
		*s = InvoiceStatusSent
	case "paid":
		*s = InvoiceStatusPaid
	case "cancelled":
		*s = InvoiceStatusCancelled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
