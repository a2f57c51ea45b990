package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// LineItem represents a single billed line on an invoice, quotation or
// dealer bill
type LineItem struct {
	Name     string          `json:"name"`
	HSNCode  string          `json:"hsn_code,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// Amount returns quantity * rate
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Rate)
}

// Tax returns the full tax charged on the line, before the
// intra-/inter-state split
func (li LineItem) Tax() decimal.Decimal {
	return li.Amount().Mul(li.TaxRate).Div(decimal.NewFromInt(100))
}

// LineItems is stored as a single JSON-encoded text column
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported line items column type")
	}
}
