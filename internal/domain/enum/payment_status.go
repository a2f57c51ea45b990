package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the payment state of a dealer bill
type PaymentStatus int

const (
	PaymentStatusUnpaid      PaymentStatus = 0
	PaymentStatusPartialPaid PaymentStatus = 1
	PaymentStatusPaid        PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	names := [...]string{"unpaid", "partial_paid", "paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "unpaid"
	}
	return names[s]
}

// ParsePaymentStatus converts a status name into its enum value
func ParsePaymentStatus(str string) (PaymentStatus, bool) {
	switch str {
	case "unpaid":
		return PaymentStatusUnpaid, true
	case "partial_paid":
		return PaymentStatusPartialPaid, true
	case "paid":
		return PaymentStatusPaid, true
	}
	return PaymentStatusUnpaid, false
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = PaymentStatusUnpaid
	case "partial_paid":
		*s = PaymentStatusPartialPaid
	case "paid":
		*s = PaymentStatusPaid
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
