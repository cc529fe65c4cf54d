package model

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Staff is the body of POST /api/staff. Every field is optional: nil (or an
// invalid Salary) means the client did not send it, and it echoes back as
// null.
type Staff struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	HourlySalary Salary  `json:"hourlySalary"`
}

// Salary is an optional decimal that is a JSON number on the wire in both
// directions. Quoted numbers are rejected.
type Salary struct {
	decimal.NullDecimal
}

// NewSalary returns a present Salary of d.
func NewSalary(d decimal.Decimal) Salary {
	return Salary{NullDecimal: decimal.NewNullDecimal(d)}
}

func (s *Salary) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Salary{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		return &json.UnmarshalTypeError{
			Value: "string",
			Type:  reflect.TypeOf(s.Decimal),
		}
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*s = NewSalary(d)
	return nil
}

// MarshalJSON writes the number unquoted, keeping the scale it was decoded
// with ("100.50" stays "100.50").
func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}

	d := s.Decimal
	if exp := d.Exponent(); exp < 0 {
		return []byte(d.StringFixed(-exp)), nil
	}
	return []byte(d.String()), nil
}
